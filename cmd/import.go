package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/vlemos/leadbook"
)

type importCmd struct {
	broker string
	input  string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import daily entries from the import/export format" }
func (*importCmd) Usage() string {
	return `lb import [-b <broker>] [-i <file>]

  Reads JSONL entries from the file or stdin and commits each one through
  the regular validation path, replacing committed records wholesale.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.broker, "b", "", "Broker profile. Defaults to the only profile if one exists.")
	f.StringVar(&c.input, "i", "", "Input file (defaults to stdin).")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := openProfile(c.broker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var r io.Reader = os.Stdin
	if c.input != "" {
		file, err := os.Open(c.input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		r = file
	}

	entries, err := leadbook.ImportEntries(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	rec := newReconciler()
	for _, e := range entries {
		if err := rec.CommitEntry(p.BrokerName, e.Date, e); err != nil {
			var verr *leadbook.ValidationError
			if errors.As(err, &verr) {
				fmt.Fprintf(os.Stderr, "Error: entry on %s rejected: %v\n", e.Date, verr)
				return subcommands.ExitUsageError
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	fmt.Printf("Imported %d entries into %s.\n", len(entries), p.BrokerName)
	return subcommands.ExitSuccess
}
