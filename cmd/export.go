package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/vlemos/leadbook"
)

type exportCmd struct {
	broker string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export daily entries in the import/export format" }
func (*exportCmd) Usage() string {
	return `lb export [-b <broker>] [-o <file>]

  Writes the broker's committed entries as JSONL, one flat record per line,
  to the file or to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.broker, "b", "", "Broker profile. Defaults to the only profile if one exists.")
	f.StringVar(&c.output, "o", "", "Output file (defaults to stdout).")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := openProfile(c.broker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var w io.Writer = os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}

	if err := leadbook.ExportEntries(w, p.Entries()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
