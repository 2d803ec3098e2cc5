package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/vlemos/leadbook"
)

type rmCmd struct {
	broker string
	date   string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete the committed entry for a date" }
func (*rmCmd) Usage() string {
	return `lb rm [-b <broker>] -d <date>

  Removes the committed entry for a date and clears any draft cached for it.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.broker, "b", "", "Broker profile. Defaults to the only profile if one exists.")
	f.StringVar(&c.date, "d", "", "Date of the entry to delete (required).")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.date == "" {
		fmt.Fprintln(os.Stderr, "Error: -d date is required.")
		return subcommands.ExitUsageError
	}
	on, err := leadbook.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	p, err := openProfile(c.broker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := newReconciler().DeleteEntry(p.BrokerName, on); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted entry for %s on %s.\n", p.BrokerName, on)
	return subcommands.ExitSuccess
}
