package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/vlemos/leadbook/renderer"
)

type ledgerCmd struct {
	broker string
}

func (*ledgerCmd) Name() string     { return "ledger" }
func (*ledgerCmd) Synopsis() string { return "display the running lead balance" }
func (*ledgerCmd) Usage() string {
	return `lb ledger [-b <broker>]

  Displays every recorded day with its start and end of day balances, most
  recent first.
`
}

func (c *ledgerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.broker, "b", "", "Broker profile. Defaults to the only profile if one exists.")
}

func (c *ledgerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := openProfile(c.broker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.LedgerMarkdown(p.BrokerName, p.Ledger()))
	return subcommands.ExitSuccess
}
