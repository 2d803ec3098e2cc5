package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/vlemos/leadbook"
	"github.com/vlemos/leadbook/renderer"
)

type monthlyCmd struct {
	broker string
	month  string
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display a monthly lead activity report" }
func (*monthlyCmd) Usage() string {
	return `lb monthly [-b <broker>] [-m <yyyy-mm>]

  Displays the month's opening and closing balances, per-stage totals and
  conversion rate. Defaults to the current month.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.broker, "b", "", "Broker profile. Defaults to the only profile if one exists.")
	f.StringVar(&c.month, "m", "", "Target month, e.g. 2024-05 (defaults to the current month).")
}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := openProfile(c.broker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	month := leadbook.MonthOf(leadbook.Today())
	if c.month != "" {
		if month, err = leadbook.ParseMonth(c.month); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	summary := leadbook.SummarizeMonth(p.Ledger(), month)
	printMarkdown(renderer.MonthlyMarkdown(p.BrokerName, summary, p.MonthlySalesGoal))
	return subcommands.ExitSuccess
}
