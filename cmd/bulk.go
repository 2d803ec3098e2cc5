package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/vlemos/leadbook"
)

// bulkCmd applies counter overrides to every date of an inclusive range.
type bulkCmd struct {
	broker string
	from   string
	to     string
}

func (*bulkCmd) Name() string     { return "bulk" }
func (*bulkCmd) Synopsis() string { return "apply counter values to a range of dates" }
func (*bulkCmd) Usage() string {
	return `lb bulk [-b <broker>] -from <date> -to <date> [counter flags]

  Writes one entry per date in [from, to]. Counters present on the command
  line are forced to their value on every date (an explicit 0 counts);
  absent counters keep their committed value, zero for new dates. The
  discard reason is never touched by a bulk edit.
`
}

func (c *bulkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.broker, "b", "", "Broker profile. Defaults to the only profile if one exists.")
	f.StringVar(&c.from, "from", "", "First date of the range (required).")
	f.StringVar(&c.to, "to", "", "Last date of the range (required).")
	registerCounterFlags(f)
}

func (c *bulkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from == "" || c.to == "" {
		fmt.Fprintln(os.Stderr, "Error: -from and -to are required.")
		return subcommands.ExitUsageError
	}
	from, err := leadbook.ParseDate(c.from)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	to, err := leadbook.ParseDate(c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ov := visitedOverrides(f)
	if len(ov) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no counter flags given, nothing to apply.")
		return subcommands.ExitUsageError
	}

	p, err := openProfile(c.broker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	applied, err := newReconciler().CommitBulk(p.BrokerName, from, to, ov)
	if err != nil {
		var verr *leadbook.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", verr)
			return subcommands.ExitUsageError
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if len(applied) > 0 {
			fmt.Fprintf(os.Stderr, "Applied %d date(s) before the failure, up to %s; retry the remainder.\n",
				len(applied), applied[len(applied)-1])
		}
		return subcommands.ExitFailure
	}
	fmt.Printf("Applied overrides to %d date(s) for %s.\n", len(applied), p.BrokerName)
	return subcommands.ExitSuccess
}
