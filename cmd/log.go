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

// logCmd commits one day of lead activity. Flags not present on the command
// line keep the value of the reconciled edit state (draft, committed entry
// or zero), so a log invocation can amend a single counter of an existing
// day.
type logCmd struct {
	broker string
	date   string
	reason string
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "commit one day of lead activity" }
func (*logCmd) Usage() string {
	return `lb log [-b <broker>] [-d <date>] [counter flags] [-reason <text>]

  Commits the daily entry for a date (today by default), replacing any
  committed record wholesale and clearing the date's draft. Counters absent
  from the command line keep their current edit-state value.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.broker, "b", "", "Broker profile. Defaults to the only profile if one exists.")
	f.StringVar(&c.date, "d", "", "Date of the entry (defaults to today).")
	f.StringVar(&c.reason, "reason", "", "Free text reason for the discarded leads.")
	registerCounterFlags(f)
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := openProfile(c.broker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	on := leadbook.Today()
	if c.date != "" {
		if on, err = leadbook.ParseDate(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	r := newReconciler()
	state, err := r.LoadEditState(p.BrokerName, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	e := state.Entry
	for counter, v := range visitedOverrides(f) {
		e.Set(counter, v)
	}
	if flagVisited(f, "reason") {
		e.DiscardReason = c.reason
	}

	if err := r.CommitEntry(p.BrokerName, on, e); err != nil {
		var verr *leadbook.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", verr)
			return subcommands.ExitUsageError
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Committed entry for %s on %s.\n", p.BrokerName, on)
	return subcommands.ExitSuccess
}
