package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/vlemos/leadbook"
)

// draftCmd saves form state for a date without committing it. The draft
// shadows the committed record until `lb log` commits or `lb rm` deletes
// that date.
type draftCmd struct {
	broker string
	date   string
	reason string
}

func (*draftCmd) Name() string     { return "draft" }
func (*draftCmd) Synopsis() string { return "save unsaved form state for a date" }
func (*draftCmd) Usage() string {
	return `lb draft [-b <broker>] [-d <date>] [counter flags] [-reason <text>]

  Overwrites the draft for a date with the given form state. A draft takes
  precedence over the committed entry when editing, until committed or
  cleared.
`
}

func (c *draftCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.broker, "b", "", "Broker profile. Defaults to the only profile if one exists.")
	f.StringVar(&c.date, "d", "", "Date of the draft (defaults to today).")
	f.StringVar(&c.reason, "reason", "", "Free text reason for the discarded leads.")
	registerCounterFlags(f)
}

func (c *draftCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if err := r.SaveDraft(p.BrokerName, on, e); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Saved draft for %s on %s.\n", p.BrokerName, on)
	return subcommands.ExitSuccess
}
