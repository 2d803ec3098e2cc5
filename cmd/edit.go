package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/vlemos/leadbook"
)

// editCmd shows the reconciled form state for a date: the unsaved draft if
// one exists, the committed entry otherwise, or an all-zero default.
type editCmd struct {
	broker string
	date   string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "show the form state for a date" }
func (*editCmd) Usage() string {
	return `lb edit [-b <broker>] [-d <date>]

  Displays the state that would populate the editable form for a date,
  marking whether it comes from an unsaved draft.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.broker, "b", "", "Broker profile. Defaults to the only profile if one exists.")
	f.StringVar(&c.date, "d", "", "Date to edit (defaults to today).")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	state, err := newReconciler().LoadEditState(p.BrokerName, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	status := "saved"
	if state.IsDraft {
		status = "unsaved draft"
	}
	fmt.Fprintf(&b, "# %s on %s (%s)\n\n", p.BrokerName, on, status)
	for _, counter := range leadbook.Counters {
		fmt.Fprintf(&b, "- %s: %d\n", counter, state.Entry.Get(counter))
	}
	if state.Entry.DiscardReason != "" {
		fmt.Fprintf(&b, "- discardReason: %q\n", state.Entry.DiscardReason)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
