// Package cmd implements the CLI application to manage a broker's lead ledger.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/vlemos/leadbook"
)

// Commands lists the subcommands of the lb tool.
// A main package registers them all and Execute()s the user-selected one.
var Commands = []subcommands.Command{
	&initCmd{},
	&logCmd{},
	&draftCmd{},
	&editCmd{},
	&bulkCmd{},
	&rmCmd{},
	&ledgerCmd{},
	&monthlyCmd{},
	&exportCmd{},
	&importCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataPath = flag.String("data-path", ".", "Path to the folder holding broker profile files (JSONL format)")

// openProfile loads the broker profile matching the name. An empty name
// resolves to the only profile under the data path, if there is exactly one.
func openProfile(broker string) (*leadbook.BrokerProfile, error) {
	return leadbook.FindProfile(*dataPath, broker)
}

// newReconciler builds the edit reconciler over the app's file-backed entry
// store and draft cache.
func newReconciler() *leadbook.Reconciler {
	store := leadbook.NewFileStore(*dataPath)
	drafts := leadbook.NewDirDraftCache(*dataPath)
	return leadbook.NewReconciler(store, drafts)
}

// printMarkdown renders a markdown document to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// Fall back to the raw markdown.
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// counterFlagNames maps CLI flag names to the pipeline counters they set.
var counterFlagNames = map[string]leadbook.Counter{
	"new":         leadbook.NewLeads,
	"discarded":   leadbook.DiscardedLeads,
	"repique":     leadbook.RepiqueLeads,
	"visits":      leadbook.LocalVisits,
	"contacting":  leadbook.ContactingLeads,
	"inprogress":  leadbook.InProgressLeads,
	"scheduled":   leadbook.ScheduledLeads,
	"negotiation": leadbook.NegotiationLeads,
	"credit":      leadbook.CreditAnalysisLeads,
	"approved":    leadbook.ApprovedLeads,
	"signed":      leadbook.SignedLeads,
}

// registerCounterFlags declares one integer flag per pipeline counter.
func registerCounterFlags(f *flag.FlagSet) {
	for name, c := range counterFlagNames {
		f.Int(name, 0, fmt.Sprintf("value for the %s counter", c))
	}
}

// visitedOverrides collects the counter flags actually present on the
// command line into a sparse override set. A flag explicitly set to 0 is an
// override too; an absent flag is not.
func visitedOverrides(f *flag.FlagSet) leadbook.Overrides {
	ov := make(leadbook.Overrides)
	f.Visit(func(fl *flag.Flag) {
		c, ok := counterFlagNames[fl.Name]
		if !ok {
			return
		}
		if g, ok := fl.Value.(flag.Getter); ok {
			ov[c] = g.Get().(int)
		}
	})
	return ov
}

// flagVisited reports whether a flag was present on the command line.
func flagVisited(f *flag.FlagSet, name string) bool {
	visited := false
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			visited = true
		}
	})
	return visited
}
