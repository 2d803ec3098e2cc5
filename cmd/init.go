package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/vlemos/leadbook"
)

type initCmd struct {
	broker  string
	initial int
	goal    int
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create a new broker profile" }
func (*initCmd) Usage() string {
	return `lb init -b <broker> [-initial <n>] [-goal <n>]

  Creates a new broker profile file under the data path. The initial leads
  are the balance that exists before the first recorded day.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.broker, "b", "", "Broker name (required).")
	f.IntVar(&c.initial, "initial", 0, "Lead balance before the first recorded day.")
	f.IntVar(&c.goal, "goal", 0, "Monthly sales goal in signed leads (0 for none).")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.broker == "" {
		fmt.Fprintln(os.Stderr, "Error: -b broker name is required.")
		return subcommands.ExitUsageError
	}
	if _, err := openProfile(c.broker); err == nil {
		fmt.Fprintf(os.Stderr, "Error: broker profile %q already exists.\n", c.broker)
		return subcommands.ExitFailure
	}

	p := leadbook.NewBrokerProfile(c.broker, c.initial)
	p.SetGoal(c.goal)
	if err := leadbook.SaveProfile(*dataPath, p); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created broker profile %q with %d initial leads.\n", c.broker, c.initial)
	return subcommands.ExitSuccess
}
