package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/vlemos/leadbook/docs"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "display a user manual topic" }
func (*topicCmd) Usage() string {
	return `lb topic [<name>]

  Displays a documentation topic, or the list of topics when no name is
  given.
`
}

func (*topicCmd) SetFlags(*flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var doc string
	var err error
	if f.NArg() == 0 {
		doc, err = docs.Index()
	} else {
		doc, err = docs.GetTopic(f.Arg(0))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
