package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/optfolio/optfolio/renderer"
)

// classifyCmd holds the flags for the 'classify' subcommand.
type classifyCmd struct {
	legsFile string
}

func (*classifyCmd) Name() string     { return "classify" }
func (*classifyCmd) Synopsis() string { return "show how each leg would be classified" }
func (*classifyCmd) Usage() string {
	return `ofl classify [-l <legs file>]

  Prints the opening/closing classification of every leg in a batch, and
  whether it was decided by the broker code or by the side heuristic.
`
}

func (c *classifyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.legsFile, "l", "legs.jsonl", "Imported transaction legs file (JSONL format)")
}

func (c *classifyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	legs, err := DecodeLegsFile(c.legsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading legs: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ClassificationMarkdown(legs))
	return subcommands.ExitSuccess
}
