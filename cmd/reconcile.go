package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/optfolio/optfolio"
	"github.com/optfolio/optfolio/renderer"
)

// reconcileCmd holds the flags for the 'reconcile' subcommand.
type reconcileCmd struct {
	legsFile      string
	positionsFile string
	historyFile   string
}

func (*reconcileCmd) Name() string     { return "reconcile" }
func (*reconcileCmd) Synopsis() string { return "match an imported batch of legs into lots and trades" }
func (*reconcileCmd) Usage() string {
	return `ofl reconcile [-l <legs file>] [-positions <file>] [-history <file>]

  Reads one batch of transaction legs (JSONL), matches closing legs against
  open lots, and prints the resulting open positions and realized P&L.
  With -positions and -history, the results are also written out; an existing
  history file is merged by stable trade id instead of being duplicated.
`
}

func (c *reconcileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.legsFile, "l", "legs.jsonl", "Imported transaction legs file (JSONL format)")
	f.StringVar(&c.positionsFile, "positions", "", "Write candidate open positions to this file (JSONL format)")
	f.StringVar(&c.historyFile, "history", "", "Merge closed trades into this history file (JSONL format)")
}

func (c *reconcileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	legs, err := DecodeLegsFile(c.legsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading legs: %v\n", err)
		return subcommands.ExitFailure
	}

	res := optfolio.Reconcile(legs)

	if c.positionsFile != "" {
		err := writeFile(c.positionsFile, func(f *os.File) error {
			return optfolio.EncodeLots(f, res.OpenPositions)
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing positions: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	if c.historyFile != "" {
		existing, err := DecodeTradesFile(c.historyFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading history: %v\n", err)
			return subcommands.ExitFailure
		}
		merged := optfolio.MergeTrades(existing, res.ClosedHistory)
		err = writeFile(c.historyFile, func(f *os.File) error {
			return optfolio.EncodeTrades(f, merged)
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing history: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.ReconciliationMarkdown(res))
	return subcommands.ExitSuccess
}
