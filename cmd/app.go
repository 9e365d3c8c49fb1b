// Package cmd implements the CLI application around the reconciliation engine.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/subcommands"
	"github.com/optfolio/optfolio"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reconcileCmd{}, "reconciliation")
	c.Register(&classifyCmd{}, "reconciliation")

	c.Register(&topicCmd{}, "documentation")
}

// DecodeLegsFile reads a batch of transaction legs from a JSONL file.
func DecodeLegsFile(filename string) ([]optfolio.TransactionLeg, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open legs file %q: %w", filename, err)
	}
	defer f.Close()
	return optfolio.DecodeLegs(f)
}

// DecodeTradesFile reads a closed-trade history from a JSONL file. A missing
// file is an empty history, not an error.
func DecodeTradesFile(filename string) ([]optfolio.ClosedTrade, error) {
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open history file %q: %w", filename, err)
	}
	defer f.Close()
	return optfolio.DecodeTrades(f)
}

// writeFile writes a JSONL encoding produced by 'encode' into filename.
func writeFile(filename string, encode func(f *os.File) error) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot create %q: %w", filename, err)
	}
	defer f.Close()
	return encode(f)
}
