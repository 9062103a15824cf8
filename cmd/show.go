package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/invoice"
	"github.com/etnz/invoice/renderer"
	"github.com/google/subcommands"
)

type showCmd struct {
	script string
	json   bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the line items and their totals" }
func (*showCmd) Usage() string {
	return `inv show [-f <script>] [-json]

  Displays the starting line items of a document with the subtotal, the VAT
  and the total. With -f, the operations of the script are applied first, one
  per line, using the same syntax as 'inv edit'.

Usage Examples:
$ inv show -f changes.txt -json

`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.script, "f", "", "Script of operations to apply before displaying.")
	f.BoolVar(&c.json, "json", false, "Print the ledger as JSON.")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session := invoice.NewSession(invoice.SeedLedger())

	if c.script != "" {
		ops, err := readScript(c.script)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		verbosef("applying %d operations from %q", len(ops), c.script)
		session.Apply(ops...)
	}

	ledger := session.Ledger()
	if c.json {
		b, err := json.MarshalIndent(ledger, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding ledger: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(b))
		return subcommands.ExitSuccess
	}

	printMarkdown(os.Stdout, renderer.LedgerMarkdown(ledger))
	return subcommands.ExitSuccess
}

// readScript parses the script file at path, "-" meaning stdin.
func readScript(path string) ([]invoice.Operation, error) {
	if path == "-" {
		return invoice.ParseScript(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open script %q: %w", path, err)
	}
	defer f.Close()

	ops, err := invoice.ParseScript(f)
	if err != nil {
		return nil, fmt.Errorf("invalid script %q: %w", path, err)
	}
	return ops, nil
}
