package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/invoice"
	"github.com/etnz/invoice/renderer"
	"github.com/google/subcommands"
)

type editCmd struct {
	quiet bool
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit the line items interactively" }
func (*editCmd) Usage() string {
	return `inv edit [-q]

  Starts an editing session on the default line items and reads one
  command per line from the standard input:

    add                       append a new line
    set <id> <field> <value>  change a field (description, quantity, unitPrice, discount)
    rm <id>                   delete a line
    show                      display all the lines and the totals
    help                      display this help
    quit                      end the session

  The session lives in memory only; nothing is saved when it ends.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.quiet, "q", false, "Do not display the lines when the session starts.")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session := invoice.NewSession(invoice.SeedLedger())
	e := &editor{
		session: session,
		out:     os.Stdout,
		errOut:  os.Stderr,
	}
	if isTerminal(os.Stdin) {
		e.prompt = "> "
	}
	if !c.quiet {
		e.show()
	}
	if err := e.run(os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// editor reads commands and applies them to a session.
type editor struct {
	session *invoice.Session
	out     io.Writer
	errOut  io.Writer
	prompt  string
}

const editorHelp = "Commands: `add`, `set <id> <field> <value>`, `rm <id>`, `show`, `help`, `quit`.\n" +
	"Fields: description (desc), quantity (qty), unitPrice (price), discount (disc).\n"

// run processes lines from in until quit or the end of input.
func (e *editor) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(e.out, e.prompt)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "", "#":
			continue
		case "quit", "exit":
			return nil
		case "show":
			e.show()
			continue
		case "help", "?":
			printMarkdown(e.out, editorHelp)
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		op, err := invoice.ParseOperation(scanner.Text())
		if err != nil {
			fmt.Fprintf(e.errOut, "Error: %v\n", err)
			continue
		}
		e.apply(op)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("could not read input: %w", err)
	}
	return nil
}

// apply runs op and reports its effect followed by the new totals.
func (e *editor) apply(op invoice.Operation) {
	before := e.session.Ledger()
	after := e.session.Apply(op)
	verbosef("applied %q", op)

	var b strings.Builder
	switch op.Kind {
	case invoice.OpAdd:
		if it, ok := after.Item(before.NextID()); ok {
			b.WriteString(renderer.ItemMarkdown(it))
		}
	case invoice.OpUpdate:
		if it, ok := after.Item(op.ID); ok {
			b.WriteString(renderer.ItemMarkdown(it))
		}
	case invoice.OpRemove:
		if after.Len() < before.Len() {
			fmt.Fprintf(&b, "Line %d removed.\n", op.ID)
		}
	}
	b.WriteString("\n")
	b.WriteString(renderer.SummaryMarkdown(after.Totals()))
	printMarkdown(e.out, b.String())
}

func (e *editor) show() {
	printMarkdown(e.out, renderer.LedgerMarkdown(e.session.Ledger()))
}
