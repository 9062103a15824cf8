// Package cmd implements the CLI application to edit invoice line items.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/mattn/go-isatty"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&showCmd{}, "ledger")
	c.Register(&editCmd{}, "ledger")
	c.Register(&serveCmd{}, "ledger")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var Verbose = flag.Bool("v", envBool(EnvVerbose, false), "Verbose output. Defaults to $"+EnvVerbose+".")
var Plain = flag.Bool("plain", envBool(EnvPlain, false), "Print raw markdown instead of rendering it for the terminal. Defaults to $"+EnvPlain+".")

// printMarkdown writes md to w, rendered for the terminal when w is one.
func printMarkdown(w io.Writer, md string) {
	if *Plain || !isTerminal(w) {
		fmt.Fprint(w, md)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		log.Printf("warning, cannot render markdown: %v", err)
		fmt.Fprint(w, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.Printf("warning, cannot render markdown: %v", err)
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// verbosef logs only in verbose mode.
func verbosef(format string, args ...any) {
	if *Verbose {
		log.Printf(format, args...)
	}
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
