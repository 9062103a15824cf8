package cmd

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/etnz/invoice/web"
	"github.com/google/subcommands"
)

type serveCmd struct {
	cfg web.Config
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the line items form over HTTP" }
func (*serveCmd) Usage() string {
	return `inv serve [-addr <addr>] [-session-ttl <duration>] [-max-sessions <n>]

  Serves the line items as an HTML form. Every browser gets its own editing
  session, kept in memory and dropped after it has been idle for the
  session TTL, or when more than max-sessions sessions are open. Defaults are
  read from $INV_ADDR, $INV_SESSION_TTL and $INV_MAX_SESSIONS.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	c.cfg = web.LoadConfig()
	f.StringVar(&c.cfg.Addr, "addr", c.cfg.Addr, "Address to listen on.")
	f.DurationVar(&c.cfg.SessionTTL, "session-ttl", c.cfg.SessionTTL, "Idle time after which a session is dropped (0 keeps them forever).")
	f.IntVar(&c.cfg.MaxSessions, "max-sessions", c.cfg.MaxSessions, "Sessions kept in memory; the least recently used one is dropped beyond it (0 means unlimited).")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c.cfg.Verbose = c.cfg.Verbose || *Verbose
	level := slog.LevelInfo
	if c.cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := web.NewServer(c.cfg, logger).ListenAndServe(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
