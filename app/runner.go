package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/viant/mifos-mcp/config"
)

// Run parses args, loads config and serves until interrupted
func Run(args []string) error {
	options := &Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return nil
		}
		return err
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	cfg, err := config.Load(ctx, options.Sources(), options.Apply)
	if err != nil {
		return err
	}
	service, err := New(ctx, cfg, NewLogger(cfg.LogLevel, os.Stderr))
	if err != nil {
		return err
	}
	return service.Serve(ctx)
}
