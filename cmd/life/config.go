package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"

	"lifegrid/internal/app"
)

// loadConfig parses the command line. Invalid arguments are reported before
// any simulation object exists, and the process exits.
func loadConfig(args []string) *app.Config {
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg := app.NewConfig()
	err := cfg.Parse(fs, args)
	switch {
	case err == nil:
		return cfg
	case errors.Is(err, flag.ErrHelp):
		fs.SetOutput(os.Stdout)
		fmt.Println(app.Usage)
		fs.PrintDefaults()
		os.Exit(0)
	default:
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, app.Usage)
		os.Exit(2)
	}
	return nil
}

// setupLogging points the standard logger at -log when given. quiet
// discards output otherwise, for front-ends that own the terminal.
func setupLogging(cfg *app.Config, quiet bool) (func(), error) {
	log.SetPrefix("lifegrid: ")
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, errors.Wrapf(err, "[setupLogging] failed to open log file: %s", cfg.LogFile)
		}
		log.SetOutput(f)
		return func() { f.Close() }, nil
	}
	if quiet {
		log.SetOutput(io.Discard)
	}
	return func() {}, nil
}
