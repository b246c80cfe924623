package app

import (
	"encoding/json"
	"flag"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"lifegrid/internal/core"
)

// Exclusive bounds on the board dimension accepted at startup.
const (
	DimAbove = 15
	DimBelow = 60
)

// MaxDelayMS is the longest refresh interval that still fits in a
// time.Duration.
const MaxDelayMS = math.MaxInt64 / int64(time.Millisecond)

// ErrUsage marks every error caused by bad startup arguments.
var ErrUsage = errors.New("invalid startup configuration")

// Usage is the one-line synopsis printed next to usage errors.
const Usage = "usage: life [flags] <dim> [refresh-ms]"

// Config represents the command-line parameters for the application.
type Config struct {
	Dim      int    `json:"dim"`
	DelayMS  int    `json:"delay_ms"`
	CellSize int    `json:"cell_size"`
	Pattern  string `json:"pattern"`
	Seed     int64  `json:"seed"`

	ConfigFile string `json:"-"`
	Verbose    bool   `json:"-"`
	LogFile    string `json:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{DelayMS: 800, CellSize: 10, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "pixel size of one cell")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed pattern (blinker, glider, block, random)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random pattern")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "JSON file with startup settings")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "verbose logging")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "write logs to this file")
}

// Delay returns the tick interval.
func (c *Config) Delay() time.Duration {
	return time.Duration(c.DelayMS) * time.Millisecond
}

// Parse binds c to fs, parses args and validates the result. Settings from
// -config are applied first, then flags, then the positional
// <dim> [refresh-ms] arguments.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	c.Bind(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if c.ConfigFile != "" {
		if err := c.LoadFile(c.ConfigFile); err != nil {
			return err
		}
		// Re-apply flags so they win over the file.
		if err := parseFlags(fs, args); err != nil {
			return err
		}
	}
	if err := c.applyPositional(fs.Args()); err != nil {
		return err
	}
	return c.Validate()
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}
	return errors.Wrap(ErrUsage, err.Error())
}

// LoadFile overlays settings from a JSON file onto c.
func (c *Config) LoadFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %+v", filename)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(ErrUsage, "[LoadFile] failed to unmarshal data from file %s: %v", filename, err)
	}
	return nil
}

func (c *Config) applyPositional(args []string) error {
	if len(args) > 2 {
		return errors.Wrapf(ErrUsage, "expected at most 2 arguments, got %d", len(args))
	}
	if len(args) == 0 {
		if c.Dim == 0 {
			return errors.Wrap(ErrUsage, "missing <dim> argument")
		}
		return nil
	}
	dim, err := parseDigits(args[0])
	if err != nil {
		return errors.Wrapf(ErrUsage, "dim %q is not a non-negative integer", args[0])
	}
	c.Dim = dim
	if len(args) == 2 {
		delay, err := parseDigits(args[1])
		if err != nil {
			return errors.Wrapf(ErrUsage, "refresh %q is not a non-negative integer", args[1])
		}
		c.DelayMS = delay
	}
	return nil
}

// parseDigits accepts only plain decimal digits, no sign.
func parseDigits(s string) (int, error) {
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}

// Validate reports the first setting outside its accepted range.
func (c *Config) Validate() error {
	if c.Dim <= DimAbove || c.Dim >= DimBelow {
		return errors.Wrapf(ErrUsage, "dim should be between %d and %d, got %d", DimAbove, DimBelow, c.Dim)
	}
	if c.DelayMS < 1 || int64(c.DelayMS) > MaxDelayMS {
		return errors.Wrapf(ErrUsage, "refresh should be between 1 and %d ms, got %d", MaxDelayMS, c.DelayMS)
	}
	if c.CellSize < 1 {
		return errors.Wrapf(ErrUsage, "cell size should be positive, got %d", c.CellSize)
	}
	if c.Pattern != "" {
		if _, ok := core.Patterns()[c.Pattern]; !ok {
			return errors.Wrapf(ErrUsage, "unknown pattern %q", c.Pattern)
		}
	}
	return nil
}

// NewBoard builds the starting board described by c.
func (c *Config) NewBoard() (*core.Board, error) {
	board, err := core.NewBoard(c.Dim)
	if err != nil {
		return nil, errors.Wrap(err, "[NewBoard] failed to build board")
	}
	if !core.Seed(board, c.Pattern, c.Seed) {
		return nil, errors.Wrapf(ErrUsage, "unknown pattern %q", c.Pattern)
	}
	return board, nil
}
