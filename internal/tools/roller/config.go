package roller

import (
	"errors"
	"flag"
	"fmt"

	"github.com/louisbranch/diceroll/internal/core/dice"
	"github.com/louisbranch/diceroll/internal/platform/cmd"
)

// EchoMode controls whether input lines are written back after the prompt.
type EchoMode string

const (
	// EchoAuto echoes only when input is not a terminal, so piped
	// transcripts show what was rolled.
	EchoAuto   EchoMode = "auto"
	EchoAlways EchoMode = "always"
	EchoNever  EchoMode = "never"
)

// Validate reports whether m is a known mode.
func (m EchoMode) Validate() error {
	switch m {
	case EchoAuto, EchoAlways, EchoNever:
		return nil
	default:
		return fmt.Errorf("echo must be one of auto, always, never: got %q", string(m))
	}
}

// String implements flag.Value.
func (m *EchoMode) String() string {
	if m == nil {
		return ""
	}
	return string(*m)
}

// Set implements flag.Value.
func (m *EchoMode) Set(value string) error {
	mode := EchoMode(value)
	if err := mode.Validate(); err != nil {
		return err
	}
	*m = mode
	return nil
}

// Resolve turns EchoAuto into EchoAlways or EchoNever for the given input.
func (m EchoMode) Resolve(inputIsTerminal bool) EchoMode {
	if m != EchoAuto {
		return m
	}
	if inputIsTerminal {
		return EchoNever
	}
	return EchoAlways
}

// Config holds configuration for the interactive roller.
type Config struct {
	MaxCount    int      `env:"DICEROLL_MAX_COUNT" envDefault:"1000"`
	MaxSides    int      `env:"DICEROLL_MAX_SIDES" envDefault:"1000000"`
	MaxModifier int      `env:"DICEROLL_MAX_MODIFIER" envDefault:"1000000"`
	Echo        EchoMode `env:"DICEROLL_ECHO" envDefault:"auto"`
	Verbose     bool     `env:"DICEROLL_VERBOSE" envDefault:"false"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	limits := dice.DefaultLimits()
	return Config{
		MaxCount:    limits.MaxCount,
		MaxSides:    limits.MaxSides,
		MaxModifier: limits.MaxModifier,
		Echo:        EchoAuto,
	}
}

// ParseConfig loads env defaults and then parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	if fs == nil {
		return Config{}, errors.New("flag parser is required")
	}

	var cfg Config
	fs.Var(&cfg.Echo, "echo", "echo input lines after the prompt: auto, always, never")
	fs.BoolVar(&cfg.Verbose, "v", false, "log rejected input to stderr")
	if err := cmd.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.MaxCount < 1 || c.MaxSides < 1 || c.MaxModifier < 1 {
		return errors.New("dice limits must be at least 1")
	}
	if c.MaxCount > dice.MaxCountCeiling {
		return fmt.Errorf("max count must be at most %d", dice.MaxCountCeiling)
	}
	return c.Echo.Validate()
}

// Limits returns the dice limits for the configuration.
func (c Config) Limits() dice.Limits {
	return dice.Limits{
		MaxCount:    c.MaxCount,
		MaxSides:    c.MaxSides,
		MaxModifier: c.MaxModifier,
	}
}
