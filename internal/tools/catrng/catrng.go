// Package catrng implements the cat-rng driver: it maps a textual engine
// name to a constructor and streams that engine's bytes to a writer, so
// the output can be piped into randomness-quality harnesses such as
// PractRand.
package catrng

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/dhardy/small-rngs-1/internal/core/rng"
	"github.com/dhardy/small-rngs-1/internal/core/rng/msws"
	"github.com/dhardy/small-rngs-1/internal/core/rng/pcg"
	"github.com/dhardy/small-rngs-1/internal/core/rng/xsm"
	"github.com/dhardy/small-rngs-1/internal/platform/config"
	"github.com/dhardy/small-rngs-1/internal/platform/random"
)

// ErrUnknownEngine indicates a name with no registered constructor.
var ErrUnknownEngine = errors.New("unknown engine")

// Config holds the driver configuration. Environment variables provide
// defaults; flags override them.
type Config struct {
	// Name selects the engine from the registry.
	Name string `env:"CAT_RNG_NAME"`
	// Seed is an optional hex-encoded seed. When empty the engine is
	// seeded from system entropy.
	Seed string `env:"CAT_RNG_SEED"`
	// BufBytes is the write buffer size.
	BufBytes int `env:"CAT_RNG_BUF_BYTES" envDefault:"32"`
	// MaxBytes bounds the total output; zero streams endlessly.
	MaxBytes int64 `env:"CAT_RNG_MAX_BYTES" envDefault:"0"`
}

type engine struct {
	seedSize int
	ctor     func(seed []byte) (rng.Source, error)
}

var engines = map[string]engine{
	"msws":            {msws.SeedSize, func(b []byte) (rng.Source, error) { return msws.New(b) }},
	"mwp":             {pcg.SeedSize, func(b []byte) (rng.Source, error) { return pcg.NewMWP(b) }},
	"pcg_xsh_64_lcg":  {pcg.SeedSize, func(b []byte) (rng.Source, error) { return pcg.NewXSH64(b) }},
	"pcg_xsl_64_lcg":  {pcg.SeedSize, func(b []byte) (rng.Source, error) { return pcg.NewXSL64(b) }},
	"pcg_xsl_128_mcg": {pcg.SeedSize, func(b []byte) (rng.Source, error) { return pcg.NewXSL128(b) }},
	"xsm32":           {xsm.SeedSize32, func(b []byte) (rng.Source, error) { return xsm.New32(b) }},
	"xsm64":           {xsm.SeedSize64, func(b []byte) (rng.Source, error) { return xsm.New64(b) }},
}

// Names lists the registered engine names in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(engines))
}

// NewFromSeed constructs the named engine from an explicit seed.
func NewFromSeed(name string, seed []byte) (rng.Source, error) {
	e, ok := engines[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownEngine, name, strings.Join(Names(), ", "))
	}
	return e.ctor(seed)
}

// New constructs the named engine seeded from system entropy. A seed that
// fails the engine's validity check is redrawn, mirroring the
// rejection-sampling loop used when seeding from another generator.
func New(name string) (rng.Source, error) {
	e, ok := engines[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownEngine, name, strings.Join(Names(), ", "))
	}
	for {
		seed, err := random.NewSeedBytes(e.seedSize)
		if err != nil {
			return nil, err
		}
		g, err := e.ctor(seed)
		if errors.Is(err, msws.ErrDegenerateSeed) {
			continue
		}
		return g, err
	}
}

// ParseConfig loads defaults from the environment, then parses flags into
// a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Name, "rng", cfg.Name, "engine name, one of: "+strings.Join(Names(), ", "))
	fs.StringVar(&cfg.Seed, "seed", cfg.Seed, "hex-encoded seed (default: system entropy)")
	fs.IntVar(&cfg.BufBytes, "buf", cfg.BufBytes, "write buffer size in bytes")
	fs.Int64Var(&cfg.MaxBytes, "max", cfg.MaxBytes, "total bytes to emit (0 = endless)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run streams the configured engine's bytes to out until MaxBytes have
// been written, or forever when MaxBytes is zero. A non-nil src overrides
// the registry lookup; tests use this to inject a known engine.
func Run(cfg Config, out io.Writer, src rng.Source) error {
	if out == nil {
		return errors.New("output is required")
	}
	if cfg.BufBytes <= 0 {
		return errors.New("buffer size must be greater than zero")
	}
	if src == nil {
		var err error
		src, err = newSource(cfg)
		if err != nil {
			return err
		}
	}

	buf := make([]byte, cfg.BufBytes)
	var written int64
	for cfg.MaxBytes == 0 || written < cfg.MaxBytes {
		chunk := buf
		if cfg.MaxBytes > 0 && cfg.MaxBytes-written < int64(len(chunk)) {
			chunk = chunk[:cfg.MaxBytes-written]
		}
		src.Fill(chunk)
		if _, err := out.Write(chunk); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		written += int64(len(chunk))
	}
	return nil
}

func newSource(cfg Config) (rng.Source, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("engine name is required (one of: %s)", strings.Join(Names(), ", "))
	}
	if cfg.Seed != "" {
		seed, err := hex.DecodeString(cfg.Seed)
		if err != nil {
			return nil, fmt.Errorf("decode seed: %w", err)
		}
		return NewFromSeed(cfg.Name, seed)
	}
	return New(cfg.Name)
}
