// Command cat-rng endlessly concatenates the output of a named generator
// engine to stdout, for piping into randomness-quality harnesses:
//
//	cat-rng -rng xsm64 | RNG_test stdin -multithreaded
package main

import (
	"flag"
	"os"

	"github.com/dhardy/small-rngs-1/internal/platform/config"
	"github.com/dhardy/small-rngs-1/internal/tools/catrng"
)

func main() {
	cfg, err := catrng.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := catrng.Run(cfg, os.Stdout, nil); err != nil {
		config.Exitf("cat rng: %v", err)
	}
}
