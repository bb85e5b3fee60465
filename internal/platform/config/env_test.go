package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	BufBytes int `env:"CAT_RNG_TEST_BUF_BYTES" envDefault:"32"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.BufBytes != 32 {
		t.Fatalf("expected default buffer size 32, got %d", cfg.BufBytes)
	}
}

func TestParseEnvOverride(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("CAT_RNG_TEST_BUF_BYTES", "64")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.BufBytes != 64 {
		t.Fatalf("expected buffer size 64, got %d", cfg.BufBytes)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("CAT_RNG_TEST_BUF_BYTES", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
