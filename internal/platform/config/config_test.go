package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Port int `env:"VITAE_TEST_PORT" envDefault:"123"`
}

func TestParseEnvUsesDefault(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
}

func TestParseEnvReadsEnvironment(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("VITAE_TEST_PORT", "8088")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 8088 {
		t.Fatalf("expected port 8088, got %d", cfg.Port)
	}
}

func TestParseEnvRejectsMalformedValue(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("VITAE_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
