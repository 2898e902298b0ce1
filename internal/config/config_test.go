package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "APP_ENV", "LLM_PROVIDER", "LLM_MODEL",
		"GENERATION_TIMEOUT_SECONDS", "LLM_RATE_PER_SECOND", "LLM_BURST"} {
		os.Unsetenv(key)
	}
	t.Setenv("PORT", "9000")
	t.Setenv("GENERATION_TIMEOUT_SECONDS", "bogus")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != ":9000" {
		t.Fatalf("port = %q", cfg.Port)
	}
	if cfg.Env != "local" {
		t.Fatalf("env = %q", cfg.Env)
	}
	if cfg.LLM.Provider != "openai" {
		t.Fatalf("provider = %q", cfg.LLM.Provider)
	}
	if cfg.LLM.GenerationTimeout != 120*time.Second {
		t.Fatalf("timeout = %v", cfg.LLM.GenerationTimeout)
	}
	if cfg.LLM.RatePerSecond != 1 || cfg.LLM.Burst != 2 {
		t.Fatalf("rate = %v burst = %d", cfg.LLM.RatePerSecond, cfg.LLM.Burst)
	}
}

func TestResolveHelpers(t *testing.T) {
	t.Setenv("X_SECS", "30")
	if got := resolveDuration("X_SECS", time.Second); got != 30*time.Second {
		t.Fatalf("got %v", got)
	}
	t.Setenv("X_SECS", "-1")
	if got := resolveDuration("X_SECS", time.Second); got != time.Second {
		t.Fatalf("got %v", got)
	}
	t.Setenv("X_RATE", "0.5")
	if got := resolveFloat("X_RATE", 1); got != 0.5 {
		t.Fatalf("got %v", got)
	}
	t.Setenv("X_BURST", "7")
	if got := resolveInt("X_BURST", 1); got != 7 {
		t.Fatalf("got %d", got)
	}
	if got := firstNonEmpty("", "  ", "a", "b"); got != "a" {
		t.Fatalf("got %q", got)
	}
}
