package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	Env  string
	LLM  LLMConfig
}

type LLMConfig struct {
	Provider          string
	Model             string
	GenerationTimeout time.Duration
	RatePerSecond     float64
	Burst             int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", ":8000", "server port")
	flag.Parse()

	if envPort := os.Getenv("PORT"); envPort != "" {
		if strings.HasPrefix(envPort, ":") {
			*port = envPort
		} else {
			*port = ":" + envPort
		}
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	return &Config{
		Port: *port,
		Env:  env,
		LLM:  loadLLMConfig(),
	}, nil
}

func loadLLMConfig() LLMConfig {
	return LLMConfig{
		Provider:          firstNonEmpty(strings.TrimSpace(os.Getenv("LLM_PROVIDER")), "openai"),
		Model:             strings.TrimSpace(os.Getenv("LLM_MODEL")),
		GenerationTimeout: resolveDuration("GENERATION_TIMEOUT_SECONDS", 120*time.Second),
		RatePerSecond:     resolveFloat("LLM_RATE_PER_SECOND", 1),
		Burst:             resolveInt("LLM_BURST", 2),
	}
}

func resolveDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		return fallback
	}
	return time.Duration(secs) * time.Second
}

func resolveFloat(key string, fallback float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func resolveInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
