package main

import (
	"bytes"
	"flag"
	"os"
	"strings"
	"testing"
	"time"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	if !strings.Contains(output, "v1.0.0") ||
		!strings.Contains(output, "abcd1234") ||
		!strings.Contains(output, "2025-09-26") {
		t.Errorf("unexpected build info output: %s", output)
	}
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.appHost != "localhost" {
		t.Errorf("expected default app host localhost, got %s", cfg.appHost)
	}
	if cfg.appPort != "8080" {
		t.Errorf("expected default app port 8080, got %s", cfg.appPort)
	}
	if cfg.logLevel != "info" {
		t.Errorf("expected default log level info, got %s", cfg.logLevel)
	}
	if cfg.pgPort != 5432 {
		t.Errorf("expected default postgres port 5432, got %d", cfg.pgPort)
	}
	if cfg.pgDB != "treasury" {
		t.Errorf("expected default database treasury, got %s", cfg.pgDB)
	}
	if cfg.redisPort != 6379 {
		t.Errorf("expected default redis port 6379, got %d", cfg.redisPort)
	}
	if cfg.cacheTTL != 30*time.Second {
		t.Errorf("expected default cache ttl 30s, got %s", cfg.cacheTTL)
	}
	if cfg.kafkaBrokers != "" {
		t.Errorf("expected kafka disabled by default, got %s", cfg.kafkaBrokers)
	}
	if cfg.kafkaTopic != "treasury.transactions" {
		t.Errorf("expected default kafka topic treasury.transactions, got %s", cfg.kafkaTopic)
	}
	if cfg.seed {
		t.Error("expected seeding disabled by default")
	}
	if cfg.strictCurrency {
		t.Error("expected strict currency mode disabled by default")
	}
}

func TestParseConfig_EnvOverrides(t *testing.T) {
	resetEnv()
	defer resetEnv()

	os.Setenv("APP_HOST", "0.0.0.0")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")
	os.Setenv("APP_SEED", "true")
	os.Setenv("APP_STRICT_CURRENCY", "true")
	os.Setenv("POSTGRES_PORT", "5433")
	os.Setenv("REDIS_CACHE_TTL_SECOND", "120")
	os.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.appHost != "0.0.0.0" {
		t.Errorf("expected app host 0.0.0.0, got %s", cfg.appHost)
	}
	if cfg.appPort != "9090" {
		t.Errorf("expected app port 9090, got %s", cfg.appPort)
	}
	if cfg.logLevel != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.logLevel)
	}
	if !cfg.seed {
		t.Error("expected seeding enabled")
	}
	if !cfg.strictCurrency {
		t.Error("expected strict currency mode enabled")
	}
	if cfg.pgPort != 5433 {
		t.Errorf("expected postgres port 5433, got %d", cfg.pgPort)
	}
	if cfg.cacheTTL != 120*time.Second {
		t.Errorf("expected cache ttl 120s, got %s", cfg.cacheTTL)
	}
	if cfg.kafkaBrokers != "kafka-1:9092,kafka-2:9092" {
		t.Errorf("unexpected kafka brokers: %s", cfg.kafkaBrokers)
	}
}

func TestParseConfig_InvalidPort(t *testing.T) {
	resetEnv()
	defer resetEnv()

	os.Setenv("POSTGRES_PORT", "not-a-number")

	if _, err := parseConfig("nonexistent.env"); err == nil {
		t.Error("expected error for invalid postgres port")
	}
}
