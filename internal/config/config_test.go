package config

import (
	"flag"
	"os"
	"testing"
	"time"
)

// resetFlagSet создаёт новый FlagSet перед каждым вызовом NewConfig,
// чтобы избежать повторной регистрации одних и тех же флагов между тестами.
func resetFlagSet(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flag.CommandLine.SetOutput(os.Stderr)
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"RUN_ADDRESS", "DATABASE_URI", "SIGNING_SECRET", "TOKEN_TTL",
		"PASSWORD_HASH_COST", "S3_ENDPOINT", "S3_REGION", "S3_BUCKET",
		"S3_ACCESS_KEY", "S3_SECRET_KEY", "SIGNED_URL_TTL", "UPLOAD_MAX_MB",
		"ENABLE_HTTPS",
	} {
		t.Setenv(k, "")
	}
}

func TestNewConfig_MissingSecretIsFatal(t *testing.T) {
	clearEnv(t)
	resetFlagSet(t)
	if _, err := NewConfig(); err != ErrMissingSecret {
		t.Fatalf("want ErrMissingSecret, got %v", err)
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SIGNING_SECRET", "top")
	resetFlagSet(t)

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.RunAddress != "localhost:8080" {
		t.Fatalf("RunAddress default expected 'localhost:8080', got %q", cfg.RunAddress)
	}
	if cfg.TokenTTL != time.Hour {
		t.Fatalf("TokenTTL default expected 1h, got %v", cfg.TokenTTL)
	}
	if cfg.PasswordHashCost != 10 {
		t.Fatalf("PasswordHashCost default expected 10, got %d", cfg.PasswordHashCost)
	}
	if cfg.SignedURLTTL != 60*time.Second {
		t.Fatalf("SignedURLTTL default expected 60s, got %v", cfg.SignedURLTTL)
	}
	if cfg.UploadMaxMB != 25 {
		t.Fatalf("UploadMaxMB default expected 25, got %d", cfg.UploadMaxMB)
	}
	if cfg.S3Bucket != "vault" {
		t.Fatalf("S3Bucket default expected 'vault', got %q", cfg.S3Bucket)
	}
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SIGNING_SECRET", "top")
	t.Setenv("RUN_ADDRESS", "0.0.0.0:9090")
	t.Setenv("TOKEN_TTL", "15m")
	t.Setenv("PASSWORD_HASH_COST", "12")
	t.Setenv("S3_ENDPOINT", "http://127.0.0.1:9000")
	resetFlagSet(t)

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.RunAddress != "0.0.0.0:9090" {
		t.Fatalf("RUN_ADDRESS override failed: %q", cfg.RunAddress)
	}
	if cfg.TokenTTL != 15*time.Minute {
		t.Fatalf("TOKEN_TTL override failed: %v", cfg.TokenTTL)
	}
	if cfg.PasswordHashCost != 12 {
		t.Fatalf("PASSWORD_HASH_COST override failed: %d", cfg.PasswordHashCost)
	}
	if cfg.S3Endpoint != "http://127.0.0.1:9000" {
		t.Fatalf("S3_ENDPOINT override failed: %q", cfg.S3Endpoint)
	}
}
