package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("LEDGER_STORE", "")

	cfg := Load()
	if cfg.Port != "8080" || cfg.LedgerStore != StoreMemory {
		t.Fatalf("unexpected defaults: port=%q store=%q", cfg.Port, cfg.LedgerStore)
	}
	if cfg.CheckoutDelay != 1500*time.Millisecond || cfg.AuthDelay != time.Second {
		t.Fatalf("unexpected delays: %v %v", cfg.CheckoutDelay, cfg.AuthDelay)
	}
	if !cfg.Cache.Methods["GET"] || cfg.Cache.MaxBodyBytes != 1<<20 {
		t.Fatalf("unexpected cache config: %+v", cfg.Cache)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	body := "JWT_SECRET=from-file\nLEDGER_STORE=FILE\nCHECKOUT_DELAY=250ms\nLEDGER_DEMO_SEED=true\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("ENV_FILE", path)
	// t.Setenv restores the original values; godotenv only fills unset keys.
	for _, k := range []string{"JWT_SECRET", "LEDGER_STORE", "CHECKOUT_DELAY", "LEDGER_DEMO_SEED"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg := Load()
	if cfg.JWTSecret != "from-file" || cfg.LedgerStore != StoreFile || cfg.CheckoutDelay != 250*time.Millisecond || !cfg.DemoSeed {
		t.Fatalf("expected values from env file, got %+v", cfg)
	}
}

func TestLoadRateLimitConfig_Clamps(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_EVERY", "2s")
	t.Setenv("RATE_LIMIT_TTL", "1s")

	rl := LoadRateLimitConfig()
	if rl.Capacity != 1 || rl.RefillTokens != 1 || rl.RefillInterval != 2*time.Second {
		t.Fatalf("unexpected limiter config: %+v", rl)
	}
	if rl.TTL != 10*time.Second {
		t.Fatalf("expected ttl raised to 10s, got %v", rl.TTL)
	}
}

func TestLoadRedisConfig(t *testing.T) {
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("REDIS_TLS", "1")
	rc := LoadRedisConfig()
	if rc.Addr != "cache:6380" || rc.DB != 3 || !rc.TLS {
		t.Fatalf("unexpected redis config: %+v", rc)
	}

	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("REDIS_PORT", "6379")
	if rc := LoadRedisConfig(); rc.Addr != "redis:6379" {
		t.Fatalf("expected host:port to win, got %q", rc.Addr)
	}
}
