package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

const defaultCheckinCron = "0 9 * * 1" // Mondays 09:00 server time

// config is read from the environment (and .env, loaded by main).
type config struct {
	Port        string
	StoreDriver string // "sqlite" or "postgres"
	DBURL       string
	SQLitePath  string
	CORSOrigins []string
	// CheckinCron is empty when the scheduler is disabled.
	CheckinCron string
}

func loadConfig() (config, error) {
	cfg := config{
		Port:        envOr("PORT", "3000"),
		StoreDriver: envOr("STORE_DRIVER", "sqlite"),
		DBURL:       os.Getenv("DB_URL"),
		SQLitePath:  envOr("SQLITE_PATH", "tdee.db"),
		CheckinCron: defaultCheckinCron,
	}
	// Set but empty disables the scheduler.
	if v, ok := os.LookupEnv("CHECKIN_CRON"); ok {
		cfg.CheckinCron = strings.TrimSpace(v)
	}
	for _, o := range strings.Split(envOr("CORS_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	switch cfg.StoreDriver {
	case "sqlite":
	case "postgres":
		if cfg.DBURL == "" {
			return cfg, errors.New("DB_URL is required when STORE_DRIVER=postgres")
		}
	default:
		return cfg, fmt.Errorf("STORE_DRIVER must be sqlite or postgres, got %q", cfg.StoreDriver)
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// openStore connects the Store selected by cfg.StoreDriver.
func openStore(ctx context.Context, cfg config) (Store, error) {
	if cfg.StoreDriver == "postgres" {
		s, err := newPGStore(ctx, cfg.DBURL)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	s, err := newSQLiteStore(cfg.SQLitePath)
	if err != nil {
		return nil, err
	}
	return s, nil
}
