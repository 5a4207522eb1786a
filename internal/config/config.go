package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress        string
	DatabaseURI       string
	CatalogAddress    string
	AuthSecret        string
	CatalogTimeout    time.Duration
	ReconcileInterval time.Duration
	NotifyQueueSize   int
	ShutdownTimeout   time.Duration
}

const (
	defaultRunAddress               = ":8080"
	defaultAuthSecret               = "change-me-in-production"
	defaultCatalogTimeout           = 10 * time.Second
	defaultReconcileIntervalMinutes = 5
	defaultNotifyQueueSize          = 64
	defaultShutdownTimeout          = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	reconcileMinutes := getInt(lookup, "RECONCILE_INTERVAL_MINUTES", defaultReconcileIntervalMinutes)

	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		CatalogAddress:  getString(lookup, "CATALOG_ADDRESS", ""),
		AuthSecret:      getString(lookup, "AUTH_SECRET", defaultAuthSecret),
		CatalogTimeout:  getDuration(lookup, "CATALOG_TIMEOUT", defaultCatalogTimeout),
		NotifyQueueSize: getInt(lookup, "NOTIFY_QUEUE_SIZE", defaultNotifyQueueSize),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("orders", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		catalogTimeoutStr  = cfg.CatalogTimeout.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.CatalogAddress, "c", cfg.CatalogAddress, "Catalog service base URL")
	fs.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "Secret shared with the identity service")
	fs.StringVar(&catalogTimeoutStr, "catalog-timeout", catalogTimeoutStr, "Timeout applied to every catalog call")
	fs.IntVar(&reconcileMinutes, "reconcile-interval", reconcileMinutes, "Minutes between delivery reconciliation runs")
	fs.IntVar(&cfg.NotifyQueueSize, "notify-queue", cfg.NotifyQueueSize, "Inventory broadcast queue size")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.CatalogTimeout, err = time.ParseDuration(catalogTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid catalog timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("AUTH_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read auth secret file: %w", err)
		}
		cfg.AuthSecret = string(content)
	}

	if reconcileMinutes <= 0 {
		reconcileMinutes = defaultReconcileIntervalMinutes
	}
	cfg.ReconcileInterval = time.Duration(reconcileMinutes) * time.Minute

	if cfg.CatalogTimeout <= 0 {
		cfg.CatalogTimeout = defaultCatalogTimeout
	}

	if cfg.NotifyQueueSize <= 0 {
		cfg.NotifyQueueSize = defaultNotifyQueueSize
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.CatalogAddress == "" {
		return nil, fmt.Errorf("catalog address must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
