package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/volumevault/vault-estimator/cache"
	"github.com/volumevault/vault-estimator/calculator"
	"github.com/volumevault/vault-estimator/cfg"
	"github.com/volumevault/vault-estimator/external"
	"github.com/volumevault/vault-estimator/logging"
)

func main() {
	_ = godotenv.Load()

	serviceCfg, err := cfg.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid config:", err)
		os.Exit(1)
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         serviceCfg.SentryDSN,
		Environment: serviceCfg.ServerMode,
		Release:     "vault-estimator@" + cfg.ServerVersion,
	}); err != nil {
		fmt.Fprintln(os.Stderr, "cannot init sentry:", err)
		os.Exit(1)
	}
	defer sentry.Flush(2 * time.Second)

	// stdout belongs to the terminal UI
	logger, err := logging.New(serviceCfg, logging.Options{OutputPaths: []string{serviceCfg.LogFile}})
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot init logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(serviceCfg, logger); err != nil {
		logger.Error("calculator stopped", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(serviceCfg cfg.ServiceConfig, logger *zap.Logger) error {
	catalogue, err := cfg.LoadPackages(serviceCfg.PackagesFile)
	if err != nil {
		return fmt.Errorf("load packages: %w", err)
	}

	store, err := cache.New(cache.Config{
		Adapter:   cache.Adapter(serviceCfg.CacheEngine),
		URL:       serviceCfg.CacheURL,
		DB:        serviceCfg.CacheDB,
		Password:  serviceCfg.CachePassword,
		Namespace: serviceCfg.CacheNamespace,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("create cache: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("cannot close cache", zap.Error(err))
		}
	}()

	prices := cache.NewPriceCache(cache.PriceCacheConfig{
		Store: store,
		Quoter: external.NewCoinGecko(external.CoinGeckoConfig{
			BaseURL: serviceCfg.CoinGeckoURL,
			APIKey:  serviceCfg.CoinGeckoAPIKey,
			Timeout: serviceCfg.PriceFetchTimeout,
			Logger:  logger,
		}),
		MaxAge:       serviceCfg.PriceMaxAge,
		FetchTimeout: serviceCfg.PriceFetchTimeout,
		Logger:       logger,
	})

	logger.Info("Start calculator...")
	p := tea.NewProgram(calculator.New(prices, catalogue.Tiers()), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
