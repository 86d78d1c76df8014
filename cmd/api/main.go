package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/volumevault/vault-estimator/api"
	"github.com/volumevault/vault-estimator/cache"
	"github.com/volumevault/vault-estimator/cfg"
	"github.com/volumevault/vault-estimator/external"
	"github.com/volumevault/vault-estimator/logging"
)

func main() {
	// .env is optional, the environment may already be set
	_ = godotenv.Load()

	serviceCfg, err := cfg.New()
	if err != nil {
		panic(err.Error())
	}

	if err := setupSentry(serviceCfg); err != nil {
		panic(err)
	}
	defer sentry.Flush(2 * time.Second)

	logger, err := logging.New(serviceCfg, logging.Options{})
	if err != nil {
		panic("cannot init logger")
	}
	logger.Info("Start API server...")

	defer func() {
		if err := recover(); err != nil {
			logger.Error("cannot recover", zap.Any("panic", err))
		}
		if err := logger.Sync(); err != nil {
			logger.Error("cannot sync log")
		}
	}()

	catalogue, err := cfg.LoadPackages(serviceCfg.PackagesFile)
	if err != nil {
		logger.Panic("cannot load packages", zap.String("file", serviceCfg.PackagesFile), zap.Error(err))
	}

	store, err := cache.New(cache.Config{
		Adapter:   cache.Adapter(serviceCfg.CacheEngine),
		URL:       serviceCfg.CacheURL,
		DB:        serviceCfg.CacheDB,
		Password:  serviceCfg.CachePassword,
		IsFlush:   serviceCfg.CacheIsFlush,
		Namespace: serviceCfg.CacheNamespace,
		Logger:    logger,
	})
	if err != nil {
		logger.Panic("cannot create cache", zap.Error(err))
	}

	quoter := external.NewCoinGecko(external.CoinGeckoConfig{
		BaseURL: serviceCfg.CoinGeckoURL,
		APIKey:  serviceCfg.CoinGeckoAPIKey,
		Timeout: serviceCfg.PriceFetchTimeout,
		Logger:  logger,
	})
	prices := cache.NewPriceCache(cache.PriceCacheConfig{
		Store:  store,
		Quoter: quoter,
		MaxAge:       serviceCfg.PriceMaxAge,
		FetchTimeout: serviceCfg.PriceFetchTimeout,
		Logger:       logger,
	})

	srv := api.NewServer().
		SetLogger(logger).
		SetPrices(prices).
		SetStore(store).
		SetCatalogue(catalogue).
		SetTimeout(serviceCfg.DefaultAPITimeout)

	e := api.NewEcho(srv)
	go func() {
		api.Start(e, serviceCfg, logger)
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("cannot shutdown echo server", zap.Error(err))
	}
	if err := store.Close(); err != nil {
		logger.Warn("cannot close cache", zap.Error(err))
	}
}

func setupSentry(sCfg cfg.ServiceConfig) error {
	opts := sentry.ClientOptions{
		Dsn:         sCfg.SentryDSN,
		Environment: sCfg.ServerMode,
		Release:     "vault-estimator@" + cfg.ServerVersion,
	}
	if err := sentry.Init(opts); err != nil {
		return err
	}
	return nil
}
