/*
 *  Copyright 2018 KardiaChain
 *  This file is part of the go-kardia library.
 *
 *  The go-kardia library is free software: you can redistribute it and/or modify
 *  it under the terms of the GNU Lesser General Public License as published by
 *  the Free Software Foundation, either version 3 of the License, or
 *  (at your option) any later version.
 *
 *  The go-kardia library is distributed in the hope that it will be useful,
 *  but WITHOUT ANY WARRANTY; without even the implied warranty of
 *  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
 *  GNU Lesser General Public License for more details.
 *
 *  You should have received a copy of the GNU Lesser General Public License
 *  along with the go-kardia library. If not, see <http://www.gnu.org/licenses/>.
 */

// Package cfg
package cfg

import (
	"os"
	"strconv"
	"time"
)

const (
	ModeDev        = "dev"
	ModeProduction = "prod"

	ServerVersion = "1.0.0"
)

type ServiceConfig struct {
	ServerMode string
	Port       string

	LogLevel  string
	LogFile   string
	SentryDSN string

	DefaultAPITimeout time.Duration

	CoinGeckoURL      string
	CoinGeckoAPIKey   string
	PriceFetchTimeout time.Duration
	PriceMaxAge       time.Duration

	CacheEngine    string
	CacheURL       string
	CacheDB        int
	CachePassword  string
	CacheIsFlush   bool
	CacheNamespace string

	PackagesFile string
}

func New() (ServiceConfig, error) {
	apiDefaultTimeoutStr := os.Getenv("DEFAULT_API_TIMEOUT")
	apiDefaultTimeout, err := strconv.Atoi(apiDefaultTimeoutStr)
	if err != nil {
		apiDefaultTimeout = 15
	}

	priceFetchTimeoutStr := os.Getenv("PRICE_FETCH_TIMEOUT")
	priceFetchTimeout, err := time.ParseDuration(priceFetchTimeoutStr)
	if err != nil {
		priceFetchTimeout = 10 * time.Second
	}

	priceMaxAgeStr := os.Getenv("PRICE_MAX_AGE")
	priceMaxAge, err := time.ParseDuration(priceMaxAgeStr)
	if err != nil {
		priceMaxAge = 6 * time.Hour
	}

	cacheEngine := os.Getenv("CACHE_ENGINE")
	if cacheEngine == "" {
		cacheEngine = "memory"
	}

	cacheDB := 0
	if cacheDBStr := os.Getenv("CACHE_DB"); cacheDBStr != "" {
		cacheDB, err = strconv.Atoi(cacheDBStr)
		if err != nil {
			return ServiceConfig{}, err
		}
	}

	cacheIsFlushStr := os.Getenv("CACHE_IS_FLUSH")
	cacheIsFlush, err := strconv.ParseBool(cacheIsFlushStr)
	if err != nil {
		cacheIsFlush = false
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = ":3000"
	}

	logFile := os.Getenv("CALCULATOR_LOG")
	if logFile == "" {
		logFile = "calculator.log"
	}

	serverMode := os.Getenv("SERVER_MODE")
	if serverMode == "" {
		serverMode = ModeDev
	}

	cfg := ServiceConfig{
		ServerMode:        serverMode,
		Port:              port,
		LogLevel:          os.Getenv("LOG_LEVEL"),
		LogFile:           logFile,
		SentryDSN:         os.Getenv("SENTRY_DSN"),
		DefaultAPITimeout: time.Duration(apiDefaultTimeout) * time.Second,

		CoinGeckoURL:      os.Getenv("COIN_GECKO_URL"),
		CoinGeckoAPIKey:   os.Getenv("COIN_GECKO_KEY"),
		PriceFetchTimeout: priceFetchTimeout,
		PriceMaxAge:       priceMaxAge,

		CacheEngine:    cacheEngine,
		CacheURL:       os.Getenv("CACHE_URI"),
		CacheDB:        cacheDB,
		CachePassword:  os.Getenv("CACHE_PASSWORD"),
		CacheIsFlush:   cacheIsFlush,
		CacheNamespace: os.Getenv("CACHE_NAMESPACE"),

		PackagesFile: os.Getenv("PACKAGES_FILE"),
	}

	return cfg, nil
}
