// Package api
package api

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/volumevault/vault-estimator/types"
)

// PriceProvider is the read side of the price cache.
type PriceProvider interface {
	Get(ctx context.Context) types.TokenPriceSet
	GetEntry(ctx context.Context) (types.CacheEntry, bool)
}

// HealthChecker is a backing service /ping reports on.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Server struct {
	prices    PriceProvider
	store     HealthChecker
	catalogue *types.Catalogue

	timeout time.Duration

	logger *zap.Logger
}

func NewServer() *Server {
	return &Server{
		catalogue: types.DefaultCatalogue(),
		timeout:   15 * time.Second,
		logger:    zap.NewNop(),
	}
}

func (s *Server) SetLogger(logger *zap.Logger) *Server {
	s.logger = logger
	return s
}

func (s *Server) SetPrices(prices PriceProvider) *Server {
	s.prices = prices
	return s
}

func (s *Server) SetStore(store HealthChecker) *Server {
	s.store = store
	return s
}

func (s *Server) SetCatalogue(catalogue *types.Catalogue) *Server {
	s.catalogue = catalogue
	return s
}

func (s *Server) SetTimeout(timeout time.Duration) *Server {
	if timeout > 0 {
		s.timeout = timeout
	}
	return s
}

func (s *Server) requestContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, s.timeout)
}
