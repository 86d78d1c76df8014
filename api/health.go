// Package api
package api

import (
	"github.com/labstack/echo"
	"go.uber.org/zap"

	"github.com/volumevault/vault-estimator/cfg"
)

const (
	cacheUp   = "ok"
	cacheDown = "down"
)

func (s *Server) Ping(c echo.Context) error {
	type pingStat struct {
		Version string `json:"version"`
		Cache   string `json:"cache,omitempty"`
	}
	stats := &pingStat{Version: cfg.ServerVersion}
	if s.store == nil {
		return OK.SetData(stats).Build(c)
	}

	ctx, cancel := s.requestContext(c.Request().Context())
	defer cancel()
	if err := s.store.Ping(ctx); err != nil {
		s.logger.Warn("cache is unreachable", zap.String("method", "Ping"), zap.Error(err))
		stats.Cache = cacheDown
		return InternalServer.SetData(stats).Build(c)
	}
	stats.Cache = cacheUp
	return OK.SetData(stats).Build(c)
}
