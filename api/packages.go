// Package api
package api

import (
	"net/url"

	"github.com/labstack/echo"
	"go.uber.org/zap"
)

func (s *Server) Packages(c echo.Context) error {
	return OK.SetData(s.catalogue.All()).Build(c)
}

func (s *Server) PackagesByDuration(c echo.Context) error {
	lgr := s.logger.With(zap.String("method", "PackagesByDuration"))
	duration, err := url.PathUnescape(c.Param("duration"))
	if err != nil {
		return Invalid.Build(c)
	}
	pkgs, err := s.catalogue.Packages(duration)
	if err != nil {
		lgr.Debug("unknown duration", zap.String("duration", duration))
		return Invalid.SetMsg(err.Error()).Build(c)
	}
	return OK.SetData(pkgs).Build(c)
}

// Tiers lists what the calculator can select from.
func (s *Server) Tiers(c echo.Context) error {
	return OK.SetData(s.catalogue.Tiers()).Build(c)
}
