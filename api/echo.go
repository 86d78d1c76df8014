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

package api

import (
	"net/http"

	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"go.uber.org/zap"

	"github.com/volumevault/vault-estimator/cfg"
)

type restDefinition struct {
	method      string
	path        string
	fn          func(c echo.Context) error
	middlewares []echo.MiddlewareFunc
}

func bind(gr *echo.Group, srv RestServer) {
	apis := []restDefinition{
		{
			method:      echo.GET,
			path:        "/ping",
			fn:          srv.Ping,
			middlewares: nil,
		},
		{
			method: echo.GET,
			path:   "/prices",
			fn:     srv.Prices,
		},
		{
			method: echo.GET,
			path:   "/packages",
			fn:     srv.Packages,
		},
		{
			method: echo.GET,
			path:   "/packages/:duration",
			fn:     srv.PackagesByDuration,
		},
		{
			method: echo.GET,
			path:   "/tiers",
			fn:     srv.Tiers,
		},
		{
			method: echo.GET,
			path:   "/estimate",
			fn:     srv.Estimate,
		},
	}

	for _, api := range apis {
		gr.Add(api.method, api.path, api.fn, api.middlewares...)
	}
}

// NewEcho builds the echo instance with every route registered under /api/v1.
func NewEcho(srv RestServer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = errorHandler(e)

	e.Use(middleware.CORS())
	e.Use(middleware.Logger())
	e.Use(middleware.Gzip())
	e.Use(middleware.Recover())

	v1Gr := e.Group("/api/v1")
	bind(v1Gr, srv)
	return e
}

// errorHandler answers unknown routes with the NotFound envelope and leaves
// everything else to echo.
func errorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if he, ok := err.(*echo.HTTPError); ok && he.Code == http.StatusNotFound {
			if err := NotFound.Build(c); err != nil {
				e.Logger.Error(err)
			}
			return
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}

func Start(e *echo.Echo, cfg cfg.ServiceConfig, logger *zap.Logger) {
	logger.Info("API server", zap.String("port", cfg.Port))
	if err := e.Start(cfg.Port); err != nil {
		logger.Info("echo server stopped", zap.Error(err))
	}
}
