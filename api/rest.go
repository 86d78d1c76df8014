// Package api
package api

import (
	"github.com/labstack/echo"
)

// RestServer define all API expose
type RestServer interface {
	// General
	Ping(c echo.Context) error

	// Prices
	Prices(c echo.Context) error

	// Packages
	Packages(c echo.Context) error
	PackagesByDuration(c echo.Context) error
	Tiers(c echo.Context) error

	// Calculator
	Estimate(c echo.Context) error
}
