// Package api
package api

import (
	"github.com/labstack/echo"
)

// Prices never fails: when the quote service is down the last known (or
// zero) prices are served.
func (s *Server) Prices(c echo.Context) error {
	ctx, cancel := s.requestContext(c.Request().Context())
	defer cancel()

	entry, ok := s.prices.GetEntry(ctx)
	resp := &PricesResponse{Prices: entry.Prices}
	if ok {
		fetchedAt := entry.FetchedAt.UTC()
		resp.UpdatedAt = &fetchedAt
	}
	return OK.SetData(resp).Build(c)
}
