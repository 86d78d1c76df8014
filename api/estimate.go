// Package api
package api

import (
	"strconv"

	"github.com/labstack/echo"
	"go.uber.org/zap"

	"github.com/volumevault/vault-estimator/estimator"
)

const defaultPackage = "Spark"

func (s *Server) Estimate(c echo.Context) error {
	lgr := s.logger.With(zap.String("method", "Estimate"))

	name := c.QueryParam("package")
	if name == "" {
		name = defaultPackage
	}
	tier, err := s.catalogue.Tier(name)
	if err != nil {
		lgr.Debug("invalid package", zap.String("package", name))
		return Invalid.SetMsg(err.Error()).Build(c)
	}

	multiplier := estimator.MinMultiplier
	if raw := c.QueryParam("multiplier"); raw != "" {
		multiplier, err = strconv.Atoi(raw)
		if err != nil {
			return Invalid.SetMsg("multiplier must be an integer").Build(c)
		}
	}
	if err := estimator.ValidateMultiplier(multiplier); err != nil {
		return Invalid.SetMsg(err.Error()).Build(c)
	}

	ctx, cancel := s.requestContext(c.Request().Context())
	defer cancel()
	in, err := estimator.NewInputs(s.prices.Get(ctx), tier, multiplier)
	if err != nil {
		return Invalid.SetMsg(err.Error()).Build(c)
	}

	return OK.SetData(&EstimateResponse{
		Package:         tier.Name,
		Amounts:         tier.Prices,
		TradesPerMinute: tier.TradesPerMinute,
		DurationMinutes: in.DurationMinutes,
		Multiplier:      in.Multiplier,
		Prices:          in.Prices,
		TotalPackageUSD: estimator.FormatUSD(estimator.TotalPackageUSD(in.Prices, tier)),
		EstimatedVolume: in.Estimate(),
	}).Build(c)
}
