// Package estimator computes the projected trading volume of a boost package.
package estimator

import (
	"fmt"
	"strconv"

	"github.com/volumevault/vault-estimator/types"
)

const (
	MinMultiplier = 1
	MaxMultiplier = 20

	// DurationMinutes is how long one boost runs.
	DurationMinutes = types.CalculatorDurationMinutes
)

// Inputs is everything one estimate depends on.
type Inputs struct {
	Prices          types.TokenPriceSet
	Tier            types.PackageTier
	DurationMinutes float64
	Multiplier      int
}

func NewInputs(prices types.TokenPriceSet, tier types.PackageTier, multiplier int) (Inputs, error) {
	if err := ValidateMultiplier(multiplier); err != nil {
		return Inputs{}, err
	}
	return Inputs{
		Prices:          prices,
		Tier:            tier,
		DurationMinutes: DurationMinutes,
		Multiplier:      multiplier,
	}, nil
}

func (in Inputs) Estimate() string {
	return Estimate(in.Prices, in.Tier, in.DurationMinutes, in.Multiplier)
}

func ValidateMultiplier(m int) error {
	if m < MinMultiplier || m > MaxMultiplier {
		return fmt.Errorf("%w: %d not in [%d,%d]", types.ErrInvalidMultiplier, m, MinMultiplier, MaxMultiplier)
	}
	return nil
}

// ClampMultiplier forces m into [MinMultiplier, MaxMultiplier].
func ClampMultiplier(m int) int {
	if m < MinMultiplier {
		return MinMultiplier
	}
	if m > MaxMultiplier {
		return MaxMultiplier
	}
	return m
}

// TotalPackageUSD is the USD value of the tokens a package costs.
func TotalPackageUSD(prices types.TokenPriceSet, tier types.PackageTier) float64 {
	return tier.Prices.SOL*prices.SOL +
		tier.Prices.BNB*prices.BNB +
		tier.Prices.ETH*prices.ETH
}

// Volume returns the estimated volume in USD.
func Volume(prices types.TokenPriceSet, tier types.PackageTier, durationMinutes float64, multiplier int) float64 {
	totalPackageUSD := TotalPackageUSD(prices, tier)
	totalTrades := tier.TradesPerMinute * durationMinutes
	return totalTrades * totalPackageUSD * float64(multiplier)
}

// Estimate returns the estimated volume in millions of USD, e.g. "1.32M".
// Callers validate the tier and multiplier.
func Estimate(prices types.TokenPriceSet, tier types.PackageTier, durationMinutes float64, multiplier int) string {
	inMillions := Volume(prices, tier, durationMinutes, multiplier) / 1000000
	return FormatUSD(inMillions) + "M"
}

// FormatUSD renders v with exactly two fraction digits.
func FormatUSD(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if s == "-0.00" {
		return "0.00"
	}
	return s
}
