// Package api
package api

import (
	"time"

	"github.com/volumevault/vault-estimator/types"
)

type PricesResponse struct {
	Prices    types.TokenPriceSet `json:"prices"`
	UpdatedAt *time.Time          `json:"updatedAt,omitempty"`
}

type EstimateResponse struct {
	Package         string              `json:"package"`
	Amounts         types.TokenAmounts  `json:"amounts"`
	TradesPerMinute float64             `json:"tradesPerMinute"`
	DurationMinutes float64             `json:"durationMinutes"`
	Multiplier      int                 `json:"multiplier"`
	Prices          types.TokenPriceSet `json:"prices"`
	TotalPackageUSD string              `json:"totalPackageUSD"`
	EstimatedVolume string              `json:"estimatedVolume"`
}
