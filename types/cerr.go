// Package types
package types

import (
	"errors"
)

// ErrPriceFetch marks any failure to obtain prices from the quote service.
var ErrPriceFetch = errors.New("price fetch failure")

var ErrUnknownTier = errors.New("unknown package tier")
var ErrUnknownDuration = errors.New("unknown package duration")
var ErrInvalidMultiplier = errors.New("multiplier out of range")
