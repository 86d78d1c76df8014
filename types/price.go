// Package types
package types

import (
	"strings"
	"time"
)

type Symbol string

const (
	SymbolSOL Symbol = "SOL"
	SymbolBNB Symbol = "BNB"
	SymbolETH Symbol = "ETH"
)

// Symbols lists the supported tokens in display order.
var Symbols = []Symbol{SymbolSOL, SymbolBNB, SymbolETH}

// TokenPriceSet holds the USD spot price of every supported token.
type TokenPriceSet struct {
	SOL float64 `json:"sol"`
	BNB float64 `json:"bnb"`
	ETH float64 `json:"eth"`
}

func (p TokenPriceSet) IsZero() bool {
	return p.SOL == 0 && p.BNB == 0 && p.ETH == 0
}

func (p TokenPriceSet) Of(s Symbol) float64 {
	switch Symbol(strings.ToUpper(string(s))) {
	case SymbolSOL:
		return p.SOL
	case SymbolBNB:
		return p.BNB
	case SymbolETH:
		return p.ETH
	}
	return 0
}

// CacheEntry is the persisted result of the last successful price fetch.
type CacheEntry struct {
	Prices    TokenPriceSet `json:"prices"`
	FetchedAt time.Time     `json:"fetchedAt"`
}

// Age returns how old the entry is at now.
func (e CacheEntry) Age(now time.Time) time.Duration {
	return now.Sub(e.FetchedAt)
}
