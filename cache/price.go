// Package cache
package cache

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/volumevault/vault-estimator/types"
)

const (
	KeyLastFetchTime = "lastFetchTime"
	KeySOLPrice      = "solPrice"
	KeyBNBPrice      = "bnbPrice"
	KeyETHPrice      = "ethPrice"

	DefaultPriceMaxAge       = 6 * time.Hour
	DefaultPriceFetchTimeout = 10 * time.Second

	refreshKey = "prices"
)

// Quoter fetches current USD prices from the price-quote service.
type Quoter interface {
	Prices(ctx context.Context) (types.TokenPriceSet, error)
}

type PriceCacheConfig struct {
	Store  Store
	Quoter Quoter

	// MaxAge is how stale an entry may get before Get refetches.
	MaxAge time.Duration
	// FetchTimeout bounds one shared fetch, independent of any caller.
	FetchTimeout time.Duration
	Now          func() time.Time

	Logger *zap.Logger
}

// PriceCache serves token prices that are at most MaxAge old, persisting the
// last successful fetch to a Store. Safe for concurrent use.
type PriceCache struct {
	store        Store
	quoter       Quoter
	maxAge       time.Duration
	fetchTimeout time.Duration
	now          func() time.Time

	inflight singleflight.Group

	logger *zap.Logger
}

func NewPriceCache(cfg PriceCacheConfig) *PriceCache {
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = DefaultPriceMaxAge
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = DefaultPriceFetchTimeout
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &PriceCache{
		store:        cfg.Store,
		quoter:       cfg.Quoter,
		maxAge:       cfg.MaxAge,
		fetchTimeout: cfg.FetchTimeout,
		now:          cfg.Now,
		logger:       cfg.Logger.With(zap.String("cache", "prices")),
	}
}

// Get returns the cached prices, refetching them first when the entry is
// missing or older than MaxAge. A failed fetch is logged and the previous
// prices (zero if there are none) are returned.
func (c *PriceCache) Get(ctx context.Context) types.TokenPriceSet {
	entry, _ := c.GetEntry(ctx)
	return entry.Prices
}

// GetEntry is Get together with the time the returned prices were fetched.
// ok is false when no fetch has ever succeeded.
//
// Concurrent callers that all see a stale entry share one fetch. The fetch
// is detached from ctx and bounded by FetchTimeout, so a caller that gives
// up only stops waiting; the others still get the fetched prices.
func (c *PriceCache) GetEntry(ctx context.Context) (types.CacheEntry, bool) {
	entry, ok := c.Entry(ctx)
	if ok && !c.isStale(entry) {
		return entry, true
	}

	ch := c.inflight.DoChan(refreshKey, func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.fetchTimeout)
		defer cancel()
		return c.refresh(fetchCtx, entry, ok), nil
	})
	select {
	case res := <-ch:
		r := res.Val.(refreshResult)
		return r.entry, r.ok
	case <-ctx.Done():
		return entry, ok
	}
}

func (c *PriceCache) isStale(entry types.CacheEntry) bool {
	return entry.Age(c.now()) > c.maxAge
}

type refreshResult struct {
	entry types.CacheEntry
	ok    bool
}

func (c *PriceCache) refresh(ctx context.Context, prev types.CacheEntry, hasPrev bool) refreshResult {
	lgr := c.logger.With(zap.String("method", "refresh"))
	prices, err := c.quoter.Prices(ctx)
	if err != nil {
		lgr.Error("cannot fetch token prices", zap.Error(err), zap.Bool("hasCachedPrices", hasPrev))
		if hasPrev {
			return refreshResult{entry: prev, ok: true}
		}
		return refreshResult{}
	}

	entry := types.CacheEntry{Prices: prices, FetchedAt: c.now()}
	if err := c.save(ctx, entry); err != nil {
		lgr.Warn("cannot persist token prices", zap.Error(err))
	}
	lgr.Debug("refreshed token prices", zap.Any("prices", prices))
	return refreshResult{entry: entry, ok: true}
}

// Entry reads the persisted cache entry. ok is false when there is no
// complete, well-formed entry.
func (c *PriceCache) Entry(ctx context.Context) (types.CacheEntry, bool) {
	lgr := c.logger.With(zap.String("method", "Entry"))
	raw, ok, err := c.store.Get(ctx, KeyLastFetchTime)
	if err != nil {
		lgr.Warn("cannot read last fetch time", zap.Error(err))
		return types.CacheEntry{}, false
	}
	if !ok {
		return types.CacheEntry{}, false
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		lgr.Warn("invalid last fetch time", zap.String("value", raw), zap.Error(err))
		return types.CacheEntry{}, false
	}

	var prices types.TokenPriceSet
	for key, dst := range map[string]*float64{
		KeySOLPrice: &prices.SOL,
		KeyBNBPrice: &prices.BNB,
		KeyETHPrice: &prices.ETH,
	} {
		v, err := c.readPrice(ctx, key)
		if err != nil {
			lgr.Warn("cannot read cached price", zap.String("key", key), zap.Error(err))
			return types.CacheEntry{}, false
		}
		*dst = v
	}

	return types.CacheEntry{
		Prices:    prices,
		FetchedAt: time.Unix(0, ms*int64(time.Millisecond)),
	}, true
}

func (c *PriceCache) readPrice(ctx context.Context, key string) (float64, error) {
	raw, ok, err := c.store.Get(ctx, key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("missing %s", key)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid %s %v", key, v)
	}
	return v, nil
}

// save writes the prices before the timestamp, so an interrupted write
// leaves the old timestamp in place and the entry still reads as stale.
func (c *PriceCache) save(ctx context.Context, entry types.CacheEntry) error {
	values := []struct {
		key   string
		value string
	}{
		{KeySOLPrice, formatPrice(entry.Prices.SOL)},
		{KeyBNBPrice, formatPrice(entry.Prices.BNB)},
		{KeyETHPrice, formatPrice(entry.Prices.ETH)},
		{KeyLastFetchTime, strconv.FormatInt(entry.FetchedAt.UnixNano()/int64(time.Millisecond), 10)},
	}
	for _, kv := range values {
		if err := c.store.Set(ctx, kv.key, kv.value); err != nil {
			return err
		}
	}
	return nil
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
