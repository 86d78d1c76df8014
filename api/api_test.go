// Package api
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/volumevault/vault-estimator/cache"
	"github.com/volumevault/vault-estimator/types"
)

type stubQuoter struct {
	calls  int32
	prices types.TokenPriceSet
	err    error
}

func (q *stubQuoter) Prices(context.Context) (types.TokenPriceSet, error) {
	atomic.AddInt32(&q.calls, 1)
	return q.prices, q.err
}

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

type downStore struct {
	*cache.Memory
}

func (downStore) Ping(context.Context) error {
	return errors.New("dial tcp 127.0.0.1:6379: connect: connection refused")
}

func setupServer(t *testing.T, quoter cache.Quoter) http.Handler {
	t.Helper()
	return setupServerWithStore(t, quoter, cache.NewMemory())
}

func setupServerWithStore(t *testing.T, quoter cache.Quoter, store cache.Store) http.Handler {
	t.Helper()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	prices := cache.NewPriceCache(cache.PriceCacheConfig{
		Store:  store,
		Quoter: quoter,
		Now:    func() time.Time { return now },
		Logger: zap.NewNop(),
	})
	srv := NewServer().SetPrices(prices).SetStore(store).SetLogger(zap.NewNop())
	return NewEcho(srv)
}

func doGet(t *testing.T, h http.Handler, target string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func TestPing(t *testing.T) {
	h := setupServer(t, &stubQuoter{})
	code, env := doGet(t, h, "/api/v1/ping")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1000, env.Code)
	assert.JSONEq(t, `{"version":"1.0.0","cache":"ok"}`, string(env.Data))
}

func TestPing_CacheDown(t *testing.T) {
	h := setupServerWithStore(t, &stubQuoter{}, downStore{cache.NewMemory()})
	code, env := doGet(t, h, "/api/v1/ping")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, 1100, env.Code)
	assert.JSONEq(t, `{"version":"1.0.0","cache":"down"}`, string(env.Data))
}

func TestPing_WithoutStore(t *testing.T) {
	h := NewEcho(NewServer())
	code, env := doGet(t, h, "/api/v1/ping")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"version":"1.0.0"}`, string(env.Data))
}

func TestUnknownRoute(t *testing.T) {
	h := setupServer(t, &stubQuoter{})
	code, env := doGet(t, h, "/api/v1/volume")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, 1104, env.Code)
	assert.Equal(t, "Not found", env.Msg)
}

func TestEstimate(t *testing.T) {
	quoter := &stubQuoter{prices: types.TokenPriceSet{SOL: 150, BNB: 600, ETH: 3000}}
	h := setupServer(t, quoter)

	cases := map[string]struct {
		target     string
		wantVolume string
		wantTotal  string
		wantTier   string
	}{
		"Default":       {target: "/api/v1/estimate", wantVolume: "1.32M", wantTotal: "1836.00", wantTier: "Spark"},
		"SupremeX4":     {target: "/api/v1/estimate?package=Supreme&multiplier=4", wantVolume: "666.18M", wantTotal: "28914.00", wantTier: "Supreme"},
		"VaultLabel":    {target: "/api/v1/estimate?package=Spark%20Vault&multiplier=1", wantVolume: "1.32M", wantTotal: "1836.00", wantTier: "Spark"},
		"MaxMultiplier": {target: "/api/v1/estimate?package=spark&multiplier=20", wantVolume: "26.44M", wantTotal: "1836.00", wantTier: "Spark"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			code, env := doGet(t, h, c.target)
			require.Equal(t, http.StatusOK, code)

			var resp EstimateResponse
			require.NoError(t, json.Unmarshal(env.Data, &resp))
			assert.Equal(t, c.wantTier, resp.Package)
			assert.Equal(t, c.wantVolume, resp.EstimatedVolume)
			assert.Equal(t, c.wantTotal, resp.TotalPackageUSD)
			assert.Equal(t, float64(1440), resp.DurationMinutes)
		})
	}
	// prices are cached after the first request
	assert.Equal(t, int32(1), atomic.LoadInt32(&quoter.calls))
}

func TestEstimate_Invalid(t *testing.T) {
	quoter := &stubQuoter{prices: types.TokenPriceSet{SOL: 150, BNB: 600, ETH: 3000}}
	h := setupServer(t, quoter)

	for _, target := range []string{
		"/api/v1/estimate?package=Mega",
		"/api/v1/estimate?multiplier=0",
		"/api/v1/estimate?multiplier=21",
		"/api/v1/estimate?multiplier=two",
	} {
		code, env := doGet(t, h, target)
		assert.Equal(t, http.StatusBadRequest, code, target)
		assert.Equal(t, 1101, env.Code, target)
	}
	assert.Equal(t, int32(0), atomic.LoadInt32(&quoter.calls))
}

func TestEstimate_PriceServiceDown(t *testing.T) {
	h := setupServer(t, &stubQuoter{err: types.ErrPriceFetch})
	code, env := doGet(t, h, "/api/v1/estimate?package=Titan&multiplier=3")
	require.Equal(t, http.StatusOK, code)

	var resp EstimateResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "0.00M", resp.EstimatedVolume)
	assert.Equal(t, types.TokenPriceSet{}, resp.Prices)
}

func TestPrices(t *testing.T) {
	h := setupServer(t, &stubQuoter{prices: types.TokenPriceSet{SOL: 150, BNB: 600, ETH: 3000}})
	code, env := doGet(t, h, "/api/v1/prices")
	require.Equal(t, http.StatusOK, code)

	var resp PricesResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, types.TokenPriceSet{SOL: 150, BNB: 600, ETH: 3000}, resp.Prices)
	require.NotNil(t, resp.UpdatedAt)
	assert.True(t, resp.UpdatedAt.Equal(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)))
}

func TestPrices_NoEntry(t *testing.T) {
	h := setupServer(t, &stubQuoter{err: types.ErrPriceFetch})
	code, env := doGet(t, h, "/api/v1/prices")
	require.Equal(t, http.StatusOK, code)

	var resp PricesResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.True(t, resp.Prices.IsZero())
	assert.Nil(t, resp.UpdatedAt)
}

func TestPackages(t *testing.T) {
	h := setupServer(t, &stubQuoter{})

	code, env := doGet(t, h, "/api/v1/packages")
	require.Equal(t, http.StatusOK, code)
	var all []types.DurationPackages
	require.NoError(t, json.Unmarshal(env.Data, &all))
	assert.Len(t, all, 4)

	code, env = doGet(t, h, "/api/v1/packages/6%20hours")
	require.Equal(t, http.StatusOK, code)
	var pkgs []types.PackageInfo
	require.NoError(t, json.Unmarshal(env.Data, &pkgs))
	require.Len(t, pkgs, 5)
	assert.Equal(t, "Spark", pkgs[0].Name)
	assert.Equal(t, 12.0, pkgs[0].TxPerMinute)
	assert.Equal(t, int64(725), pkgs[0].Wallets)

	code, _ = doGet(t, h, "/api/v1/packages/12h")
	assert.Equal(t, http.StatusOK, code)

	code, env = doGet(t, h, "/api/v1/packages/48h")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, 1101, env.Code)
}

func TestTiers(t *testing.T) {
	h := setupServer(t, &stubQuoter{})
	code, env := doGet(t, h, "/api/v1/tiers")
	require.Equal(t, http.StatusOK, code)
	var tiers []types.PackageTier
	require.NoError(t, json.Unmarshal(env.Data, &tiers))
	require.Len(t, tiers, 5)
	assert.Equal(t, "Supreme", tiers[4].Name)
	assert.Equal(t, 4.0, tiers[4].TradesPerMinute)
}

func TestResponse_SharedNotMutated(t *testing.T) {
	r := OK.SetData("x")
	assert.Equal(t, "x", r.Data)
	assert.Nil(t, OK.Data)
	assert.Equal(t, "Bad request", Invalid.Msg)
	_ = Invalid.SetMsg("changed")
	assert.Equal(t, "Bad request", Invalid.Msg)
}

// timestamp writes fail, prices still land
type stampFailStore struct {
	*cache.Memory
}

func (s stampFailStore) Set(ctx context.Context, key, value string) error {
	if key == cache.KeyLastFetchTime {
		return errors.New("READONLY")
	}
	return s.Memory.Set(ctx, key, value)
}

func TestPrices_UpdatedAtMatchesPrices(t *testing.T) {
	ctx := context.Background()
	store := stampFailStore{cache.NewMemory()}
	_ = store.Memory.Set(ctx, cache.KeySOLPrice, "100")
	_ = store.Memory.Set(ctx, cache.KeyBNBPrice, "500")
	_ = store.Memory.Set(ctx, cache.KeyETHPrice, "2500")
	_ = store.Memory.Set(ctx, cache.KeyLastFetchTime, "1709269200000") // 2024-03-01 05:00 UTC, stale

	h := setupServerWithStore(t, &stubQuoter{prices: types.TokenPriceSet{SOL: 150, BNB: 600, ETH: 3000}}, store)
	code, env := doGet(t, h, "/api/v1/prices")
	require.Equal(t, http.StatusOK, code)

	var resp PricesResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, types.TokenPriceSet{SOL: 150, BNB: 600, ETH: 3000}, resp.Prices)
	require.NotNil(t, resp.UpdatedAt)
	assert.True(t, resp.UpdatedAt.Equal(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)))
}
