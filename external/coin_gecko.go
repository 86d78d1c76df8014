// Package external
package external

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/volumevault/vault-estimator/types"
)

const (
	DefaultCoinGeckoURL = "https://api.coingecko.com/api/v3"

	coinGeckoSOL = "solana"
	coinGeckoBNB = "binancecoin"
	coinGeckoETH = "ethereum"
)

type CoinGeckoConfig struct {
	BaseURL string
	// APIKey is the demo API key, sent as x_cg_demo_api_key when set.
	APIKey  string
	Timeout time.Duration

	HTTPClient *http.Client
	Logger     *zap.Logger
}

// CoinGecko reads USD spot prices from the CoinGecko simple price endpoint.
type CoinGecko struct {
	baseURL string
	apiKey  string
	client  *http.Client

	logger *zap.Logger
}

func NewCoinGecko(cfg CoinGeckoConfig) *CoinGecko {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultCoinGeckoURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	client := cfg.HTTPClient
	if client == nil {
		var netTransport = &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: 5 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout: 5 * time.Second,
		}
		client = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: netTransport,
		}
	}
	return &CoinGecko{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  client,
		logger:  cfg.Logger.With(zap.String("external", "coingecko")),
	}
}

type cgQuote struct {
	USD *float64 `json:"usd"`
}

type cgSimplePrice map[string]cgQuote

func (cg *CoinGecko) priceURL() (string, error) {
	u, err := url.Parse(cg.baseURL + "/simple/price")
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("ids", coinGeckoSOL+","+coinGeckoBNB+","+coinGeckoETH)
	q.Set("vs_currencies", "usd")
	if cg.apiKey != "" {
		q.Set("x_cg_demo_api_key", cg.apiKey)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Prices fetches SOL, BNB and ETH prices. Every failure wraps types.ErrPriceFetch.
func (cg *CoinGecko) Prices(ctx context.Context) (types.TokenPriceSet, error) {
	priceURL, err := cg.priceURL()
	if err != nil {
		return types.TokenPriceSet{}, fmt.Errorf("%w: %s", types.ErrPriceFetch, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, priceURL, nil)
	if err != nil {
		return types.TokenPriceSet{}, fmt.Errorf("%w: %s", types.ErrPriceFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	response, err := cg.client.Do(req)
	if err != nil {
		return types.TokenPriceSet{}, fmt.Errorf("%w: %s", types.ErrPriceFetch, err)
	}
	defer response.Body.Close()

	body, err := ioutil.ReadAll(io.LimitReader(response.Body, 1<<20))
	if err != nil {
		return types.TokenPriceSet{}, fmt.Errorf("%w: read body: %s", types.ErrPriceFetch, err)
	}
	if response.StatusCode != http.StatusOK {
		cg.logger.Debug("unexpected status", zap.Int("status", response.StatusCode), zap.ByteString("body", body))
		return types.TokenPriceSet{}, fmt.Errorf("%w: status %d", types.ErrPriceFetch, response.StatusCode)
	}

	var cgResponse cgSimplePrice
	if err := json.Unmarshal(body, &cgResponse); err != nil {
		return types.TokenPriceSet{}, fmt.Errorf("%w: decode: %s", types.ErrPriceFetch, err)
	}

	var prices types.TokenPriceSet
	for id, dst := range map[string]*float64{
		coinGeckoSOL: &prices.SOL,
		coinGeckoBNB: &prices.BNB,
		coinGeckoETH: &prices.ETH,
	} {
		quote, ok := cgResponse[id]
		if !ok || quote.USD == nil {
			return types.TokenPriceSet{}, fmt.Errorf("%w: missing %s.usd", types.ErrPriceFetch, id)
		}
		if *quote.USD < 0 {
			return types.TokenPriceSet{}, fmt.Errorf("%w: negative %s.usd", types.ErrPriceFetch, id)
		}
		*dst = *quote.USD
	}
	return prices, nil
}
