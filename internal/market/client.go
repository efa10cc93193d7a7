// Package market 包裝 CoinGecko 公開 API，回應以 Redis 快取
package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"crypto-wallet/internal/cache"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultBaseURL   = "https://api.coingecko.com/api/v3"
	DefaultCurrency  = "usd"
	demoAPIKeyHeader = "x-cg-demo-api-key"
	cacheKeyPrefix   = "market:"
	maxErrorBody     = 512
)

var (
	// ErrNoAssets 未提供任何 asset id
	ErrNoAssets = errors.New("at least one asset id must be provided")
	// ErrRateLimited CoinGecko 回傳 429
	ErrRateLimited = errors.New("CoinGecko rate limit exceeded, please retry later")
	// ErrNoData CoinGecko 回傳空結果
	ErrNoData = errors.New("no pricing data returned for the requested assets")
	// ErrAssetNotFound 以 symbol 查不到對應的 CoinGecko id
	ErrAssetNotFound = errors.New("CoinGecko asset not found")
)

// UpstreamError CoinGecko 無法連線或回傳 4xx/5xx（429 除外）
type UpstreamError struct {
	Status int
	Body   string
	Err    error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.Err != nil && e.Status == 0:
		return fmt.Sprintf("failed to reach CoinGecko: %v", e.Err)
	case e.Err != nil:
		return fmt.Sprintf("CoinGecko returned an invalid response: %v", e.Err)
	}
	return fmt.Sprintf("CoinGecko API error (%d): %s", e.Status, e.Body)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 20 * time.Second,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// Client CoinGecko 客戶端；Cache 為 nil 或 CacheTTL <= 0 時不快取
type Client struct {
	BaseURL  string
	APIKey   string
	HTTP     *http.Client
	Cache    cache.Cache
	CacheTTL time.Duration
}

func NewClient(baseURL, apiKey string, c cache.Cache, ttl time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:  baseURL,
		APIKey:   apiKey,
		HTTP:     newHTTPClient(),
		Cache:    c,
		CacheTTL: ttl,
	}
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	u := strings.TrimRight(c.BaseURL, "/") + "/" + strings.TrimLeft(endpoint, "/")
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.APIKey != "" {
		req.Header.Set(demoAPIKeyHeader, c.APIKey)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return ErrRateLimited
	}
	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &UpstreamError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &UpstreamError{Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// cached 先讀 Redis，未命中時呼叫 load 並寫回；Redis 錯誤只記錄不中斷
func (c *Client) cached(ctx context.Context, key string, out any, load func() error) error {
	useCache := c.Cache != nil && c.CacheTTL > 0
	if useCache {
		raw, err := c.Cache.Get(ctx, cacheKeyPrefix+key).Bytes()
		switch {
		case err == nil:
			if jerr := json.Unmarshal(raw, out); jerr == nil {
				return nil
			}
		case !errors.Is(err, redis.Nil):
			slog.Warn("market cache read", "key", key, "error", err)
		}
	}

	if err := load(); err != nil {
		return err
	}

	if useCache {
		raw, err := json.Marshal(out)
		if err == nil {
			err = c.Cache.Set(ctx, cacheKeyPrefix+key, raw, c.CacheTTL).Err()
		}
		if err != nil {
			slog.Warn("market cache write", "key", key, "error", err)
		}
	}
	return nil
}

// normalizeIDs 去空白、轉小寫、去重並排序，讓快取 key 穩定
func normalizeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, raw := range ids {
		for _, id := range strings.Split(raw, ",") {
			id = strings.ToLower(strings.TrimSpace(id))
			if id == "" {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// SimplePrices 查詢多個 asset 對指定幣別的現價
func (c *Client) SimplePrices(ctx context.Context, ids []string, vsCurrency string) (map[string]map[string]float64, error) {
	ids = normalizeIDs(ids)
	if len(ids) == 0 {
		return nil, ErrNoAssets
	}
	vsCurrency = strings.ToLower(strings.TrimSpace(vsCurrency))
	if vsCurrency == "" {
		vsCurrency = DefaultCurrency
	}

	joined := strings.Join(ids, ",")
	var prices map[string]map[string]float64
	err := c.cached(ctx, "simple:"+vsCurrency+":"+joined, &prices, func() error {
		params := url.Values{}
		params.Set("ids", joined)
		params.Set("vs_currencies", vsCurrency)
		return c.get(ctx, "simple/price", params, &prices)
	})
	if err != nil {
		return nil, err
	}
	if len(prices) == 0 {
		return nil, ErrNoData
	}
	return prices, nil
}
