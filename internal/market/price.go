package market

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

type searchResponse struct {
	Coins []struct {
		ID     string `json:"id"`
		Symbol string `json:"symbol"`
	} `json:"coins"`
}

type coinResponse struct {
	MarketData struct {
		CurrentPrice map[string]float64 `json:"current_price"`
	} `json:"market_data"`
}

var coinParams = url.Values{
	"localization":   {"false"},
	"tickers":        {"false"},
	"market_data":    {"true"},
	"community_data": {"false"},
	"developer_data": {"false"},
	"sparkline":      {"false"},
}

// ResolveCoinID 以 symbol 搜尋 CoinGecko id，找不到時回傳空字串
func (c *Client) ResolveCoinID(ctx context.Context, symbol string) (string, error) {
	symbol = strings.ToLower(strings.TrimSpace(symbol))
	if symbol == "" {
		return "", ErrNoAssets
	}

	var id string
	err := c.cached(ctx, "search:"+symbol, &id, func() error {
		var payload searchResponse
		params := url.Values{}
		params.Set("query", symbol)
		if err := c.get(ctx, "search", params, &payload); err != nil {
			return err
		}
		for _, coin := range payload.Coins {
			if strings.ToLower(coin.Symbol) == symbol {
				id = coin.ID
				break
			}
		}
		return nil
	})
	return id, err
}

func (c *Client) coinPriceUSD(ctx context.Context, id string) (float64, bool, error) {
	var payload coinResponse
	if err := c.get(ctx, "coins/"+url.PathEscape(id), coinParams, &payload); err != nil {
		return 0, false, err
	}
	price, ok := payload.MarketData.CurrentPrice[DefaultCurrency]
	return price, ok, nil
}

// PriceUSD 取得 USD 現價；idHint 可直接指定 CoinGecko id，失敗時退回 symbol 搜尋
func (c *Client) PriceUSD(ctx context.Context, symbol, idHint string) (string, float64, error) {
	if hint := strings.ToLower(strings.TrimSpace(idHint)); hint != "" {
		price, ok, err := c.coinPriceUSD(ctx, hint)
		if err == nil && ok {
			return hint, price, nil
		}
		if errors.Is(err, ErrRateLimited) {
			return "", 0, err
		}
	}

	id, err := c.ResolveCoinID(ctx, symbol)
	if err != nil {
		return "", 0, err
	}
	if id == "" {
		return "", 0, fmt.Errorf("%w for symbol %q", ErrAssetNotFound, symbol)
	}

	price, ok, err := c.coinPriceUSD(ctx, id)
	if err != nil {
		return "", 0, err
	}
	if !ok {
		return "", 0, &UpstreamError{Status: 200, Body: "CoinGecko did not return USD price"}
	}
	return id, price, nil
}
