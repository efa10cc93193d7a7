// File: internal/handler/crypto/prices.go
package crypto

import (
	"context"
	"net/http"
	"strings"

	"crypto-wallet/internal/api"
	"crypto-wallet/internal/handler"
	"crypto-wallet/internal/market"

	"github.com/labstack/echo/v4"
)

// PriceSource 行情來源，market.Client 實作此介面
type PriceSource interface {
	SimplePrices(ctx context.Context, ids []string, vsCurrency string) (map[string]map[string]float64, error)
	PriceUSD(ctx context.Context, symbol, idHint string) (string, float64, error)
}

// PricesHandler 查詢多個資產的現價
// @Summary     Simple prices
// @Description 轉呼叫 CoinGecko simple/price，結果會以 Redis 短暫快取
// @Tags        crypto
// @Produce     json
// @Param       ids         query    string true  "CoinGecko asset id，以逗號分隔" example(bitcoin,ethereum)
// @Param       vs_currency query    string false "報價幣別" default(usd)
// @Success     200         {object} api.PricesResponse
// @Failure     400         {object} api.ErrorResponse
// @Failure     404         {object} api.ErrorResponse
// @Failure     429         {object} api.ErrorResponse
// @Failure     502         {object} api.ErrorResponse
// @Router      /crypto/prices [get]
func PricesHandler(src PriceSource) echo.HandlerFunc {
	return func(c echo.Context) error {
		ids := strings.Split(c.QueryParam("ids"), ",")
		vs := c.QueryParam("vs_currency")
		if vs == "" {
			vs = market.DefaultCurrency
		}

		prices, err := src.SimplePrices(c.Request().Context(), ids, vs)
		if err != nil {
			return handler.Error(c, err)
		}
		return c.JSON(http.StatusOK, api.PricesResponse(prices))
	}
}

// PriceHandler 以 symbol 查詢單一資產 USD 現價
// @Summary     Price by symbol
// @Description 先以 id 參數直接查詢，失敗時以 symbol 搜尋對應的 CoinGecko 資產
// @Tags        crypto
// @Produce     json
// @Param       symbol path     string true  "資產代號" example(BTC)
// @Param       id     query    string false "CoinGecko asset id" example(bitcoin)
// @Success     200    {object} api.PriceResponse
// @Failure     400    {object} api.ErrorResponse
// @Failure     404    {object} api.ErrorResponse
// @Failure     429    {object} api.ErrorResponse
// @Failure     502    {object} api.ErrorResponse
// @Router      /crypto/price/{symbol} [get]
func PriceHandler(src PriceSource) echo.HandlerFunc {
	return func(c echo.Context) error {
		symbol := strings.TrimSpace(c.Param("symbol"))
		if symbol == "" {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "symbol is required"})
		}

		id, price, err := src.PriceUSD(c.Request().Context(), symbol, c.QueryParam("id"))
		if err != nil {
			return handler.Error(c, err)
		}
		return c.JSON(http.StatusOK, api.PriceResponse{
			Symbol:   strings.ToUpper(symbol),
			AssetID:  id,
			Currency: market.DefaultCurrency,
			Price:    price,
		})
	}
}
