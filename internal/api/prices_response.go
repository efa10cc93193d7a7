package api

// PricesResponse CoinGecko simple/price 原樣轉出：asset id -> 幣別 -> 價格
// swagger:model api.PricesResponse
type PricesResponse map[string]map[string]float64
