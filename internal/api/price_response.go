package api

// PriceResponse 單一資產的 USD 現價
// swagger:model api.PriceResponse
type PriceResponse struct {
	Symbol   string  `json:"symbol" example:"BTC"`
	AssetID  string  `json:"asset_id" example:"bitcoin"`
	Currency string  `json:"currency" example:"usd"`
	Price    float64 `json:"price" example:"67012.5"`
}
