package settings

// UpdateInput is the request body for changing household settings. Either
// field may be omitted to leave the current value in place.
type UpdateInput struct {
	ExchangeRateUSDVND float64 `json:"exchange_rate_usd_vnd" validate:"omitempty,gt=0"`
	Language           string  `json:"language" validate:"omitempty,oneof=vi en"`
}
