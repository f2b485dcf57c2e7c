package investment

// Input is the request body for recording a trade.
type Input struct {
	Date      string  `json:"date" validate:"required,datetime=2006-01-02"`
	Symbol    string  `json:"symbol" validate:"required,max=20"`
	AssetType string  `json:"asset_type"`
	Type      string  `json:"type" validate:"required,oneof=buy sell dividend"`
	Quantity  float64 `json:"quantity" validate:"gte=0"`
	Price     float64 `json:"price" validate:"gte=0"`
	Fee       float64 `json:"fee" validate:"gte=0"`
	Tax       float64 `json:"tax" validate:"gte=0"`
}
