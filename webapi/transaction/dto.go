package transaction

// Input is the request body for creating or updating a transaction.
type Input struct {
	Type                string  `json:"type" validate:"required,oneof=income expense allocation"`
	Category            string  `json:"category" validate:"required"`
	DestinationCategory string  `json:"destination_category"`
	Amount              float64 `json:"amount" validate:"required,gt=0"`
	Currency            string  `json:"currency" validate:"omitempty,oneof=VND USD"`
	Source              string  `json:"source"`
	Destination         string  `json:"destination"`
	Fund                string  `json:"fund"`
	Date                string  `json:"date" validate:"required,datetime=2006-01-02"`
	Description         string  `json:"description"`
}

// ImportInput carries an uploaded export document.
type ImportInput struct {
	Format string `json:"format" validate:"required,oneof=json csv"`
	Data   string `json:"data" validate:"required"`
}
