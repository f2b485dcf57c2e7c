package fixeditem

// Input is the request body for creating or updating a recurring template.
type Input struct {
	Type                string  `json:"type" validate:"required,oneof=income expense allocation"`
	Category            string  `json:"category" validate:"required"`
	DestinationCategory string  `json:"destination_category"`
	Amount              float64 `json:"amount" validate:"required,gt=0"`
	Currency            string  `json:"currency" validate:"omitempty,oneof=VND USD"`
	Source              string  `json:"source"`
	Destination         string  `json:"destination"`
	Fund                string  `json:"fund"`
	Description         string  `json:"description"`
}

// GenerateInput selects the effective date for a generation run.
type GenerateInput struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}
