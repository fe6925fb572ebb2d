package salesstoredomain

// SummaryResponse é o corpo de GET /sales/summary
type SummaryResponse struct {
	MonthTotal float64         `json:"month_total"`
	Entries    []EntryResponse `json:"entries"`
}

// EntryResponse é uma venda como o store devolve
type EntryResponse struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// RecordSaleRequest é o corpo de POST /sales
type RecordSaleRequest struct {
	Amount float64 `json:"amount"`
	Date   *string `json:"date,omitempty"`
}

// ErrorResponse é o corpo de erro do store (formato FastAPI)
type ErrorResponse struct {
	Detail any `json:"detail"`
}
