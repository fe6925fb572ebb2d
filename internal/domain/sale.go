package domain

import "time"

// DateKeyLayout é o formato da chave de dia (somente data) usada na agregação
const DateKeyLayout = time.DateOnly

// MonthKeyLayout é o formato da chave de mês usada na série mensal
const MonthKeyLayout = "2006-01"

// SaleEntry representa uma venda registrada no Sales Entry Store.
// Date é mantida como veio da API (ISO-8601); apenas os 10 primeiros caracteres importam.
type SaleEntry struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// SalesSummary é o resumo do mês retornado pelo Sales Entry Store
type SalesSummary struct {
	MonthTotal float64     `json:"month_total"`
	Entries    []SaleEntry `json:"entries"`
}

// RecordSaleRequest é o payload para registrar uma nova venda
type RecordSaleRequest struct {
	Amount float64 `json:"amount"`
	Date   *string `json:"date,omitempty"`
}
