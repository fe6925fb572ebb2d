package domain

import "time"

// DailyPoint é um ponto da série diária
type DailyPoint struct {
	DateKey string    `json:"date_key"`
	Date    time.Time `json:"date"`
	Label   string    `json:"label"`
	Amount  float64   `json:"amount"`
}

// MonthlyPoint é um ponto da série mensal
type MonthlyPoint struct {
	MonthKey string  `json:"month_key"`
	Label    string  `json:"label"`
	Amount   float64 `json:"amount"`
}

// Aggregates são os valores escalares calculados a partir do resumo
type Aggregates struct {
	MonthTotal       float64 `json:"month_total"`
	UniqueActiveDays int     `json:"unique_active_days"`
	AvgDailySales    float64 `json:"avg_daily_sales"`
	LoanCap          int64   `json:"loan_cap"`
	CreditScore      int     `json:"credit_score"`
}

// DerivedMetrics é o resultado completo do motor de agregação.
// Sempre recalculado, nunca persistido.
type DerivedMetrics struct {
	Aggregates
	TodayTotal          float64        `json:"today_total"`
	DailySeries         []DailyPoint   `json:"daily_series"`
	MonthlySeries       []MonthlyPoint `json:"monthly_series"`
	SuggestedLoanAmount int64          `json:"suggested_loan_amount"`
	ReferenceDate       string         `json:"reference_date"`
}

// SalesMetricsResponse é a resposta da API de métricas de vendas
type SalesMetricsResponse struct {
	Metrics     *DerivedMetrics `json:"metrics"`
	Locale      string          `json:"locale"`
	EmptyState  string          `json:"empty_state,omitempty"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// MetricsPolicy agrupa as constantes de negócio (ilustrativas) do cálculo de crédito.
// São configuráveis, não política fixa.
type MetricsPolicy struct {
	LoanFloor          float64
	LoanCapRatio       float64
	SuggestedLoanRatio float64
	CreditScoreDivisor float64
	CreditScoreMin     int
	CreditScoreMax     int
	AnnualInterestRate float64
	TenureMonths       int
	WindowDays         int
}

// DefaultMetricsPolicy retorna os valores padrão do produto
func DefaultMetricsPolicy() MetricsPolicy {
	return MetricsPolicy{
		LoanFloor:          10000,
		LoanCapRatio:       0.8,
		SuggestedLoanRatio: 0.6,
		CreditScoreDivisor: 1000,
		CreditScoreMin:     50,
		CreditScoreMax:     100,
		AnnualInterestRate: 0.08,
		TenureMonths:       12,
		WindowDays:         14,
	}
}
