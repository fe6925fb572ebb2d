package aggregating

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/vendorhub-api/internal/domain"
)

func referenceDay(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 15, 30, 0, 0, time.Local)
}

func TestDateKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "Somente data", input: "2024-03-01", want: "2024-03-01", ok: true},
		{name: "Data com horário", input: "2024-03-01T23:59:59Z", want: "2024-03-01", ok: true},
		{name: "String vazia", input: "", ok: false},
		{name: "Curta demais", input: "2024-03", ok: false},
		{name: "Mês inválido", input: "2024-13-01", ok: false},
		{name: "Texto qualquer", input: "yesterday!!", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DateKey(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeTodayTotal(t *testing.T) {
	ref := referenceDay(2024, 3, 2)

	tests := []struct {
		name    string
		entries []domain.SaleEntry
		want    float64
	}{
		{name: "Sem vendas", entries: nil, want: 0},
		{
			name: "Soma apenas o dia de referência",
			entries: []domain.SaleEntry{
				{Date: "2024-03-01", Amount: 500},
				{Date: "2024-03-02", Amount: 200},
				{Date: "2024-03-02T08:00:00", Amount: 50},
			},
			want: 250,
		},
		{
			name: "Datas malformadas são ignoradas",
			entries: []domain.SaleEntry{
				{Date: "not-a-date", Amount: 999},
				{Date: "2024-03-02", Amount: 10},
			},
			want: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeTodayTotal(tt.entries, ref))
		})
	}
}

func TestBuildDailySeries_LengthIsAlwaysTheWindow(t *testing.T) {
	ref := referenceDay(2024, 3, 2)

	for _, size := range []int{0, 1, 1000} {
		entries := make([]domain.SaleEntry, 0, size)
		for i := 0; i < size; i++ {
			day := ref.AddDate(0, 0, -(i % 40))
			entries = append(entries, domain.SaleEntry{Date: day.Format(time.DateOnly), Amount: 10})
		}

		t.Run(fmt.Sprintf("%d entradas", size), func(t *testing.T) {
			assert.Len(t, BuildDailySeries(entries, ref, 14), 14)
			assert.Len(t, BuildDailySeries(entries, ref, 7), 7)
			assert.Len(t, BuildDailySeries(entries, ref, 1), 1)
		})
	}
}

func TestBuildDailySeries_OrderAndBuckets(t *testing.T) {
	ref := referenceDay(2024, 3, 2)
	entries := []domain.SaleEntry{
		{Date: "2024-03-01", Amount: 500},
		{Date: "2024-03-01", Amount: 300},
		{Date: "2024-03-02", Amount: 200},
		{Date: "2024-02-10", Amount: 7000}, // fora da janela
		{Date: "garbage", Amount: 1},
	}

	series := BuildDailySeries(entries, ref, 14)
	require.Len(t, series, 14)

	assert.Equal(t, "2024-02-18", series[0].DateKey)
	assert.Equal(t, "2024-03-02", series[13].DateKey)
	assert.Equal(t, "Mar 2", series[13].Label)
	assert.Equal(t, 800.0, series[12].Amount)
	assert.Equal(t, 200.0, series[13].Amount)

	for i := 1; i < len(series); i++ {
		assert.True(t, series[i-1].Date.Before(series[i].Date), "série deve ser crescente")
	}

	var total float64
	for _, point := range series[:12] {
		total += point.Amount
	}
	assert.Zero(t, total)
}

func TestBuildDailySeries_CrossesMonthAndYear(t *testing.T) {
	ref := referenceDay(2024, 1, 3)

	series := BuildDailySeries(nil, ref, 5)
	require.Len(t, series, 5)
	assert.Equal(t, "2023-12-30", series[0].DateKey)
	assert.Equal(t, "2024-01-03", series[4].DateKey)
}

func TestBuildDailySeries_InvalidWindowFallsBackToDefault(t *testing.T) {
	assert.Len(t, BuildDailySeries(nil, referenceDay(2024, 3, 2), 0), DefaultWindowSize)
	assert.Len(t, BuildDailySeries(nil, referenceDay(2024, 3, 2), -3), DefaultWindowSize)
}

func TestBuildDailySeries_ReferenceBucketMatchesTodayTotal(t *testing.T) {
	ref := referenceDay(2024, 3, 2)
	entries := []domain.SaleEntry{
		{Date: "2024-03-02", Amount: 120.5},
		{Date: "2024-03-02T10:00:00Z", Amount: 79.5},
		{Date: "2024-03-01", Amount: 40},
	}

	series := BuildDailySeries(entries, ref, 14)
	assert.Equal(t, ComputeTodayTotal(entries, ref), series[len(series)-1].Amount)
}

func TestBuildMonthlySeries(t *testing.T) {
	entries := []domain.SaleEntry{
		{Date: "2024-03-01", Amount: 100},
		{Date: "2024-01-15", Amount: 50},
		{Date: "2024-03-20", Amount: 25},
		{Date: "??", Amount: 1000},
	}

	series := BuildMonthlySeries(entries)
	require.Len(t, series, 2)
	assert.Equal(t, domain.MonthlyPoint{MonthKey: "2024-01", Label: "Jan", Amount: 50}, series[0])
	assert.Equal(t, domain.MonthlyPoint{MonthKey: "2024-03", Label: "Mar", Amount: 125}, series[1])
	assert.Empty(t, BuildMonthlySeries(nil))
}

func TestComputeAggregates(t *testing.T) {
	tests := []struct {
		name    string
		summary *domain.SalesSummary
		want    domain.Aggregates
	}{
		{
			name:    "Resumo nil",
			summary: nil,
			want:    domain.Aggregates{MonthTotal: 0, UniqueActiveDays: 1, AvgDailySales: 0, LoanCap: 10000, CreditScore: 50},
		},
		{
			name: "Duas datas distintas",
			summary: &domain.SalesSummary{
				MonthTotal: 1000,
				Entries: []domain.SaleEntry{
					{Date: "2024-03-01", Amount: 500},
					{Date: "2024-03-01", Amount: 300},
					{Date: "2024-03-02", Amount: 200},
				},
			},
			want: domain.Aggregates{MonthTotal: 1000, UniqueActiveDays: 2, AvgDailySales: 500, LoanCap: 10000, CreditScore: 50},
		},
		{
			name:    "Sem entradas usa piso de um dia",
			summary: &domain.SalesSummary{MonthTotal: 15000},
			want:    domain.Aggregates{MonthTotal: 15000, UniqueActiveDays: 1, AvgDailySales: 15000, LoanCap: 12000, CreditScore: 50},
		},
		{
			name:    "Score limitado ao máximo",
			summary: &domain.SalesSummary{MonthTotal: 120000},
			want:    domain.Aggregates{MonthTotal: 120000, UniqueActiveDays: 1, AvgDailySales: 120000, LoanCap: 96000, CreditScore: 100},
		},
		{
			name:    "Score dentro dos limites",
			summary: &domain.SalesSummary{MonthTotal: 75400},
			want:    domain.Aggregates{MonthTotal: 75400, UniqueActiveDays: 1, AvgDailySales: 75400, LoanCap: 60320, CreditScore: 75},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeAggregates(tt.summary))
		})
	}
}

func TestComputeAggregates_IsIdempotent(t *testing.T) {
	summary := &domain.SalesSummary{
		MonthTotal: 4321,
		Entries:    []domain.SaleEntry{{Date: "2024-03-01", Amount: 4321}},
	}

	first := ComputeAggregates(summary)
	second := ComputeAggregates(summary)

	assert.Equal(t, first, second)
	assert.Equal(t, []domain.SaleEntry{{Date: "2024-03-01", Amount: 4321}}, summary.Entries)
}

func TestBoundedOutputs(t *testing.T) {
	engine := NewEngine(domain.DefaultMetricsPolicy())

	for _, total := range []float64{-50000, -1, 0, 0.4, 499.5, 12500, 50000, 99999, 1e9, 2e19, 1e25, -1e25, math.MaxFloat64, math.NaN(), math.Inf(1)} {
		t.Run(fmt.Sprintf("total=%v", total), func(t *testing.T) {
			score := engine.CreditScore(total)
			assert.GreaterOrEqual(t, score, 50)
			assert.LessOrEqual(t, score, 100)
			assert.GreaterOrEqual(t, engine.LoanCap(total), int64(10000))
		})
	}
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, int64(1), roundHalfUp(0.5))
	assert.Equal(t, int64(0), roundHalfUp(-0.5))
	assert.Equal(t, int64(-1), roundHalfUp(-0.6))
	assert.Equal(t, int64(12000), roundHalfUp(15000*0.8))
	assert.Equal(t, int64(math.MaxInt64), roundHalfUp(1.6e19))
	assert.Equal(t, int64(math.MinInt64), roundHalfUp(-1e25))
}

func TestComputeAggregates_HugeMonthTotal(t *testing.T) {
	engine := NewEngine(domain.DefaultMetricsPolicy())

	tests := []struct {
		name            string
		monthTotal      float64
		wantLoanCap     int64
		wantCreditScore int
	}{
		{name: "Acima de int64 no teto", monthTotal: 2e19, wantLoanCap: math.MaxInt64, wantCreditScore: 100},
		{name: "Score acima de int64", monthTotal: 1e25, wantLoanCap: math.MaxInt64, wantCreditScore: 100},
		{name: "Negativo enorme", monthTotal: -1e25, wantLoanCap: 10000, wantCreditScore: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aggregates := engine.ComputeAggregates(&domain.SalesSummary{MonthTotal: tt.monthTotal})

			assert.Equal(t, tt.wantLoanCap, aggregates.LoanCap)
			assert.Equal(t, tt.wantCreditScore, aggregates.CreditScore)
		})
	}
}

func TestEngine_CustomPolicy(t *testing.T) {
	policy := domain.DefaultMetricsPolicy()
	policy.LoanFloor = 5000
	policy.LoanCapRatio = 0.5
	policy.CreditScoreDivisor = 100

	engine := NewEngine(policy)
	aggregates := engine.ComputeAggregates(&domain.SalesSummary{MonthTotal: 8000})

	assert.Equal(t, int64(5000), aggregates.LoanCap)
	assert.Equal(t, 80, aggregates.CreditScore)
}

func TestEngine_Derive(t *testing.T) {
	engine := NewEngine(domain.DefaultMetricsPolicy())
	ref := referenceDay(2024, 3, 2)
	summary := &domain.SalesSummary{
		MonthTotal: 1000,
		Entries: []domain.SaleEntry{
			{Date: "2024-03-01", Amount: 500},
			{Date: "2024-03-01", Amount: 300},
			{Date: "2024-03-02", Amount: 200},
		},
	}

	metrics := engine.Derive(summary, ref, 0)

	assert.Equal(t, 200.0, metrics.TodayTotal)
	assert.Equal(t, 2, metrics.UniqueActiveDays)
	assert.Equal(t, 500.0, metrics.AvgDailySales)
	assert.Equal(t, int64(10000), metrics.LoanCap)
	assert.Equal(t, 50, metrics.CreditScore)
	assert.Equal(t, int64(600), metrics.SuggestedLoanAmount)
	assert.Equal(t, "2024-03-02", metrics.ReferenceDate)
	assert.Len(t, metrics.DailySeries, 14)
	assert.Len(t, metrics.MonthlySeries, 1)

	empty := engine.Derive(nil, ref, 7)
	assert.Len(t, empty.DailySeries, 7)
	assert.Zero(t, empty.TodayTotal)
	assert.Empty(t, empty.MonthlySeries)
}
