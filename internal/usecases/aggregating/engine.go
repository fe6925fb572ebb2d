// Package aggregating contém o motor de agregação de vendas e métricas derivadas.
// Todas as funções são puras: não fazem I/O e não guardam estado.
package aggregating

import (
	"math"
	"sort"
	"time"

	"github.com/vfg2006/vendorhub-api/internal/domain"
)

// DefaultWindowSize é o tamanho padrão da série diária
const DefaultWindowSize = 14

const dailyLabelLayout = "Jan 2"

// Engine aplica uma MetricsPolicy sobre os resumos de vendas
type Engine struct {
	policy domain.MetricsPolicy
}

// NewEngine cria um motor com a política informada
func NewEngine(policy domain.MetricsPolicy) *Engine {
	return &Engine{policy: policy}
}

var defaultEngine = NewEngine(domain.DefaultMetricsPolicy())

// Policy retorna a política em uso
func (e *Engine) Policy() domain.MetricsPolicy {
	return e.policy
}

// DateKey extrai a chave de dia (YYYY-MM-DD) de uma data ISO-8601.
// Retorna false quando os 10 primeiros caracteres não formam uma data válida.
func DateKey(date string) (string, bool) {
	if len(date) < len(domain.DateKeyLayout) {
		return "", false
	}

	key := date[:len(domain.DateKeyLayout)]
	if _, err := time.Parse(domain.DateKeyLayout, key); err != nil {
		return "", false
	}

	return key, true
}

// ComputeTodayTotal soma as vendas cujo dia coincide com o dia local de referenceDate
func ComputeTodayTotal(entries []domain.SaleEntry, referenceDate time.Time) float64 {
	todayKey := referenceDate.Format(domain.DateKeyLayout)

	var total float64
	for _, entry := range entries {
		key, ok := DateKey(entry.Date)
		if ok && key == todayKey {
			total += entry.Amount
		}
	}

	return total
}

// BuildDailySeries monta windowSize baldes diários terminando em referenceDate (inclusive),
// em ordem cronológica. Dias sem vendas ficam com zero.
func BuildDailySeries(entries []domain.SaleEntry, referenceDate time.Time, windowSize int) []domain.DailyPoint {
	if windowSize < 1 {
		windowSize = DefaultWindowSize
	}

	byDay := sumByDay(entries)

	series := make([]domain.DailyPoint, 0, windowSize)
	year, month, day := referenceDate.Date()
	for i := windowSize - 1; i >= 0; i-- {
		// time.Date normaliza dias negativos e evita problemas com horário de verão
		bucket := time.Date(year, month, day-i, 0, 0, 0, 0, referenceDate.Location())
		key := bucket.Format(domain.DateKeyLayout)

		series = append(series, domain.DailyPoint{
			DateKey: key,
			Date:    bucket,
			Label:   bucket.Format(dailyLabelLayout),
			Amount:  byDay[key],
		})
	}

	return series
}

// BuildMonthlySeries agrupa as vendas por mês (YYYY-MM) em ordem crescente
func BuildMonthlySeries(entries []domain.SaleEntry) []domain.MonthlyPoint {
	byMonth := make(map[string]float64)
	for _, entry := range entries {
		key, ok := DateKey(entry.Date)
		if !ok {
			continue
		}
		byMonth[key[:len(domain.MonthKeyLayout)]] += entry.Amount
	}

	keys := make([]string, 0, len(byMonth))
	for key := range byMonth {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	series := make([]domain.MonthlyPoint, 0, len(keys))
	for _, key := range keys {
		label := key
		if t, err := time.Parse(domain.MonthKeyLayout, key); err == nil {
			label = t.Format("Jan")
		}

		series = append(series, domain.MonthlyPoint{
			MonthKey: key,
			Label:    label,
			Amount:   byMonth[key],
		})
	}

	return series
}

// UniqueActiveDays conta os dias distintos com vendas, com piso de 1
func UniqueActiveDays(entries []domain.SaleEntry) int {
	days := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if key, ok := DateKey(entry.Date); ok {
			days[key] = struct{}{}
		}
	}

	return max(1, len(days))
}

// ComputeAggregates calcula os agregados com a política padrão
func ComputeAggregates(summary *domain.SalesSummary) domain.Aggregates {
	return defaultEngine.ComputeAggregates(summary)
}

// ComputeAggregates calcula total do mês, dias ativos, média diária, teto de empréstimo e score.
// Um resumo nil é tratado como vazio. Totais não finitos contam como zero nos valores limitados.
func (e *Engine) ComputeAggregates(summary *domain.SalesSummary) domain.Aggregates {
	var (
		monthTotal float64
		entries    []domain.SaleEntry
	)
	if summary != nil {
		monthTotal = summary.MonthTotal
		entries = summary.Entries
	}

	uniqueDays := UniqueActiveDays(entries)

	return domain.Aggregates{
		MonthTotal:       monthTotal,
		UniqueActiveDays: uniqueDays,
		AvgDailySales:    monthTotal / float64(uniqueDays),
		LoanCap:          e.LoanCap(monthTotal),
		CreditScore:      e.CreditScore(monthTotal),
	}
}

// LoanCap retorna max(piso, round(monthTotal * ratio))
func (e *Engine) LoanCap(monthTotal float64) int64 {
	floor := e.LoanFloor()
	if notFinite(monthTotal) {
		return floor
	}

	return max(floor, roundHalfUp(monthTotal*e.policy.LoanCapRatio))
}

// SuggestedLoanAmount é o valor inicial sugerido no formulário de empréstimo
func (e *Engine) SuggestedLoanAmount(monthTotal float64) int64 {
	if notFinite(monthTotal) {
		return 0
	}

	return roundHalfUp(monthTotal * e.policy.SuggestedLoanRatio)
}

// CreditScore retorna o score ilustrativo limitado a [min, max]; zero vendas retorna o mínimo
func (e *Engine) CreditScore(monthTotal float64) int {
	if monthTotal == 0 || notFinite(monthTotal) {
		return e.policy.CreditScoreMin
	}

	score := math.Floor(monthTotal/e.policy.CreditScoreDivisor + 0.5)
	switch {
	case score < float64(e.policy.CreditScoreMin):
		return e.policy.CreditScoreMin
	case score > float64(e.policy.CreditScoreMax):
		return e.policy.CreditScoreMax
	}

	return int(score)
}

// Derive calcula todas as métricas derivadas para o dia de referência
func (e *Engine) Derive(summary *domain.SalesSummary, referenceDate time.Time, windowSize int) *domain.DerivedMetrics {
	if windowSize < 1 {
		windowSize = e.policy.WindowDays
	}

	var entries []domain.SaleEntry
	if summary != nil {
		entries = summary.Entries
	}

	aggregates := e.ComputeAggregates(summary)

	return &domain.DerivedMetrics{
		Aggregates:          aggregates,
		TodayTotal:          ComputeTodayTotal(entries, referenceDate),
		DailySeries:         BuildDailySeries(entries, referenceDate, windowSize),
		MonthlySeries:       BuildMonthlySeries(entries),
		SuggestedLoanAmount: e.SuggestedLoanAmount(aggregates.MonthTotal),
		ReferenceDate:       referenceDate.Format(domain.DateKeyLayout),
	}
}

func sumByDay(entries []domain.SaleEntry) map[string]float64 {
	byDay := make(map[string]float64, len(entries))
	for _, entry := range entries {
		if key, ok := DateKey(entry.Date); ok {
			byDay[key] += entry.Amount
		}
	}
	return byDay
}

// limites de int64 representáveis em float64; 2^63 já não cabe em int64
const (
	maxInt64Float = float64(math.MaxInt64)
	minInt64Float = float64(math.MinInt64)
)

// roundHalfUp arredonda como Math.round do JavaScript (meio para +infinito),
// saturando nos limites de int64
func roundHalfUp(f float64) int64 {
	rounded := math.Floor(f + 0.5)
	switch {
	case rounded >= maxInt64Float:
		return math.MaxInt64
	case rounded <= minInt64Float:
		return math.MinInt64
	}
	return int64(rounded)
}

func notFinite(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}
