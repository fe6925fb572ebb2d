package aggregating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/vendorhub-api/internal/domain"
)

func TestEngine_Quote(t *testing.T) {
	engine := NewEngine(domain.DefaultMetricsPolicy())

	tests := []struct {
		name      string
		amount    int64
		loanCap   int64
		wantTotal int64
		wantEMI   int64
	}{
		{name: "Piso", amount: 10000, loanCap: 10000, wantTotal: 10800, wantEMI: 900},
		{name: "Valor intermediário", amount: 25000, loanCap: 60000, wantTotal: 27000, wantEMI: 2250},
		{name: "Arredondamento da parcela", amount: 12345, loanCap: 20000, wantTotal: 13333, wantEMI: 1111},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := engine.Quote(tt.amount, tt.loanCap)

			assert.Equal(t, tt.amount, quote.Amount)
			assert.Equal(t, 12, quote.TenureMonths)
			assert.Equal(t, 0.08, quote.AnnualRate)
			assert.Equal(t, tt.wantTotal, quote.TotalPayable)
			assert.Equal(t, tt.wantEMI, quote.MonthlyEMI)
			assert.Equal(t, int64(10000), quote.MinAmount)
			assert.Equal(t, tt.loanCap, quote.MaxAmount)
		})
	}
}

func TestEngine_Quote_ZeroTenureUsesOneMonth(t *testing.T) {
	policy := domain.DefaultMetricsPolicy()
	policy.TenureMonths = 0

	quote := NewEngine(policy).Quote(12000, 12000)

	assert.Equal(t, 1, quote.TenureMonths)
	assert.Equal(t, int64(12080), quote.MonthlyEMI)
}

func TestEngine_WithinLoanBounds(t *testing.T) {
	engine := NewEngine(domain.DefaultMetricsPolicy())

	assert.True(t, engine.WithinLoanBounds(10000, 10000))
	assert.True(t, engine.WithinLoanBounds(15000, 20000))
	assert.False(t, engine.WithinLoanBounds(9999, 20000))
	assert.False(t, engine.WithinLoanBounds(20001, 20000))
}
