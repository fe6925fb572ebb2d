package aggregating

import "github.com/vfg2006/vendorhub-api/internal/domain"

// Quote simula as parcelas de um empréstimo com juros simples sobre o prazo.
// O valor não é validado contra os limites; isso fica com quem chama.
func (e *Engine) Quote(amount int64, loanCap int64) domain.LoanQuote {
	tenure := max(1, e.policy.TenureMonths)
	years := float64(tenure) / 12

	total := float64(amount) * (1 + e.policy.AnnualInterestRate*years)

	return domain.LoanQuote{
		Amount:       amount,
		TenureMonths: tenure,
		AnnualRate:   e.policy.AnnualInterestRate,
		TotalPayable: roundHalfUp(total),
		MonthlyEMI:   roundHalfUp(total / float64(tenure)),
		MinAmount:    e.LoanFloor(),
		MaxAmount:    loanCap,
	}
}

// WithinLoanBounds verifica se o valor está entre o piso e o teto de empréstimo
func (e *Engine) WithinLoanBounds(amount int64, loanCap int64) bool {
	return amount >= e.LoanFloor() && amount <= loanCap
}

// LoanFloor é o piso do empréstimo em rúpias inteiras
func (e *Engine) LoanFloor() int64 {
	return roundHalfUp(e.policy.LoanFloor)
}
