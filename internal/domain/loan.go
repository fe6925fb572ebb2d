package domain

import "time"

type LoanApplicationStatus string

const (
	LoanApplicationStatusPending  LoanApplicationStatus = "pending"
	LoanApplicationStatusApproved LoanApplicationStatus = "approved"
	LoanApplicationStatusRejected LoanApplicationStatus = "rejected"
)

func (s LoanApplicationStatus) IsValid() bool {
	switch s {
	case LoanApplicationStatusPending, LoanApplicationStatusApproved, LoanApplicationStatusRejected:
		return true
	}
	return false
}

type LoanPurpose string

const (
	LoanPurposeEquipment     LoanPurpose = "equipment"
	LoanPurposeStock         LoanPurpose = "stock"
	LoanPurposeExpansion     LoanPurpose = "expansion"
	LoanPurposeEstablishment LoanPurpose = "establishment"
	LoanPurposeOther         LoanPurpose = "other"
)

var LoanPurposes = []LoanPurpose{
	LoanPurposeEquipment,
	LoanPurposeStock,
	LoanPurposeExpansion,
	LoanPurposeEstablishment,
	LoanPurposeOther,
}

// LoanApplication representa um pedido de empréstimo de um vendedor
type LoanApplication struct {
	ID          string                `json:"id"`
	VendorID    string                `json:"vendor_id"`
	Amount      int64                 `json:"amount"`
	Purpose     LoanPurpose           `json:"purpose"`
	Status      LoanApplicationStatus `json:"status"`
	AppliedDate time.Time             `json:"applied_date"`
	ReviewedBy  *string               `json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time            `json:"reviewed_at,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

type LoanApplicationRequest struct {
	Amount  int64       `json:"amount"`
	Purpose LoanPurpose `json:"purpose"`
}

type LoanReviewRequest struct {
	Status LoanApplicationStatus `json:"status"`
}

// LoanQuote é a simulação de parcelas (juros simples anuais)
type LoanQuote struct {
	Amount       int64   `json:"amount"`
	TenureMonths int     `json:"tenure_months"`
	AnnualRate   float64 `json:"annual_rate"`
	TotalPayable int64   `json:"total_payable"`
	MonthlyEMI   int64   `json:"monthly_emi"`
	MinAmount    int64   `json:"min_amount"`
	MaxAmount    int64   `json:"max_amount"`
}

// LoanApplicationFilters filtra a listagem administrativa
type LoanApplicationFilters struct {
	VendorID string
	Status   *LoanApplicationStatus
}
