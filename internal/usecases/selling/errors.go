package selling

import (
	"fmt"

	"github.com/pkg/errors"
	salesstoredomain "github.com/vfg2006/vendorhub-api/infrastructure/integrator/salesstore/domain"
	"github.com/vfg2006/vendorhub-api/pkg/apiErrors"
)

var (
	ErrMissingSession      = errors.New("sessão ausente")
	ErrInvalidAmount       = errors.New("valor de venda inválido")
	ErrInvalidDate         = errors.New("data de venda inválida")
	ErrInvalidWindow       = errors.New("janela inválida")
	ErrSessionRejected     = errors.New("sessão recusada pelo sales store")
	ErrStoreUnavailable    = errors.New("sales store indisponível")
	ErrStoreRejectedRecord = errors.New("sales store recusou a venda")
)

// SalesError carrega o código da API junto do erro base
type SalesError struct {
	Err     error
	Code    string
	Details string
}

func (e *SalesError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SalesError) Unwrap() error {
	return e.Err
}

func NewSalesError(baseErr error, code string, details string) *SalesError {
	return &SalesError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// fromStoreError traduz falhas do Sales Entry Store para erros da API
func fromStoreError(err error, operation string) *SalesError {
	var storeErr *salesstoredomain.StoreError
	if errors.As(err, &storeErr) {
		switch {
		case storeErr.IsUnauthorized():
			return NewSalesError(ErrSessionRejected, apiErrors.ErrInvalidToken, storeErr.Error())
		case storeErr.IsClientError():
			return NewSalesError(ErrStoreRejectedRecord, apiErrors.ErrInvalidRequest, storeErr.Detail)
		}
	}

	return NewSalesError(ErrStoreUnavailable, apiErrors.ErrExternalService, fmt.Sprintf("%s: %v", operation, err))
}
