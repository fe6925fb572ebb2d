package lending

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrMissingSession        = errors.New("sessão ausente")
	ErrInsufficientPrivilege = errors.New("apenas administradores podem revisar pedidos")
	ErrAmountOutOfRange      = errors.New("valor do empréstimo fora do intervalo")
	ErrInvalidPurpose        = errors.New("finalidade do empréstimo inválida")
	ErrInvalidStatus         = errors.New("status de revisão inválido")
	ErrApplicationNotFound   = errors.New("pedido de empréstimo não encontrado")
	ErrAlreadyReviewed       = errors.New("pedido de empréstimo já revisado")
	ErrDatabaseOperation     = errors.New("erro ao realizar operação no banco de dados")
)

// LendingError carrega o código da API e, para valores fora do intervalo, os limites aceitos
type LendingError struct {
	Err       error
	Code      string
	Details   string
	MinAmount int64
	MaxAmount int64
}

func (e *LendingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *LendingError) Unwrap() error {
	return e.Err
}

func NewLendingError(baseErr error, code string, details string) *LendingError {
	return &LendingError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
