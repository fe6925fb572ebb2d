package supporting

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrMissingSession    = errors.New("sessão ausente")
	ErrFieldLength       = errors.New("campo fora do tamanho permitido")
	ErrFieldTooLong      = errors.New("campo acima do tamanho máximo")
	ErrInvalidQuantity   = errors.New("quantidade fora do intervalo")
	ErrNothingToVerify   = errors.New("nenhum documento para verificar")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// SupportError carrega o código da API e, para erros de validação, o campo e os limites
type SupportError struct {
	Err     error
	Code    string
	Details string
	Field   string
	Min     int
	Max     int
}

func (e *SupportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SupportError) Unwrap() error {
	return e.Err
}

func NewSupportError(baseErr error, code string, details string) *SupportError {
	return &SupportError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
