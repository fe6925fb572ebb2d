package salesstoredomain

import (
	"fmt"
	"net/http"
)

// StoreError representa uma resposta não 2xx do store
type StoreError struct {
	Operation  string
	StatusCode int
	Detail     string
}

func (e *StoreError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("sales store: %s falhou com status %d: %s", e.Operation, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("sales store: %s falhou com status %d", e.Operation, e.StatusCode)
}

// IsUnauthorized indica que o store rejeitou o token do vendedor
func (e *StoreError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsClientError indica erro 4xx que não é de autenticação
func (e *StoreError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500 && !e.IsUnauthorized()
}
