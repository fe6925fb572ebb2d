// Package session carrega a sessão autenticada do vendedor pelo context.Context
package session

import (
	"context"
	"time"

	"github.com/vfg2006/vendorhub-api/internal/domain"
)

type contextKey struct{}

// Session representa o usuário autenticado da requisição
type Session struct {
	VendorID    string
	Email       string
	Role        string
	AccessToken string
	ExpiresAt   time.Time
}

// IsAdmin indica se a sessão pertence a um administrador
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == domain.RoleAdmin
}

// Expired indica se o token já passou da validade em relação a now
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// NewContext retorna uma cópia de ctx carregando a sessão
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext obtém a sessão do contexto, se houver
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok && s != nil
}
