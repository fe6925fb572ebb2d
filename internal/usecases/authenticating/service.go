package authenticating

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/vfg2006/vendorhub-api/internal/config"
	"github.com/vfg2006/vendorhub-api/internal/domain"
	"github.com/vfg2006/vendorhub-api/internal/session"
	"github.com/vfg2006/vendorhub-api/pkg/apiErrors"
)

// Authenticator valida os tokens emitidos pelo provedor de identidade
type Authenticator interface {
	ValidateToken(tokenString string) (*session.Session, error)
}

type Service struct {
	secret []byte
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		secret: []byte(cfg.Auth.JWTSecret),
	}
}

// ValidateToken aceita apenas HS256 com exp obrigatório e monta a sessão a partir das claims
func (s *Service) ValidateToken(tokenString string) (*session.Session, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, NewAuthError(ErrMissingToken, apiErrors.ErrMissingToken, "")
	}

	if len(s.secret) == 0 {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "segredo de assinatura não configurado")
	}

	claims := &domain.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	if !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	if claims.Subject == "" {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "claim sub ausente")
	}

	sess := &session.Session{
		VendorID:    claims.Subject,
		Email:       claims.Email,
		Role:        normalizeRole(claims.Role),
		AccessToken: tokenString,
	}
	if claims.ExpiresAt != nil {
		sess.ExpiresAt = claims.ExpiresAt.Time
	}

	return sess, nil
}

func normalizeRole(role string) string {
	if strings.EqualFold(strings.TrimSpace(role), domain.RoleAdmin) {
		return domain.RoleAdmin
	}
	return domain.RoleVendor
}
