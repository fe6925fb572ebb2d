package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/vendorhub-api/internal/config"
	"github.com/vfg2006/vendorhub-api/internal/domain"
	"github.com/vfg2006/vendorhub-api/pkg/apiErrors"
)

const testSecret = "segredo-de-teste"

func newTestService(secret string) Authenticator {
	return NewService(&config.Config{Auth: config.Auth{JWTSecret: secret}})
}

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims domain.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims(role string, expiresAt time.Time) domain.Claims {
	return domain.Claims{
		Email: "vendedor@example.com",
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "vendor-42",
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
}

func TestValidateToken(t *testing.T) {
	expiresAt := time.Now().Add(time.Hour).Truncate(time.Second)

	t.Run("Token de vendedor válido", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("vendor", expiresAt))

		sess, err := newTestService(testSecret).ValidateToken(token)

		require.NoError(t, err)
		assert.Equal(t, "vendor-42", sess.VendorID)
		assert.Equal(t, "vendedor@example.com", sess.Email)
		assert.Equal(t, domain.RoleVendor, sess.Role)
		assert.Equal(t, token, sess.AccessToken)
		assert.True(t, expiresAt.Equal(sess.ExpiresAt))
		assert.False(t, sess.IsAdmin())
	})

	t.Run("Token de administrador", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("ADMIN", expiresAt))

		sess, err := newTestService(testSecret).ValidateToken(token)

		require.NoError(t, err)
		assert.True(t, sess.IsAdmin())
	})

	t.Run("Papel desconhecido vira vendedor", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("superuser", expiresAt))

		sess, err := newTestService(testSecret).ValidateToken(token)

		require.NoError(t, err)
		assert.Equal(t, domain.RoleVendor, sess.Role)
	})
}

func TestValidateToken_Errors(t *testing.T) {
	future := time.Now().Add(time.Hour)

	noSubject := validClaims("vendor", future)
	noSubject.Subject = ""

	noExpiry := validClaims("vendor", future)
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name     string
		secret   string
		token    func(t *testing.T) string
		wantErr  error
		wantCode string
	}{
		{
			name:     "Token vazio",
			secret:   testSecret,
			token:    func(t *testing.T) string { return "  " },
			wantErr:  ErrMissingToken,
			wantCode: apiErrors.ErrMissingToken,
		},
		{
			name:   "Token expirado",
			secret: testSecret,
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("vendor", time.Now().Add(-time.Hour)))
			},
			wantErr:  ErrExpiredToken,
			wantCode: apiErrors.ErrExpiredToken,
		},
		{
			name:   "Assinado com outro segredo",
			secret: testSecret,
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS256, []byte("outro"), validClaims("vendor", future))
			},
			wantErr:  ErrInvalidToken,
			wantCode: apiErrors.ErrInvalidToken,
		},
		{
			name:   "Algoritmo diferente de HS256",
			secret: testSecret,
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims("vendor", future))
			},
			wantErr:  ErrInvalidToken,
			wantCode: apiErrors.ErrInvalidToken,
		},
		{
			name:   "Sem claim sub",
			secret: testSecret,
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS256, []byte(testSecret), noSubject)
			},
			wantErr:  ErrInvalidToken,
			wantCode: apiErrors.ErrInvalidToken,
		},
		{
			name:   "Sem expiração",
			secret: testSecret,
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS256, []byte(testSecret), noExpiry)
			},
			wantErr:  ErrInvalidToken,
			wantCode: apiErrors.ErrInvalidToken,
		},
		{
			name:   "Segredo não configurado",
			secret: "",
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("vendor", future))
			},
			wantErr:  ErrInvalidToken,
			wantCode: apiErrors.ErrInvalidToken,
		},
		{
			name:     "Token malformado",
			secret:   testSecret,
			token:    func(t *testing.T) string { return "nao.e.jwt" },
			wantErr:  ErrInvalidToken,
			wantCode: apiErrors.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess, err := newTestService(tt.secret).ValidateToken(tt.token(t))

			require.Error(t, err)
			assert.Nil(t, sess)
			assert.True(t, errors.Is(err, tt.wantErr))
			assert.True(t, IsAuthorizationError(err))

			var authErr *AuthError
			require.True(t, errors.As(err, &authErr))
			assert.Equal(t, tt.wantCode, authErr.Code)
		})
	}
}
