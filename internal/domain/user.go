package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin  = "admin"
	RoleVendor = "vendor"
)

// Claims são as claims do token de sessão emitido pelo provedor de identidade.
// O vendedor é identificado pelo "sub".
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}
