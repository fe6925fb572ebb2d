package middleware

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/vendorhub-api/internal/i18n"
	"github.com/vfg2006/vendorhub-api/internal/session"
	"github.com/vfg2006/vendorhub-api/internal/usecases/authenticating"
	"github.com/vfg2006/vendorhub-api/pkg/apiErrors"
	"github.com/vfg2006/vendorhub-api/pkg/log"
)

// rotas que não exigem sessão
var publicPaths = map[string]struct{}{
	"/healthcheck":                {},
	"/v1/upstream/status":         {},
	"/v1/verify/ids":              {},
	"/v1/policies/street-vendors": {},
}

func isPublicPath(path string) bool {
	_, ok := publicPaths[path]
	return ok
}

// AuthMiddleware valida o Bearer token e coloca a sessão no contexto da requisição
func AuthMiddleware(authService authenticating.Authenticator, catalog *i18n.Catalog) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions || isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			locale := i18n.Negotiate(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))

			authHeader := r.Header.Get("Authorization")
			tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || strings.TrimSpace(tokenString) == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingToken, catalog.Message(locale, i18n.MsgUnauthenticated), nil)
				return
			}

			sess, err := authService.ValidateToken(tokenString)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("Token recusado")

				code := apiErrors.ErrInvalidToken
				message := catalog.Message(locale, i18n.MsgUnauthenticated)
				if errors.Is(err, authenticating.ErrExpiredToken) {
					code = apiErrors.ErrExpiredToken
					message = catalog.Message(locale, i18n.MsgSessionExpired)
				}

				apiErrors.WriteError(w, code, message, nil)
				return
			}

			ctx := session.NewContext(r.Context(), sess)
			ctx = log.WithVendorID(ctx, sess.VendorID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
