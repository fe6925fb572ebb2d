package middleware

import (
	"net/http"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vendorhub-api/internal/domain"
	"github.com/vfg2006/vendorhub-api/internal/i18n"
	"github.com/vfg2006/vendorhub-api/internal/session"
	"github.com/vfg2006/vendorhub-api/pkg/apiErrors"
)

// RoleMiddleware cria um middleware que restringe o acesso com base nos papéis da sessão
func RoleMiddleware(catalog *i18n.Catalog, allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := i18n.Negotiate(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))

			sess, ok := session.FromContext(r.Context())
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrMissingToken, catalog.Message(locale, i18n.MsgUnauthenticated), nil)
				return
			}

			if !slices.Contains(allowedRoles, sess.Role) {
				logrus.Warningf("Acesso negado para vendedor ID=%s, Role=%s", sess.VendorID, sess.Role)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, catalog.Message(locale, i18n.MsgForbidden), nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly permite acesso apenas para administradores
func AdminOnly(catalog *i18n.Catalog) func(http.Handler) http.Handler {
	return RoleMiddleware(catalog, domain.RoleAdmin)
}

// AllRoles permite acesso para vendedores e administradores
func AllRoles(catalog *i18n.Catalog) func(http.Handler) http.Handler {
	return RoleMiddleware(catalog, domain.RoleAdmin, domain.RoleVendor)
}
