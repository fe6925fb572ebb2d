package middleware

import (
	"net/http"
	"strings"

	"github.com/vfg2006/vendorhub-api/internal/i18n"
	"github.com/vfg2006/vendorhub-api/pkg/apiErrors"
)

// TimeZone lê o fuso do cliente de ?tz= ou do cabeçalho X-Timezone. Sem nenhum dos
// dois, o dia de referência segue o fuso do servidor.
func TimeZone(catalog *i18n.Catalog) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			name := r.URL.Query().Get("tz")
			if name == "" {
				name = r.Header.Get(i18n.TimeZoneHeader)
			}

			loc, err := i18n.ParseTimeZone(name)
			if err != nil {
				locale := i18n.Negotiate(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))
				apiErrors.WriteError(w, apiErrors.ErrInvalidTimezone, catalog.Message(locale, i18n.MsgInvalidTimezone, strings.TrimSpace(name)), nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(i18n.WithTimeZone(r.Context(), loc)))
		})
	}
}
