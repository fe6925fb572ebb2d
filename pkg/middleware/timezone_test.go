package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/vendorhub-api/internal/i18n"
	"github.com/vfg2006/vendorhub-api/pkg/apiErrors"
)

func TestTimeZone(t *testing.T) {
	catalog := i18n.Default()

	tests := []struct {
		name       string
		target     string
		header     string
		wantStatus int
		wantZone   string
	}{
		{name: "Sem fuso", target: "/v1/sales/metrics", wantStatus: http.StatusOK},
		{name: "Cabeçalho", target: "/v1/sales/metrics", header: "Asia/Kolkata", wantStatus: http.StatusOK, wantZone: "Asia/Kolkata"},
		{name: "Query tem precedência", target: "/v1/sales/metrics?tz=America/Sao_Paulo", header: "Asia/Kolkata", wantStatus: http.StatusOK, wantZone: "America/Sao_Paulo"},
		{name: "Fuso desconhecido", target: "/v1/sales/metrics?tz=Mars/Olympus", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotZone := ""
			handler := TimeZone(catalog)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if loc, ok := i18n.TimeZoneFromContext(r.Context()); ok {
					gotZone = loc.String()
				}
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set(i18n.TimeZoneHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantZone, gotZone)
			if tt.wantStatus == http.StatusBadRequest {
				assert.Equal(t, apiErrors.ErrInvalidTimezone, decodeCode(t, rec))
				assert.Contains(t, rec.Body.String(), "Mars/Olympus")
			}
		})
	}
}
