package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vendorhub-api/internal/domain"
	"github.com/vfg2006/vendorhub-api/internal/i18n"
	"github.com/vfg2006/vendorhub-api/internal/session"
	"github.com/vfg2006/vendorhub-api/internal/usecases/selling"
	"github.com/vfg2006/vendorhub-api/pkg/apiErrors"
)

// GetSalesMetrics devolve as métricas derivadas do resumo do vendedor
func GetSalesMetrics(service selling.Seller, catalog *i18n.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetSalesMetrics")

		locale := requestLocale(r)
		sess, _ := session.FromContext(r.Context())

		window := 0
		if raw := strings.TrimSpace(r.URL.Query().Get("window")); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidWindow, catalog.Message(locale, i18n.MsgInvalidWindow), nil)
				return
			}
			window = parsed
		}

		metrics, err := service.GetMetrics(r.Context(), sess, window, locale)
		if err != nil {
			handleSalesError(w, r, catalog, err)
			return
		}

		w.Header().Set("Content-Language", string(locale))
		writeJSON(w, r, http.StatusOK, metrics)
	}
}

// RecordSale registra uma venda e devolve as métricas recalculadas
func RecordSale(service selling.Seller, catalog *i18n.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RecordSale")

		locale := requestLocale(r)
		sess, _ := session.FromContext(r.Context())

		var req domain.RecordSaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, catalog.Message(locale, i18n.MsgInvalidRequest), nil)
			return
		}

		metrics, err := service.RecordSale(r.Context(), sess, req, locale)
		if err != nil {
			handleSalesError(w, r, catalog, err)
			return
		}

		w.Header().Set("Content-Language", string(locale))
		writeJSON(w, r, http.StatusCreated, metrics)
	}
}
