package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vendorhub-api/internal/domain"
	"github.com/vfg2006/vendorhub-api/internal/i18n"
	"github.com/vfg2006/vendorhub-api/internal/session"
	"github.com/vfg2006/vendorhub-api/internal/usecases/supporting"
	"github.com/vfg2006/vendorhub-api/pkg/apiErrors"
	"github.com/vfg2006/vendorhub-api/pkg/log"
)

// FileComplaint registra uma reclamação do vendedor autenticado
func FileComplaint(service supporting.Supporter, catalog *i18n.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - FileComplaint")

		locale := requestLocale(r)
		sess, _ := session.FromContext(r.Context())

		var req domain.ComplaintRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, catalog.Message(locale, i18n.MsgInvalidRequest), nil)
			return
		}

		complaint, err := service.FileComplaint(r.Context(), sess, req)
		if err != nil {
			handleSupportError(w, r, catalog, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, map[string]any{
			"message":   catalog.Message(locale, i18n.MsgComplaintFiled),
			"complaint": complaint,
		})
	}
}

func ListComplaints(service supporting.Supporter, catalog *i18n.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListComplaints")

		sess, _ := session.FromContext(r.Context())

		complaints, err := service.ListComplaints(r.Context(), sess)
		if err != nil {
			handleSupportError(w, r, catalog, err)
			return
		}

		writeJSON(w, r, http.StatusOK, complaints)
	}
}

// RequestItem registra um pedido de mercadoria ou insumo
func RequestItem(service supporting.Supporter, catalog *i18n.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RequestItem")

		locale := requestLocale(r)
		sess, _ := session.FromContext(r.Context())

		var req domain.ItemRequestPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, catalog.Message(locale, i18n.MsgInvalidRequest), nil)
			return
		}

		request, err := service.RequestItem(r.Context(), sess, req)
		if err != nil {
			handleSupportError(w, r, catalog, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, map[string]any{
			"message": catalog.Message(locale, i18n.MsgItemRequested),
			"request": request,
		})
	}
}

func ListItemRequests(service supporting.Supporter, catalog *i18n.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListItemRequests")

		sess, _ := session.FromContext(r.Context())

		requests, err := service.ListItemRequests(r.Context(), sess)
		if err != nil {
			handleSupportError(w, r, catalog, err)
			return
		}

		writeJSON(w, r, http.StatusOK, requests)
	}
}

// VerifyIDs confere o formato de GSTIN e FSSAI; não exige sessão
func VerifyIDs(service supporting.Supporter, catalog *i18n.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - VerifyIDs")

		var req domain.IDVerificationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, catalog.Message(requestLocale(r), i18n.MsgInvalidRequest), nil)
			return
		}

		result, err := service.VerifyIDs(req)
		if err != nil {
			handleSupportError(w, r, catalog, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}

// ListStreetVendorPolicies lista as políticas públicas, opcionalmente filtradas por ?region=
func ListStreetVendorPolicies(service supporting.Supporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.ListPolicies(r.URL.Query().Get("region")))
	}
}

func handleSupportError(w http.ResponseWriter, r *http.Request, catalog *i18n.Catalog, err error) {
	locale := requestLocale(r)
	logger := log.ForContext(r.Context()).WithError(err)

	var supportErr *supporting.SupportError
	if !errors.As(err, &supportErr) {
		logger.Error("support: erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, catalog.Message(locale, i18n.MsgInternalError), nil)
		return
	}

	var (
		message string
		details any
	)
	switch {
	case errors.Is(err, supporting.ErrFieldLength):
		message = catalog.Message(locale, i18n.MsgFieldLength, supportErr.Field, supportErr.Min, supportErr.Max)
		details = map[string]any{
			"field":      supportErr.Field,
			"min_length": supportErr.Min,
			"max_length": supportErr.Max,
		}
	case errors.Is(err, supporting.ErrFieldTooLong):
		message = catalog.Message(locale, i18n.MsgFieldTooLong, supportErr.Field, supportErr.Max)
		details = map[string]any{
			"field":      supportErr.Field,
			"max_length": supportErr.Max,
		}
	case errors.Is(err, supporting.ErrInvalidQuantity):
		message = catalog.Message(locale, i18n.MsgInvalidQuantity, supportErr.Max)
		details = map[string]int{
			"min_quantity": supportErr.Min,
			"max_quantity": supportErr.Max,
		}
	case errors.Is(err, supporting.ErrNothingToVerify):
		message = catalog.Message(locale, i18n.MsgVerifyIDsRequired)
	case errors.Is(err, supporting.ErrMissingSession):
		message = catalog.Message(locale, i18n.MsgUnauthenticated)
	default:
		message = catalog.Message(locale, i18n.MsgInternalError)
	}

	if apiErrors.StatusFor(supportErr.Code) >= http.StatusInternalServerError {
		logger.Error("support: falha ao atender requisição")
	} else {
		logger.Warn("support: requisição recusada")
	}

	apiErrors.WriteError(w, supportErr.Code, message, details)
}
