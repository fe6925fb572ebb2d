package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/vendorhub-api/internal/i18n"
	"github.com/vfg2006/vendorhub-api/internal/usecases/lending"
	"github.com/vfg2006/vendorhub-api/internal/usecases/selling"
	"github.com/vfg2006/vendorhub-api/pkg/apiErrors"
	"github.com/vfg2006/vendorhub-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// requestLocale negocia o idioma pelo ?lang= e pelo Accept-Language
func requestLocale(r *http.Request) i18n.Locale {
	return i18n.Negotiate(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

func handleSalesError(w http.ResponseWriter, r *http.Request, catalog *i18n.Catalog, err error) {
	locale := requestLocale(r)
	logger := log.ForContext(r.Context()).WithError(err)

	var salesErr *selling.SalesError
	if !errors.As(err, &salesErr) {
		logger.Error("sales: erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, catalog.Message(locale, i18n.MsgInternalError), nil)
		return
	}

	var message string
	switch {
	case errors.Is(err, selling.ErrInvalidAmount):
		message = catalog.Message(locale, i18n.MsgAmountMustBePositive)
	case errors.Is(err, selling.ErrInvalidDate):
		message = catalog.Message(locale, i18n.MsgInvalidSaleDate, salesErr.Details)
	case errors.Is(err, selling.ErrInvalidWindow):
		message = catalog.Message(locale, i18n.MsgInvalidWindow)
	case errors.Is(err, selling.ErrSessionRejected):
		message = catalog.Message(locale, i18n.MsgSessionExpired)
	case errors.Is(err, selling.ErrMissingSession):
		message = catalog.Message(locale, i18n.MsgUnauthenticated)
	case errors.Is(err, selling.ErrStoreRejectedRecord):
		message = catalog.Message(locale, i18n.MsgInvalidRequest)
	default:
		message = catalog.Message(locale, i18n.MsgStoreUnavailable)
	}

	if apiErrors.StatusFor(salesErr.Code) >= http.StatusInternalServerError {
		logger.Error("sales: falha ao atender requisição")
	} else {
		logger.Warn("sales: requisição recusada")
	}

	apiErrors.WriteError(w, salesErr.Code, message, nil)
}

func handleLendingError(w http.ResponseWriter, r *http.Request, catalog *i18n.Catalog, err error) {
	var lendingErr *lending.LendingError
	if !errors.As(err, &lendingErr) {
		// falhas ao buscar o resumo de vendas chegam sem embrulho
		handleSalesError(w, r, catalog, err)
		return
	}

	locale := requestLocale(r)
	logger := log.ForContext(r.Context()).WithError(err)

	var (
		message string
		details any
	)
	switch {
	case errors.Is(err, lending.ErrAmountOutOfRange):
		message = catalog.Message(locale, i18n.MsgLoanAmountOutOfRange, lendingErr.MinAmount, lendingErr.MaxAmount)
		details = map[string]int64{
			"min_amount": lendingErr.MinAmount,
			"max_amount": lendingErr.MaxAmount,
		}
	case errors.Is(err, lending.ErrInvalidPurpose):
		message = catalog.Message(locale, i18n.MsgLoanInvalidPurpose, lendingErr.Details)
	case errors.Is(err, lending.ErrInvalidStatus):
		message = catalog.Message(locale, i18n.MsgLoanInvalidStatus, lendingErr.Details)
	case errors.Is(err, lending.ErrApplicationNotFound):
		message = catalog.Message(locale, i18n.MsgLoanNotFound)
	case errors.Is(err, lending.ErrAlreadyReviewed):
		message = catalog.Message(locale, i18n.MsgLoanAlreadyReviewed)
	case errors.Is(err, lending.ErrInsufficientPrivilege):
		message = catalog.Message(locale, i18n.MsgForbidden)
	case errors.Is(err, lending.ErrMissingSession):
		message = catalog.Message(locale, i18n.MsgUnauthenticated)
	default:
		message = catalog.Message(locale, i18n.MsgInternalError)
	}

	if apiErrors.StatusFor(lendingErr.Code) >= http.StatusInternalServerError {
		logger.Error("lending: falha ao atender requisição")
	} else {
		logger.Warn("lending: requisição recusada")
	}

	apiErrors.WriteError(w, lendingErr.Code, message, details)
}

func NotFound(catalog *i18n.Catalog) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrRouteNotFound, catalog.Message(requestLocale(r), i18n.MsgRouteNotFound), nil)
	})
}

func MethodNotAllowed(catalog *i18n.Catalog) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, catalog.Message(requestLocale(r), i18n.MsgMethodNotAllowed), nil)
	})
}
