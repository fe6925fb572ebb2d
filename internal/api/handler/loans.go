package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vendorhub-api/internal/domain"
	"github.com/vfg2006/vendorhub-api/internal/i18n"
	"github.com/vfg2006/vendorhub-api/internal/session"
	"github.com/vfg2006/vendorhub-api/internal/usecases/lending"
	"github.com/vfg2006/vendorhub-api/pkg/apiErrors"
)

type LoanQuoteResponse struct {
	*domain.LoanQuote
	Message string `json:"message"`
}

type LoanPurposeOption struct {
	Value domain.LoanPurpose `json:"value"`
	Label string             `json:"label"`
}

var purposeLabels = map[domain.LoanPurpose]i18n.MessageKey{
	domain.LoanPurposeEquipment:     i18n.MsgPurposeEquipment,
	domain.LoanPurposeStock:         i18n.MsgPurposeStock,
	domain.LoanPurposeExpansion:     i18n.MsgPurposeExpansion,
	domain.LoanPurposeEstablishment: i18n.MsgPurposeEstablishment,
	domain.LoanPurposeOther:         i18n.MsgPurposeOther,
}

// GetLoanQuote simula as parcelas de um empréstimo dentro do limite do vendedor
func GetLoanQuote(service lending.Lender, catalog *i18n.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetLoanQuote")

		locale := requestLocale(r)
		sess, _ := session.FromContext(r.Context())

		var amount int64
		if raw := strings.TrimSpace(r.URL.Query().Get("amount")); raw != "" {
			parsed, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || parsed < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, catalog.Message(locale, i18n.MsgLoanInvalidAmount), nil)
				return
			}
			amount = parsed
		}

		quote, err := service.Quote(r.Context(), sess, amount)
		if err != nil {
			handleLendingError(w, r, catalog, err)
			return
		}

		writeJSON(w, r, http.StatusOK, LoanQuoteResponse{
			LoanQuote: quote,
			Message:   catalog.Message(locale, i18n.MsgLoanEligible, quote.MaxAmount),
		})
	}
}

// ListLoanPurposes lista as finalidades aceitas com o rótulo no idioma da requisição
func ListLoanPurposes(catalog *i18n.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locale := requestLocale(r)

		options := make([]LoanPurposeOption, 0, len(domain.LoanPurposes))
		for _, purpose := range domain.LoanPurposes {
			options = append(options, LoanPurposeOption{
				Value: purpose,
				Label: catalog.Message(locale, purposeLabels[purpose]),
			})
		}

		writeJSON(w, r, http.StatusOK, options)
	}
}

// ApplyLoan cria um pedido de empréstimo pendente para o vendedor autenticado
func ApplyLoan(service lending.Lender, catalog *i18n.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ApplyLoan")

		locale := requestLocale(r)
		sess, _ := session.FromContext(r.Context())

		var req domain.LoanApplicationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, catalog.Message(locale, i18n.MsgInvalidRequest), nil)
			return
		}

		application, err := service.Apply(r.Context(), sess, req)
		if err != nil {
			handleLendingError(w, r, catalog, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, map[string]any{
			"message":     catalog.Message(locale, i18n.MsgLoanApplied),
			"application": application,
		})
	}
}

func ListMyLoans(service lending.Lender, catalog *i18n.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListMyLoans")

		sess, _ := session.FromContext(r.Context())

		applications, err := service.ListMine(r.Context(), sess)
		if err != nil {
			handleLendingError(w, r, catalog, err)
			return
		}

		writeJSON(w, r, http.StatusOK, applications)
	}
}

// ListLoanApplications lista todos os pedidos, opcionalmente filtrando por ?status=
func ListLoanApplications(service lending.Lender, catalog *i18n.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListLoanApplications")

		applications, err := service.ListAll(r.Context(), r.URL.Query().Get("status"))
		if err != nil {
			handleLendingError(w, r, catalog, err)
			return
		}

		writeJSON(w, r, http.StatusOK, applications)
	}
}

func ReviewLoanApplication(service lending.Lender, catalog *i18n.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ReviewLoanApplication")

		locale := requestLocale(r)
		sess, _ := session.FromContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, catalog.Message(locale, i18n.MsgInvalidRequest), nil)
			return
		}

		var req domain.LoanReviewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, catalog.Message(locale, i18n.MsgInvalidRequest), nil)
			return
		}

		application, err := service.Review(r.Context(), sess, id, req)
		if err != nil {
			handleLendingError(w, r, catalog, err)
			return
		}

		writeJSON(w, r, http.StatusOK, application)
	}
}
