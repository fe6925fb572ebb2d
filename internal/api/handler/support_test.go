package handler

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/vendorhub-api/internal/domain"
	"github.com/vfg2006/vendorhub-api/internal/i18n"
	"github.com/vfg2006/vendorhub-api/internal/usecases/supporting"
	supportmocks "github.com/vfg2006/vendorhub-api/internal/usecases/supporting/mocks"
	"github.com/vfg2006/vendorhub-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestFileComplaint(t *testing.T) {
	catalog := i18n.Default()

	t.Run("Reclamação registrada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		supporter := supportmocks.NewMockSupporter(ctrl)
		supporter.EXPECT().
			FileComplaint(gomock.Any(), vendorSession, domain.ComplaintRequest{Subject: "Multa", Description: "Multa sem aviso prévio"}).
			Return(&domain.Complaint{ID: "c-1", VendorID: "vendor-1", Status: domain.ComplaintStatusOpen}, nil)

		rec := serve(t, Support(supporter, catalog, nil), vendorSession, http.MethodPost, "/v1/complaints", `{"subject":"Multa","description":"Multa sem aviso prévio"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var got map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, catalog.Message(i18n.LocaleEN, i18n.MsgComplaintFiled), got["message"])
		complaint, ok := got["complaint"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "c-1", complaint["id"])
	})

	t.Run("Tamanho de campo inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		supporter := supportmocks.NewMockSupporter(ctrl)
		supporter.EXPECT().FileComplaint(gomock.Any(), vendorSession, gomock.Any()).Return(nil, &supporting.SupportError{
			Err:   supporting.ErrFieldLength,
			Code:  apiErrors.ErrInvalidFieldLength,
			Field: "subject",
			Min:   supporting.SubjectMinLength,
			Max:   supporting.SubjectMaxLength,
		})

		rec := serve(t, Support(supporter, catalog, nil), vendorSession, http.MethodPost, "/v1/complaints", `{"subject":"a","description":"Multa sem aviso prévio"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, apiErrors.ErrInvalidFieldLength, body.Code)
		assert.Equal(t, catalog.Message(i18n.LocaleEN, i18n.MsgFieldLength, "subject", supporting.SubjectMinLength, supporting.SubjectMaxLength), body.Message)

		details, ok := body.Details.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "subject", details["field"])
		assert.EqualValues(t, supporting.SubjectMinLength, details["min_length"])
		assert.EqualValues(t, supporting.SubjectMaxLength, details["max_length"])
	})

	t.Run("JSON inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		supporter := supportmocks.NewMockSupporter(ctrl)

		rec := serve(t, Support(supporter, catalog, nil), vendorSession, http.MethodPost, "/v1/complaints", `{"subject":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)
	})

	t.Run("Erro inesperado vira erro interno", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		supporter := supportmocks.NewMockSupporter(ctrl)
		supporter.EXPECT().FileComplaint(gomock.Any(), vendorSession, gomock.Any()).Return(nil, errors.New("boom"))

		rec := serve(t, Support(supporter, catalog, nil), vendorSession, http.MethodPost, "/v1/complaints", `{"subject":"Multa","description":"Multa sem aviso prévio"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apiErrors.ErrInternalServer, decodeError(t, rec).Code)
	})
}

func TestListComplaints(t *testing.T) {
	catalog := i18n.Default()

	ctrl := gomock.NewController(t)
	supporter := supportmocks.NewMockSupporter(ctrl)
	supporter.EXPECT().ListComplaints(gomock.Any(), adminSession).Return([]*domain.Complaint{}, nil)

	rec := serve(t, Support(supporter, catalog, nil), adminSession, http.MethodGet, "/v1/complaints", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestRequestItem(t *testing.T) {
	catalog := i18n.Default()

	t.Run("Pedido registrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		supporter := supportmocks.NewMockSupporter(ctrl)
		supporter.EXPECT().
			RequestItem(gomock.Any(), vendorSession, domain.ItemRequestPayload{ItemName: "Carrinho", Quantity: 2}).
			Return(&domain.ItemRequest{ID: "i-1", ItemName: "Carrinho", Quantity: 2}, nil)

		rec := serve(t, Support(supporter, catalog, nil), vendorSession, http.MethodPost, "/v1/items/requests", `{"item_name":"Carrinho","quantity":2}`)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var got map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, catalog.Message(i18n.LocaleEN, i18n.MsgItemRequested), got["message"])
	})

	t.Run("Quantidade fora do intervalo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		supporter := supportmocks.NewMockSupporter(ctrl)
		supporter.EXPECT().RequestItem(gomock.Any(), vendorSession, gomock.Any()).Return(nil, &supporting.SupportError{
			Err:   supporting.ErrInvalidQuantity,
			Code:  apiErrors.ErrInvalidQuantity,
			Field: "quantity",
			Min:   supporting.MinItemQuantity,
			Max:   supporting.MaxItemQuantity,
		})

		rec := serve(t, Support(supporter, catalog, nil), vendorSession, http.MethodPost, "/v1/items/requests", `{"item_name":"Carrinho","quantity":0}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, apiErrors.ErrInvalidQuantity, body.Code)

		details, ok := body.Details.(map[string]any)
		require.True(t, ok)
		assert.EqualValues(t, supporting.MinItemQuantity, details["min_quantity"])
		assert.EqualValues(t, supporting.MaxItemQuantity, details["max_quantity"])
	})
}

func TestListItemRequests(t *testing.T) {
	catalog := i18n.Default()

	ctrl := gomock.NewController(t)
	supporter := supportmocks.NewMockSupporter(ctrl)
	supporter.EXPECT().ListItemRequests(gomock.Any(), vendorSession).Return([]*domain.ItemRequest{{ID: "i-1"}}, nil)

	rec := serve(t, Support(supporter, catalog, nil), vendorSession, http.MethodGet, "/v1/items/requests", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestVerifyIDs(t *testing.T) {
	catalog := i18n.Default()

	t.Run("Formato conferido sem sessão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		supporter := supportmocks.NewMockSupporter(ctrl)
		gstin := "27AAPFU0939F1ZV"
		valid := true
		supporter.EXPECT().VerifyIDs(domain.IDVerificationRequest{GSTIN: &gstin}).Return(&domain.IDVerificationResult{
			GSTIN:            &gstin,
			GSTINValidFormat: &valid,
			Source:           domain.IDVerificationSourceFormat,
		}, nil)

		rec := serve(t, Support(supporter, catalog, nil), nil, http.MethodPost, "/v1/verify/ids", `{"gstin":"27AAPFU0939F1ZV"}`)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, true, got["gstin_valid_format"])
		assert.Equal(t, domain.IDVerificationSourceFormat, got["source"])
		assert.NotContains(t, got, "fssai")
	})

	t.Run("Nenhum identificador informado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		supporter := supportmocks.NewMockSupporter(ctrl)
		supporter.EXPECT().VerifyIDs(domain.IDVerificationRequest{}).
			Return(nil, supporting.NewSupportError(supporting.ErrNothingToVerify, apiErrors.ErrNothingToVerify, ""))

		rec := serve(t, Support(supporter, catalog, nil), nil, http.MethodPost, "/v1/verify/ids", `{}`, "Accept-Language", "hi")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, apiErrors.ErrNothingToVerify, body.Code)
		assert.Equal(t, catalog.Message(i18n.LocaleHI, i18n.MsgVerifyIDsRequired), body.Message)
	})
}

func TestListStreetVendorPolicies(t *testing.T) {
	catalog := i18n.Default()
	service := supporting.NewService(nil)

	t.Run("Filtro por região", func(t *testing.T) {
		rec := serve(t, Support(service, catalog, nil), nil, http.MethodGet, "/v1/policies/street-vendors?region=INDIA", "")

		assert.Equal(t, http.StatusOK, rec.Code)

		var got []domain.Policy
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.NotEmpty(t, got)
	})

	t.Run("Região sem políticas devolve lista vazia", func(t *testing.T) {
		rec := serve(t, Support(service, catalog, nil), nil, http.MethodGet, "/v1/policies/street-vendors?region=atlantis", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})
}
