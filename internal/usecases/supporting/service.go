// Package supporting registra reclamações e pedidos de itens dos vendedores, confere o
// formato de GSTIN e FSSAI e publica as políticas para vendedores ambulantes
package supporting

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vendorhub-api/infrastructure/repository"
	"github.com/vfg2006/vendorhub-api/internal/domain"
	"github.com/vfg2006/vendorhub-api/internal/session"
	"github.com/vfg2006/vendorhub-api/pkg/apiErrors"
	"github.com/vfg2006/vendorhub-api/pkg/utils"
)

// limites em caracteres, contados após remover espaços das pontas
const (
	SubjectMinLength          = 3
	SubjectMaxLength          = 200
	DescriptionMinLength      = 10
	DescriptionMaxLength      = 5000
	PreferredContactMaxLength = 200
	EvidenceURLMaxLength      = 500
	ItemNameMinLength         = 2
	ItemNameMaxLength         = 200
	NotesMaxLength            = 500
	MinItemQuantity           = 1
	MaxItemQuantity           = 10000
)

var (
	gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	fssaiPattern = regexp.MustCompile(`^[0-9]{14}$`)
)

type Supporter interface {
	FileComplaint(ctx context.Context, sess *session.Session, req domain.ComplaintRequest) (*domain.Complaint, error)
	ListComplaints(ctx context.Context, sess *session.Session) ([]*domain.Complaint, error)
	RequestItem(ctx context.Context, sess *session.Session, req domain.ItemRequestPayload) (*domain.ItemRequest, error)
	ListItemRequests(ctx context.Context, sess *session.Session) ([]*domain.ItemRequest, error)
	VerifyIDs(req domain.IDVerificationRequest) (*domain.IDVerificationResult, error)
	ListPolicies(region string) []domain.Policy
}

type Service struct {
	repo       repository.SupportRequestRepository
	generateID func() (string, error)
}

type Option func(*Service)

func WithIDGenerator(generate func() (string, error)) Option {
	return func(s *Service) {
		s.generateID = generate
	}
}

func NewService(repo repository.SupportRequestRepository, opts ...Option) Supporter {
	s := &Service{
		repo:       repo,
		generateID: utils.GenerateID,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) FileComplaint(ctx context.Context, sess *session.Session, req domain.ComplaintRequest) (*domain.Complaint, error) {
	if sess == nil {
		return nil, NewSupportError(ErrMissingSession, apiErrors.ErrMissingToken, "")
	}

	subject, err := requiredText("subject", req.Subject, SubjectMinLength, SubjectMaxLength)
	if err != nil {
		return nil, err
	}
	description, err := requiredText("description", req.Description, DescriptionMinLength, DescriptionMaxLength)
	if err != nil {
		return nil, err
	}
	preferredContact, err := optionalText("preferred_contact", req.PreferredContact, PreferredContactMaxLength)
	if err != nil {
		return nil, err
	}
	evidenceURL, err := optionalText("evidence_url", req.EvidenceURL, EvidenceURLMaxLength)
	if err != nil {
		return nil, err
	}

	id, err := s.generateID()
	if err != nil {
		return nil, NewSupportError(err, apiErrors.ErrInternalServer, "erro ao gerar identificador")
	}

	complaint, err := s.repo.CreateComplaint(ctx, &domain.Complaint{
		ID:               id,
		VendorID:         sess.VendorID,
		Subject:          subject,
		Description:      description,
		PreferredContact: preferredContact,
		EvidenceURL:      evidenceURL,
		Status:           domain.ComplaintStatusOpen,
	})
	if err != nil {
		return nil, NewSupportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"vendor_id":    sess.VendorID,
		"complaint_id": complaint.ID,
	}).Info("support: reclamação registrada")

	return complaint, nil
}

// ListComplaints devolve as reclamações do vendedor; administradores veem todas
func (s *Service) ListComplaints(ctx context.Context, sess *session.Session) ([]*domain.Complaint, error) {
	filters, err := scopeFor(sess)
	if err != nil {
		return nil, err
	}

	complaints, err := s.repo.ListComplaints(ctx, filters)
	if err != nil {
		return nil, NewSupportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return complaints, nil
}

func (s *Service) RequestItem(ctx context.Context, sess *session.Session, req domain.ItemRequestPayload) (*domain.ItemRequest, error) {
	if sess == nil {
		return nil, NewSupportError(ErrMissingSession, apiErrors.ErrMissingToken, "")
	}

	itemName, err := requiredText("item_name", req.ItemName, ItemNameMinLength, ItemNameMaxLength)
	if err != nil {
		return nil, err
	}
	if req.Quantity < MinItemQuantity || req.Quantity > MaxItemQuantity {
		return nil, &SupportError{
			Err:   ErrInvalidQuantity,
			Code:  apiErrors.ErrInvalidQuantity,
			Field: "quantity",
			Min:   MinItemQuantity,
			Max:   MaxItemQuantity,
		}
	}
	notes, err := optionalText("notes", req.Notes, NotesMaxLength)
	if err != nil {
		return nil, err
	}

	id, err := s.generateID()
	if err != nil {
		return nil, NewSupportError(err, apiErrors.ErrInternalServer, "erro ao gerar identificador")
	}

	request, err := s.repo.CreateItemRequest(ctx, &domain.ItemRequest{
		ID:       id,
		VendorID: sess.VendorID,
		ItemName: itemName,
		Quantity: req.Quantity,
		Notes:    notes,
	})
	if err != nil {
		return nil, NewSupportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"vendor_id":  sess.VendorID,
		"request_id": request.ID,
		"quantity":   request.Quantity,
	}).Info("support: pedido de item registrado")

	return request, nil
}

// ListItemRequests devolve os pedidos do vendedor; administradores veem todos
func (s *Service) ListItemRequests(ctx context.Context, sess *session.Session) ([]*domain.ItemRequest, error) {
	filters, err := scopeFor(sess)
	if err != nil {
		return nil, err
	}

	requests, err := s.repo.ListItemRequests(ctx, filters)
	if err != nil {
		return nil, NewSupportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return requests, nil
}

// VerifyIDs confere apenas o formato; o número devolvido é o informado sem espaços nas pontas
func (s *Service) VerifyIDs(req domain.IDVerificationRequest) (*domain.IDVerificationResult, error) {
	gstin := trimmedOrNil(req.GSTIN)
	fssai := trimmedOrNil(req.FSSAI)
	if gstin == nil && fssai == nil {
		return nil, NewSupportError(ErrNothingToVerify, apiErrors.ErrNothingToVerify, "")
	}

	result := &domain.IDVerificationResult{Source: domain.IDVerificationSourceFormat}

	if gstin != nil {
		valid := gstinPattern.MatchString(strings.ToUpper(*gstin))
		result.GSTIN = gstin
		result.GSTINValidFormat = &valid
	}

	if fssai != nil {
		valid := fssaiPattern.MatchString(*fssai)
		result.FSSAI = fssai
		result.FSSAIValidFormat = &valid
	}

	return result, nil
}

// ListPolicies filtra por região sem diferenciar maiúsculas; região vazia devolve todas
func (s *Service) ListPolicies(region string) []domain.Policy {
	region = strings.TrimSpace(region)

	policies := make([]domain.Policy, 0, len(streetVendorPolicies))
	for _, policy := range streetVendorPolicies {
		if region == "" || strings.EqualFold(policy.Region, region) {
			policies = append(policies, policy)
		}
	}

	return policies
}

func scopeFor(sess *session.Session) (domain.SupportFilters, error) {
	if sess == nil {
		return domain.SupportFilters{}, NewSupportError(ErrMissingSession, apiErrors.ErrMissingToken, "")
	}
	if sess.IsAdmin() {
		return domain.SupportFilters{}, nil
	}
	return domain.SupportFilters{VendorID: sess.VendorID}, nil
}

func requiredText(field, value string, minLength, maxLength int) (string, error) {
	trimmed := strings.TrimSpace(value)
	if n := utf8.RuneCountInString(trimmed); n < minLength || n > maxLength {
		return "", &SupportError{
			Err:     ErrFieldLength,
			Code:    apiErrors.ErrInvalidFieldLength,
			Details: field,
			Field:   field,
			Min:     minLength,
			Max:     maxLength,
		}
	}
	return trimmed, nil
}

// optionalText trata ausência e texto em branco da mesma forma
func optionalText(field string, value *string, maxLength int) (*string, error) {
	trimmed := trimmedOrNil(value)
	if trimmed == nil {
		return nil, nil
	}
	if utf8.RuneCountInString(*trimmed) > maxLength {
		return nil, &SupportError{
			Err:     ErrFieldTooLong,
			Code:    apiErrors.ErrInvalidFieldLength,
			Details: field,
			Field:   field,
			Max:     maxLength,
		}
	}
	return trimmed, nil
}

func trimmedOrNil(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
