// Package lending simula parcelas e gerencia os pedidos de empréstimo limitados pelo teto
package lending

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vendorhub-api/infrastructure/repository"
	"github.com/vfg2006/vendorhub-api/internal/domain"
	"github.com/vfg2006/vendorhub-api/internal/i18n"
	"github.com/vfg2006/vendorhub-api/internal/session"
	"github.com/vfg2006/vendorhub-api/internal/usecases/aggregating"
	"github.com/vfg2006/vendorhub-api/internal/usecases/selling"
	"github.com/vfg2006/vendorhub-api/pkg/apiErrors"
	"github.com/vfg2006/vendorhub-api/pkg/utils"
)

type Lender interface {
	Quote(ctx context.Context, sess *session.Session, amount int64) (*domain.LoanQuote, error)
	Apply(ctx context.Context, sess *session.Session, req domain.LoanApplicationRequest) (*domain.LoanApplication, error)
	ListMine(ctx context.Context, sess *session.Session) ([]*domain.LoanApplication, error)
	ListAll(ctx context.Context, status string) ([]*domain.LoanApplication, error)
	Review(ctx context.Context, sess *session.Session, id string, req domain.LoanReviewRequest) (*domain.LoanApplication, error)
}

type Service struct {
	repo       repository.LoanApplicationRepository
	seller     selling.Seller
	engine     *aggregating.Engine
	now        func() time.Time
	generateID func() (string, error)
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithIDGenerator(generate func() (string, error)) Option {
	return func(s *Service) {
		s.generateID = generate
	}
}

func NewService(
	repo repository.LoanApplicationRepository,
	seller selling.Seller,
	engine *aggregating.Engine,
	opts ...Option,
) Lender {
	s := &Service{
		repo:       repo,
		seller:     seller,
		engine:     engine,
		now:        time.Now,
		generateID: utils.GenerateID,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Quote simula o empréstimo. Valor zero usa o sugerido trazido para [piso, teto];
// valores explícitos fora do intervalo são rejeitados.
func (s *Service) Quote(ctx context.Context, sess *session.Session, amount int64) (*domain.LoanQuote, error) {
	loanCap, monthTotal, err := s.loanCap(ctx, sess)
	if err != nil {
		return nil, err
	}

	if amount == 0 {
		amount = min(max(s.engine.SuggestedLoanAmount(monthTotal), s.engine.LoanFloor()), loanCap)
	}

	if err := s.checkBounds(amount, loanCap); err != nil {
		return nil, err
	}

	quote := s.engine.Quote(amount, loanCap)
	return &quote, nil
}

func (s *Service) Apply(ctx context.Context, sess *session.Session, req domain.LoanApplicationRequest) (*domain.LoanApplication, error) {
	purpose, ok := parsePurpose(req.Purpose)
	if !ok {
		return nil, NewLendingError(ErrInvalidPurpose, apiErrors.ErrLoanInvalidPurpose, string(req.Purpose))
	}

	loanCap, _, err := s.loanCap(ctx, sess)
	if err != nil {
		return nil, err
	}

	if err := s.checkBounds(req.Amount, loanCap); err != nil {
		return nil, err
	}

	id, err := s.generateID()
	if err != nil {
		return nil, NewLendingError(err, apiErrors.ErrInternalServer, "erro ao gerar identificador")
	}

	application, err := s.repo.Create(ctx, &domain.LoanApplication{
		ID:          id,
		VendorID:    sess.VendorID,
		Amount:      req.Amount,
		Purpose:     purpose,
		Status:      domain.LoanApplicationStatusPending,
		AppliedDate: utils.StartOfDay(i18n.InClientZone(ctx, s.now())),
	})
	if err != nil {
		return nil, NewLendingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"vendor_id":      sess.VendorID,
		"application_id": application.ID,
		"amount":         application.Amount,
		"purpose":        application.Purpose,
	}).Info("lending: pedido de empréstimo criado")

	return application, nil
}

func (s *Service) ListMine(ctx context.Context, sess *session.Session) ([]*domain.LoanApplication, error) {
	if sess == nil {
		return nil, NewLendingError(ErrMissingSession, apiErrors.ErrMissingToken, "")
	}

	applications, err := s.repo.List(ctx, domain.LoanApplicationFilters{VendorID: sess.VendorID})
	if err != nil {
		return nil, NewLendingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return applications, nil
}

// ListAll lista todos os pedidos; status vazio não filtra
func (s *Service) ListAll(ctx context.Context, status string) ([]*domain.LoanApplication, error) {
	filters := domain.LoanApplicationFilters{}
	if status = strings.TrimSpace(status); status != "" {
		parsed := domain.LoanApplicationStatus(strings.ToLower(status))
		if !parsed.IsValid() {
			return nil, NewLendingError(ErrInvalidStatus, apiErrors.ErrLoanInvalidStatus, status)
		}
		filters.Status = &parsed
	}

	applications, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, NewLendingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return applications, nil
}

// Review aprova ou rejeita um pedido pendente
func (s *Service) Review(ctx context.Context, sess *session.Session, id string, req domain.LoanReviewRequest) (*domain.LoanApplication, error) {
	if sess == nil {
		return nil, NewLendingError(ErrMissingSession, apiErrors.ErrMissingToken, "")
	}
	if !sess.IsAdmin() {
		return nil, NewLendingError(ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege, "")
	}

	if req.Status != domain.LoanApplicationStatusApproved && req.Status != domain.LoanApplicationStatusRejected {
		return nil, NewLendingError(ErrInvalidStatus, apiErrors.ErrLoanInvalidStatus, string(req.Status))
	}

	application, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, NewLendingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if application == nil {
		return nil, NewLendingError(ErrApplicationNotFound, apiErrors.ErrLoanNotFound, id)
	}
	if application.Status != domain.LoanApplicationStatusPending {
		return nil, NewLendingError(ErrAlreadyReviewed, apiErrors.ErrLoanAlreadyReviewed, string(application.Status))
	}

	reviewedAt := s.now()
	updated, err := s.repo.UpdateStatus(ctx, id, req.Status, sess.VendorID, reviewedAt)
	if err != nil {
		return nil, NewLendingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if !updated {
		// outro administrador revisou entre a leitura e a escrita
		return nil, NewLendingError(ErrAlreadyReviewed, apiErrors.ErrLoanAlreadyReviewed, id)
	}

	reviewer := sess.VendorID
	application.Status = req.Status
	application.ReviewedBy = &reviewer
	application.ReviewedAt = &reviewedAt
	application.UpdatedAt = reviewedAt

	logrus.WithFields(logrus.Fields{
		"application_id": id,
		"status":         req.Status,
		"reviewer":       reviewer,
	}).Info("lending: pedido de empréstimo revisado")

	return application, nil
}

func (s *Service) loanCap(ctx context.Context, sess *session.Session) (int64, float64, error) {
	if sess == nil {
		return 0, 0, NewLendingError(ErrMissingSession, apiErrors.ErrMissingToken, "")
	}

	summary, err := s.seller.GetSummary(ctx, sess)
	if err != nil {
		return 0, 0, err
	}

	aggregates := s.engine.ComputeAggregates(summary)
	return aggregates.LoanCap, aggregates.MonthTotal, nil
}

func (s *Service) checkBounds(amount, loanCap int64) error {
	if s.engine.WithinLoanBounds(amount, loanCap) {
		return nil
	}

	floor := s.engine.LoanFloor()
	return &LendingError{
		Err:       ErrAmountOutOfRange,
		Code:      apiErrors.ErrLoanAmountOutOfRange,
		Details:   fmt.Sprintf("valor %d fora de [%d, %d]", amount, floor, loanCap),
		MinAmount: floor,
		MaxAmount: loanCap,
	}
}

func parsePurpose(purpose domain.LoanPurpose) (domain.LoanPurpose, bool) {
	normalized := domain.LoanPurpose(strings.ToLower(strings.TrimSpace(string(purpose))))
	for _, known := range domain.LoanPurposes {
		if normalized == known {
			return known, true
		}
	}
	return "", false
}
