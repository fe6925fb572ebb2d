package lending

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/vendorhub-api/infrastructure/repository/mocks"
	"github.com/vfg2006/vendorhub-api/internal/domain"
	"github.com/vfg2006/vendorhub-api/internal/i18n"
	"github.com/vfg2006/vendorhub-api/internal/session"
	"github.com/vfg2006/vendorhub-api/internal/usecases/aggregating"
	sellingmocks "github.com/vfg2006/vendorhub-api/internal/usecases/selling/mocks"
	"github.com/vfg2006/vendorhub-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2024, 3, 2, 15, 30, 0, 0, time.UTC)

var (
	vendorSession = &session.Session{VendorID: "vendor-1", Role: domain.RoleVendor, AccessToken: "token-1"}
	adminSession  = &session.Session{VendorID: "admin-1", Role: domain.RoleAdmin, AccessToken: "token-admin"}
)

func newTestService(ctrl *gomock.Controller) (Lender, *repomocks.MockLoanApplicationRepository, *sellingmocks.MockSeller) {
	repo := repomocks.NewMockLoanApplicationRepository(ctrl)
	seller := sellingmocks.NewMockSeller(ctrl)

	service := NewService(
		repo,
		seller,
		aggregating.NewEngine(domain.DefaultMetricsPolicy()),
		WithClock(func() time.Time { return now }),
		WithIDGenerator(func() (string, error) { return "abc123DEF456", nil }),
	)

	return service, repo, seller
}

func summaryWithTotal(total float64) *domain.SalesSummary {
	return &domain.SalesSummary{MonthTotal: total, Entries: []domain.SaleEntry{}}
}

func assertLendingError(t *testing.T, err error, wantErr error, wantCode string) *LendingError {
	t.Helper()

	require.Error(t, err)
	assert.True(t, errors.Is(err, wantErr))

	var lendingErr *LendingError
	require.True(t, errors.As(err, &lendingErr))
	assert.Equal(t, wantCode, lendingErr.Code)
	return lendingErr
}

func TestService_Quote(t *testing.T) {
	tests := []struct {
		name       string
		monthTotal float64
		amount     int64
		wantAmount int64
		wantEMI    int64
		wantMax    int64
	}{
		{
			name:       "Valor explícito dentro do teto",
			monthTotal: 50000,
			amount:     25000,
			wantAmount: 25000,
			wantEMI:    2250,
			wantMax:    40000,
		},
		{
			name:       "Valor zero usa o sugerido",
			monthTotal: 50000,
			amount:     0,
			wantAmount: 30000,
			wantEMI:    2700,
			wantMax:    40000,
		},
		{
			name:       "Sugerido abaixo do piso sobe para o piso",
			monthTotal: 0,
			amount:     0,
			wantAmount: 10000,
			wantEMI:    900,
			wantMax:    10000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, _, seller := newTestService(ctrl)
			seller.EXPECT().GetSummary(gomock.Any(), vendorSession).Return(summaryWithTotal(tt.monthTotal), nil)

			quote, err := service.Quote(context.Background(), vendorSession, tt.amount)

			require.NoError(t, err)
			assert.Equal(t, tt.wantAmount, quote.Amount)
			assert.Equal(t, tt.wantEMI, quote.MonthlyEMI)
			assert.Equal(t, int64(10000), quote.MinAmount)
			assert.Equal(t, tt.wantMax, quote.MaxAmount)
			assert.Equal(t, 12, quote.TenureMonths)
		})
	}
}

func TestService_Quote_OutOfRange(t *testing.T) {
	for _, amount := range []int64{-1, 9999, 40001} {
		ctrl := gomock.NewController(t)

		service, _, seller := newTestService(ctrl)
		seller.EXPECT().GetSummary(gomock.Any(), vendorSession).Return(summaryWithTotal(50000), nil)

		quote, err := service.Quote(context.Background(), vendorSession, amount)

		assert.Nil(t, quote)
		lendingErr := assertLendingError(t, err, ErrAmountOutOfRange, apiErrors.ErrLoanAmountOutOfRange)
		assert.Equal(t, int64(10000), lendingErr.MinAmount)
		assert.Equal(t, int64(40000), lendingErr.MaxAmount)

		ctrl.Finish()
	}
}

func TestService_Quote_PropagatesSalesErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, seller := newTestService(ctrl)
	storeErr := errors.New("sales store indisponível")
	seller.EXPECT().GetSummary(gomock.Any(), vendorSession).Return(nil, storeErr)

	quote, err := service.Quote(context.Background(), vendorSession, 0)

	assert.Nil(t, quote)
	assert.Equal(t, storeErr, err)
}

func TestService_Apply(t *testing.T) {
	t.Run("Cria pedido pendente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, repo, seller := newTestService(ctrl)
		seller.EXPECT().GetSummary(gomock.Any(), vendorSession).Return(summaryWithTotal(50000), nil)

		expected := &domain.LoanApplication{
			ID:          "abc123DEF456",
			VendorID:    "vendor-1",
			Amount:      20000,
			Purpose:     domain.LoanPurposeStock,
			Status:      domain.LoanApplicationStatusPending,
			AppliedDate: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		}
		repo.EXPECT().Create(gomock.Any(), expected).Return(expected, nil)

		application, err := service.Apply(context.Background(), vendorSession, domain.LoanApplicationRequest{
			Amount:  20000,
			Purpose: " Stock ",
		})

		require.NoError(t, err)
		assert.Equal(t, expected, application)
	})

	t.Run("Data do pedido segue o fuso do cliente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// 15:30 UTC já é dia 3 em UTC+10
		sydney := time.FixedZone("AEST", 10*60*60)
		ctx := i18n.WithTimeZone(context.Background(), sydney)

		service, repo, seller := newTestService(ctrl)
		seller.EXPECT().GetSummary(gomock.Any(), vendorSession).Return(summaryWithTotal(50000), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, application *domain.LoanApplication) (*domain.LoanApplication, error) {
				return application, nil
			})

		application, err := service.Apply(ctx, vendorSession, domain.LoanApplicationRequest{Amount: 20000, Purpose: "stock"})

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 3, 0, 0, 0, 0, sydney), application.AppliedDate)
	})

	t.Run("Finalidade desconhecida não consulta vendas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _ := newTestService(ctrl)

		application, err := service.Apply(context.Background(), vendorSession, domain.LoanApplicationRequest{
			Amount:  20000,
			Purpose: "vacation",
		})

		assert.Nil(t, application)
		assertLendingError(t, err, ErrInvalidPurpose, apiErrors.ErrLoanInvalidPurpose)
	})

	t.Run("Valor acima do teto", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, seller := newTestService(ctrl)
		seller.EXPECT().GetSummary(gomock.Any(), vendorSession).Return(summaryWithTotal(15000), nil)

		application, err := service.Apply(context.Background(), vendorSession, domain.LoanApplicationRequest{
			Amount:  12001,
			Purpose: domain.LoanPurposeEquipment,
		})

		assert.Nil(t, application)
		assertLendingError(t, err, ErrAmountOutOfRange, apiErrors.ErrLoanAmountOutOfRange)
	})

	t.Run("Falha do banco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, repo, seller := newTestService(ctrl)
		seller.EXPECT().GetSummary(gomock.Any(), vendorSession).Return(summaryWithTotal(15000), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("conexão perdida"))

		application, err := service.Apply(context.Background(), vendorSession, domain.LoanApplicationRequest{
			Amount:  12000,
			Purpose: domain.LoanPurposeOther,
		})

		assert.Nil(t, application)
		assertLendingError(t, err, ErrDatabaseOperation, apiErrors.ErrDatabaseOperation)
	})

	t.Run("Sem sessão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _ := newTestService(ctrl)

		_, err := service.Apply(context.Background(), nil, domain.LoanApplicationRequest{
			Amount:  12000,
			Purpose: domain.LoanPurposeOther,
		})

		assertLendingError(t, err, ErrMissingSession, apiErrors.ErrMissingToken)
	})
}

func TestService_ListMine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, repo, _ := newTestService(ctrl)
	applications := []*domain.LoanApplication{{ID: "a1", VendorID: "vendor-1"}}
	repo.EXPECT().List(gomock.Any(), domain.LoanApplicationFilters{VendorID: "vendor-1"}).Return(applications, nil)

	got, err := service.ListMine(context.Background(), vendorSession)

	require.NoError(t, err)
	assert.Equal(t, applications, got)
}

func TestService_ListAll(t *testing.T) {
	t.Run("Sem filtro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, repo, _ := newTestService(ctrl)
		repo.EXPECT().List(gomock.Any(), domain.LoanApplicationFilters{}).Return([]*domain.LoanApplication{}, nil)

		got, err := service.ListAll(context.Background(), "")

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Filtro por status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, repo, _ := newTestService(ctrl)
		approved := domain.LoanApplicationStatusApproved
		repo.EXPECT().List(gomock.Any(), domain.LoanApplicationFilters{Status: &approved}).Return([]*domain.LoanApplication{}, nil)

		_, err := service.ListAll(context.Background(), "APPROVED")

		require.NoError(t, err)
	})

	t.Run("Status inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _ := newTestService(ctrl)

		_, err := service.ListAll(context.Background(), "cancelled")

		assertLendingError(t, err, ErrInvalidStatus, apiErrors.ErrLoanInvalidStatus)
	})
}

func TestService_Review(t *testing.T) {
	pending := func() *domain.LoanApplication {
		return &domain.LoanApplication{
			ID:       "a1",
			VendorID: "vendor-1",
			Amount:   12000,
			Status:   domain.LoanApplicationStatusPending,
		}
	}

	t.Run("Aprova pedido pendente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, repo, _ := newTestService(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "a1").Return(pending(), nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "a1", domain.LoanApplicationStatusApproved, "admin-1", now).Return(true, nil)

		application, err := service.Review(context.Background(), adminSession, "a1", domain.LoanReviewRequest{Status: domain.LoanApplicationStatusApproved})

		require.NoError(t, err)
		assert.Equal(t, domain.LoanApplicationStatusApproved, application.Status)
		require.NotNil(t, application.ReviewedBy)
		assert.Equal(t, "admin-1", *application.ReviewedBy)
		require.NotNil(t, application.ReviewedAt)
		assert.Equal(t, now, *application.ReviewedAt)
	})

	t.Run("Vendedor não pode revisar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _ := newTestService(ctrl)

		_, err := service.Review(context.Background(), vendorSession, "a1", domain.LoanReviewRequest{Status: domain.LoanApplicationStatusApproved})

		assertLendingError(t, err, ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege)
	})

	t.Run("Status de destino inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _ := newTestService(ctrl)

		_, err := service.Review(context.Background(), adminSession, "a1", domain.LoanReviewRequest{Status: domain.LoanApplicationStatusPending})

		assertLendingError(t, err, ErrInvalidStatus, apiErrors.ErrLoanInvalidStatus)
	})

	t.Run("Pedido inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, repo, _ := newTestService(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "a1").Return(nil, nil)

		_, err := service.Review(context.Background(), adminSession, "a1", domain.LoanReviewRequest{Status: domain.LoanApplicationStatusRejected})

		assertLendingError(t, err, ErrApplicationNotFound, apiErrors.ErrLoanNotFound)
	})

	t.Run("Pedido já revisado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, repo, _ := newTestService(ctrl)
		reviewed := pending()
		reviewed.Status = domain.LoanApplicationStatusRejected
		repo.EXPECT().GetByID(gomock.Any(), "a1").Return(reviewed, nil)

		_, err := service.Review(context.Background(), adminSession, "a1", domain.LoanReviewRequest{Status: domain.LoanApplicationStatusApproved})

		assertLendingError(t, err, ErrAlreadyReviewed, apiErrors.ErrLoanAlreadyReviewed)
	})

	t.Run("Revisão concorrente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, repo, _ := newTestService(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "a1").Return(pending(), nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "a1", domain.LoanApplicationStatusRejected, "admin-1", now).Return(false, nil)

		_, err := service.Review(context.Background(), adminSession, "a1", domain.LoanReviewRequest{Status: domain.LoanApplicationStatusRejected})

		assertLendingError(t, err, ErrAlreadyReviewed, apiErrors.ErrLoanAlreadyReviewed)
	})
}
