package salesstore

import (
	"context"

	salesstoredomain "github.com/vfg2006/vendorhub-api/infrastructure/integrator/salesstore/domain"
	"github.com/vfg2006/vendorhub-api/infrastructure/integrator/salesstore/salesstoreclient"
	"github.com/vfg2006/vendorhub-api/internal/domain"
)

type SalesStoreIntegrator interface {
	GetSummary(ctx context.Context, accessToken string) (*domain.SalesSummary, error)
	RecordSale(ctx context.Context, accessToken string, sale domain.RecordSaleRequest) error
	CheckHealth(ctx context.Context) error
}

type SalesStoreService struct {
	Client salesstoreclient.Client
}

func New(client salesstoreclient.Client) SalesStoreIntegrator {
	return &SalesStoreService{
		Client: client,
	}
}

func (s *SalesStoreService) GetSummary(ctx context.Context, accessToken string) (*domain.SalesSummary, error) {
	resp, err := s.Client.GetSalesSummary(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	return toSalesSummary(resp), nil
}

func (s *SalesStoreService) RecordSale(ctx context.Context, accessToken string, sale domain.RecordSaleRequest) error {
	return s.Client.RecordSale(ctx, accessToken, salesstoredomain.RecordSaleRequest{
		Amount: sale.Amount,
		Date:   sale.Date,
	})
}

func (s *SalesStoreService) CheckHealth(ctx context.Context) error {
	return s.Client.Health(ctx)
}

func toSalesSummary(resp *salesstoredomain.SummaryResponse) *domain.SalesSummary {
	if resp == nil {
		return &domain.SalesSummary{Entries: []domain.SaleEntry{}}
	}

	entries := make([]domain.SaleEntry, 0, len(resp.Entries))
	for _, entry := range resp.Entries {
		entries = append(entries, domain.SaleEntry{
			Date:   entry.Date,
			Amount: entry.Amount,
		})
	}

	return &domain.SalesSummary{
		MonthTotal: resp.MonthTotal,
		Entries:    entries,
	}
}
