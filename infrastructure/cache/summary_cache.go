// Package cache guarda temporariamente os resumos brutos do Sales Entry Store.
// Métricas derivadas nunca são armazenadas.
package cache

import (
	"context"
	"time"

	"github.com/vfg2006/vendorhub-api/internal/domain"
)

const summaryKeyPrefix = "vendorhub:summary:"

type SummaryCache interface {
	Get(ctx context.Context, vendorID string) (*domain.SalesSummary, bool, error)
	Set(ctx context.Context, vendorID string, summary *domain.SalesSummary, ttl time.Duration) error
	Delete(ctx context.Context, vendorID string) error
}

// SummaryKey é a chave do resumo de um vendedor
func SummaryKey(vendorID string) string {
	return summaryKeyPrefix + vendorID
}

// NoopSummaryCache é usado quando o Redis não está configurado
type NoopSummaryCache struct{}

func (NoopSummaryCache) Get(_ context.Context, _ string) (*domain.SalesSummary, bool, error) {
	return nil, false, nil
}

func (NoopSummaryCache) Set(_ context.Context, _ string, _ *domain.SalesSummary, _ time.Duration) error {
	return nil
}

func (NoopSummaryCache) Delete(_ context.Context, _ string) error {
	return nil
}
