// Package selling busca os resumos no Sales Entry Store e devolve as métricas derivadas
package selling

import (
	"context"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vendorhub-api/infrastructure/cache"
	"github.com/vfg2006/vendorhub-api/infrastructure/integrator/salesstore"
	"github.com/vfg2006/vendorhub-api/internal/domain"
	"github.com/vfg2006/vendorhub-api/internal/i18n"
	"github.com/vfg2006/vendorhub-api/internal/session"
	"github.com/vfg2006/vendorhub-api/internal/usecases/aggregating"
	"github.com/vfg2006/vendorhub-api/pkg/apiErrors"
	"github.com/vfg2006/vendorhub-api/pkg/utils"
)

// MaxWindowDays limita o tamanho da série diária pedida pelo cliente
const MaxWindowDays = 366

type Seller interface {
	GetSummary(ctx context.Context, sess *session.Session) (*domain.SalesSummary, error)
	GetMetrics(ctx context.Context, sess *session.Session, window int, locale i18n.Locale) (*domain.SalesMetricsResponse, error)
	RecordSale(ctx context.Context, sess *session.Session, req domain.RecordSaleRequest, locale i18n.Locale) (*domain.SalesMetricsResponse, error)
}

type Service struct {
	store    salesstore.SalesStoreIntegrator
	cache    cache.SummaryCache
	cacheTTL time.Duration
	engine   *aggregating.Engine
	catalog  *i18n.Catalog
	now      func() time.Time
}

type Option func(*Service)

// WithClock troca o relógio usado como dia de referência
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(
	store salesstore.SalesStoreIntegrator,
	summaryCache cache.SummaryCache,
	cacheTTL time.Duration,
	engine *aggregating.Engine,
	catalog *i18n.Catalog,
	opts ...Option,
) Seller {
	if summaryCache == nil {
		summaryCache = cache.NoopSummaryCache{}
	}

	s := &Service{
		store:    store,
		cache:    summaryCache,
		cacheTTL: cacheTTL,
		engine:   engine,
		catalog:  catalog,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// GetSummary retorna o resumo bruto do vendedor, passando pelo cache
func (s *Service) GetSummary(ctx context.Context, sess *session.Session) (*domain.SalesSummary, error) {
	if sess == nil {
		return nil, NewSalesError(ErrMissingSession, apiErrors.ErrMissingToken, "")
	}

	cached, found, err := s.cache.Get(ctx, sess.VendorID)
	if err != nil {
		logrus.WithError(err).WithField("vendor_id", sess.VendorID).Warn("sales: falha ao ler cache de resumo")
	} else if found {
		return cached, nil
	}

	return s.fetchAndCache(ctx, sess)
}

func (s *Service) GetMetrics(ctx context.Context, sess *session.Session, window int, locale i18n.Locale) (*domain.SalesMetricsResponse, error) {
	if window > MaxWindowDays {
		return nil, NewSalesError(ErrInvalidWindow, apiErrors.ErrInvalidWindow, "")
	}

	summary, err := s.GetSummary(ctx, sess)
	if err != nil {
		return nil, err
	}

	return s.buildResponse(ctx, summary, window, locale), nil
}

// RecordSale valida, encaminha ao store, invalida o cache e recalcula com o resumo novo
func (s *Service) RecordSale(ctx context.Context, sess *session.Session, req domain.RecordSaleRequest, locale i18n.Locale) (*domain.SalesMetricsResponse, error) {
	if sess == nil {
		return nil, NewSalesError(ErrMissingSession, apiErrors.ErrMissingToken, "")
	}

	if req.Amount <= 0 || math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) {
		return nil, NewSalesError(ErrInvalidAmount, apiErrors.ErrInvalidAmount, "")
	}

	if req.Date != nil {
		date, err := utils.ParseDate(*req.Date)
		if err != nil {
			return nil, NewSalesError(ErrInvalidDate, apiErrors.ErrInvalidDate, *req.Date)
		}
		if date == nil {
			req.Date = nil
		} else {
			normalized := date.Format(domain.DateKeyLayout)
			req.Date = &normalized
		}
	}

	if err := s.store.RecordSale(ctx, sess.AccessToken, req); err != nil {
		return nil, fromStoreError(err, "registrar venda")
	}

	if err := s.cache.Delete(ctx, sess.VendorID); err != nil {
		logrus.WithError(err).WithField("vendor_id", sess.VendorID).Warn("sales: falha ao invalidar cache de resumo")
	}

	summary, err := s.fetchAndCache(ctx, sess)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"vendor_id": sess.VendorID,
		"amount":    req.Amount,
	}).Info("sales: venda registrada")

	return s.buildResponse(ctx, summary, 0, locale), nil
}

func (s *Service) fetchAndCache(ctx context.Context, sess *session.Session) (*domain.SalesSummary, error) {
	summary, err := s.store.GetSummary(ctx, sess.AccessToken)
	if err != nil {
		return nil, fromStoreError(err, "buscar resumo")
	}

	if err := s.cache.Set(ctx, sess.VendorID, summary, s.cacheTTL); err != nil {
		logrus.WithError(err).WithField("vendor_id", sess.VendorID).Warn("sales: falha ao gravar cache de resumo")
	}

	return summary, nil
}

// buildResponse usa o dia corrente no fuso do cliente quando ele foi informado
func (s *Service) buildResponse(ctx context.Context, summary *domain.SalesSummary, window int, locale i18n.Locale) *domain.SalesMetricsResponse {
	now := i18n.InClientZone(ctx, s.now())
	metrics := s.engine.Derive(summary, now, window)

	hasSales := false
	for i := range metrics.DailySeries {
		point := &metrics.DailySeries[i]
		point.Label = s.catalog.DailyLabel(locale, point.Date)
		if point.Amount != 0 {
			hasSales = true
		}
	}

	for i := range metrics.MonthlySeries {
		point := &metrics.MonthlySeries[i]
		if month, err := time.Parse(domain.MonthKeyLayout, point.MonthKey); err == nil {
			point.Label = s.catalog.MonthName(locale, month.Month())
		}
	}

	response := &domain.SalesMetricsResponse{
		Metrics:     metrics,
		Locale:      string(locale),
		GeneratedAt: now,
	}

	if !hasSales {
		response.EmptyState = s.catalog.Message(locale, i18n.MsgNoDailySales)
	}

	return response
}
