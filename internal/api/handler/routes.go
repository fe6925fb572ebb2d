package handler

import (
	"net/http"

	"github.com/vfg2006/vendorhub-api/internal/api/handler/router"
	"github.com/vfg2006/vendorhub-api/internal/i18n"
	"github.com/vfg2006/vendorhub-api/internal/usecases/lending"
	"github.com/vfg2006/vendorhub-api/internal/usecases/selling"
	"github.com/vfg2006/vendorhub-api/internal/usecases/supporting"
	"github.com/vfg2006/vendorhub-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Upstream(monitor UpstreamMonitor) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/upstream/status",
			Method:  http.MethodGet,
			Handler: GetUpstreamStatus(monitor),
		},
	}
}

// Sales retorna as rotas de vendas. O registro de vendas passa pelo limitador quando houver um.
func Sales(service selling.Seller, catalog *i18n.Catalog, limiter *middleware.RateLimiter) []router.Route {
	writeMiddlewares := []func(http.Handler) http.Handler{middleware.AllRoles(catalog), middleware.TimeZone(catalog)}
	if limiter != nil {
		writeMiddlewares = append(writeMiddlewares, middleware.RateLimitMiddleware(limiter, catalog))
	}

	return []router.Route{
		{
			Path:        "/v1/sales/metrics",
			Method:      http.MethodGet,
			Handler:     GetSalesMetrics(service, catalog),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(catalog), middleware.TimeZone(catalog)},
		},
		{
			Path:        "/v1/sales",
			Method:      http.MethodPost,
			Handler:     RecordSale(service, catalog),
			Middlewares: writeMiddlewares,
		},
	}
}

func Loans(service lending.Lender, catalog *i18n.Catalog) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/loans/quote",
			Method:      http.MethodGet,
			Handler:     GetLoanQuote(service, catalog),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(catalog)},
		},
		{
			Path:        "/v1/loans/purposes",
			Method:      http.MethodGet,
			Handler:     ListLoanPurposes(catalog),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(catalog)},
		},
		{
			Path:        "/v1/loans/applications",
			Method:      http.MethodPost,
			Handler:     ApplyLoan(service, catalog),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(catalog), middleware.TimeZone(catalog)},
		},
		{
			Path:        "/v1/loans/applications",
			Method:      http.MethodGet,
			Handler:     ListMyLoans(service, catalog),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(catalog)},
		},
		{
			Path:        "/v1/admin/loans/applications",
			Method:      http.MethodGet,
			Handler:     ListLoanApplications(service, catalog),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(catalog)},
		},
		{
			Path:        "/v1/admin/loans/applications/:id/review",
			Method:      http.MethodPut,
			Handler:     ReviewLoanApplication(service, catalog),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(catalog)},
		},
	}
}

// Support retorna as rotas de suporte ao vendedor. Verificação de documentos e políticas
// são públicas; a verificação passa pelo limitador quando houver um.
func Support(service supporting.Supporter, catalog *i18n.Catalog, limiter *middleware.RateLimiter) []router.Route {
	var verifyMiddlewares []func(http.Handler) http.Handler
	if limiter != nil {
		verifyMiddlewares = append(verifyMiddlewares, middleware.RateLimitMiddleware(limiter, catalog))
	}

	return []router.Route{
		{
			Path:        "/v1/complaints",
			Method:      http.MethodPost,
			Handler:     FileComplaint(service, catalog),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(catalog)},
		},
		{
			Path:        "/v1/complaints",
			Method:      http.MethodGet,
			Handler:     ListComplaints(service, catalog),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(catalog)},
		},
		{
			Path:        "/v1/items/requests",
			Method:      http.MethodPost,
			Handler:     RequestItem(service, catalog),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(catalog)},
		},
		{
			Path:        "/v1/items/requests",
			Method:      http.MethodGet,
			Handler:     ListItemRequests(service, catalog),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(catalog)},
		},
		{
			Path:        "/v1/verify/ids",
			Method:      http.MethodPost,
			Handler:     VerifyIDs(service, catalog),
			Middlewares: verifyMiddlewares,
		},
		{
			Path:    "/v1/policies/street-vendors",
			Method:  http.MethodGet,
			Handler: ListStreetVendorPolicies(service),
		},
	}
}

func CronJobs(services CronJobServices, catalog *i18n.Catalog) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services, catalog),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(catalog)},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(catalog)},
		},
	}
}
