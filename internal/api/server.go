package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vendorhub-api/internal/api/handler"
	"github.com/vfg2006/vendorhub-api/internal/api/handler/router"
	"github.com/vfg2006/vendorhub-api/internal/config"
	"github.com/vfg2006/vendorhub-api/internal/i18n"
	"github.com/vfg2006/vendorhub-api/internal/usecases/authenticating"
	"github.com/vfg2006/vendorhub-api/internal/usecases/lending"
	"github.com/vfg2006/vendorhub-api/internal/usecases/selling"
	"github.com/vfg2006/vendorhub-api/internal/usecases/supporting"
	"github.com/vfg2006/vendorhub-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Services agrupa as dependências expostas pela API
type Services struct {
	Authenticator  authenticating.Authenticator
	Seller         selling.Seller
	Lender         lending.Lender
	Supporter      supporting.Supporter
	UpstreamHealth handler.UpstreamMonitor
	SalesLimiter   *middleware.RateLimiter
	PublicLimiter  *middleware.RateLimiter
}

func New(cfg *config.Config, catalog *i18n.Catalog, services Services) (*Server, error) {
	if services.Authenticator == nil || services.Seller == nil || services.Lender == nil ||
		services.Supporter == nil || services.UpstreamHealth == nil {
		return nil, fmt.Errorf("api: serviços obrigatórios não informados")
	}

	rt := NewHandler(cfg, catalog, services)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           rt,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o roteador com a cadeia global de middlewares
func NewHandler(cfg *config.Config, catalog *i18n.Catalog, services Services) http.Handler {
	cronServices := handler.CronJobServices{
		UpstreamHealthService: services.UpstreamHealth,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Upstream(services.UpstreamHealth)...),
		router.WithRoutes(handler.Sales(services.Seller, catalog, services.SalesLimiter)...),
		router.WithRoutes(handler.Loans(services.Lender, catalog)...),
		router.WithRoutes(handler.Support(services.Supporter, catalog, services.PublicLimiter)...),
		router.WithRoutes(handler.CronJobs(cronServices, catalog)...),
		router.WithNotFound(handler.NotFound(catalog)),
		router.WithMethodNotAllowed(handler.MethodNotAllowed(catalog)),
	)

	middlewares := []alice.Constructor{
		middleware.LoggingMiddleware(),
		middleware.LogPanicMiddleware(catalog),
		middleware.Cors(cfg.Cors.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator, catalog),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
