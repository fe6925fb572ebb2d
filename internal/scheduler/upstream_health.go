package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vendorhub-api/infrastructure/integrator/salesstore"
	"github.com/vfg2006/vendorhub-api/internal/config"
	"github.com/vfg2006/vendorhub-api/internal/domain"
)

// UpstreamHealthConfig representa a configuração do monitor de saúde do Sales Entry Store
type UpstreamHealthConfig struct {
	Interval     time.Duration
	CheckTimeout time.Duration
	Enabled      bool
}

// UpstreamHealthService verifica periodicamente se o Sales Entry Store responde
type UpstreamHealthService struct {
	scheduler    *gocron.Scheduler
	config       UpstreamHealthConfig
	store        salesstore.SalesStoreIntegrator
	now          func() time.Time
	checkRunning bool
	checkMutex   sync.Mutex
	status       domain.UpstreamStatus
}

// NewUpstreamHealthService cria o monitor a partir da configuração global
func NewUpstreamHealthService(store salesstore.SalesStoreIntegrator, appConfig *config.Config) *UpstreamHealthService {
	healthConfig := UpstreamHealthConfig{
		Interval:     time.Duration(appConfig.UpstreamHealth.IntervalSeconds) * time.Second,
		CheckTimeout: appConfig.SalesStore.Timeout(),
		Enabled:      appConfig.UpstreamHealth.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"interval":      healthConfig.Interval.String(),
		"check_timeout": healthConfig.CheckTimeout.String(),
		"enabled":       healthConfig.Enabled,
	}).Info("Configuração do monitor de saúde do sales store carregada")

	return &UpstreamHealthService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    healthConfig,
		store:     store,
		now:       time.Now,
	}
}

// Start inicia o agendador; a primeira verificação acontece imediatamente
func (s *UpstreamHealthService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Monitor de saúde do sales store desabilitado por configuração")
		return nil
	}

	logrus.WithField("interval", s.config.Interval.String()).Info("Iniciando monitor de saúde do sales store")

	_, err := s.scheduler.Every(s.config.Interval).Do(func() {
		s.CheckNow(ctx)
	})
	if err != nil {
		return errors.Wrap(err, "erro ao agendar verificação de saúde do sales store")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando monitor de saúde do sales store")
		s.scheduler.Stop()
	}()

	return nil
}

// CheckNow executa uma verificação. Retorna false quando outra já estava em andamento.
func (s *UpstreamHealthService) CheckNow(ctx context.Context) (domain.UpstreamStatus, bool) {
	if status, claimed := s.claimCheck(); !claimed {
		logrus.Debug("Verificação de saúde do sales store já em andamento, ignorando")
		return status, false
	}

	return s.runCheck(ctx), true
}

// TriggerManualCheck dispara uma verificação fora do agendamento.
// Retorna false quando outra já estava em andamento.
func (s *UpstreamHealthService) TriggerManualCheck() bool {
	if _, claimed := s.claimCheck(); !claimed {
		logrus.Info("Verificação de saúde do sales store já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando verificação manual de saúde do sales store")
	go s.runCheck(context.Background())
	return true
}

// claimCheck marca a verificação como em andamento se nenhuma outra estiver
func (s *UpstreamHealthService) claimCheck() (domain.UpstreamStatus, bool) {
	s.checkMutex.Lock()
	defer s.checkMutex.Unlock()

	if s.checkRunning {
		return s.status, false
	}
	s.checkRunning = true
	return s.status, true
}

// runCheck consulta o store e libera a marca de verificação em andamento
func (s *UpstreamHealthService) runCheck(ctx context.Context) domain.UpstreamStatus {
	checkCtx := ctx
	if s.config.CheckTimeout > 0 {
		var cancel context.CancelFunc
		checkCtx, cancel = context.WithTimeout(ctx, s.config.CheckTimeout)
		defer cancel()
	}

	err := s.store.CheckHealth(checkCtx)
	checkedAt := s.now()

	s.checkMutex.Lock()
	defer s.checkMutex.Unlock()
	s.checkRunning = false

	wasOnline := s.status.Online
	s.status.Checked = true
	s.status.LastCheckedAt = &checkedAt

	if err != nil {
		s.status.Online = false
		s.status.LastError = err.Error()
		s.status.ConsecutiveFailures++

		entry := logrus.WithError(err).WithField("consecutive_failures", s.status.ConsecutiveFailures)
		if wasOnline {
			entry.Warn("Sales store ficou offline")
		} else {
			entry.Debug("Sales store continua offline")
		}
		return s.status
	}

	s.status.Online = true
	s.status.LastError = ""
	s.status.ConsecutiveFailures = 0
	s.status.LastOnlineAt = &checkedAt

	if !wasOnline {
		logrus.Info("Sales store online")
	}

	return s.status
}

// Status retorna uma cópia do último resultado
func (s *UpstreamHealthService) Status() domain.UpstreamStatus {
	s.checkMutex.Lock()
	defer s.checkMutex.Unlock()
	return s.status
}

// GetStatus retorna o status atual do agendador
func (s *UpstreamHealthService) GetStatus() map[string]any {
	status := s.Status()

	return map[string]any{
		"check_enabled":        s.config.Enabled,
		"check_interval":       s.config.Interval.String(),
		"online":               status.Online,
		"checked":              status.Checked,
		"last_checked_at":      status.LastCheckedAt,
		"last_online_at":       status.LastOnlineAt,
		"last_error":           status.LastError,
		"consecutive_failures": status.ConsecutiveFailures,
	}
}
