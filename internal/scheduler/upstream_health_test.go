package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	storemocks "github.com/vfg2006/vendorhub-api/infrastructure/integrator/salesstore/mocks"
	"github.com/vfg2006/vendorhub-api/internal/config"
	"go.uber.org/mock/gomock"
)

func newTestHealthService(t *testing.T, enabled bool) (*UpstreamHealthService, *storemocks.MockSalesStoreIntegrator, *time.Time) {
	t.Helper()

	ctrl := gomock.NewController(t)
	store := storemocks.NewMockSalesStoreIntegrator(ctrl)

	cfg := &config.Config{
		SalesStore:     config.SalesStore{TimeoutSeconds: 5},
		UpstreamHealth: config.UpstreamHealth{IntervalSeconds: 30, Enabled: enabled},
	}

	clock := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	service := NewUpstreamHealthService(store, cfg)
	service.now = func() time.Time { return clock }

	return service, store, &clock
}

func TestUpstreamHealthService_CheckNow(t *testing.T) {
	service, store, clock := newTestHealthService(t, true)

	assert.False(t, service.Status().Checked)

	// online
	store.EXPECT().CheckHealth(gomock.Any()).Return(nil)
	status, ran := service.CheckNow(context.Background())

	require.True(t, ran)
	assert.True(t, status.Online)
	assert.True(t, status.Checked)
	assert.Equal(t, 0, status.ConsecutiveFailures)
	require.NotNil(t, status.LastOnlineAt)
	assert.Equal(t, *clock, *status.LastOnlineAt)
	onlineAt := *clock

	// duas falhas seguidas
	*clock = clock.Add(30 * time.Second)
	store.EXPECT().CheckHealth(gomock.Any()).Return(errors.New("connection refused")).Times(2)
	service.CheckNow(context.Background())
	status, _ = service.CheckNow(context.Background())

	assert.False(t, status.Online)
	assert.Equal(t, 2, status.ConsecutiveFailures)
	assert.Equal(t, "connection refused", status.LastError)
	require.NotNil(t, status.LastCheckedAt)
	assert.Equal(t, *clock, *status.LastCheckedAt)
	assert.Equal(t, onlineAt, *status.LastOnlineAt)

	// recupera
	store.EXPECT().CheckHealth(gomock.Any()).Return(nil)
	status, _ = service.CheckNow(context.Background())

	assert.True(t, status.Online)
	assert.Equal(t, 0, status.ConsecutiveFailures)
	assert.Empty(t, status.LastError)
}

func TestUpstreamHealthService_CheckNowAppliesTimeout(t *testing.T) {
	service, store, _ := newTestHealthService(t, true)

	store.EXPECT().CheckHealth(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		deadline, ok := ctx.Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(5*time.Second), deadline, time.Second)
		return nil
	})

	_, ran := service.CheckNow(context.Background())
	assert.True(t, ran)
}

func TestUpstreamHealthService_SkipsConcurrentCheck(t *testing.T) {
	service, _, _ := newTestHealthService(t, true)

	service.checkRunning = true

	// sem expectativas no mock: nenhuma chamada ao store pode acontecer
	status, ran := service.CheckNow(context.Background())

	assert.False(t, ran)
	assert.False(t, status.Checked)
}

func TestUpstreamHealthService_StartDisabled(t *testing.T) {
	service, _, _ := newTestHealthService(t, false)

	err := service.Start(context.Background())

	assert.NoError(t, err)
	assert.False(t, service.scheduler.IsRunning())
}

func TestUpstreamHealthService_GetStatus(t *testing.T) {
	service, _, _ := newTestHealthService(t, true)

	status := service.GetStatus()

	assert.Equal(t, true, status["check_enabled"])
	assert.Equal(t, "30s", status["check_interval"])
	assert.Equal(t, false, status["online"])
	assert.Equal(t, false, status["checked"])
	assert.Equal(t, 0, status["consecutive_failures"])
}

func TestUpstreamHealthService_TriggerManualCheck(t *testing.T) {
	service, store, _ := newTestHealthService(t, true)

	release := make(chan struct{})
	store.EXPECT().CheckHealth(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		<-release
		return nil
	})

	assert.True(t, service.TriggerManualCheck())
	// a primeira ainda está bloqueada no store
	assert.False(t, service.TriggerManualCheck())

	close(release)
	assert.Eventually(t, func() bool { return service.Status().Checked }, time.Second, 5*time.Millisecond)

	store.EXPECT().CheckHealth(gomock.Any()).Return(errors.New("timeout"))
	assert.True(t, service.TriggerManualCheck())
	assert.Eventually(t, func() bool { return service.Status().ConsecutiveFailures == 1 }, time.Second, 5*time.Millisecond)
}
