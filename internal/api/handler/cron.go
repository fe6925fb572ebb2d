package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vendorhub-api/internal/i18n"
	"github.com/vfg2006/vendorhub-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeUpstreamHealth = "upstream-health"
	CronJobTypeAll            = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	UpstreamHealthService UpstreamMonitor
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices, catalog *i18n.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		locale := requestLocale(r)
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		started := false
		switch cronType {
		case CronJobTypeUpstreamHealth, CronJobTypeAll:
			if services.UpstreamHealthService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, catalog.Message(locale, i18n.MsgInternalError), nil)
				return
			}
			started = services.UpstreamHealthService.TriggerManualCheck()
		default:
			apiErrors.WriteError(w, apiErrors.ErrUnknownJob, catalog.Message(locale, i18n.MsgUnknownJob, cronType), nil)
			return
		}

		if !started {
			writeJSON(w, r, http.StatusOK, map[string]any{
				"message": "Cron job já em andamento",
				"type":    cronType,
				"started": false,
			})
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
			"started": true,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.UpstreamHealthService != nil {
			status[CronJobTypeUpstreamHealth] = services.UpstreamHealthService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
