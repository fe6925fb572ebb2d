package handler

import (
	"net/http"

	"github.com/vfg2006/vendorhub-api/internal/domain"
)

// UpstreamMonitor expõe o estado de saúde do Sales Entry Store
type UpstreamMonitor interface {
	Status() domain.UpstreamStatus
	TriggerManualCheck() bool
	GetStatus() map[string]any
}

// GetUpstreamStatus devolve a última verificação, sem consultar o upstream
func GetUpstreamStatus(monitor UpstreamMonitor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, monitor.Status())
	}
}
