package domain

import "time"

// UpstreamStatus é o estado da última verificação de saúde do Sales Entry Store
type UpstreamStatus struct {
	Online              bool       `json:"online"`
	Checked             bool       `json:"checked"`
	LastCheckedAt       *time.Time `json:"last_checked_at,omitempty"`
	LastOnlineAt        *time.Time `json:"last_online_at,omitempty"`
	LastError           string     `json:"last_error,omitempty"`
	ConsecutiveFailures int        `json:"consecutive_failures"`
}
