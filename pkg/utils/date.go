package utils

import (
	"strings"
	"time"
)

// ParseDate interpreta uma data no formato YYYY-MM-DD. String vazia retorna nil sem erro.
func ParseDate(dateStr string) (*time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// StartOfDay retorna a meia-noite do dia de t no fuso de t
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
