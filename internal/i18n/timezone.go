package i18n

import (
	"context"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/pkg/errors"
)

// TimeZoneHeader carrega o fuso do cliente, ex.: "Asia/Kolkata"
const TimeZoneHeader = "X-Timezone"

// ErrUnknownTimeZone indica um nome que não está na base IANA
var ErrUnknownTimeZone = errors.New("fuso horário desconhecido")

type timeZoneKey struct{}

// ParseTimeZone resolve um nome IANA. Nome vazio devolve nil, sem erro.
func ParseTimeZone(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	// "Local" resolveria para o fuso do servidor
	if strings.EqualFold(name, "local") {
		return nil, errors.Wrap(ErrUnknownTimeZone, name)
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Wrap(ErrUnknownTimeZone, name)
	}

	return loc, nil
}

// WithTimeZone guarda o fuso do cliente no contexto da requisição
func WithTimeZone(ctx context.Context, loc *time.Location) context.Context {
	if loc == nil {
		return ctx
	}
	return context.WithValue(ctx, timeZoneKey{}, loc)
}

// TimeZoneFromContext retorna false quando o cliente não informou fuso
func TimeZoneFromContext(ctx context.Context) (*time.Location, bool) {
	loc, ok := ctx.Value(timeZoneKey{}).(*time.Location)
	return loc, ok && loc != nil
}

// InClientZone converte t para o fuso do cliente, quando informado
func InClientZone(ctx context.Context, t time.Time) time.Time {
	if loc, ok := TimeZoneFromContext(ctx); ok {
		return t.In(loc)
	}
	return t
}
