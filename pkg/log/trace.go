package log

import "context"

type traceKey struct{}

// RequestTrace guarda o que as camadas internas descobrem sobre a requisição
// (vendedor autenticado, rota casada) para o log de finalização, que só enxerga
// o contexto externo.
type RequestTrace struct {
	vendorID string
	route    string
}

// WithRequestTrace anexa um RequestTrace vazio ao contexto
func WithRequestTrace(ctx context.Context) (context.Context, *RequestTrace) {
	trace := &RequestTrace{}
	return context.WithValue(ctx, traceKey{}, trace), trace
}

// TraceFromContext retorna nil quando a requisição não passou pelo middleware de log
func TraceFromContext(ctx context.Context) *RequestTrace {
	trace, _ := ctx.Value(traceKey{}).(*RequestTrace)
	return trace
}

// SetRoute registra o padrão de rota casado, ex.: "GET /v1/loans/:id"
func SetRoute(ctx context.Context, route string) {
	if trace := TraceFromContext(ctx); trace != nil {
		trace.route = route
	}
}

func (t *RequestTrace) VendorID() string {
	if t == nil {
		return ""
	}
	return t.vendorID
}

func (t *RequestTrace) Route() string {
	if t == nil {
		return ""
	}
	return t.route
}

// Fields devolve apenas os campos preenchidos
func (t *RequestTrace) Fields() Fields {
	fields := Fields{}
	if vendorID := t.VendorID(); vendorID != "" {
		fields[vendorIDField] = vendorID
	}
	if route := t.Route(); route != "" {
		fields[routeField] = route
	}
	return fields
}
