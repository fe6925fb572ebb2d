package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	"github.com/vfg2006/vendorhub-api/internal/i18n"
	"github.com/vfg2006/vendorhub-api/pkg/apiErrors"
	"github.com/vfg2006/vendorhub-api/pkg/log"
)

const slowRequestThreshold = 500 * time.Millisecond

// LoggingMiddleware registra o início e o fim de cada requisição. O log de fim traz
// o vendedor autenticado e a rota casada, preenchidos pelas camadas internas.
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context(), r.Header.Get(log.CorrelationIDHeader))
			ctx, trace := log.WithRequestTrace(ctx)
			r = r.WithContext(ctx)
			w.Header().Set(log.CorrelationIDHeader, correlationID)

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			log.ForContext(ctx).WithFields(log.Fields{
				"method":         r.Method,
				"path":           r.URL.Path,
				"query":          r.URL.RawQuery,
				"remote_addr":    r.RemoteAddr,
				"user_agent":     r.UserAgent(),
				"content_length": r.ContentLength,
			}).Info("→ Requisição iniciada")

			next.ServeHTTP(lrw, r)

			elapsed := time.Since(startTime)
			fields := trace.Fields()
			fields["method"] = r.Method
			fields["path"] = r.URL.Path
			fields["status_code"] = lrw.statusCode
			fields["duration_ms"] = elapsed.Milliseconds()
			fields["response_bytes"] = lrw.bytes

			logger := log.ForContext(ctx).WithFields(fields)
			if elapsed > slowRequestThreshold {
				logger = logger.WithField("slow", true)
			}

			target := trace.Route()
			if target == "" {
				target = r.Method + " " + r.URL.Path
			}
			message := fmt.Sprintf("%s %d em %s", target, lrw.statusCode, formatDuration(elapsed))

			switch {
			case lrw.statusCode >= http.StatusInternalServerError:
				logger.Error(message)
			case lrw.statusCode >= http.StatusBadRequest:
				logger.Warn(message)
			default:
				logger.Info(message)
			}
		})
	}
}

// formatDuration formata a duração de forma humana
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%d µs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%d ms", d.Milliseconds())
	}
	return fmt.Sprintf("%.2f s", d.Seconds())
}

// loggingResponseWriter captura status e tamanho da resposta
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode  int
	bytes       int
	wroteHeader bool
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	if lrw.wroteHeader {
		return
	}
	lrw.wroteHeader = true
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Write(b []byte) (int, error) {
	lrw.wroteHeader = true
	n, err := lrw.ResponseWriter.Write(b)
	lrw.bytes += n
	return n, err
}

// LogPanicMiddleware converte panics em 500 no idioma do cliente. Deve ficar dentro do
// LoggingMiddleware para que o log carregue o correlation_id.
func LogPanicMiddleware(catalog *i18n.Catalog) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := debug.Stack()
					trace := log.TraceFromContext(r.Context())

					logger := log.ForContext(r.Context()).WithFields(trace.Fields()).WithFields(log.Fields{
						"error":  err,
						"method": r.Method,
						"path":   r.URL.Path,
					})

					if log.IsDevelopment() {
						logger.Error("❌ PANIC na aplicação")
						fmt.Fprintf(os.Stderr, "\n\n=== STACK TRACE ===\n%s\n=================\n\n", stack)
					} else {
						logger.WithField("stack_trace", string(stack)).Error("Erro não tratado na aplicação")
					}

					locale := i18n.Negotiate(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))
					apiErrors.WriteError(w, apiErrors.ErrInternalServer, catalog.Message(locale, i18n.MsgInternalError), nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
