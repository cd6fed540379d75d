package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/styleforge/backend/pkg/ctxutil"
)

// Recovery returns middleware that recovers from panics, logs the error with
// a stack trace and context identifiers (request_id, curator), and responds
// with 500 Internal Server Error.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					attrs := []slog.Attr{
						slog.Any("error", err),
						slog.String("stack", string(debug.Stack())),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
					}
					if curator, ok := ctxutil.CuratorFromCtx(r.Context()); ok {
						attrs = append(attrs, slog.String("curator", curator))
					}
					logger.LogAttrs(r.Context(), slog.LevelError, "panic recovered", attrs...)
					http.Error(w, "internal server error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
