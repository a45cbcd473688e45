package middlewarex

import (
	"log/slog"
	"net/http"

	"plate_appraiser/pkg/contextx"
	"plate_appraiser/pkg/logx"
)

// Logger кладёт в контекст логгер запроса. Ставится после TraceID.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		attrs := []any{
			slog.String(logx.FieldURL, r.URL.Path),
			slog.String(logx.FieldHTTPMethod, r.Method),
			slog.String(logx.FieldIP, r.RemoteAddr),
		}

		if traceID, err := contextx.TraceIDFromContext(ctx); err == nil {
			attrs = append(attrs, logx.Stringer(logx.FieldTraceID, traceID))
		} else {
			logger(ctx).Warn("request without trace id", logx.Error(err))
		}

		if ua := r.UserAgent(); ua != "" {
			attrs = append(attrs, slog.String(logx.FieldUserAgent, ua))
		}

		next.ServeHTTP(w, r.WithContext(contextx.WithLogger(ctx, logger(ctx).With(attrs...))))
	})
}
