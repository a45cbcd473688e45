package middlewarex

import (
	"net/http"

	"plate_appraiser/pkg/contextx"
)

const headerNameTraceID = "X-Trace-Id"

// TraceID берёт корректный X-Trace-Id из запроса, иначе генерирует новый.
// Итоговый id возвращается в заголовке ответа.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID, ok := contextx.ParseTraceID(r.Header.Get(headerNameTraceID))
		if !ok {
			traceID = contextx.NewTraceID()
		}

		w.Header().Set(headerNameTraceID, traceID.String())

		next.ServeHTTP(w, r.WithContext(contextx.WithTraceID(r.Context(), traceID)))
	})
}
