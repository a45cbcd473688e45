package middlewarex

import (
	"log/slog"
	"net/http"
	"net/http/httputil"

	"plate_appraiser/pkg/logx"
)

// RequestLogging логирует входящий запрос. В телах бывают номера телефонов,
// поэтому дамп маскируется до обрезки по logFieldMaxLen.
func RequestLogging(
	sensitiveDataMasker logx.SensitiveDataMaskerInterface,
	logFieldMaxLen int,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			dump, err := httputil.DumpRequest(r, r.Method != http.MethodGet)

			logger(ctx).Info(
				logx.FieldHTTPRequest,
				slog.String(logx.FieldRequestBody, maskAndCut(sensitiveDataMasker, dump, logFieldMaxLen)),
				logx.Error(err),
			)

			next.ServeHTTP(w, r)
		})
	}
}

func maskAndCut(masker logx.SensitiveDataMaskerInterface, dump []byte, maxLen int) string {
	dump = masker.Mask(dump)

	if maxLen > 0 && len(dump) > maxLen {
		dump = dump[:maxLen]
	}

	return string(dump)
}
