package contextx

import (
	"context"
	"fmt"

	"github.com/rs/xid"
)

const maxTraceIDLen = 64

// TraceID связывает логи запроса, ответ с ошибкой и заголовок X-Trace-Id.
type TraceID string

type contextKeyTraceID struct{}

func (t TraceID) String() string {
	return string(t)
}

func NewTraceID() TraceID {
	return TraceID(xid.New().String())
}

// ParseTraceID принимает id от клиента: латиница, цифры и "-_.", не длиннее 64 байт.
func ParseTraceID(raw string) (TraceID, bool) {
	if raw == "" || len(raw) > maxTraceIDLen {
		return "", false
	}

	for _, c := range raw {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-' || c == '_' || c == '.':
		default:
			return "", false
		}
	}

	return TraceID(raw), true
}

func WithTraceID(ctx context.Context, traceID TraceID) context.Context {
	return context.WithValue(ctx, contextKeyTraceID{}, traceID)
}

func TraceIDFromContext(ctx context.Context) (TraceID, error) {
	traceID, ok := ctx.Value(contextKeyTraceID{}).(TraceID)
	if !ok {
		return "", fmt.Errorf("trace id: %w", ErrNoValue)
	}

	return traceID, nil
}
