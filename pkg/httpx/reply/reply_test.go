package reply_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"plate_appraiser/pkg/contextx"
	"plate_appraiser/pkg/errcodes"
	"plate_appraiser/pkg/httpx/reply"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type codedError struct{ code failure.ErrorCode }

func (e codedError) Error() string                { return "lookup missed: secret detail" }
func (e codedError) ErrorCode() failure.ErrorCode { return e.code }

type errorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	SupportID string `json:"supportId"`
}

func TestError(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name       string
		err        error
		statusCode int
		code       string
		message    string
	}{
		{
			name: "Invalid plate",
			err: fmt.Errorf("ValuatePlate: %w", failure.NewInvalidArgumentError("bad plate",
				failure.WithCode(errcodes.InvalidPlateFormat),
				failure.WithDescription("车牌格式不正确"),
			)),
			statusCode: http.StatusBadRequest,
			code:       "InvalidPlateFormat",
			message:    "车牌格式不正确",
		},
		{
			name:       "Invalid argument without code",
			err:        failure.NewInvalidArgumentError("bad input"),
			statusCode: http.StatusBadRequest,
			code:       "ValidationError",
		},
		{
			name:       "Not found",
			err:        failure.NewNotFoundError("no such province"),
			statusCode: http.StatusNotFound,
			code:       "NotFound",
		},
		{
			name:       "Plain error",
			err:        errors.New("boom"),
			statusCode: http.StatusInternalServerError,
			code:       "InternalServerError",
		},
		{
			name:       "Coded domain error keeps its code",
			err:        fmt.Errorf("ValuateTail: %w", codedError{code: errcodes.ComputationError}),
			statusCode: http.StatusInternalServerError,
			code:       "ComputationError",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			ctx := contextx.WithTraceID(context.Background(), contextx.TraceID("trace-1"))
			rec := httptest.NewRecorder()

			reply.Error(ctx, rec, tc.err)

			var body errorBody
			rq.NoError(json.Unmarshal(rec.Body.Bytes(), &body))

			rq.Equal(tc.statusCode, rec.Code)
			rq.Equal(tc.code, body.Code)
			if tc.message != "" {
				rq.Equal(tc.message, body.Message)
			}
			if tc.statusCode == http.StatusInternalServerError {
				rq.Empty(body.Message)
				rq.NotContains(rec.Body.String(), "secret detail")
			}
			rq.Equal("trace-1", body.SupportID)
			rq.Equal("application/json; charset=utf-8", rec.Header().Get("Content-Type"))
		})
	}
}

func TestError_LogLevel(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name      string
		err       error
		wantLevel string
	}{
		{
			name:      "Rejected input",
			err:       failure.NewInvalidArgumentError("bad tail", failure.WithCode(errcodes.InvalidTailNumber)),
			wantLevel: `"level":"INFO"`,
		},
		{
			name:      "Internal failure",
			err:       errors.New("boom"),
			wantLevel: `"level":"ERROR"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var buf bytes.Buffer

			log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			ctx := contextx.WithLogger(context.Background(), log)

			reply.Error(ctx, httptest.NewRecorder(), tc.err)

			rq.Contains(buf.String(), tc.wantLevel)
			rq.Contains(buf.String(), `"error-code"`)
		})
	}
}
