package reply

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"plate_appraiser/pkg/contextx"
	"plate_appraiser/pkg/errcodes"
	"plate_appraiser/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	SupportID string `json:"supportId"`
}

// coder реализуют доменные ошибки со своим кодом (domain.AppError).
type coder interface {
	ErrorCode() failure.ErrorCode
}

type errorKind struct {
	is          func(error) bool
	statusCode  int
	defaultCode failure.ErrorCode
}

// errorKinds проверяются по порядку; всё, что не подошло, отвечает 500.
var errorKinds = []errorKind{ //nolint:gochecknoglobals
	{failure.IsInvalidArgumentError, http.StatusBadRequest, errcodes.ValidationError},
	{failure.IsNotFoundError, http.StatusNotFound, errcodes.NotFound},
	{failure.IsForbiddenError, http.StatusForbidden, errcodes.Forbidden},
}

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

// Error отвечает клиентской ошибкой с кодом и описанием из failure. Ошибки
// клиента логируются на Info, остальные на Error. Текст внутренних ошибок
// наружу не уходит, только код.
func Error(ctx context.Context, w http.ResponseWriter, err error) {
	response := errorResponse{SupportID: supportID(ctx)}

	for _, kind := range errorKinds {
		if !kind.is(err) {
			continue
		}

		response.Code = failure.Code(err).String()
		if response.Code == "" {
			response.Code = kind.defaultCode.String()
		}
		response.Message = failure.Description(err)

		logger(ctx).Info("request rejected",
			slog.Int(logx.FieldResponseStatus, kind.statusCode),
			slog.String(logx.FieldErrorCode, response.Code),
			logx.Error(err),
		)
		JSON(ctx, w, kind.statusCode, response)

		return
	}

	response.Code = errcodes.InternalServerError.String()

	var c coder
	if errors.As(err, &c) && c.ErrorCode() != "" {
		response.Code = c.ErrorCode().String()
	}

	logger(ctx).Error("request failed", slog.String(logx.FieldErrorCode, response.Code), logx.Error(err))
	JSON(ctx, w, http.StatusInternalServerError, response)
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
