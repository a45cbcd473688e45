package logx

const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldChecks          = "checks"
	FieldChatID          = "chat-id"
	FieldCommand         = "command"
	FieldDurationMs      = "duration-ms"
	FieldEngine          = "engine"
	FieldError           = "error"
	FieldErrorCode       = "error-code"
	FieldFactors         = "factors"
	FieldHost            = "host"
	FieldGrade           = "grade"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIP              = "ip"
	FieldLevel           = "plate-level"
	FieldListenAddress   = "listen-address"
	FieldPattern         = "pattern"
	FieldPlate           = "plate"
	FieldProfile         = "profile"
	FieldRequestBody     = "request-body"
	FieldRequestID       = "request-id"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldStack           = "stack"
	FieldStars           = "stars"
	FieldTailNumber      = "tail-number"
	FieldTraceID         = "trace-id"
	FieldURL             = "url"
	FieldUserAgent       = "user-agent"
	FieldValue           = "value"
)
