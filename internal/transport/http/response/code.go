package response

// 业务码沿用 HTTP 状态语义，0 表示成功；写响应时同一个码也作为真实状态码
const (
	CodeOK           = 0
	CodeBadRequest   = 400
	CodeUnauthorized = 401
	CodeForbidden    = 403
	CodeNotFound     = 404
	CodeTooMany      = 429
	CodeServerError  = 500
	CodeBusy         = 503
	CodeTimeout      = 504
)

// CodeMsgMap 各码的兜底文案；对外文案保持稳定、小写、不含内部细节
var CodeMsgMap = map[int]string{
	CodeOK:           "OK",
	CodeBadRequest:   "invalid request",
	CodeUnauthorized: "unauthorized",
	CodeForbidden:    "forbidden",
	CodeNotFound:     "not found",
	CodeTooMany:      "too many requests",
	CodeServerError:  "internal error",
	CodeBusy:         "server busy",
	CodeTimeout:      "timeout",
}
