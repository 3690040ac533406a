package errs

import "errors"

// AppError 业务失败的封闭枚举：Code 即对外 HTTP 状态，Msg 对外稳定简短，
// Err 仅供日志，不外泄
type AppError struct {
	Code int
	Msg  string
	Err  error
}

func (e *AppError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "app error"
}

func (e *AppError) Unwrap() error { return e.Err }

func BadRequest(msg string) error   { return &AppError{Code: 400, Msg: msg} }
func Unauthorized(msg string) error { return &AppError{Code: 401, Msg: msg} }
func Forbidden(msg string) error    { return &AppError{Code: 403, Msg: msg} }
func NotFound(msg string) error     { return &AppError{Code: 404, Msg: msg} }

// Conflict 重复资源（如邮箱已注册）；对外契约仍是 400
func Conflict(msg string) error { return &AppError{Code: 400, Msg: msg} }

func Internal(msg string, err error) error {
	return &AppError{Code: 500, Msg: msg, Err: err}
}

// CodeOf 取对应状态码；非业务错误一律按 500 兜底
func CodeOf(err error) int {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return 500
}
