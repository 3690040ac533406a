package response

// Resp 统一响应包络；HTTP 状态与 Code 始终一致（成功时 Code 为 0）
type Resp struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data"`
}

// New 组装包络；data 为 nil 时写空对象，客户端永远拿不到 null
func New(code int, msg string, data interface{}) Resp {
	if data == nil {
		data = struct{}{}
	}
	return Resp{Code: code, Msg: msg, Data: data}
}

// OK 成功包络
func OK(data interface{}) Resp { return New(CodeOK, CodeMsgMap[CodeOK], data) }

// Error 失败包络；msg 留空时落到 CodeMsgMap 的兜底文案
func Error(code int, msg string) Resp {
	if msg == "" {
		msg = CodeMsgMap[code]
	}
	return New(code, msg, struct{}{})
}
