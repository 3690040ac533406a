package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// KeyRequestID 请求 ID 的头名，同时作为 gin.Context 的键
const KeyRequestID = "X-Request-ID"

// RequestID 透传上游带来的请求 ID，没有就生成一个；
// 响应头回显，访问日志按它串联一次请求
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(KeyRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Header(KeyRequestID, rid)
		c.Set(KeyRequestID, rid)
		c.Next()
	}
}
