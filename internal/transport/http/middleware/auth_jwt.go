package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/XYFORA-Dev/XYFORA-APIs/internal/core/auth"
	"github.com/XYFORA-Dev/XYFORA-APIs/internal/core/guard"
	resp "github.com/XYFORA-Dev/XYFORA-APIs/internal/transport/http/response"
)

// CtxUserID 已验证身份在 gin.Context 中的键
const CtxUserID = "userId"

func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := guard.BearerToken(c.GetHeader("Authorization"))
		if !ok {
			resp.Abort(c, resp.CodeUnauthorized, "missing token")
			return
		}
		claims, err := j.Parse(token)
		if err != nil {
			resp.Abort(c, resp.CodeUnauthorized, "invalid token")
			return
		}
		c.Set(CtxUserID, claims.UID)
		c.Next()
	}
}
