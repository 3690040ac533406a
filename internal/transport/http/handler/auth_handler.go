package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/XYFORA-Dev/XYFORA-APIs/internal/core/errs"
	"github.com/XYFORA-Dev/XYFORA-APIs/internal/domain"
	"github.com/XYFORA-Dev/XYFORA-APIs/internal/service"
	"github.com/XYFORA-Dev/XYFORA-APIs/internal/transport/http/middleware"
	"github.com/XYFORA-Dev/XYFORA-APIs/internal/transport/http/response"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

func (h *AuthHandler) Priority() int { return 10 }

// MountAPI 注册 /auth 路由；注册/登录额外做每 IP 限速
func (h *AuthHandler) MountAPI(public, authed *gin.RouterGroup) {
	g := public.Group("/auth", middleware.RateLimitPerIP(5, 10))
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)

	authed.GET("/auth/me", h.Me)
}

type registerReq struct {
	Fullname string `json:"fullname" binding:"required,max=64"`
	Email    string `json:"email"    binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

type loginReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type authUserResp struct {
	ID       string `json:"id"`
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Token    string `json:"token,omitempty"`
}

func newAuthUserResp(u *domain.User, token string) authUserResp {
	return authUserResp{ID: u.ID, Fullname: u.Fullname, Email: u.Email, Token: token}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var in registerReq
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, errs.BadRequest("invalid request"))
		return
	}
	res, err := h.svc.Register(c.Request.Context(), service.RegisterInput{
		Fullname: in.Fullname,
		Email:    in.Email,
		Password: in.Password,
	})
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Created(c, newAuthUserResp(res.User, res.Token))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in loginReq
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, errs.BadRequest("invalid request"))
		return
	}
	res, err := h.svc.Login(c.Request.Context(), service.LoginInput{
		Email:    in.Email,
		Password: in.Password,
	})
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, newAuthUserResp(res.User, res.Token))
}

func (h *AuthHandler) Me(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserID)
	if uid == "" {
		response.Fail(c, errs.Unauthorized("missing token"))
		return
	}
	u, err := h.svc.Profile(c.Request.Context(), uid)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, newAuthUserResp(u, ""))
}
