package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/XYFORA-Dev/XYFORA-APIs/internal/core/errs"
	"github.com/XYFORA-Dev/XYFORA-APIs/internal/core/guard"
	"github.com/XYFORA-Dev/XYFORA-APIs/internal/domain"
	"github.com/XYFORA-Dev/XYFORA-APIs/internal/service"
	"github.com/XYFORA-Dev/XYFORA-APIs/internal/transport/http/middleware"
	"github.com/XYFORA-Dev/XYFORA-APIs/internal/transport/http/response"
)

type ProductHandler struct {
	svc service.ProductService
}

func NewProductHandler(svc service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func (h *ProductHandler) Priority() int { return 20 }

// MountAPI 产品路由全部挂鉴权分组
func (h *ProductHandler) MountAPI(_, authed *gin.RouterGroup) {
	g := authed.Group("/products")
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

type createProductReq struct {
	Title string   `json:"title" binding:"required,max=128"`
	Price *float64 `json:"price" binding:"required,gte=0"`
}

type updateProductReq struct {
	Title *string  `json:"title" binding:"omitempty,min=1,max=128"`
	Price *float64 `json:"price" binding:"omitempty,gte=0"`
}

// actor 取已验证身份；中间件没放行的请求到不了这里，双保险
func (h *ProductHandler) actor(c *gin.Context) (string, bool) {
	uid := c.GetString(middleware.CtxUserID)
	if uid == "" {
		response.Fail(c, errs.Unauthorized("missing token"))
		return "", false
	}
	return uid, true
}

func (h *ProductHandler) Create(c *gin.Context) {
	uid, ok := h.actor(c)
	if !ok {
		return
	}
	var in createProductReq
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, errs.BadRequest("invalid request"))
		return
	}
	p, err := h.svc.Create(c.Request.Context(), uid, service.CreateProductInput{
		Title: in.Title,
		Price: *in.Price,
	})
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Created(c, p)
}

func (h *ProductHandler) List(c *gin.Context) {
	uid, ok := h.actor(c)
	if !ok {
		return
	}
	list, err := h.svc.ListOwn(c.Request.Context(), uid)
	if err != nil {
		response.Fail(c, err)
		return
	}
	if list == nil {
		list = []domain.Product{}
	}
	response.Success(c, list)
}

func (h *ProductHandler) Get(c *gin.Context) {
	if _, ok := h.actor(c); !ok {
		return
	}
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, p)
}

func (h *ProductHandler) Update(c *gin.Context) {
	uid, ok := h.actor(c)
	if !ok {
		return
	}
	var in updateProductReq
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, errs.BadRequest("invalid request"))
		return
	}
	p, err := h.svc.Update(c.Request.Context(), uid, c.Param("id"), domain.ProductPatch{
		Title: in.Title,
		Price: in.Price,
	})
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, p)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	uid, ok := h.actor(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), uid, c.Param("id")); err != nil {
		response.Fail(c, err)
		return
	}
	// 回显规整后的 id
	response.Success(c, gin.H{"id": guard.CleanID(c.Param("id"))})
}
