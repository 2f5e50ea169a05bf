package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"legal-case-api/internal/service"
	resp "legal-case-api/internal/transport/http/response"
)

type CaseHandler struct {
	svc *service.CaseService
}

func NewCaseHandler(svc *service.CaseService) *CaseHandler { return &CaseHandler{svc: svc} }

func (h *CaseHandler) Mount(g *gin.RouterGroup) {
	g.POST("/cases", h.Create)
	g.GET("/cases/:id", h.Get)
	g.PUT("/cases/:id", h.Update)
	g.DELETE("/cases/:id", h.Delete)
}

func (h *CaseHandler) Create(c *gin.Context) {
	var in service.CaseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.NewError(err.Error()))
		return
	}
	if in.Status == "" {
		in.Status = "open" // 默认值在边界补，服务层不管
	}
	out, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, resp.NewError(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *CaseHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	out, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, resp.NewError(err.Error()))
		return
	}
	if out == nil {
		c.JSON(http.StatusNotFound, resp.NewError("Case not found"))
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *CaseHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in service.CaseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.NewError(err.Error()))
		return
	}
	if in.Status == "" {
		in.Status = "open"
	}
	out, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, resp.NewError(err.Error()))
		return
	}
	if out == nil {
		c.JSON(http.StatusNotFound, resp.NewError("Case not found"))
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *CaseHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, resp.NewError(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
