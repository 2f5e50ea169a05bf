package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"legal-case-api/internal/service"
	resp "legal-case-api/internal/transport/http/response"
)

type DocumentHandler struct {
	svc *service.DocumentService
}

func NewDocumentHandler(svc *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

func (h *DocumentHandler) Mount(g *gin.RouterGroup) {
	g.POST("/documents", h.Create)
	g.GET("/documents/:id", h.Get)
	g.PUT("/documents/:id", h.Update)
	g.DELETE("/documents/:id", h.Delete)
}

func (h *DocumentHandler) Create(c *gin.Context) {
	var in service.DocumentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.NewError(err.Error()))
		return
	}
	out, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, resp.NewError(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *DocumentHandler) Get(c *gin.Context) {
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
		c.JSON(http.StatusNotFound, resp.NewError("Document not found"))
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *DocumentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in service.DocumentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.NewError(err.Error()))
		return
	}
	out, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, resp.NewError(err.Error()))
		return
	}
	if out == nil {
		c.JSON(http.StatusNotFound, resp.NewError("Document not found"))
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *DocumentHandler) Delete(c *gin.Context) {
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
