package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"legal-case-api/internal/service"
	resp "legal-case-api/internal/transport/http/response"
)

type ClientHandler struct {
	svc *service.ClientService
}

func NewClientHandler(svc *service.ClientService) *ClientHandler { return &ClientHandler{svc: svc} }

func (h *ClientHandler) Mount(g *gin.RouterGroup) {
	g.POST("/clients", h.Create)
	g.GET("/clients/:id", h.Get)
	g.PUT("/clients/:id", h.Update)
	g.DELETE("/clients/:id", h.Delete)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var in service.ClientInput
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

func (h *ClientHandler) Get(c *gin.Context) {
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
		c.JSON(http.StatusNotFound, resp.NewError("Client not found"))
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in service.ClientInput
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
		c.JSON(http.StatusNotFound, resp.NewError("Client not found"))
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *ClientHandler) Delete(c *gin.Context) {
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
