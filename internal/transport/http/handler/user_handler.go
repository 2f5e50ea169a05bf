package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"legal-case-api/internal/service"
	resp "legal-case-api/internal/transport/http/response"
	"legal-case-api/pkg/utils"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler { return &UserHandler{svc: svc} }

func (h *UserHandler) Mount(g *gin.RouterGroup) {
	g.POST("/users", h.Create)
	g.GET("/users/:id", h.Get)
	g.PUT("/users/:id", h.Update)
	g.DELETE("/users/:id", h.Delete)
}

func (h *UserHandler) Create(c *gin.Context) {
	var in service.UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.NewError(err.Error()))
		return
	}
	// 明文口令只活到这里；服务层只见哈希
	in.Password = utils.HashPassword(in.Password)
	out, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, resp.NewError(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *UserHandler) Get(c *gin.Context) {
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
		c.JSON(http.StatusNotFound, resp.NewError("User not found"))
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in service.UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.NewError(err.Error()))
		return
	}
	in.Password = utils.HashPassword(in.Password)
	out, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, resp.NewError(err.Error()))
		return
	}
	if out == nil {
		c.JSON(http.StatusNotFound, resp.NewError("User not found"))
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *UserHandler) Delete(c *gin.Context) {
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
