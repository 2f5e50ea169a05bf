package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	resp "legal-case-api/internal/transport/http/response"
)

// parseID 路径 id 非整数 → 400，核心层不会收到
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, resp.NewError("invalid id"))
		return 0, false
	}
	return uint(id), true
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
