package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ping godoc
// @Summary Keep-awake ping
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Server is awake!"})
}
