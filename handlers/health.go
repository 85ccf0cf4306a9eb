package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"worklane/utils"
)

// HealthCheck returns the latest stored dependency health snapshot.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
