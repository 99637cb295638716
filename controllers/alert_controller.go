package controllers

import (
	"net/http"

	"github.com/gopikaunnikrishnan1215-web/smart-study-planner/services"

	"github.com/gin-gonic/gin"
)

// GET /api/alerts
func ListAlerts(c *gin.Context) {
	userID := c.GetUint("userID")

	alerts, err := services.ListAlerts(userID, 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}
