package controllers

import (
	"net/http"

	"github.com/gopikaunnikrishnan1215-web/smart-study-planner/models"
	"github.com/gopikaunnikrishnan1215-web/smart-study-planner/services"

	"github.com/gin-gonic/gin"
)

func settingsToJSON(settings *models.UserSettings) gin.H {
	return gin.H{
		"max_daily_hours":     settings.MaxDailyHours,
		"show_dashboard_tour": settings.ShowDashboardTour,
	}
}

func GetSettings(c *gin.Context) {
	userID := c.GetUint("userID")

	settings, err := services.GetOrCreateSettings(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settingsToJSON(settings)})
}

type SettingsInput struct {
	MaxDailyHours     *float64 `json:"max_daily_hours"`
	ShowDashboardTour *bool    `json:"show_dashboard_tour"`
}

func UpdateSettings(c *gin.Context) {
	userID := c.GetUint("userID")

	var input SettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if input.MaxDailyHours != nil && *input.MaxDailyHours <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "max_daily_hours must be positive"})
		return
	}

	settings, err := services.UpdateSettings(userID, input.MaxDailyHours, input.ShowDashboardTour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settingsToJSON(settings)})
}
