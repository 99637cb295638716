package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gopikaunnikrishnan1215-web/smart-study-planner/services"

	"github.com/gin-gonic/gin"
)

type ProgressInput struct {
	SubjectID       *uint    `json:"subject_id" binding:"required"`
	HoursStudied    float64  `json:"hours_studied"`
	TopicsCompleted []string `json:"topics_completed"`
	Date            string   `json:"date"`
}

func LogProgress(c *gin.Context) {
	userID := c.GetUint("userID")

	var input ProgressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "subject_id is required"})
		return
	}
	if input.HoursStudied < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hours_studied cannot be negative"})
		return
	}

	day := time.Now()
	if input.Date != "" {
		parsed, err := time.Parse("2006-01-02", input.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
			return
		}
		day = parsed
	}

	err := services.LogProgress(userID, *input.SubjectID, day, input.HoursStudied, input.TopicsCompleted)
	if err != nil {
		if errors.Is(err, services.ErrSubjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subject not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Progress updated"})
}

func GetProgress(c *gin.Context) {
	userID := c.GetUint("userID")

	subjects, err := services.ListSubjects(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	progressMap, err := services.BuildProgressMap(userID, subjects)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress_by_subject": progressMap})
}

func GetDailySchedule(c *gin.Context) {
	userID := c.GetUint("userID")

	schedule, err := services.BuildDailySchedule(userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	settings, err := services.GetOrCreateSettings(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	maxDailyHours := settings.MaxDailyHours
	if raw := c.Query("max_daily_hours"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			maxDailyHours = v
		}
	}
	schedule.IsOverloaded = schedule.TotalDailyHours > maxDailyHours

	c.JSON(http.StatusOK, schedule)
}

func GetWeekView(c *gin.Context) {
	userID := c.GetUint("userID")

	start := time.Now()
	if raw := c.Query("start"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date format"})
			return
		}
		start = parsed
	}

	week, err := services.BuildWeekView(userID, start)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"week": week})
}

func GetStats(c *gin.Context) {
	userID := c.GetUint("userID")

	stats, err := services.GetOverallStats(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":   stats,
		"message": services.MotivationalMessage(stats.OverallProgressPercent),
	})
}

func GetHistory(c *gin.Context) {
	userID := c.GetUint("userID")

	history, err := services.BuildHistory(userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, history)
}
