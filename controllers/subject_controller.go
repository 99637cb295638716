package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gopikaunnikrishnan1215-web/smart-study-planner/models"
	"github.com/gopikaunnikrishnan1215-web/smart-study-planner/services"
	"github.com/gopikaunnikrishnan1215-web/smart-study-planner/utils"

	"github.com/gin-gonic/gin"
)

type SubjectInput struct {
	Name             string   `json:"name" binding:"required"`
	ExamDate         string   `json:"exam_date" binding:"required"`
	TotalHoursNeeded *float64 `json:"total_hours_needed" binding:"required"`
	Topics           []string `json:"topics"`
}

func subjectToJSON(subject *models.Subject, progress *services.SubjectProgress) gin.H {
	out := gin.H{
		"id":                 subject.ID,
		"name":               subject.Name,
		"exam_date":          subject.ExamDate.Format("2006-01-02"),
		"total_hours_needed": subject.TotalHoursNeeded,
		"topics":             subject.TopicList(),
		"hours_per_day":      utils.HoursPerDay(subject.ExamDate, time.Now(), subject.TotalHoursNeeded),
	}
	if progress != nil {
		out["progress"] = progress
	}
	return out
}

func ListSubjects(c *gin.Context) {
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

	out := make([]gin.H, 0, len(subjects))
	for i := range subjects {
		info := progressMap[subjects[i].ID]
		out = append(out, subjectToJSON(&subjects[i], &info))
	}
	c.JSON(http.StatusOK, gin.H{"subjects": out})
}

func CreateSubject(c *gin.Context) {
	userID := c.GetUint("userID")

	var input SubjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, exam_date, and total_hours_needed are required"})
		return
	}

	examDate, err := time.Parse("2006-01-02", input.ExamDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid exam_date format"})
		return
	}
	if *input.TotalHoursNeeded <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "total_hours_needed must be positive"})
		return
	}

	subject, err := services.CreateSubject(userID, input.Name, examDate, *input.TotalHoursNeeded, input.Topics)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"subject": subjectToJSON(subject, nil)})
}

type SubjectUpdateInput struct {
	Name             string   `json:"name"`
	ExamDate         string   `json:"exam_date"`
	TotalHoursNeeded *float64 `json:"total_hours_needed"`
	Topics           []string `json:"topics"`
}

func UpdateSubject(c *gin.Context) {
	userID := c.GetUint("userID")
	subjectID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subject id"})
		return
	}

	var input SubjectUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	var examDate *time.Time
	if input.ExamDate != "" {
		parsed, err := time.Parse("2006-01-02", input.ExamDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid exam_date format"})
			return
		}
		examDate = &parsed
	}
	if input.TotalHoursNeeded != nil && *input.TotalHoursNeeded <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "total_hours_needed must be positive"})
		return
	}

	subject, err := services.UpdateSubject(userID, subjectID, input.Name, examDate, input.TotalHoursNeeded, input.Topics)
	if err != nil {
		if errors.Is(err, services.ErrSubjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subject not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"subject": subjectToJSON(subject, nil)})
}

func DeleteSubject(c *gin.Context) {
	userID := c.GetUint("userID")
	subjectID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subject id"})
		return
	}

	if err := services.DeleteSubject(userID, subjectID); err != nil {
		if errors.Is(err, services.ErrSubjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subject not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subject deleted"})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	return uint(id), err
}
