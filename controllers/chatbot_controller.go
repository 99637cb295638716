package controllers

import (
	"net/http"
	"strings"

	"github.com/gopikaunnikrishnan1215-web/smart-study-planner/services"

	"github.com/gin-gonic/gin"
)

type ChatbotInput struct {
	Message string `json:"message"`
}

func Chatbot(c *gin.Context) {
	userID := c.GetUint("userID")

	var input ChatbotInput
	if err := c.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message cannot be empty"})
		return
	}

	reply := services.ChatbotResponse(input.Message, userID)
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
