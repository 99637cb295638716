package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChatbotKeywordRouting(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		contains string
	}{
		{name: "greeting", message: "hello there", contains: "Study Helper"},
		{name: "concept quick action", message: "Explain this concept in simple words", contains: "Breaking Down Concepts"},
		{name: "example quick action", message: "Give a clear example for better understanding", contains: "Learning Through Examples"},
		{name: "exam points", message: "what are the key exam-oriented points?", contains: "Key Exam-Oriented Points"},
		{name: "time management", message: "best way to manage my study load", contains: "Time Management"},
		{name: "revision", message: "need a revision strategy before finals", contains: "Revision Strategy"},
		{name: "math", message: "algebra formula practice", contains: "Mathematics"},
		{name: "science", message: "lab experiment report", contains: "Science Learning"},
		{name: "history", message: "maps and geography", contains: "History & Geography"},
		// Substring matching routes the "hi" inside "this" to the greeting.
		{name: "hi inside another word", message: "remember this algebra formula", contains: "Study Helper"},
		{name: "language", message: "tips for essay writing", contains: "Language & Writing"},
		{name: "fallback", message: "xyzzy", contains: "Smart Study Tips"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := ChatbotResponse(tt.message, 0)
			assert.Contains(t, reply, tt.contains)
		})
	}
}

func TestChatbotMotivationUsesRealProgress(t *testing.T) {
	db := setupDB(t)
	user := createTestUser(t, db, "iggy")
	subject := createTestSubject(t, db, user.ID, "Music", timeNowPlusDays(20), 10, nil)
	assert.NoError(t, LogProgress(user.ID, subject.ID, timeNowPlusDays(0), 5, nil))

	reply := ChatbotResponse("I need some motivation", user.ID)
	assert.Contains(t, reply, "50.0%")
	assert.Contains(t, reply, "Staying Motivated")
}

func TestMotivationalMessageIsDeterministic(t *testing.T) {
	first := MotivationalMessage(33.3)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, MotivationalMessage(33.3))
	}

	low := MotivationalMessage(10)
	assert.True(t, containsString(lowProgressMessages, low))

	high := MotivationalMessage(80)
	assert.True(t, containsString(highProgressMessages, high))
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if strings.Contains(v, s) || v == s {
			return true
		}
	}
	return false
}
