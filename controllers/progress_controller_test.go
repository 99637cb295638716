package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func isoDaysFromNow(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func createSubject(t *testing.T, r *gin.Engine, cookie *http.Cookie, name string, examInDays int, hours float64, topics []string) uint {
	t.Helper()
	rec := doJSON(r, http.MethodPost, "/api/subjects", gin.H{
		"name":               name,
		"exam_date":          isoDaysFromNow(examInDays),
		"total_hours_needed": hours,
		"topics":             topics,
	}, cookie)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create subject failed: %d %s", rec.Code, rec.Body.String())
	}
	subject := decodeBody(t, rec)["subject"].(map[string]any)
	return uint(subject["id"].(float64))
}

func TestProgressEndpointMergesTopicsIdempotently(t *testing.T) {
	r := setupRouter(t)
	cookie := registerAndLogin(t, r, "vic")
	subjectID := createSubject(t, r, cookie, "Algebra", 20, 30, []string{"sets", "groups"})

	payload := gin.H{"subject_id": subjectID, "hours_studied": 1.5, "topics_completed": []string{"sets"}}
	rec := doJSON(r, http.MethodPost, "/api/progress", payload, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(r, http.MethodPost, "/api/progress", gin.H{
		"subject_id": subjectID, "topics_completed": []string{"sets"},
	}, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(r, http.MethodGet, "/api/progress", nil, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	bySubject := decodeBody(t, rec)["progress_by_subject"].(map[string]any)
	info := bySubject[fmt.Sprint(subjectID)].(map[string]any)
	assert.Equal(t, 1.5, info["total_hours_studied"])
	assert.Equal(t, []any{"sets"}, info["topics_completed"])
	assert.Equal(t, []any{"groups"}, info["topics_remaining"])
}

func TestProgressValidation(t *testing.T) {
	r := setupRouter(t)
	cookie := registerAndLogin(t, r, "wes")
	subjectID := createSubject(t, r, cookie, "Physics", 10, 10, nil)

	rec := doJSON(r, http.MethodPost, "/api/progress", gin.H{
		"subject_id": subjectID, "hours_studied": -1,
	}, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(r, http.MethodPost, "/api/progress", gin.H{
		"subject_id": subjectID, "date": "31-12-2025",
	}, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(r, http.MethodPost, "/api/progress", gin.H{"hours_studied": 1}, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProgressOnForeignSubjectIs404(t *testing.T) {
	r := setupRouter(t)
	owner := registerAndLogin(t, r, "xena")
	subjectID := createSubject(t, r, owner, "Latin", 15, 10, nil)

	intruder := registerAndLogin(t, r, "yuri")
	rec := doJSON(r, http.MethodPost, "/api/progress", gin.H{
		"subject_id": subjectID, "hours_studied": 1,
	}, intruder)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDailyScheduleOverloadFlag(t *testing.T) {
	r := setupRouter(t)
	cookie := registerAndLogin(t, r, "zoe")
	// 40 hours over 2 days: 20 h/day, way past the default 8 hour cap.
	createSubject(t, r, cookie, "Cramming", 2, 40, nil)

	rec := doJSON(r, http.MethodGet, "/api/daily-schedule", nil, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["is_overloaded"])
	assert.Equal(t, 20.0, body["total_daily_hours"])

	// A generous override lifts the flag.
	rec = doJSON(r, http.MethodGet, "/api/daily-schedule?max_daily_hours=24", nil, cookie)
	assert.Equal(t, false, decodeBody(t, rec)["is_overloaded"])
}

func TestSubjectDeleteCascadesProgress(t *testing.T) {
	r := setupRouter(t)
	cookie := registerAndLogin(t, r, "abe")
	subjectID := createSubject(t, r, cookie, "Doomed", 10, 10, nil)

	rec := doJSON(r, http.MethodPost, "/api/progress", gin.H{
		"subject_id": subjectID, "hours_studied": 2,
	}, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/subjects/%d", subjectID), nil, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(r, http.MethodGet, "/api/progress", nil, cookie)
	bySubject := decodeBody(t, rec)["progress_by_subject"].(map[string]any)
	assert.Empty(t, bySubject)

	// History must not resurrect the deleted subject's hours.
	rec = doJSON(r, http.MethodGet, "/api/history", nil, cookie)
	history := decodeBody(t, rec)
	assert.Empty(t, history["by_subject"])
}

func TestSettingsRoundTrip(t *testing.T) {
	r := setupRouter(t)
	cookie := registerAndLogin(t, r, "bea")

	rec := doJSON(r, http.MethodGet, "/api/settings", nil, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	settings := decodeBody(t, rec)["settings"].(map[string]any)
	assert.Equal(t, 8.0, settings["max_daily_hours"])
	assert.Equal(t, true, settings["show_dashboard_tour"])

	rec = doJSON(r, http.MethodPut, "/api/settings", gin.H{
		"max_daily_hours": 6.5, "show_dashboard_tour": false,
	}, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	settings = decodeBody(t, rec)["settings"].(map[string]any)
	assert.Equal(t, 6.5, settings["max_daily_hours"])
	assert.Equal(t, false, settings["show_dashboard_tour"])

	rec = doJSON(r, http.MethodPut, "/api/settings", gin.H{"max_daily_hours": -2}, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatbotEndpoint(t *testing.T) {
	r := setupRouter(t)
	cookie := registerAndLogin(t, r, "cal")

	rec := doJSON(r, http.MethodPost, "/api/chatbot", gin.H{"message": "   "}, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(r, http.MethodPost, "/api/chatbot", gin.H{"message": "hello"}, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["reply"], "Study Helper")
}

func TestStatsIncludesMotivation(t *testing.T) {
	r := setupRouter(t)
	cookie := registerAndLogin(t, r, "dot")
	subjectID := createSubject(t, r, cookie, "Music", 20, 10, []string{"scales"})

	rec := doJSON(r, http.MethodPost, "/api/progress", gin.H{
		"subject_id": subjectID, "hours_studied": 4, "topics_completed": []string{"scales"},
	}, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(r, http.MethodGet, "/api/stats", nil, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	stats := body["stats"].(map[string]any)
	assert.Equal(t, 4.0, stats["total_hours_studied"])
	assert.Equal(t, 10.0, stats["total_hours_needed"])
	assert.Equal(t, 6.0, stats["hours_remaining"])
	assert.Equal(t, 40.0, stats["overall_progress_percent"])
	assert.Equal(t, 1.0, stats["total_topics_completed"].(float64))
	assert.NotEmpty(t, body["message"])
}
