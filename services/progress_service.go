package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/gopikaunnikrishnan1215-web/smart-study-planner/config"
	"github.com/gopikaunnikrishnan1215-web/smart-study-planner/models"
	"github.com/gopikaunnikrishnan1215-web/smart-study-planner/utils"

	"gorm.io/gorm"
)

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SubjectProgress is the aggregate view of one subject's study log.
type SubjectProgress struct {
	SubjectID         uint     `json:"subject_id"`
	TotalHoursStudied float64  `json:"total_hours_studied"`
	ProgressPercent   float64  `json:"progress_percent"`
	TopicsCompleted   []string `json:"topics_completed"`
	TopicsRemaining   []string `json:"topics_remaining"`
}

// LogProgress upserts the (user, subject, day) row: hours add to the day's
// running total and topics merge into the completed set.
func LogProgress(userID, subjectID uint, day time.Time, hours float64, topics []string) error {
	subject, err := GetSubject(userID, subjectID)
	if err != nil {
		return err
	}

	day = dayStart(day)

	var entry models.Progress
	err = config.DB.
		Where("user_id = ? AND subject_id = ? AND date = ?", userID, subjectID, day).
		First(&entry).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		entry = models.Progress{
			UserID:          userID,
			SubjectID:       subjectID,
			Date:            day,
			TopicsCompleted: "[]",
		}
	}

	var previousTotal float64
	if err := config.DB.Model(&models.Progress{}).
		Where("user_id = ? AND subject_id = ?", userID, subjectID).
		Select("COALESCE(SUM(hours_studied), 0)").Scan(&previousTotal).Error; err != nil {
		return err
	}

	entry.HoursStudied += hours
	entry.MergeTopics(topics)

	if err := config.DB.Save(&entry).Error; err != nil {
		return err
	}

	notifyProgressMilestones(userID, subject, previousTotal, previousTotal+hours)
	return nil
}

// ComputeSubjectProgress aggregates a subject's log: summed hours, percent
// complete guarded against a zero hour budget, and topic bookkeeping.
func ComputeSubjectProgress(subject *models.Subject, records []models.Progress) SubjectProgress {
	var totalHours float64
	completedSet := map[string]struct{}{}
	for _, rec := range records {
		totalHours += rec.HoursStudied
		for _, t := range rec.TopicsCompletedList() {
			completedSet[t] = struct{}{}
		}
	}

	allTopics := subject.TopicList()
	completed := make([]string, 0, len(completedSet))
	remaining := make([]string, 0, len(allTopics))
	for _, t := range allTopics {
		if _, ok := completedSet[t]; ok {
			completed = append(completed, t)
		} else {
			remaining = append(remaining, t)
		}
	}
	// Topics completed but no longer on the subject's list still count.
	for t := range completedSet {
		found := false
		for _, c := range completed {
			if c == t {
				found = true
				break
			}
		}
		if !found {
			completed = append(completed, t)
		}
	}
	sort.Strings(completed)

	var percent float64
	if subject.TotalHoursNeeded > 0 {
		percent = totalHours / subject.TotalHoursNeeded * 100.0
	}

	return SubjectProgress{
		SubjectID:         subject.ID,
		TotalHoursStudied: utils.Round2(totalHours),
		ProgressPercent:   utils.Round2(percent),
		TopicsCompleted:   completed,
		TopicsRemaining:   remaining,
	}
}

// BuildProgressMap aggregates every subject's log in one query.
func BuildProgressMap(userID uint, subjects []models.Subject) (map[uint]SubjectProgress, error) {
	var entries []models.Progress
	if err := config.DB.Where("user_id = ?", userID).Find(&entries).Error; err != nil {
		return nil, err
	}

	bySubject := map[uint][]models.Progress{}
	for _, e := range entries {
		bySubject[e.SubjectID] = append(bySubject[e.SubjectID], e)
	}

	progressMap := make(map[uint]SubjectProgress, len(subjects))
	for i := range subjects {
		subj := &subjects[i]
		progressMap[subj.ID] = ComputeSubjectProgress(subj, bySubject[subj.ID])
	}
	return progressMap, nil
}

// notifyProgressMilestones fires the completion alert only for the post that
// crosses the subject's hour budget, so repeat posts stay quiet.
func notifyProgressMilestones(userID uint, subject *models.Subject, hoursBefore, hoursAfter float64) {
	if subject.TotalHoursNeeded > 0 && hoursBefore < subject.TotalHoursNeeded && hoursAfter >= subject.TotalHoursNeeded {
		EmitAlert(userID, "info",
			fmt.Sprintf("You have completed the hour budget for %s. Great work!", subject.Name))
	}

	settings, err := GetOrCreateSettings(userID)
	if err != nil {
		return
	}
	schedule, err := BuildDailySchedule(userID, time.Now())
	if err != nil {
		return
	}
	if schedule.TotalDailyHours > settings.MaxDailyHours {
		EmitAlert(userID, "warning",
			fmt.Sprintf("Today's plan needs %.2f hours, above your %.2f hour cap", schedule.TotalDailyHours, settings.MaxDailyHours))
	}
}
