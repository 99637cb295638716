package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/gopikaunnikrishnan1215-web/smart-study-planner/config"
	"github.com/gopikaunnikrishnan1215-web/smart-study-planner/models"
	"github.com/gopikaunnikrishnan1215-web/smart-study-planner/utils"

	"gorm.io/gorm"
)

var ErrSubjectNotFound = errors.New("subject not found")

func ListSubjects(userID uint) ([]models.Subject, error) {
	var subjects []models.Subject
	err := config.DB.Where("user_id = ?", userID).Order("exam_date asc").Find(&subjects).Error
	return subjects, err
}

func GetSubject(userID, subjectID uint) (*models.Subject, error) {
	var subject models.Subject
	err := config.DB.Where("id = ? AND user_id = ?", subjectID, userID).First(&subject).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		return nil, err
	}
	return &subject, nil
}

func CreateSubject(userID uint, name string, examDate time.Time, totalHours float64, topics []string) (*models.Subject, error) {
	subject := models.Subject{
		UserID:           userID,
		Name:             name,
		ExamDate:         examDate,
		TotalHoursNeeded: totalHours,
	}
	subject.SetTopics(topics)

	if err := config.DB.Create(&subject).Error; err != nil {
		return nil, err
	}

	notifyUpcomingExam(&subject)
	return &subject, nil
}

func UpdateSubject(userID, subjectID uint, name string, examDate *time.Time, totalHours *float64, topics []string) (*models.Subject, error) {
	subject, err := GetSubject(userID, subjectID)
	if err != nil {
		return nil, err
	}

	if name != "" {
		subject.Name = name
	}
	if examDate != nil {
		subject.ExamDate = *examDate
	}
	if totalHours != nil {
		subject.TotalHoursNeeded = *totalHours
	}
	if topics != nil {
		subject.SetTopics(topics)
	}

	if err := config.DB.Save(subject).Error; err != nil {
		return nil, err
	}

	notifyUpcomingExam(subject)
	return subject, nil
}

// DeleteSubject removes the subject and its progress rows.
func DeleteSubject(userID, subjectID uint) error {
	subject, err := GetSubject(userID, subjectID)
	if err != nil {
		return err
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND subject_id = ?", userID, subjectID).
			Delete(&models.Progress{}).Error; err != nil {
			return err
		}
		return tx.Delete(subject).Error
	})
}

func notifyUpcomingExam(subject *models.Subject) {
	days := utils.DaysUntil(subject.ExamDate, time.Now())
	if days < 0 || days > 7 {
		return
	}
	EmitAlert(subject.UserID, "warning",
		fmt.Sprintf("%s exam is in %d day(s). Check your daily schedule.", subject.Name, days))
}
