package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/gopikaunnikrishnan1215-web/smart-study-planner/config"
	"github.com/gopikaunnikrishnan1215-web/smart-study-planner/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupDB points the package's global DB at a fresh in-memory database.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	config.DB = db
	InitAlertDeps(db, NewStudyHub())
	return db
}

func timeNowPlusDays(days int) time.Time {
	return time.Now().AddDate(0, 0, days)
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Email:    username + "@test.test",
		Password: "hashed",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return &user
}

func createTestSubject(t *testing.T, db *gorm.DB, userID uint, name string, examDate time.Time, hours float64, topics []string) *models.Subject {
	t.Helper()
	subject := models.Subject{
		UserID:           userID,
		Name:             name,
		ExamDate:         examDate,
		TotalHoursNeeded: hours,
	}
	subject.SetTopics(topics)
	if err := db.Create(&subject).Error; err != nil {
		t.Fatalf("create subject: %v", err)
	}
	return &subject
}
