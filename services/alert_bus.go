package services

import (
	"time"

	"github.com/gopikaunnikrishnan1215-web/smart-study-planner/models"

	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	rt *StudyHub
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *StudyHub) {
	_alert = alertDeps{db: db, rt: rt}
}

// EmitAlert persists a study alert and pushes it to the user's open
// websocket connections. Safe to call before InitAlertDeps.
func EmitAlert(userID uint, typ, message string) {
	if _alert.db == nil {
		return
	}
	a := &models.Alert{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.Broadcast(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
}

func ListAlerts(userID uint, limit int) ([]models.Alert, error) {
	if _alert.db == nil {
		return []models.Alert{}, nil
	}
	var alerts []models.Alert
	err := _alert.db.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&alerts).Error
	return alerts, err
}
