package services

import (
	"errors"

	"github.com/gopikaunnikrishnan1215-web/smart-study-planner/config"
	"github.com/gopikaunnikrishnan1215-web/smart-study-planner/models"

	"gorm.io/gorm"
)

func GetOrCreateSettings(userID uint) (*models.UserSettings, error) {
	var settings models.UserSettings
	err := config.DB.Where("user_id = ?", userID).First(&settings).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		settings = models.UserSettings{
			UserID:            userID,
			MaxDailyHours:     8.0,
			ShowDashboardTour: true,
		}
		if err := config.DB.Create(&settings).Error; err != nil {
			return nil, err
		}
	}
	return &settings, nil
}

func UpdateSettings(userID uint, maxDailyHours *float64, showDashboardTour *bool) (*models.UserSettings, error) {
	settings, err := GetOrCreateSettings(userID)
	if err != nil {
		return nil, err
	}

	if maxDailyHours != nil {
		settings.MaxDailyHours = *maxDailyHours
	}
	if showDashboardTour != nil {
		settings.ShowDashboardTour = *showDashboardTour
	}

	if err := config.DB.Save(settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}
