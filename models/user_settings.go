package models

import (
    "gorm.io/gorm"
)

type UserSettings struct {
    gorm.Model
    UserID            uint    `gorm:"uniqueIndex;not null"`
    MaxDailyHours     float64 `gorm:"not null;default:8"`
    ShowDashboardTour bool    `gorm:"not null;default:true"`
}
