package utils

import (
	"math"
	"time"
)

// OverduePriority is assigned to any subject whose exam date has passed.
const OverduePriority = 1000.0

// DaysUntil counts whole days between today and the exam date, ignoring the
// time-of-day component of both.
func DaysUntil(examDate, today time.Time) int {
	exam := time.Date(examDate.Year(), examDate.Month(), examDate.Day(), 0, 0, 0, 0, time.UTC)
	now := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(exam.Sub(now).Hours() / 24)
}

// HoursPerDay spreads the remaining hours evenly over the days left before
// the exam. An exam today or in the past returns the full remaining load as
// a single day's recommendation.
func HoursPerDay(examDate, today time.Time, hoursRemaining float64) float64 {
	days := DaysUntil(examDate, today)
	if days <= 0 {
		return Round2(hoursRemaining)
	}
	return Round2(hoursRemaining / float64(days))
}

// UrgencyMultiplier steps up as the exam approaches.
func UrgencyMultiplier(daysRemaining int) float64 {
	switch {
	case daysRemaining <= 3:
		return 5.0
	case daysRemaining <= 7:
		return 3.0
	case daysRemaining <= 14:
		return 2.0
	default:
		return 1.0
	}
}

// PriorityScore ranks a subject by (hours remaining / days remaining) scaled
// by urgency. Overdue subjects always outrank everything else.
func PriorityScore(examDate, today time.Time, hoursRemaining float64) float64 {
	days := DaysUntil(examDate, today)
	if days <= 0 {
		return OverduePriority
	}
	score := (hoursRemaining / float64(days)) * UrgencyMultiplier(days)
	return Round2(score)
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
