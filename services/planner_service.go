package services

import (
	"sort"
	"time"

	"github.com/gopikaunnikrishnan1215-web/smart-study-planner/config"
	"github.com/gopikaunnikrishnan1215-web/smart-study-planner/models"
	"github.com/gopikaunnikrishnan1215-web/smart-study-planner/utils"
)

// ---------- Daily schedule ----------

type ScheduleItem struct {
	SubjectID   uint    `json:"subject_id"`
	Name        string  `json:"name"`
	ExamDate    string  `json:"exam_date"`
	HoursPerDay float64 `json:"hours_per_day"`
	Priority    float64 `json:"priority"`
}

type DailySchedule struct {
	Schedule        []ScheduleItem `json:"schedule"`
	TotalDailyHours float64        `json:"total_daily_hours"`
	IsOverloaded    bool           `json:"is_overloaded"`
}

// BuildDailySchedule projects today's load per subject and ranks it by
// priority. The overload flag is resolved by the caller against the user's
// cap, so IsOverloaded is left false here.
func BuildDailySchedule(userID uint, today time.Time) (*DailySchedule, error) {
	subjects, err := ListSubjects(userID)
	if err != nil {
		return nil, err
	}
	progressMap, err := BuildProgressMap(userID, subjects)
	if err != nil {
		return nil, err
	}

	out := &DailySchedule{Schedule: make([]ScheduleItem, 0, len(subjects))}
	for i := range subjects {
		subj := &subjects[i]
		info := progressMap[subj.ID]
		remaining := subj.TotalHoursNeeded - info.TotalHoursStudied
		if remaining < 0 {
			remaining = 0
		}

		hoursPerDay := utils.HoursPerDay(subj.ExamDate, today, subj.TotalHoursNeeded)
		out.TotalDailyHours += hoursPerDay

		out.Schedule = append(out.Schedule, ScheduleItem{
			SubjectID:   subj.ID,
			Name:        subj.Name,
			ExamDate:    subj.ExamDate.Format("2006-01-02"),
			HoursPerDay: hoursPerDay,
			Priority:    utils.PriorityScore(subj.ExamDate, today, remaining),
		})
	}

	sort.SliceStable(out.Schedule, func(i, j int) bool {
		return out.Schedule[i].Priority > out.Schedule[j].Priority
	})
	out.TotalDailyHours = utils.Round2(out.TotalDailyHours)
	return out, nil
}

// ---------- Week view ----------

type WeekDaySubject struct {
	SubjectID   uint    `json:"subject_id"`
	Name        string  `json:"name"`
	HoursPerDay float64 `json:"hours_per_day"`
}

type WeekDay struct {
	Date       string           `json:"date"`
	Subjects   []WeekDaySubject `json:"subjects"`
	TotalHours float64          `json:"total_hours"`
}

// BuildWeekView distributes each subject's remaining hours over the seven
// days starting at start. Days past a subject's exam contribute zero; the
// exam day itself takes the full remainder.
func BuildWeekView(userID uint, start time.Time) ([]WeekDay, error) {
	subjects, err := ListSubjects(userID)
	if err != nil {
		return nil, err
	}
	progressMap, err := BuildProgressMap(userID, subjects)
	if err != nil {
		return nil, err
	}

	week := make([]WeekDay, 0, 7)
	for offset := 0; offset < 7; offset++ {
		day := dayStart(start).AddDate(0, 0, offset)
		daySchedule := make([]WeekDaySubject, 0, len(subjects))
		var total float64

		for i := range subjects {
			subj := &subjects[i]
			info := progressMap[subj.ID]
			remaining := subj.TotalHoursNeeded - info.TotalHoursStudied
			if remaining < 0 {
				remaining = 0
			}

			var hoursPerDay float64
			switch days := utils.DaysUntil(subj.ExamDate, day); {
			case days > 0:
				hoursPerDay = remaining / float64(days)
			case days == 0:
				hoursPerDay = remaining
			}

			hoursPerDay = utils.Round2(hoursPerDay)
			total += hoursPerDay
			daySchedule = append(daySchedule, WeekDaySubject{
				SubjectID:   subj.ID,
				Name:        subj.Name,
				HoursPerDay: hoursPerDay,
			})
		}

		week = append(week, WeekDay{
			Date:       day.Format("2006-01-02"),
			Subjects:   daySchedule,
			TotalHours: utils.Round2(total),
		})
	}
	return week, nil
}

// ---------- Overall stats ----------

type OverallStats struct {
	TotalHoursStudied      float64 `json:"total_hours_studied"`
	TotalHoursNeeded       float64 `json:"total_hours_needed"`
	HoursRemaining         float64 `json:"hours_remaining"`
	TotalTopics            int     `json:"total_topics"`
	TotalTopicsCompleted   int     `json:"total_topics_completed"`
	TotalTopicsRemaining   int     `json:"total_topics_remaining"`
	OverallProgressPercent float64 `json:"overall_progress_percent"`
}

func ComputeOverallStats(subjects []models.Subject, progressMap map[uint]SubjectProgress) OverallStats {
	var stats OverallStats
	for i := range subjects {
		subj := &subjects[i]
		stats.TotalHoursNeeded += subj.TotalHoursNeeded
		stats.TotalTopics += len(subj.TopicList())
		if info, ok := progressMap[subj.ID]; ok {
			stats.TotalHoursStudied += info.TotalHoursStudied
			stats.TotalTopicsCompleted += len(info.TopicsCompleted)
		}
	}

	stats.HoursRemaining = stats.TotalHoursNeeded - stats.TotalHoursStudied
	if stats.HoursRemaining < 0 {
		stats.HoursRemaining = 0
	}
	stats.TotalTopicsRemaining = stats.TotalTopics - stats.TotalTopicsCompleted
	if stats.TotalTopicsRemaining < 0 {
		stats.TotalTopicsRemaining = 0
	}
	if stats.TotalHoursNeeded > 0 {
		stats.OverallProgressPercent = utils.Round1(stats.TotalHoursStudied / stats.TotalHoursNeeded * 100)
	}

	stats.TotalHoursStudied = utils.Round2(stats.TotalHoursStudied)
	stats.TotalHoursNeeded = utils.Round2(stats.TotalHoursNeeded)
	stats.HoursRemaining = utils.Round2(stats.HoursRemaining)
	return stats
}

func GetOverallStats(userID uint) (OverallStats, error) {
	subjects, err := ListSubjects(userID)
	if err != nil {
		return OverallStats{}, err
	}
	progressMap, err := BuildProgressMap(userID, subjects)
	if err != nil {
		return OverallStats{}, err
	}
	return ComputeOverallStats(subjects, progressMap), nil
}

// ---------- History ----------

type DailyTotal struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

type SubjectTotal struct {
	SubjectID  uint    `json:"subject_id"`
	Name       string  `json:"name"`
	TotalHours float64 `json:"total_hours"`
}

type History struct {
	DailyTotals []DailyTotal   `json:"daily_totals"`
	BySubject   []SubjectTotal `json:"by_subject"`
}

// BuildHistory summarizes the trailing 30-day window: hour totals per day
// (ascending by date) and per subject (descending by hours).
func BuildHistory(userID uint, today time.Time) (*History, error) {
	start := dayStart(today).AddDate(0, 0, -29)

	var entries []models.Progress
	if err := config.DB.
		Where("user_id = ? AND date >= ?", userID, start).
		Find(&entries).Error; err != nil {
		return nil, err
	}

	dailyTotals := map[string]float64{}
	hoursBySubject := map[uint]float64{}
	for _, e := range entries {
		key := e.Date.Format("2006-01-02")
		dailyTotals[key] += e.HoursStudied
		hoursBySubject[e.SubjectID] += e.HoursStudied
	}

	subjects, err := ListSubjects(userID)
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(subjects))
	for _, s := range subjects {
		names[s.ID] = s.Name
	}

	out := &History{
		DailyTotals: make([]DailyTotal, 0, len(dailyTotals)),
		BySubject:   make([]SubjectTotal, 0, len(hoursBySubject)),
	}
	for d, hours := range dailyTotals {
		out.DailyTotals = append(out.DailyTotals, DailyTotal{Date: d, Hours: utils.Round2(hours)})
	}
	sort.Slice(out.DailyTotals, func(i, j int) bool {
		return out.DailyTotals[i].Date < out.DailyTotals[j].Date
	})

	for sid, hours := range hoursBySubject {
		name, ok := names[sid]
		if !ok {
			name = "Unknown subject"
		}
		out.BySubject = append(out.BySubject, SubjectTotal{
			SubjectID:  sid,
			Name:       name,
			TotalHours: utils.Round2(hours),
		})
	}
	sort.SliceStable(out.BySubject, func(i, j int) bool {
		return out.BySubject[i].TotalHours > out.BySubject[j].TotalHours
	})

	return out, nil
}
