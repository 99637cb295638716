package models

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Progress is one user's study log for one subject on one day. The row is
// unique per (user, subject, date); repeated posts for the same day add to
// HoursStudied and merge into TopicsCompleted.
type Progress struct {
	gorm.Model
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_subject_date"`
	SubjectID uint      `gorm:"not null;uniqueIndex:idx_user_subject_date"`
	Date      time.Time `gorm:"not null;uniqueIndex:idx_user_subject_date"`

	HoursStudied float64 `gorm:"not null;default:0"`
	// JSON-encoded sorted set of topic strings completed on this day.
	TopicsCompleted string `gorm:"type:text;not null;default:'[]'"`
}

func (p *Progress) TopicsCompletedList() []string {
	var topics []string
	if err := json.Unmarshal([]byte(p.TopicsCompleted), &topics); err != nil {
		return []string{}
	}
	if topics == nil {
		return []string{}
	}
	return topics
}

// MergeTopics unions the given topics into the completed set, keeping the
// stored list sorted for stable output.
func (p *Progress) MergeTopics(topics []string) {
	set := map[string]struct{}{}
	for _, t := range p.TopicsCompletedList() {
		set[t] = struct{}{}
	}
	for _, t := range NormalizeTopics(topics) {
		set[t] = struct{}{}
	}
	merged := make([]string, 0, len(set))
	for t := range set {
		merged = append(merged, t)
	}
	sort.Strings(merged)
	raw, _ := json.Marshal(merged)
	p.TopicsCompleted = string(raw)
}

// NormalizeTopics trims whitespace, drops empty entries and deduplicates
// while preserving first-seen order. Comparison is case-sensitive.
func NormalizeTopics(topics []string) []string {
	seen := map[string]struct{}{}
	cleaned := make([]string, 0, len(topics))
	for _, t := range topics {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		cleaned = append(cleaned, t)
	}
	return cleaned
}
