package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

type Subject struct {
	gorm.Model
	UserID           uint      `gorm:"index;not null"`
	Name             string    `gorm:"not null"`
	ExamDate         time.Time `gorm:"not null"`
	TotalHoursNeeded float64   `gorm:"not null"`
	// JSON-encoded list of topic strings.
	Topics string `gorm:"type:text;not null;default:'[]'"`

	ProgressEntries []Progress `gorm:"constraint:OnDelete:CASCADE"`
}

// TopicList decodes the stored topics column. Malformed JSON yields an
// empty list rather than an error.
func (s *Subject) TopicList() []string {
	var topics []string
	if err := json.Unmarshal([]byte(s.Topics), &topics); err != nil {
		return []string{}
	}
	if topics == nil {
		return []string{}
	}
	return topics
}

// SetTopics trims, drops empties and deduplicates (case-sensitive) before
// encoding back into the column.
func (s *Subject) SetTopics(topics []string) {
	cleaned := NormalizeTopics(topics)
	raw, _ := json.Marshal(cleaned)
	s.Topics = string(raw)
}
