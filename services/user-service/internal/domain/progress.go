package domain

import "time"

// CompletionRecord states that a learner finished a lesson. LessonID is the
// lesson order as a decimal string. Rows are append-only; the composite key
// keeps at most one record per learner and lesson.
type CompletionRecord struct {
	UserID      string    `gorm:"primaryKey;size:64"`
	LessonID    string    `gorm:"primaryKey;size:32"`
	CompletedAt time.Time `gorm:"not null"`
}

func (CompletionRecord) TableName() string {
	return "lesson_progress"
}
