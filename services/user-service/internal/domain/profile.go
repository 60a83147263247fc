package domain

import (
	"strings"
	"time"
)

type ProfileType string

const (
	ProfileLearner ProfileType = "Learner"
	ProfileAdmin   ProfileType = "Admin"
)

type Profile struct {
	UserID        string `gorm:"primaryKey;size:64"`
	Email         string `gorm:"index;size:255"`
	FirstName     string `gorm:"size:100"`
	LastName      string `gorm:"size:100"`
	DisplayName   string `gorm:"size:201"`
	ContactNumber string `gorm:"size:32"`
	Age           *int
	MaritalStatus string      `gorm:"size:16"`
	Type          ProfileType `gorm:"size:16;not null;default:'Learner'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (p *Profile) IsAdmin() bool {
	return p.Type == ProfileAdmin
}

// ComposeDisplayName joins the non-empty name parts with a single space.
func ComposeDisplayName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}
