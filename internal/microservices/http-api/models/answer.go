package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxVotes caps upvotes+downvotes on a single answer.
const MaxVotes = 10

type Answer struct {
	ID         string    `gorm:"primaryKey;type:uuid" json:"id"`
	QuestionID string    `gorm:"type:uuid;not null;index" json:"question_id"`
	AuthorID   string    `gorm:"type:uuid;not null" json:"author_id"`
	Content    string    `gorm:"not null" json:"content"`
	Upvotes    int       `gorm:"default:0" json:"upvotes"`
	Downvotes  int       `gorm:"default:0" json:"downvotes"`
	IsAccepted bool      `gorm:"default:false" json:"is_accepted"`
	Flagged    bool      `gorm:"default:false" json:"flagged"`
	Status     string    `gorm:"default:'active';not null" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func (a *Answer) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return
}

func (Answer) TableName() string {
	return "answers"
}
