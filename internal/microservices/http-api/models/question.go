package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive   = "active"
	StatusReported = "reported"
)

type Question struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"not null" json:"description"`
	Tags        string    `gorm:"not null;default:''" json:"-"` // comma separated
	AuthorID    string    `gorm:"type:uuid;not null;index" json:"author_id"`
	Flagged     bool      `gorm:"default:false" json:"flagged"`
	Status      string    `gorm:"default:'active';not null" json:"status"`
	CreatedAt   time.Time `json:"created_at"`

	Answers []Answer `gorm:"foreignKey:QuestionID" json:"answers,omitempty"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) (err error) {
	if q.ID == "" {
		q.ID = uuid.New().String()
	}
	return
}

// TagList splits the stored tag column.
func (q *Question) TagList() []string {
	if q.Tags == "" {
		return []string{}
	}
	return strings.Split(q.Tags, ",")
}

func (Question) TableName() string {
	return "questions"
}
