package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	FlagTargetQuestion = "question"
	FlagTargetAnswer   = "answer"
)

type Flag struct {
	ID         string    `gorm:"primaryKey;type:uuid" json:"id"`
	TargetType string    `gorm:"not null" json:"target_type"`
	TargetID   string    `gorm:"type:uuid;not null" json:"target_id"`
	UserID     string    `gorm:"type:uuid;not null" json:"user_id"`
	Reason     string    `gorm:"not null" json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}

func (f *Flag) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return
}

func (Flag) TableName() string {
	return "flags"
}
