package repository

import (
	"context"

	"stackit/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type FlagRepository interface {
	// Record stores the flag and marks its target reported in one transaction.
	// A second answer flag from the same user fails with ErrDuplicate.
	Record(ctx context.Context, flag *models.Flag) error
	Exists(ctx context.Context, targetType, targetID, userID string) (bool, error)
}

type flagRepository struct {
	db *gorm.DB
}

func NewFlagRepository(db *gorm.DB) FlagRepository {
	return &flagRepository{db: db}
}

func (r *flagRepository) Record(ctx context.Context, flag *models.Flag) error {
	var target any
	switch flag.TargetType {
	case models.FlagTargetQuestion:
		target = &models.Question{}
	case models.FlagTargetAnswer:
		target = &models.Answer{}
	default:
		return ErrBadTarget
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(target).
			Where("id = ?", flag.TargetID).
			Updates(map[string]any{"flagged": true, "status": models.StatusReported})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Create(flag).Error
	})
	return translate(err)
}

func (r *flagRepository) Exists(ctx context.Context, targetType, targetID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Flag{}).
		Where("target_type = ? AND target_id = ? AND user_id = ?", targetType, targetID, userID).
		Count(&count).Error
	return count > 0, err
}
