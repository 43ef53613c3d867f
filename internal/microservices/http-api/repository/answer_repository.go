package repository

import (
	"context"

	"stackit/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type AnswerRepository interface {
	Create(ctx context.Context, answer *models.Answer) error
	GetByID(ctx context.Context, id string) (*models.Answer, error)
	Vote(ctx context.Context, id string, up bool) error
	Accept(ctx context.Context, id string) error
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(ctx context.Context, answer *models.Answer) error {
	return r.db.WithContext(ctx).Create(answer).Error
}

func (r *answerRepository) GetByID(ctx context.Context, id string) (*models.Answer, error) {
	var answer models.Answer
	if err := r.db.WithContext(ctx).First(&answer, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &answer, nil
}

// Vote increments one counter only while the answer is under models.MaxVotes total.
// The limit is checked in the UPDATE itself so concurrent voters cannot overshoot it.
func (r *answerRepository) Vote(ctx context.Context, id string, up bool) error {
	column := "downvotes"
	if up {
		column = "upvotes"
	}

	result := r.db.WithContext(ctx).
		Model(&models.Answer{}).
		Where("id = ? AND upvotes + downvotes < ?", id, models.MaxVotes).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// nothing updated: either the answer is gone or it is capped
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return ErrVoteLimit
}

func (r *answerRepository) Accept(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Answer{}).
		Where("id = ?", id).
		Update("is_accepted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
