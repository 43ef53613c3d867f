package repository

import (
	"context"

	"stackit/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(ctx context.Context, question *models.Question) error
	GetByID(ctx context.Context, id string) (*models.Question, error)
	GetWithAnswers(ctx context.Context, id string) (*models.Question, error)
	List(ctx context.Context, tag string) ([]models.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, question *models.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *questionRepository) GetByID(ctx context.Context, id string) (*models.Question, error) {
	var question models.Question
	if err := r.db.WithContext(ctx).First(&question, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &question, nil
}

// GetWithAnswers loads the question and its answers, oldest answer first.
func (r *questionRepository) GetWithAnswers(ctx context.Context, id string) (*models.Question, error) {
	var question models.Question
	err := r.db.WithContext(ctx).
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&question, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &question, nil
}

// List returns questions newest first. A non-empty tag restricts to questions carrying it.
func (r *questionRepository) List(ctx context.Context, tag string) ([]models.Question, error) {
	var questions []models.Question
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if tag != "" {
		query = query.Where("',' || tags || ',' LIKE ?", "%,"+tag+",%")
	}
	if err := query.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
