package service

import (
	"context"
	"errors"

	"stackit/internal/microservices/http-api/models"
	"stackit/internal/microservices/http-api/repository"
)

type UserService interface {
	Get(ctx context.Context, id string) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Get returns a user profile; the id must be a uuid.
func (s *userService) Get(ctx context.Context, id string) (*models.User, error) {
	if err := validID(id); err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
