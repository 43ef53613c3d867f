package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrInvalidID          = errors.New("invalid id format")
	ErrEmptyField         = errors.New("field cannot be empty")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrAnswerNotFound     = errors.New("answer not found")
	ErrForbidden          = errors.New("not allowed to perform this action")
	ErrInvalidVote        = errors.New("invalid vote value, must be 1 (upvote) or -1 (downvote)")
	ErrVoteLimit          = errors.New("vote limit reached (10 votes max)")
	ErrAlreadyFlagged     = errors.New("you already flagged this answer")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

func validID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	return nil
}

func emptyField(name string) error {
	return fmt.Errorf("%s: %w", name, ErrEmptyField)
}
