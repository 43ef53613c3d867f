package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
	ErrVoteLimit = errors.New("vote limit reached")
	ErrBadTarget = errors.New("unknown flag target")
)

// translate maps gorm's sentinel errors onto ours so callers do not import gorm.
// Duplicate keys are only reported when the connection has TranslateError set.
func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	}
	return err
}
