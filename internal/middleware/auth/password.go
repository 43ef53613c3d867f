package auth

import (
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when a login names an unknown account so
// that both branches spend the same bcrypt time.
var dummyHash = sync.OnceValue(func() []byte {
	hash, _ := bcrypt.GenerateFromPassword([]byte("stackit-unknown-account"), bcrypt.DefaultCost)
	return hash
})

var ErrPasswordMismatch = errors.New("password does not match")

// HashPassword creates a bcrypt hash from the given plaintext password.
func HashPassword(password string) (string, error) {
	// default cost is 10: fine for an interactive login path
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// VerifyPassword checks if the provided plaintext password matches the stored bcrypt hash.
func VerifyPassword(hashedPassword, providedPassword string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(providedPassword)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}

// BurnPasswordCheck runs a comparison against a fixed hash and discards the result.
func BurnPasswordCheck(providedPassword string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(providedPassword))
}
