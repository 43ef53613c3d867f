package authentication

// keystring.go keeps the CLI session in the OS keyring.
import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/zalando/go-keyring"
)

const (
	serviceName = "stackit-cli"
	tokenKey    = "auth_tokens"
)

var ErrNotLoggedIn = errors.New("not logged in, run `stackit auth login` first")

type StoredCredentials struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	ExpiresAt   int64  `json:"expires_at"`
}

// Expired reports whether the stored access token is past its exp claim.
func (c *StoredCredentials) Expired(now time.Time) bool {
	return c.ExpiresAt != 0 && now.Unix() >= c.ExpiresAt
}

// CredentialsFromToken reads identity claims out of an access token. The signature is
// not checked here; the server verifies it on every request.
func CredentialsFromToken(accessToken string) (*StoredCredentials, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return nil, fmt.Errorf("malformed access token: %w", err)
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return nil, errors.New("access token has no user_id claim")
	}
	email, _ := claims["email"].(string)

	creds := &StoredCredentials{AccessToken: accessToken, UserID: userID, Email: email}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		creds.ExpiresAt = exp.Unix()
	}
	return creds, nil
}

func StoreTokens(creds *StoredCredentials) error {
	data, err := json.Marshal(creds)
	if err != nil {
		return err
	}
	return keyring.Set(serviceName, tokenKey, string(data))
}

func GetTokens() (*StoredCredentials, error) {
	value, err := keyring.Get(serviceName, tokenKey)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil, ErrNotLoggedIn
		}
		return nil, err
	}

	var creds StoredCredentials
	if err := json.Unmarshal([]byte(value), &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

func DeleteTokens() error {
	err := keyring.Delete(serviceName, tokenKey)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
