package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Session-specific validation errors
var (
	ErrSessionUserEmpty  = errors.New("session user ID cannot be empty")
	ErrSessionTokenEmpty = errors.New("session token cannot be empty")
)

// Session records one active bearer token for a user. A user may hold any
// number of concurrent sessions; deleting the row revokes the token even if
// its signature is still valid.
type Session struct {
	ID        uuid.UUID `json:"-"`
	UserID    uuid.UUID `json:"-"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"-"`
}

// NewSession creates a Session binding the given token to a user.
func NewSession(userID uuid.UUID, token string) (*Session, error) {
	session := &Session{
		ID:        uuid.New(),
		UserID:    userID,
		Token:     token,
		CreatedAt: time.Now().UTC(),
	}

	if err := session.Validate(); err != nil {
		return nil, err
	}

	return session, nil
}

// Validate checks if the Session has valid data.
func (s *Session) Validate() error {
	if s.UserID == uuid.Nil {
		return ErrSessionUserEmpty
	}

	if s.Token == "" {
		return ErrSessionTokenEmpty
	}

	return nil
}
