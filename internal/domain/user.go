package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User-specific validation errors
var (
	ErrEmptyUserID      = errors.New("user ID cannot be empty")
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrUnsafeName       = errors.New("name cannot contain the word \"password\"")
	ErrEmptyEmail       = errors.New("email cannot be empty")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrPasswordTooShort = errors.New("password must be at least 7 characters long")
	ErrPasswordTooLong  = errors.New("password must be at most 72 characters long")
	ErrUnsafePassword   = errors.New("password cannot contain the word \"password\"")
	ErrEmptyPassword    = errors.New("password cannot be empty")
)

// emailPattern is a pragmatic address check: one @, a non-empty local part,
// and a dotted domain. Full RFC 5322 parsing is deliberately out of scope.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// User represents a registered account.
// Avatar bytes and the password hash are never serialized to JSON.
type User struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Password          string    `json:"-"` // Plaintext, present only between request decode and hashing
	HashedPassword    string    `json:"-"`
	Avatar            []byte    `json:"-"`
	AvatarContentType string    `json:"-"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// NewUser creates a User from signup input. The email is lowercased and
// trimmed, the name trimmed. The plaintext password is carried on the struct
// for the caller to hash; it is never persisted as-is.
func NewUser(name, email, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		Email:     NormalizeEmail(email),
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Touch bumps the modification timestamp.
func (u *User) Touch() {
	u.UpdatedAt = time.Now().UTC()
}

// NormalizeEmail lowercases and trims an email address. All lookups and
// uniqueness checks operate on the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate checks if the User has valid data.
// Returns a field-specific sentinel error on the first failure.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Name == "" {
		return ErrEmptyName
	}

	if containsPassword(u.Name) {
		return ErrUnsafeName
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !emailPattern.MatchString(u.Email) {
		return ErrInvalidEmail
	}

	if u.Password != "" {
		return ValidatePassword(u.Password)
	}

	// Existing users loaded from storage carry only the hash.
	if u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}

// ValidatePassword enforces the password policy: at least 7 characters,
// at most 72 (bcrypt's input limit), and never containing the literal
// substring "password" in any case.
func ValidatePassword(password string) error {
	if len(password) < 7 {
		return ErrPasswordTooShort
	}
	if len(password) > 72 {
		return ErrPasswordTooLong
	}
	if containsPassword(password) {
		return ErrUnsafePassword
	}
	return nil
}

func containsPassword(s string) bool {
	return strings.Contains(strings.ToLower(s), "password")
}
