package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhub/taskhub-api/internal/domain"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		userName string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "valid user",
			userName: "Alice",
			email:    "alice@example.com",
			password: "s3cret-enough",
			wantErr:  nil,
		},
		{
			name:     "empty name",
			userName: "   ",
			email:    "alice@example.com",
			password: "s3cret-enough",
			wantErr:  domain.ErrEmptyName,
		},
		{
			name:     "name containing password",
			userName: "myPassword123",
			email:    "alice@example.com",
			password: "s3cret-enough",
			wantErr:  domain.ErrUnsafeName,
		},
		{
			name:     "empty email",
			userName: "Alice",
			email:    "",
			password: "s3cret-enough",
			wantErr:  domain.ErrEmptyEmail,
		},
		{
			name:     "malformed email",
			userName: "Alice",
			email:    "not-an-email",
			password: "s3cret-enough",
			wantErr:  domain.ErrInvalidEmail,
		},
		{
			name:     "password too short",
			userName: "Alice",
			email:    "alice@example.com",
			password: "short",
			wantErr:  domain.ErrPasswordTooShort,
		},
		{
			name:     "password too long",
			userName: "Alice",
			email:    "alice@example.com",
			password: strings.Repeat("x", 73),
			wantErr:  domain.ErrPasswordTooLong,
		},
		{
			name:     "password containing password",
			userName: "Alice",
			email:    "alice@example.com",
			password: "myPassWord123",
			wantErr:  domain.ErrUnsafePassword,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			user, err := domain.NewUser(tc.userName, tc.email, tc.password)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, user)
			assert.NotEqual(t, "", user.ID.String())
			assert.Equal(t, tc.userName, user.Name)
		})
	}
}

func TestNewUserNormalizesEmail(t *testing.T) {
	t.Parallel()

	user, err := domain.NewUser("Alice", "  Alice@Example.COM ", "s3cret-enough")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	assert.NoError(t, domain.ValidatePassword("good-enough"))
	assert.ErrorIs(t, domain.ValidatePassword("tiny"), domain.ErrPasswordTooShort)
	assert.ErrorIs(t, domain.ValidatePassword("PASSWORD123"), domain.ErrUnsafePassword)
	assert.ErrorIs(t, domain.ValidatePassword(strings.Repeat("a", 73)), domain.ErrPasswordTooLong)
}

func TestUserValidateStoredUser(t *testing.T) {
	t.Parallel()

	user, err := domain.NewUser("Alice", "alice@example.com", "s3cret-enough")
	require.NoError(t, err)

	// A user loaded from storage carries only the hash.
	user.Password = ""
	user.HashedPassword = "$2a$10$fakefakefakefakefakefake"
	assert.NoError(t, user.Validate())

	user.HashedPassword = ""
	assert.ErrorIs(t, user.Validate(), domain.ErrEmptyPassword)
}

func TestIsValidationError(t *testing.T) {
	t.Parallel()

	assert.True(t, domain.IsValidationError(domain.ErrPasswordTooShort))
	assert.True(t, domain.IsValidationError(domain.ErrDisallowedField))
	assert.True(t, domain.IsValidationError(domain.NewValidationError("email", "bad", domain.ErrInvalidEmail)))
	assert.False(t, domain.IsValidationError(domain.ErrUnauthorized))
}
