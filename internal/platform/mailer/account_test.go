package mailer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskhub/taskhub-api/internal/platform/mailer"
)

func TestWelcomeMessage(t *testing.T) {
	t.Parallel()

	subject, body := mailer.WelcomeMessage("Alice")
	assert.Equal(t, "Thanks for joining in!", subject)
	assert.Equal(t, "Welcome to the app, Alice. let me know how you get along with the app.", body)
}

func TestCancellationMessage(t *testing.T) {
	t.Parallel()

	subject, body := mailer.CancellationMessage("Alice")
	assert.Equal(t, "Sorry to see you go", subject)
	assert.Equal(t, "Goodbye, Alice. I hope to see you back sometime soon", body)
}
