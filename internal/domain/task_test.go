package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhub/taskhub-api/internal/domain"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()

	t.Run("valid task", func(t *testing.T) {
		t.Parallel()

		task, err := domain.NewTask(ownerID, "  buy milk  ", false)
		require.NoError(t, err)
		assert.Equal(t, "buy milk", task.Description)
		assert.Equal(t, ownerID, task.OwnerID)
		assert.False(t, task.Completed)
		assert.NotEqual(t, uuid.Nil, task.ID)
	})

	t.Run("completed at creation", func(t *testing.T) {
		t.Parallel()

		task, err := domain.NewTask(ownerID, "done already", true)
		require.NoError(t, err)
		assert.True(t, task.Completed)
	})

	t.Run("empty description", func(t *testing.T) {
		t.Parallel()

		task, err := domain.NewTask(ownerID, "   ", false)
		assert.ErrorIs(t, err, domain.ErrTaskDescriptionEmpty)
		assert.Nil(t, task)
	})

	t.Run("missing owner", func(t *testing.T) {
		t.Parallel()

		task, err := domain.NewTask(uuid.Nil, "buy milk", false)
		assert.ErrorIs(t, err, domain.ErrTaskOwnerEmpty)
		assert.Nil(t, task)
	})
}
