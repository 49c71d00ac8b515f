//go:build unit

package slot_test

import (
	"testing"
	"time"

	"slotswapper/internal/domain/slot"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlot(t *testing.T) {
	userID := uuid.New()
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	t.Run("基本成功ケース", func(t *testing.T) {
		s, err := slot.NewSlot(userID, "Standup", start, end, slot.StatusBusy)
		require.NoError(t, err)
		require.NotNil(t, s)

		assert.NotEqual(t, uuid.Nil, s.ID())
		assert.Equal(t, userID, s.UserID())
		assert.Equal(t, "Standup", s.Title())
		assert.Equal(t, slot.StatusBusy, s.Status())
	})

	t.Run("ステータス省略時はBUSY", func(t *testing.T) {
		s, err := slot.NewSlot(userID, "Standup", start, end, "")
		require.NoError(t, err)
		assert.Equal(t, slot.StatusBusy, s.Status())
	})

	tests := []struct {
		name   string
		title  string
		status slot.Status
		errIs  error
	}{
		{name: "SWAPPABLE指定OK", title: "Lunch", status: slot.StatusSwappable},
		{name: "SWAP_PENDING指定OK", title: "Lunch", status: slot.StatusSwapPending},
		{name: "空タイトルNG", title: "", status: slot.StatusBusy, errIs: slot.ErrEmptyTitle},
		{name: "空白のみタイトルNG", title: "   ", status: slot.StatusBusy, errIs: slot.ErrEmptyTitle},
		{name: "不正ステータスNG", title: "Lunch", status: slot.Status("FREE"), errIs: slot.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := slot.NewSlot(userID, tt.title, start, end, tt.status)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.status, s.Status())
		})
	}
}

func TestSlotGuards(t *testing.T) {
	userID := uuid.New()
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	build := func(t *testing.T, status slot.Status) *slot.Slot {
		t.Helper()
		s, err := slot.NewSlot(userID, "Focus time", start, end, status)
		require.NoError(t, err)
		return s
	}

	t.Run("EnsureEditable", func(t *testing.T) {
		assert.NoError(t, build(t, slot.StatusBusy).EnsureEditable())
		assert.NoError(t, build(t, slot.StatusSwappable).EnsureEditable())
		assert.ErrorIs(t, build(t, slot.StatusSwapPending).EnsureEditable(), slot.ErrLockedForSwap)
	})

	t.Run("EnsureSwappable", func(t *testing.T) {
		assert.NoError(t, build(t, slot.StatusSwappable).EnsureSwappable())
		assert.ErrorIs(t, build(t, slot.StatusBusy).EnsureSwappable(), slot.ErrNotSwappable)
		assert.ErrorIs(t, build(t, slot.StatusSwapPending).EnsureSwappable(), slot.ErrNotSwappable)
	})

	t.Run("IsOwnedBy", func(t *testing.T) {
		s := build(t, slot.StatusBusy)
		assert.True(t, s.IsOwnedBy(userID))
		assert.False(t, s.IsOwnedBy(uuid.New()))
	})
}

func TestStatusDirectlySettable(t *testing.T) {
	assert.True(t, slot.StatusBusy.DirectlySettable())
	assert.True(t, slot.StatusSwappable.DirectlySettable())
	assert.False(t, slot.StatusSwapPending.DirectlySettable())
	assert.False(t, slot.Status("FREE").DirectlySettable())
}
