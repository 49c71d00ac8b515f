//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"slotswapper/internal/domain/slot"
	"slotswapper/internal/domain/swap"
	"slotswapper/internal/pkg/clock"
	"slotswapper/internal/usecase/commands"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var swapTestNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newSwapCommands(state *fakeState) commands.SwapCommands {
	return commands.NewSwapCommands(&fakeUoW{state: state}, &fakeSwapReadStore{state: state}, clock.NewMockClock(swapTestNow))
}

type swapFixture struct {
	state     *fakeState
	alice     uuid.UUID
	bob       uuid.UUID
	aliceSlot uuid.UUID
	bobSlot   uuid.UUID
}

func newSwapFixture() swapFixture {
	state := newFakeState()
	alice := state.addUser("Alice", "alice@example.com")
	bob := state.addUser("Bob", "bob@example.com")
	return swapFixture{
		state:     state,
		alice:     alice,
		bob:       bob,
		aliceSlot: state.addSlot(alice, "Alice's shift", slot.StatusSwappable),
		bobSlot:   state.addSlot(bob, "Bob's shift", slot.StatusSwappable),
	}
}

func TestSwapCommandsPropose(t *testing.T) {
	ctx := context.Background()

	t.Run("success: locks both slots and opens a pending request", func(t *testing.T) {
		f := newSwapFixture()
		svc := newSwapCommands(f.state)

		view, err := svc.Propose(ctx, f.alice, f.aliceSlot, f.bobSlot)
		require.NoError(t, err)

		assert.Equal(t, string(swap.StatusPending), view.Status)
		assert.Equal(t, f.alice, view.RequesterID)
		assert.Equal(t, f.bob, view.OwnerID)
		assert.Equal(t, "Alice's shift", view.RequesterSlotTitle)
		assert.Equal(t, "Bob's shift", view.OwnerSlotTitle)

		assert.Equal(t, slot.StatusSwapPending, f.state.slots[f.aliceSlot].Status)
		assert.Equal(t, slot.StatusSwapPending, f.state.slots[f.bobSlot].Status)

		require.Len(t, f.state.jobs, 1)
		wantPayload, _ := json.Marshal(map[string]string{
			"request_id":   view.ID.String(),
			"recipient_id": f.bob.String(),
		})
		want := fakeJob{kind: "swap.proposed", topic: "swap", payload: wantPayload, runAt: swapTestNow}
		if diff := cmp.Diff(want, f.state.jobs[0], cmp.AllowUnexported(fakeJob{})); diff != "" {
			t.Errorf("queued job mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("error: proposing with a slot you do not own", func(t *testing.T) {
		f := newSwapFixture()
		svc := newSwapCommands(f.state)

		_, err := svc.Propose(ctx, f.alice, f.bobSlot, f.aliceSlot)
		assert.ErrorIs(t, err, commands.ErrSlotNotFound)
		assert.Equal(t, slot.StatusSwappable, f.state.slots[f.bobSlot].Status)
	})

	t.Run("error: own slot not offered for swapping", func(t *testing.T) {
		f := newSwapFixture()
		f.state.slots[f.aliceSlot].Status = slot.StatusBusy
		svc := newSwapCommands(f.state)

		_, err := svc.Propose(ctx, f.alice, f.aliceSlot, f.bobSlot)
		assert.ErrorIs(t, err, commands.ErrSlotNotSwappable)
	})

	t.Run("error: target slot not offered for swapping", func(t *testing.T) {
		f := newSwapFixture()
		f.state.slots[f.bobSlot].Status = slot.StatusSwapPending
		svc := newSwapCommands(f.state)

		_, err := svc.Propose(ctx, f.alice, f.aliceSlot, f.bobSlot)
		assert.ErrorIs(t, err, commands.ErrSlotNotSwappable)
		assert.Equal(t, slot.StatusSwappable, f.state.slots[f.aliceSlot].Status)
	})

	t.Run("error: swapping with yourself", func(t *testing.T) {
		f := newSwapFixture()
		other := f.state.addSlot(f.alice, "Alice's other shift", slot.StatusSwappable)
		svc := newSwapCommands(f.state)

		_, err := svc.Propose(ctx, f.alice, f.aliceSlot, other)
		assert.ErrorIs(t, err, commands.ErrSelfSwap)
		assert.Empty(t, f.state.swaps)
	})

	t.Run("error: unknown target slot", func(t *testing.T) {
		f := newSwapFixture()
		svc := newSwapCommands(f.state)

		_, err := svc.Propose(ctx, f.alice, f.aliceSlot, uuid.New())
		assert.ErrorIs(t, err, commands.ErrSlotNotFound)
	})
}

func TestSwapCommandsRespond(t *testing.T) {
	ctx := context.Background()

	propose := func(t *testing.T, f swapFixture, svc commands.SwapCommands) uuid.UUID {
		t.Helper()
		view, err := svc.Propose(ctx, f.alice, f.aliceSlot, f.bobSlot)
		require.NoError(t, err)
		return view.ID
	}

	t.Run("success: accepting exchanges ownership and frees both slots", func(t *testing.T) {
		f := newSwapFixture()
		svc := newSwapCommands(f.state)
		requestID := propose(t, f, svc)

		view, err := svc.Respond(ctx, f.bob, requestID, true)
		require.NoError(t, err)
		assert.Equal(t, string(swap.StatusAccepted), view.Status)

		// Ownership crossed over, both slots back to BUSY
		assert.Equal(t, f.bob, f.state.slots[f.aliceSlot].UserID)
		assert.Equal(t, f.alice, f.state.slots[f.bobSlot].UserID)
		assert.Equal(t, slot.StatusBusy, f.state.slots[f.aliceSlot].Status)
		assert.Equal(t, slot.StatusBusy, f.state.slots[f.bobSlot].Status)

		require.Len(t, f.state.jobs, 2)
		assert.Equal(t, "swap.accepted", f.state.jobs[1].kind)
	})

	t.Run("success: rejecting keeps ownership and reopens both slots", func(t *testing.T) {
		f := newSwapFixture()
		svc := newSwapCommands(f.state)
		requestID := propose(t, f, svc)

		view, err := svc.Respond(ctx, f.bob, requestID, false)
		require.NoError(t, err)
		assert.Equal(t, string(swap.StatusRejected), view.Status)

		assert.Equal(t, f.alice, f.state.slots[f.aliceSlot].UserID)
		assert.Equal(t, f.bob, f.state.slots[f.bobSlot].UserID)
		assert.Equal(t, slot.StatusSwappable, f.state.slots[f.aliceSlot].Status)
		assert.Equal(t, slot.StatusSwappable, f.state.slots[f.bobSlot].Status)

		require.Len(t, f.state.jobs, 2)
		assert.Equal(t, "swap.rejected", f.state.jobs[1].kind)
	})

	t.Run("error: only the recipient may respond", func(t *testing.T) {
		f := newSwapFixture()
		svc := newSwapCommands(f.state)
		requestID := propose(t, f, svc)

		_, err := svc.Respond(ctx, f.alice, requestID, true)
		assert.ErrorIs(t, err, commands.ErrNotRequestOwner)
		assert.Equal(t, swap.StatusPending, f.state.swaps[requestID].Status)
	})

	t.Run("error: settled requests are immutable", func(t *testing.T) {
		f := newSwapFixture()
		svc := newSwapCommands(f.state)
		requestID := propose(t, f, svc)

		_, err := svc.Respond(ctx, f.bob, requestID, false)
		require.NoError(t, err)

		_, err = svc.Respond(ctx, f.bob, requestID, true)
		assert.ErrorIs(t, err, commands.ErrRequestAlreadyDone)
		assert.Equal(t, swap.StatusRejected, f.state.swaps[requestID].Status)
	})

	t.Run("error: unknown request", func(t *testing.T) {
		f := newSwapFixture()
		svc := newSwapCommands(f.state)

		_, err := svc.Respond(ctx, f.bob, uuid.New(), true)
		assert.ErrorIs(t, err, commands.ErrRequestNotFound)
	})
}
