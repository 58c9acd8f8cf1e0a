package views

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase_RequiresMount(t *testing.T) {
	var b Base
	_, _, err := b.Begin(context.Background())
	require.ErrorIs(t, err, ErrUnmounted)
}

func TestBase_LoadingGate(t *testing.T) {
	var b Base
	b.Mount(context.Background())

	_, op, err := b.Begin(context.Background())
	require.NoError(t, err)
	assert.True(t, b.State().Loading)

	_, _, err = b.Begin(context.Background())
	require.ErrorIs(t, err, ErrBusy)

	require.NoError(t, b.Finish(op, func(s *State) { s.Success = "done" }))
	assert.Equal(t, State{Success: "done"}, b.State())

	_, op, err = b.Begin(context.Background())
	require.NoError(t, err)
	assert.Empty(t, b.State().Success, "banners cleared on new action")
	require.NoError(t, b.Finish(op, nil))
}

func TestBase_UnmountCancelsAndDrops(t *testing.T) {
	var b Base
	b.Mount(context.Background())

	ctx, op, err := b.Begin(context.Background())
	require.NoError(t, err)

	b.Unmount()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("action context not cancelled on unmount")
	}

	applied := false
	require.ErrorIs(t, b.Finish(op, func(*State) { applied = true }), ErrUnmounted)
	assert.False(t, applied)
	assert.False(t, b.State().Loading)
}

func TestBase_RemountDropsOldResults(t *testing.T) {
	var b Base
	b.Mount(context.Background())
	_, op, err := b.Begin(context.Background())
	require.NoError(t, err)

	b.Mount(context.Background())
	require.ErrorIs(t, b.Finish(op, func(s *State) { s.Error = "stale" }), ErrUnmounted)
	assert.Empty(t, b.State().Error)
	assert.True(t, b.Mounted())
}

func TestBase_CallerContextStillHonoured(t *testing.T) {
	var b Base
	b.Mount(context.Background())

	parent, cancel := context.WithCancel(context.Background())
	ctx, op, err := b.Begin(parent)
	require.NoError(t, err)
	cancel()
	<-ctx.Done()
	require.NoError(t, b.Finish(op, nil))
}

func TestBase_Fail(t *testing.T) {
	var b Base
	b.Fail("Title is required")
	assert.Equal(t, "Title is required", b.State().Error)
}
