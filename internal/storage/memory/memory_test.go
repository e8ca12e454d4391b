package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/wesplit/internal/screen"
	"github.com/mmynk/wesplit/internal/storage"
)

func TestStore(t *testing.T) {
	store := New(0)
	defer store.Close()

	ctx := context.Background()

	t.Run("OpenScreen generates ID with defaults", func(t *testing.T) {
		id, err := store.OpenScreen(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, id)

		err = store.WithScreen(ctx, id, func(s *screen.State) error {
			assert.Equal(t, 20, s.TipPercentage())
			assert.Equal(t, 2, s.PeopleCount())
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("WithScreen keeps mutations", func(t *testing.T) {
		id, err := store.OpenScreen(ctx)
		require.NoError(t, err)

		require.NoError(t, store.WithScreen(ctx, id, func(s *screen.State) error {
			return s.SetCheckAmount(100)
		}))

		var total float64
		require.NoError(t, store.WithScreen(ctx, id, func(s *screen.State) error {
			total = s.TotalPerPerson()
			return nil
		}))
		assert.InDelta(t, 60.0, total, 1e-9)
	})

	t.Run("WithScreen returns callback error", func(t *testing.T) {
		id, err := store.OpenScreen(ctx)
		require.NoError(t, err)

		err = store.WithScreen(ctx, id, func(s *screen.State) error {
			return s.SetTipPercentage(15)
		})
		require.ErrorIs(t, err, screen.ErrUnsupportedTip)
	})

	t.Run("unknown screen", func(t *testing.T) {
		err := store.WithScreen(ctx, "missing", func(*screen.State) error { return nil })
		require.ErrorIs(t, err, storage.ErrScreenNotFound)

		err = store.CloseScreen(ctx, "missing")
		require.ErrorIs(t, err, storage.ErrScreenNotFound)
	})

	t.Run("CloseScreen forgets the screen", func(t *testing.T) {
		id, err := store.OpenScreen(ctx)
		require.NoError(t, err)
		before := store.Count()

		require.NoError(t, store.CloseScreen(ctx, id))
		assert.Equal(t, before-1, store.Count())

		err = store.WithScreen(ctx, id, func(*screen.State) error { return nil })
		require.ErrorIs(t, err, storage.ErrScreenNotFound)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := store.OpenScreen(cctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestStore_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Unix(1_700_000_000, 0)

	store := New(time.Minute)
	store.now = func() time.Time { return now }
	closed := 0
	store.OnClose = func(n int) { closed += n }

	idle, err := store.OpenScreen(ctx)
	require.NoError(t, err)
	busy, err := store.OpenScreen(ctx)
	require.NoError(t, err)

	now = now.Add(45 * time.Second)
	require.NoError(t, store.WithScreen(ctx, busy, func(*screen.State) error { return nil }))

	now = now.Add(30 * time.Second)
	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 1, store.Count())
	assert.Equal(t, 1, closed)

	err = store.WithScreen(ctx, idle, func(*screen.State) error { return nil })
	require.ErrorIs(t, err, storage.ErrScreenNotFound)

	now = now.Add(2 * time.Minute)
	err = store.WithScreen(ctx, busy, func(*screen.State) error { return nil })
	require.ErrorIs(t, err, storage.ErrScreenNotFound, "expired screens are dropped on access")
	assert.Equal(t, 0, store.Count())
	assert.Equal(t, 2, closed)
}

func TestStore_ConcurrentScreens(t *testing.T) {
	ctx := context.Background()
	store := New(0)

	id, err := store.OpenScreen(ctx)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = store.WithScreen(ctx, id, func(s *screen.State) error {
				return s.SetCheckAmount(float64(i))
			})
		}(i)
	}
	wg.Wait()

	require.NoError(t, store.WithScreen(ctx, id, func(s *screen.State) error {
		assert.GreaterOrEqual(t, s.CheckAmount(), 0.0)
		assert.Less(t, s.CheckAmount(), 50.0)
		return nil
	}))
}

func TestRunSweeper_StopsOnCancel(t *testing.T) {
	store := New(time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		store.RunSweeper(ctx, time.Millisecond)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("RunSweeper did not return after cancel")
	}
}

func TestStore_CloseWhileWaitingForScreen(t *testing.T) {
	store := New(time.Hour)
	defer store.Close()
	ctx := context.Background()

	id, err := store.OpenScreen(ctx)
	require.NoError(t, err)

	// Hold the screen so the next caller queues on its lock.
	e := store.screens[id]
	e.mu.Lock()

	called := false
	done := make(chan error, 1)
	go func() {
		done <- store.WithScreen(ctx, id, func(s *screen.State) error {
			called = true
			return s.SetCheckAmount(10)
		})
	}()

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, store.CloseScreen(ctx, id))
	e.mu.Unlock()

	select {
	case err := <-done:
		require.ErrorIs(t, err, storage.ErrScreenNotFound)
	case <-time.After(time.Second):
		t.Fatal("WithScreen did not return")
	}
	assert.False(t, called, "callback must not run on a closed screen")
}
