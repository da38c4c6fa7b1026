package main

import (
	"context"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelevantEvent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		op   fsnotify.Op
		want bool
	}{
		{fsnotify.Write, true},
		{fsnotify.Create, true},
		{fsnotify.Rename, true},
		{fsnotify.Chmod, false},
		{fsnotify.Remove, false},
	}
	for _, tt := range tests {
		event := fsnotify.Event{Name: "modelgen.yaml", Op: tt.op}
		assert.Equal(t, tt.want, relevantEvent(event), tt.op.String())
	}
}

func TestDebounceRegenerateCoalescesBurst(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	trigger := make(chan struct{}, 1)
	calls := make(chan struct{}, 16)
	done := make(chan error, 1)

	go func() {
		done <- debounceRegenerate(ctx, trigger, 50*time.Millisecond, func() {
			calls <- struct{}{}
		})
	}()

	// A burst of events: the first lands, later ones arrive while the
	// window is still open and must be absorbed into the same run.
	trigger <- struct{}{}
	for i := 0; i < 4; i++ {
		time.Sleep(5 * time.Millisecond)
		select {
		case trigger <- struct{}{}:
		default:
		}
	}

	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("regeneration never fired")
	}
	select {
	case <-calls:
		t.Fatal("burst fired more than one regeneration")
	case <-time.After(150 * time.Millisecond):
	}

	// A fresh trigger after the window starts a second run.
	trigger <- struct{}{}
	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("second change never fired")
	}

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}

func TestDebounceRegenerateStopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := debounceRegenerate(ctx, make(chan struct{}), time.Second, func() {
		t.Error("regenerate called on cancelled context")
	})
	assert.ErrorIs(t, err, context.Canceled)
}
