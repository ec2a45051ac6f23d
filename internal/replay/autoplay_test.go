package replay

import (
	"context"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/require"
)

func TestAutoplayerPlaysToEnd(t *testing.T) {
	hand := parseLines(t, []string{
		"BTN raise 3",
		"BB call 3",
		"FLOP 7h 8h 9h",
	}, 6)

	ctx := context.Background()
	mock := quartz.NewMock(t)
	state := NewState(hand)

	frames := make(chan Frame, 8)
	done := make(chan error, 1)
	ap := NewAutoplayer(state, mock, time.Second, func(f Frame) {
		frames <- f
	})
	go func() {
		done <- ap.Run(ctx)
	}()

	// Initial frame is emitted after the ticker is registered, so once
	// it arrives the mock clock can be advanced safely.
	f := <-frames
	require.Equal(t, 0, f.Index)

	mock.Advance(time.Second).MustWait(ctx)
	f = <-frames
	require.Equal(t, 1, f.Index)

	mock.Advance(time.Second).MustWait(ctx)
	f = <-frames
	require.Equal(t, 2, f.Index)
	require.Len(t, f.Board, 3)

	// The tick past the final action ends the run.
	mock.Advance(time.Second).MustWait(ctx)
	require.NoError(t, <-done)
}

func TestAutoplayerCancel(t *testing.T) {
	hand := parseLines(t, []string{"BTN check", "BB check"}, 6)

	mock := quartz.NewMock(t)
	ctx, cancel := context.WithCancel(context.Background())

	frames := make(chan Frame, 8)
	done := make(chan error, 1)
	ap := NewAutoplayer(NewState(hand), mock, time.Second, func(f Frame) {
		frames <- f
	})
	go func() {
		done <- ap.Run(ctx)
	}()

	<-frames
	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}
