// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingWorker counts its runs and blocks until the context ends.
type countingWorker struct {
	runs atomic.Int32
}

func (w *countingWorker) Run(ctx context.Context) error {
	w.runs.Add(1)
	<-ctx.Done()
	return nil
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &countingWorker{}, &countingWorker{}, &countingWorker{}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- New(w1, w2, w3).Run(ctx) }()

	require.Eventually(t, func() bool {
		return w1.runs.Load() == 1 && w2.runs.Load() == 1 && w3.runs.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("workers did not stop after cancel")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NoError(t, New().Run(context.Background()))
	assert.NoError(t, (&Workers{}).Run(context.Background()))
}

func TestWorkers_Run_NilSkipped(t *testing.T) {
	ws := New(nil, WorkerFunc(func(context.Context) error { return nil }), nil)
	assert.Len(t, ws.workers, 1)
	assert.NoError(t, ws.Run(context.Background()))
}

func TestWorkers_Run_FirstErrorStopsOthers(t *testing.T) {
	boom := errors.New("listen failed")
	other := &countingWorker{}

	err := New(other, WorkerFunc(func(context.Context) error { return boom })).Run(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int32(1), other.runs.Load())
}

func TestTask_Wait(t *testing.T) {
	task := Go(context.Background(), func(context.Context) (int, error) {
		return 42, nil
	})

	v, err := task.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	// The result can be read again.
	v, ok, err := task.Result()
	assert.True(t, ok)
	assert.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestTask_Error(t *testing.T) {
	boom := errors.New("boom")
	task := Go(context.Background(), func(context.Context) (string, error) {
		return "", boom
	})

	<-task.Done()
	_, ok, err := task.Result()
	assert.True(t, ok)
	assert.ErrorIs(t, err, boom)
}

func TestTask_Panic(t *testing.T) {
	task := Go(context.Background(), func(context.Context) (int, error) {
		panic("bad state")
	})

	_, err := task.Wait(context.Background())
	require.ErrorIs(t, err, ErrPanic)
	assert.Contains(t, err.Error(), "bad state")
}

func TestTask_WaitContextDone(t *testing.T) {
	release := make(chan struct{})
	task := Go(context.Background(), func(context.Context) (int, error) {
		<-release
		return 1, nil
	})

	_, ok, _ := task.Result()
	assert.False(t, ok)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := task.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	v, err := task.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestTask_ReceivesContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	task := Go(ctx, func(ctx context.Context) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})

	cancel()
	_, err := task.Wait(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
}
