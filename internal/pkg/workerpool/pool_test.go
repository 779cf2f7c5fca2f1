package workerpool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestPoolRunsAllTasks(t *testing.T) {
	pool := New(4, 32)
	results := pool.Run(context.Background())

	var ran int64
	for i := 0; i < 32; i++ {
		pool.Submit(func(context.Context) error {
			atomic.AddInt64(&ran, 1)
			return nil
		})
	}
	pool.Close()

	got := 0
	for res := range results {
		if res.Err != nil {
			t.Fatalf("unexpected task error: %v", res.Err)
		}
		got++
	}
	if got != 32 {
		t.Fatalf("got %d results, want 32", got)
	}
	if atomic.LoadInt64(&ran) != 32 {
		t.Fatalf("ran %d tasks, want 32", ran)
	}
}

func TestPoolReportsTaskErrors(t *testing.T) {
	pool := New(2, 4)
	results := pool.Run(context.Background())

	boom := errors.New("boom")
	pool.Submit(func(context.Context) error { return boom })
	pool.Submit(func(context.Context) error { return nil })
	pool.Close()

	var failed, ok int
	for res := range results {
		if res.Err != nil {
			if !errors.Is(res.Err, boom) {
				t.Fatalf("unexpected error: %v", res.Err)
			}
			failed++
			continue
		}
		ok++
	}
	if failed != 1 || ok != 1 {
		t.Fatalf("failed=%d ok=%d, want 1/1", failed, ok)
	}
}

func TestPoolStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pool := New(1, 0)
	results := pool.Run(ctx)

	started := make(chan struct{})
	pool.Submit(func(taskCtx context.Context) error {
		close(started)
		<-taskCtx.Done()
		return taskCtx.Err()
	})

	<-started
	cancel()

	select {
	case _, open := <-results:
		if open {
			// A result may race the cancellation; the channel must still
			// close afterwards.
			if _, open := <-results; open {
				t.Fatal("result channel stayed open after cancel")
			}
		}
	case <-time.After(2 * time.Second):
		t.Fatal("result channel did not close after cancel")
	}
}

func TestPoolClampsWorkerCount(t *testing.T) {
	pool := New(0, -1)
	results := pool.Run(context.Background())

	pool.Submit(func(context.Context) error { return nil })
	pool.Close()

	count := 0
	for range results {
		count++
	}
	if count != 1 {
		t.Fatalf("got %d results, want 1", count)
	}
}
