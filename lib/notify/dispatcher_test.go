package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestEnqueueRunsJobs(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	dispatcher := NewDispatcher(ctx, 2, 16)

	var mu sync.Mutex
	done := make(chan struct{}, 3)
	count := 0
	for n := 0; n < 3; n++ {
		dispatcher.Enqueue("test", func() error {
			mu.Lock()
			count++
			mu.Unlock()
			done <- struct{}{}
			return nil
		})
	}
	for n := 0; n < 3; n++ {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("job did not run in time")
		}
	}
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 3, count)
}

func TestEnqueueNeverBlocksOnFullQueue(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // workers exit immediately, nothing drains the queue
	dispatcher := NewDispatcher(ctx, 1, 1)
	time.Sleep(50 * time.Millisecond)

	finished := make(chan struct{})
	go func() {
		for n := 0; n < 10; n++ {
			dispatcher.Enqueue("test", func() error { return nil })
		}
		close(finished)
	}()
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Enqueue blocked on a full queue")
	}
}

func TestFailingAndPanickingJobsDoNotKillWorkers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	dispatcher := NewDispatcher(ctx, 1, 16)

	dispatcher.Enqueue("failing", func() error {
		return errors.New("smtp unreachable")
	})
	dispatcher.Enqueue("panicking", func() error {
		panic("boom")
	})

	done := make(chan struct{})
	dispatcher.Enqueue("after", func() error {
		close(done)
		return nil
	})
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker died after a failed or panicking job")
	}
}
