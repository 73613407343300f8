package notify

import (
	"context"
	"runtime/debug"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Dispatcher decouples email dispatch from the request path: Enqueue never
// blocks and never fails the caller, send errors are logged and dropped.
type Dispatcher interface {
	Enqueue(kind string, job func() error)
	Stop()
}

var Instance Dispatcher

func NewHandler(ctx context.Context, workers, queueSize int) {
	Instance = NewDispatcher(ctx, workers, queueSize)
}

type task struct {
	kind string
	job  func() error
}

type impl struct {
	queue    chan task
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func NewDispatcher(ctx context.Context, workers, queueSize int) Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	i := &impl{
		queue: make(chan task, queueSize),
	}
	for n := 0; n < workers; n++ {
		i.wg.Add(1)
		go i.worker(ctx)
	}
	return i
}

func (i *impl) Enqueue(kind string, job func() error) {
	select {
	case i.queue <- task{kind: kind, job: job}:
	default:
		// queue overflow counts as a failed best-effort send
		log.WithField("kind", kind).Warn("notification queue full, notification dropped")
	}
}

func (i *impl) Stop() {
	i.stopOnce.Do(func() {
		close(i.queue)
	})
	i.wg.Wait()
}

func (i *impl) worker(ctx context.Context) {
	defer i.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case t, ok := <-i.queue:
			if !ok {
				return
			}
			i.run(t)
		}
	}
}

func (i *impl) run(t task) {
	logger := log.WithField("kind", t.kind)
	defer func() {
		if r := recover(); r != nil {
			logger.
				WithField("panic_stack", string(debug.Stack())).
				Errorf("panic: (%v)", r)
		}
	}()
	if err := t.job(); err != nil {
		logger.WithError(err).Error("notification send failed")
		return
	}
	logger.Info("notification sent")
}
