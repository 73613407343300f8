package baseworker

import (
	"context"
	"runtime/debug"
	"time"

	log "github.com/sirupsen/logrus"
)

type BaseImpl struct {
	WorkerName    string
	firstRunDelay time.Duration
	runInterval   time.Duration
}

func NewInstance(WorkerName string, firstRunDelay, runInterval time.Duration) *BaseImpl {
	return &BaseImpl{
		WorkerName:    WorkerName,
		firstRunDelay: firstRunDelay,
		runInterval:   runInterval,
	}
}

func (i BaseImpl) GetLogger() *log.Entry {
	logger := log.
		WithField("worker_name", i.WorkerName)
	return logger
}

func (i BaseImpl) Run(ctx context.Context, jobFunc func(ctx context.Context)) {
	defer func() {
		if r := recover(); r != nil {
			i.GetLogger().
				WithField("panic_stack", string(debug.Stack())).
				Errorf("panic: (%v)", r)
		}
	}()
	period := i.firstRunDelay
	logger := i.GetLogger()
	for {
		select {
		// leave the loop once the root context is cancelled
		case <-ctx.Done():
			logger.Info("worker stopped")
			return
		case <-time.After(period):
			logger.Info("worker run started")
			jobFunc(ctx)
			logger.Info("worker run finished")
		}
		period = i.runInterval
	}
}
