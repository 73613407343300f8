package helpers

import (
	"context"
	"time"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

const emailTimeLayout = "2006-01-02 15:04"

func FormatEmailTime(t time.Time) string {
	return t.Format(emailTimeLayout)
}
