package obs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Time logs the duration of a pipeline stage together with the run id.
// Usage: defer obs.Time(ctx, "stage")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	l := Logger(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			l.Error("stage failed", zap.String("op", name), zap.Int64("dur_ms", dur.Milliseconds()), zap.Error(*errp))
			return
		}
		l.Debug("stage done", zap.String("op", name), zap.Int64("dur_ms", dur.Milliseconds()))
	}
}
