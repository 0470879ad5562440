package obs

import (
	"context"
	"time"

	"github.com/google/uuid"

	"logistik-dashboard/internal/platform/logger"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// WithRequestID stores id on ctx. An empty id is replaced by a fresh UUID.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = uuid.NewString()
	}
	return context.WithValue(ctx, RequestIDKey, id)
}

func RequestID(ctx context.Context) string {
	reqID, _ := ctx.Value(RequestIDKey).(string)
	return reqID
}

// Time logs the duration of op once the returned func runs, including *errp when set.
func Time(ctx context.Context, log logger.ILogger, name string) func(errp *error) {
	start := time.Now()

	reqID := RequestID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Warning("op failed",
				logger.String("req_id", reqID),
				logger.String("op", name),
				logger.Int64("dur_ms", dur.Milliseconds()),
				logger.Error(*errp),
			)
			return
		}
		log.Debug("op done",
			logger.String("req_id", reqID),
			logger.String("op", name),
			logger.Int64("dur_ms", dur.Milliseconds()),
		)
	}
}
