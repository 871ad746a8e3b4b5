package ports

import (
	"context"

	"arfilla-backend/internal/notify"
)

// HealthChecker is used to probe dependencies.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Notifier receives lifecycle events after a mutation has committed.
type Notifier interface {
	Dispatch(ctx context.Context, ev notify.Event)
}
