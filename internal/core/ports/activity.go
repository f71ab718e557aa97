package ports

import (
	"context"

	"github.com/dreamhome/realestate-api/internal/core/domain"
)

// ActivityRepository persists audit-trail events.
type ActivityRepository interface {
	Create(ctx context.Context, e *domain.ActivityEvent) error
	List(ctx context.Context, actor string, limit int64) ([]*domain.ActivityEvent, error)
}

// ActivityService processes a single audit event. Implementations are
// invoked from dispatcher workers, one event at a time per actor.
type ActivityService interface {
	Process(ctx context.Context, e domain.ActivityEvent) error
	List(ctx context.Context, actor string, limit int64) ([]*domain.ActivityEvent, error)
}

// ActivityRecorder is the narrow enqueue-side interface services use to
// emit audit events without blocking the request path.
type ActivityRecorder interface {
	Record(e domain.ActivityEvent)
}
