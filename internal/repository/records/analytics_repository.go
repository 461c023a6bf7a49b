package records

import (
	"context"
	"time"

	"internmatch/internal/common"
	"internmatch/internal/domain/analytics"
	"internmatch/internal/store"
)

type AnalyticsRepository struct {
	store store.Store
}

func NewAnalyticsRepository(s store.Store) *AnalyticsRepository {
	return &AnalyticsRepository{store: s}
}

func (r *AnalyticsRepository) Create(ctx context.Context, event analytics.Event) error {
	var items []analytics.Event
	if err := r.store.Load(ctx, store.CollectionEvents, &items); err != nil {
		return err
	}
	if event.ID.IsZero() {
		event.ID = common.NewID("evt")
	}
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}
	items = append(items, event)
	if err := r.store.Save(ctx, store.Change{Collection: store.CollectionEvents, Value: items}); err != nil {
		return common.NewError(common.CodeInternal, "failed to record event", err)
	}
	return nil
}
