package records

import (
	"context"

	"internmatch/internal/common"
	"internmatch/internal/domain/job"
	"internmatch/internal/store"
)

type JobRepository struct {
	store store.Store
}

func NewJobRepository(s store.Store) *JobRepository {
	return &JobRepository{store: s}
}

func (r *JobRepository) load(ctx context.Context) ([]job.Job, error) {
	var items []job.Job
	if err := r.store.Load(ctx, store.CollectionJobs, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *JobRepository) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	if j.ID.IsZero() {
		j.ID = common.NewID("job")
	}
	items = append(items, j)
	if err := r.store.Save(ctx, store.Change{Collection: store.CollectionJobs, Value: items}); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create job", err)
	}
	return &j, nil
}

func (r *JobRepository) Update(ctx context.Context, j job.Job) (*job.Job, error) {
	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == j.ID {
			items[i] = j
			if err := r.store.Save(ctx, store.Change{Collection: store.CollectionJobs, Value: items}); err != nil {
				return nil, common.NewError(common.CodeInternal, "failed to update job", err)
			}
			return &j, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "job not found", nil)
}

func (r *JobRepository) GetByID(ctx context.Context, id common.ID) (*job.Job, error) {
	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			found := items[i]
			return &found, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "job not found", nil)
}

func (r *JobRepository) ListOpen(ctx context.Context) ([]job.Job, error) {
	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	var open []job.Job
	for i := range items {
		if items[i].Status == job.StatusOpen {
			open = append(open, items[i])
		}
	}
	return open, nil
}

func (r *JobRepository) ListByRecruiter(ctx context.Context, recruiterID common.ID) ([]job.Job, error) {
	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	var owned []job.Job
	for i := range items {
		if items[i].RecruiterID == recruiterID {
			owned = append(owned, items[i])
		}
	}
	return owned, nil
}
