package records

import (
	"context"

	"internmatch/internal/common"
	"internmatch/internal/domain/application"
	"internmatch/internal/domain/job"
	"internmatch/internal/store"
)

type ApplicationRepository struct {
	store store.Store
}

func NewApplicationRepository(s store.Store) *ApplicationRepository {
	return &ApplicationRepository{store: s}
}

func (r *ApplicationRepository) load(ctx context.Context) ([]application.Application, error) {
	var items []application.Application
	if err := r.store.Load(ctx, store.CollectionApplications, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Create stores the application and appends its id to the owning job's
// application list. Both collections go out in one Save so a reader
// never observes the application without the job pointing at it.
func (r *ApplicationRepository) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	var jobs []job.Job
	if err := r.store.Load(ctx, store.CollectionJobs, &jobs); err != nil {
		return nil, err
	}
	if app.ID.IsZero() {
		app.ID = common.NewID("app")
	}
	attached := false
	for i := range jobs {
		if jobs[i].ID == app.JobID {
			jobs[i].Applications = append(jobs[i].Applications, app.ID)
			attached = true
			break
		}
	}
	if !attached {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	items = append(items, app)
	if err := r.store.Save(ctx,
		store.Change{Collection: store.CollectionApplications, Value: items},
		store.Change{Collection: store.CollectionJobs, Value: jobs},
	); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id common.ID) (*application.Application, error) {
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
	return nil, common.NewError(common.CodeNotFound, "application not found", nil)
}

func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID common.ID) ([]application.Application, error) {
	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	var matched []application.Application
	for i := range items {
		if items[i].JobID == jobID {
			matched = append(matched, items[i])
		}
	}
	return matched, nil
}

func (r *ApplicationRepository) FindByJobAndCandidate(ctx context.Context, jobID, candidateID common.ID) (*application.Application, error) {
	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].JobID == jobID && items[i].CandidateID == candidateID {
			found := items[i]
			return &found, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "application not found", nil)
}

func (r *ApplicationRepository) Merge(ctx context.Context, id common.ID, update application.Update) (*application.Application, error) {
	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			if update.Status != nil {
				items[i].Status = *update.Status
			}
			merged := items[i]
			if err := r.store.Save(ctx, store.Change{Collection: store.CollectionApplications, Value: items}); err != nil {
				return nil, common.NewError(common.CodeInternal, "failed to update application", err)
			}
			return &merged, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "application not found", nil)
}
