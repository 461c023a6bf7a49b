package records

import (
	"context"

	"internmatch/internal/common"
	"internmatch/internal/domain/assignment"
	"internmatch/internal/store"
)

// AssignmentRepository serves the seeded questionnaire templates.
type AssignmentRepository struct {
	store store.Store
}

func NewAssignmentRepository(s store.Store) *AssignmentRepository {
	return &AssignmentRepository{store: s}
}

func (r *AssignmentRepository) List(ctx context.Context) ([]assignment.Assignment, error) {
	var items []assignment.Assignment
	if err := r.store.Load(ctx, store.CollectionAssignments, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *AssignmentRepository) GetByID(ctx context.Context, id common.ID) (*assignment.Assignment, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			found := items[i]
			return &found, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "assignment not found", nil)
}

func (r *AssignmentRepository) SaveAll(ctx context.Context, templates []assignment.Assignment) error {
	if err := r.store.Save(ctx, store.Change{Collection: store.CollectionAssignments, Value: templates}); err != nil {
		return common.NewError(common.CodeInternal, "failed to save assignments", err)
	}
	return nil
}
