package records

import (
	"context"

	"internmatch/internal/common"
	"internmatch/internal/domain/assignment"
	"internmatch/internal/store"
)

type StudentAssignmentRepository struct {
	store store.Store
}

func NewStudentAssignmentRepository(s store.Store) *StudentAssignmentRepository {
	return &StudentAssignmentRepository{store: s}
}

func (r *StudentAssignmentRepository) load(ctx context.Context) ([]assignment.StudentAssignment, error) {
	var items []assignment.StudentAssignment
	if err := r.store.Load(ctx, store.CollectionStudentAssignments, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *StudentAssignmentRepository) Create(ctx context.Context, sa assignment.StudentAssignment) (*assignment.StudentAssignment, error) {
	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	if sa.ID.IsZero() {
		sa.ID = common.NewID("sa")
	}
	items = append(items, sa)
	if err := r.store.Save(ctx, store.Change{Collection: store.CollectionStudentAssignments, Value: items}); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create student assignment", err)
	}
	return &sa, nil
}

func (r *StudentAssignmentRepository) Update(ctx context.Context, sa assignment.StudentAssignment) (*assignment.StudentAssignment, error) {
	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == sa.ID {
			items[i] = sa
			if err := r.store.Save(ctx, store.Change{Collection: store.CollectionStudentAssignments, Value: items}); err != nil {
				return nil, common.NewError(common.CodeInternal, "failed to update student assignment", err)
			}
			return &sa, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "student assignment not found", nil)
}

func (r *StudentAssignmentRepository) FindByStudentAndAssignment(ctx context.Context, studentID, assignmentID common.ID) (*assignment.StudentAssignment, error) {
	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].StudentID == studentID && items[i].AssignmentID == assignmentID {
			found := items[i]
			return &found, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "student assignment not found", nil)
}

func (r *StudentAssignmentRepository) ListByStudent(ctx context.Context, studentID common.ID) ([]assignment.StudentAssignment, error) {
	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	var owned []assignment.StudentAssignment
	for i := range items {
		if items[i].StudentID == studentID {
			owned = append(owned, items[i])
		}
	}
	return owned, nil
}
