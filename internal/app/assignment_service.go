package app

import (
	"context"
	"sort"
	"strconv"
	"time"

	"internmatch/internal/common"
	"internmatch/internal/domain/analytics"
	"internmatch/internal/domain/assignment"
	"internmatch/internal/domain/user"
	"internmatch/internal/observability"
)

// AssignmentService owns the per-(student, assignment) state machine:
// not-started -> in-progress (Start) -> completed (Submit). Completed is
// terminal for answers; later Submit calls only append submissions for
// additional jobs.
type AssignmentService struct {
	templates assignment.TemplateRepository
	progress  assignment.ProgressRepository
	users     user.Repository
	analytics analytics.Repository
	metrics   *observability.Metrics
}

func NewAssignmentService(templates assignment.TemplateRepository, progress assignment.ProgressRepository, users user.Repository, analyticsRepo analytics.Repository, metrics *observability.Metrics) *AssignmentService {
	return &AssignmentService{templates: templates, progress: progress, users: users, analytics: analyticsRepo, metrics: metrics}
}

// Start creates the student's progress record for a template. Starting
// an already-started (or completed) assignment is a no-op success and
// returns the existing record unchanged.
func (s *AssignmentService) Start(ctx context.Context, studentID, assignmentID common.ID) (*assignment.StudentAssignment, error) {
	existing, err := s.progress.FindByStudentAndAssignment(ctx, studentID, assignmentID)
	if err == nil {
		return existing, nil
	}
	if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	template, err := s.templates.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	student, err := s.users.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	created, err := s.progress.Create(ctx, assignment.StudentAssignment{
		StudentID:          studentID,
		StudentName:        student.Name,
		AssignmentID:       template.ID,
		AssignmentTitle:    template.Title,
		AssignmentCategory: template.Category,
		Status:             assignment.StatusInProgress,
		Submissions:        []assignment.Submission{},
	})
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.AssignmentsStarted.Inc()
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "assignment.started", UserID: &studentID, Payload: map[string]string{"assignmentId": template.ID.String()}})
	return created, nil
}

// Submit marks the assignment completed, stores the answers, and
// appends one submission per target job id. Answer completeness and the
// non-empty job selection are the caller's responsibility; duplicate job
// ids in a single call are not deduplicated and each produces its own
// submission.
func (s *AssignmentService) Submit(ctx context.Context, studentID, assignmentID common.ID, answers map[string]string, targetJobIDs []common.ID) (*assignment.StudentAssignment, error) {
	record, err := s.progress.FindByStudentAndAssignment(ctx, studentID, assignmentID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	record.Status = assignment.StatusCompleted
	record.Answers = answers
	for _, jobID := range targetJobIDs {
		record.Submissions = append(record.Submissions, assignment.Submission{
			ID:       common.NewID("sub"),
			JobID:    jobID,
			Date:     now,
			Reviewed: false,
		})
	}
	updated, err := s.progress.Update(ctx, *record)
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.AssignmentsCompleted.Inc()
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "assignment.completed", UserID: &studentID, Payload: map[string]string{
		"assignmentId": assignmentID.String(),
		"submissions":  strconv.Itoa(len(targetJobIDs)),
	}})
	return updated, nil
}

// ListForStudent returns the student's persisted records plus a
// synthesized not-started placeholder for every template the student
// has not touched. Placeholders are a read-only projection and are
// never written to the store.
func (s *AssignmentService) ListForStudent(ctx context.Context, studentID common.ID) ([]assignment.StudentAssignment, error) {
	started, err := s.progress.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	templates, err := s.templates.List(ctx)
	if err != nil {
		return nil, err
	}
	startedIDs := make(map[common.ID]bool, len(started))
	for _, record := range started {
		startedIDs[record.AssignmentID] = true
	}
	result := append([]assignment.StudentAssignment{}, started...)
	for _, template := range templates {
		if startedIDs[template.ID] {
			continue
		}
		result = append(result, assignment.StudentAssignment{
			ID:                 common.ID("placeholder_" + template.ID.String()),
			StudentID:          studentID,
			AssignmentID:       template.ID,
			AssignmentTitle:    template.Title,
			AssignmentCategory: template.Category,
			Status:             assignment.StatusNotStarted,
			Submissions:        []assignment.Submission{},
		})
	}
	return result, nil
}

// ReviewSubmission merges recruiter feedback into the submission aimed
// at jobID. A record with no submission for the job reports success
// without changing anything; repeated reviews are last-write-wins on
// feedback but never clear the reviewed flag or touch the submission's
// identity.
func (s *AssignmentService) ReviewSubmission(ctx context.Context, studentID, assignmentID, jobID common.ID, review assignment.Review) error {
	record, err := s.progress.FindByStudentAndAssignment(ctx, studentID, assignmentID)
	if err != nil {
		return err
	}
	touched := false
	now := time.Now().UTC()
	for i := range record.Submissions {
		if record.Submissions[i].JobID == jobID {
			record.Submissions[i].Reviewed = true
			record.Submissions[i].Feedback = review.Feedback
			record.Submissions[i].ReviewDate = &now
			touched = true
		}
	}
	if !touched {
		return nil
	}
	if _, err := s.progress.Update(ctx, *record); err != nil {
		return err
	}
	if s.metrics != nil {
		s.metrics.SubmissionsReviewed.Inc()
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "submission.reviewed", UserID: &studentID, Payload: map[string]string{
		"assignmentId": assignmentID.String(),
		"jobId":        jobID.String(),
	}})
	return nil
}

// MeetsRequirements reports whether the student has a completed
// assignment for every required category. Matching is exact on the
// category string; an empty requirement list always passes. The second
// return value lists the categories still missing, sorted for stable
// output.
func (s *AssignmentService) MeetsRequirements(ctx context.Context, studentID common.ID, required []string) (bool, []string, error) {
	if len(required) == 0 {
		return true, nil, nil
	}
	records, err := s.progress.ListByStudent(ctx, studentID)
	if err != nil {
		return false, nil, err
	}
	completed := make(map[string]bool)
	for _, record := range records {
		if record.Status == assignment.StatusCompleted {
			completed[record.AssignmentCategory] = true
		}
	}
	var missing []string
	for _, category := range required {
		if !completed[category] {
			missing = append(missing, category)
		}
	}
	sort.Strings(missing)
	return len(missing) == 0, missing, nil
}
