package app

import (
	"context"
	"time"

	"internmatch/internal/common"
	"internmatch/internal/domain/analytics"
	"internmatch/internal/domain/application"
	"internmatch/internal/domain/job"
	"internmatch/internal/domain/user"
	"internmatch/internal/observability"
)

// stockLogoURL backfills postings created without a company logo.
const stockLogoURL = "https://images.pexels.com/photos/3184291/pexels-photo-3184291.jpeg"

// JobService manages postings and the application ledger. The
// assignment eligibility gate is evaluated by the caller before Apply;
// Apply itself only enforces existence and the one-application-per-pair
// constraint.
type JobService struct {
	jobs         job.Repository
	applications application.Repository
	users        user.Repository
	matcher      *MatchService
	analytics    analytics.Repository
	metrics      *observability.Metrics
}

func NewJobService(jobs job.Repository, applications application.Repository, users user.Repository, matcher *MatchService, analyticsRepo analytics.Repository, metrics *observability.Metrics) *JobService {
	return &JobService{jobs: jobs, applications: applications, users: users, matcher: matcher, analytics: analyticsRepo, metrics: metrics}
}

// Create stores a new posting, defaulting status to open, the posting
// date to now, the logo to a stock image, and the sequence fields to
// empty. Title and company are not required to be unique.
func (s *JobService) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	if j.Title == "" {
		return nil, common.NewValidationError("invalid job", map[string]string{"title": "title is required"})
	}
	if j.RecruiterID.IsZero() {
		return nil, common.NewValidationError("invalid job", map[string]string{"recruiterId": "recruiterId is required"})
	}
	if _, err := s.users.GetByID(ctx, j.RecruiterID); err != nil {
		return nil, err
	}
	if j.Status == "" {
		j.Status = job.StatusOpen
	}
	if j.Status != job.StatusOpen && j.Status != job.StatusClosed {
		return nil, common.NewValidationError("invalid job", map[string]string{"status": "status must be open or closed"})
	}
	if j.DatePosted.IsZero() {
		j.DatePosted = time.Now().UTC()
	}
	if j.LogoURL == "" {
		j.LogoURL = stockLogoURL
	}
	if j.RequiredAssignments == nil {
		j.RequiredAssignments = []string{}
	}
	j.Applications = []common.ID{}
	created, err := s.jobs.Create(ctx, j)
	if err != nil {
		return nil, err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "job.created", UserID: &j.RecruiterID, Payload: map[string]string{"jobId": created.ID.String()}})
	return created, nil
}

// Apply records a student's application to a job. The match score is
// re-derived from the matching engine at apply time, never taken from
// the caller, and the candidate's identity and résumé fields are
// snapshotted onto the application. The application insert and the
// job's id-list update land atomically.
func (s *JobService) Apply(ctx context.Context, studentID, jobID common.ID) (*application.Application, error) {
	student, err := s.users.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	target, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if _, err := s.applications.FindByJobAndCandidate(ctx, jobID, studentID); err == nil {
		return nil, common.NewError(common.CodeConflict, "already applied", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	app := application.Application{
		JobID:          jobID,
		CandidateID:    studentID,
		CandidateName:  student.Name,
		CandidateEmail: student.Email,
		Date:           time.Now().UTC(),
		Status:         application.StatusPending,
		MatchScore:     s.matcher.Score(*student, *target),
	}
	if student.Resume != nil {
		app.Skills = append([]string(nil), student.Resume.Skills...)
		app.Education = student.Resume.Education
		app.Experience = student.Resume.Experience
	}
	created, err := s.applications.Create(ctx, app)
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.ApplicationsCreated.Inc()
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "application.created", UserID: &studentID, Payload: map[string]string{
		"applicationId": created.ID.String(),
		"jobId":         jobID.String(),
	}})
	return created, nil
}

// HasApplied reports whether an application exists for the pair.
func (s *JobService) HasApplied(ctx context.Context, studentID, jobID common.ID) (bool, error) {
	_, err := s.applications.FindByJobAndCandidate(ctx, jobID, studentID)
	if err == nil {
		return true, nil
	}
	if common.Is(err, common.CodeNotFound) {
		return false, nil
	}
	return false, err
}

func (s *JobService) Get(ctx context.Context, id common.ID) (*job.Job, error) {
	return s.jobs.GetByID(ctx, id)
}

func (s *JobService) ListApplications(ctx context.Context, jobID common.ID) ([]application.Application, error) {
	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		return nil, err
	}
	return s.applications.ListByJob(ctx, jobID)
}

func (s *JobService) ListByRecruiter(ctx context.Context, recruiterID common.ID) ([]job.Job, error) {
	return s.jobs.ListByRecruiter(ctx, recruiterID)
}

// UpdateApplication merges the given fields, typically a recruiter's
// status decision, into an existing application.
func (s *JobService) UpdateApplication(ctx context.Context, id common.ID, update application.Update) (*application.Application, error) {
	if update.Status != nil {
		switch *update.Status {
		case application.StatusPending, application.StatusReviewed, application.StatusAccepted, application.StatusRejected:
		default:
			return nil, common.NewValidationError("invalid status", map[string]string{"status": "status must be pending, reviewed, accepted, or rejected"})
		}
	}
	updated, err := s.applications.Merge(ctx, id, update)
	if err != nil {
		return nil, err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "application.updated", Payload: map[string]string{"applicationId": id.String()}})
	return updated, nil
}
