package app

import (
	"context"
	"testing"

	"internmatch/internal/domain/assignment"
	"internmatch/internal/domain/job"
	"internmatch/internal/domain/user"
	"internmatch/internal/repository/records"
	"internmatch/internal/store"
)

// fixture wires the services over an in-memory store with the real
// repositories, so tests exercise the same read-modify-write path as
// production.
type fixture struct {
	users        *records.UserRepository
	jobs         *records.JobRepository
	applications *records.ApplicationRepository
	templates    *records.AssignmentRepository
	progress     *records.StudentAssignmentRepository

	matcher     *MatchService
	assignments *AssignmentService
	jobService  *JobService
	auth        *AuthService
}

func newFixture(t *testing.T, keywords ...string) *fixture {
	t.Helper()
	mem := store.NewMemory()
	f := &fixture{
		users:        records.NewUserRepository(mem),
		jobs:         records.NewJobRepository(mem),
		applications: records.NewApplicationRepository(mem),
		templates:    records.NewAssignmentRepository(mem),
		progress:     records.NewStudentAssignmentRepository(mem),
	}
	analyticsRepo := records.NewAnalyticsRepository(mem)
	f.matcher = NewMatchService(f.jobs, f.users, analyticsRepo, keywords)
	f.assignments = NewAssignmentService(f.templates, f.progress, f.users, analyticsRepo, nil)
	f.jobService = NewJobService(f.jobs, f.applications, f.users, f.matcher, analyticsRepo, nil)
	f.auth = NewAuthService(f.users, analyticsRepo)
	return f
}

func (f *fixture) addUser(t *testing.T, u user.User) user.User {
	t.Helper()
	created, err := f.users.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return *created
}

func (f *fixture) addJob(t *testing.T, j job.Job) job.Job {
	t.Helper()
	if j.Status == "" {
		j.Status = job.StatusOpen
	}
	created, err := f.jobs.Create(context.Background(), j)
	if err != nil {
		t.Fatalf("create job: %v", err)
	}
	return *created
}

func (f *fixture) addTemplate(t *testing.T, a assignment.Assignment) assignment.Assignment {
	t.Helper()
	ctx := context.Background()
	existing, err := f.templates.List(ctx)
	if err != nil {
		t.Fatalf("list templates: %v", err)
	}
	if err := f.templates.SaveAll(ctx, append(existing, a)); err != nil {
		t.Fatalf("save templates: %v", err)
	}
	return a
}

func studentWithResume() user.User {
	return user.User{
		Name:     "Alex Johnson",
		Email:    "alex@example.com",
		Password: "password123",
		Role:     user.RoleStudent,
		Resume: &user.Resume{
			Text:       "Frontend developer with React experience",
			Skills:     []string{"React", "SQL"},
			Education:  "BSc Computer Science",
			Experience: "Built dashboards in React",
		},
	}
}

func recruiterAccount() user.User {
	return user.User{
		Name:     "Sarah Williams",
		Email:    "sarah@techcorp.com",
		Password: "password123",
		Role:     user.RoleRecruiter,
		Company:  "TechCorp",
	}
}
