package app

import (
	"context"
	"testing"

	"internmatch/internal/common"
	"internmatch/internal/domain/application"
	"internmatch/internal/domain/job"
)

func TestCreateJobDefaults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	recruiter := f.addUser(t, recruiterAccount())

	created, err := f.jobService.Create(ctx, job.Job{Title: "Marketing Intern", Company: "TechCorp", RecruiterID: recruiter.ID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != job.StatusOpen {
		t.Fatalf("expected default status open, got %s", created.Status)
	}
	if created.DatePosted.IsZero() {
		t.Fatal("expected a posting date")
	}
	if created.LogoURL == "" {
		t.Fatal("expected a stock logo")
	}
	if created.RequiredAssignments == nil || len(created.RequiredAssignments) != 0 {
		t.Fatalf("expected an empty requirement list, got %v", created.RequiredAssignments)
	}
	if created.Applications == nil || len(created.Applications) != 0 {
		t.Fatalf("expected an empty application list, got %v", created.Applications)
	}
	if created.ID.IsZero() {
		t.Fatal("expected an assigned id")
	}
}

func TestCreateJobValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	recruiter := f.addUser(t, recruiterAccount())

	if _, err := f.jobService.Create(ctx, job.Job{RecruiterID: recruiter.ID}); !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error for a missing title, got %v", err)
	}
	if _, err := f.jobService.Create(ctx, job.Job{Title: "Intern"}); !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error for a missing recruiter, got %v", err)
	}
	if _, err := f.jobService.Create(ctx, job.Job{Title: "Intern", RecruiterID: "ghost"}); !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found for an unknown recruiter, got %v", err)
	}
	if _, err := f.jobService.Create(ctx, job.Job{Title: "Intern", RecruiterID: recruiter.ID, Status: "archived"}); !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error for a bad status, got %v", err)
	}
}

func TestApplySnapshotsCandidateAndScore(t *testing.T) {
	f := newFixture(t, "react")
	ctx := context.Background()
	student := f.addUser(t, studentWithResume())
	recruiter := f.addUser(t, recruiterAccount())
	posting := f.addJob(t, job.Job{Title: "React Intern", Requirements: "React skills", RecruiterID: recruiter.ID})

	created, err := f.jobService.Apply(ctx, student.ID, posting.ID)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if created.Status != application.StatusPending {
		t.Fatalf("expected pending, got %s", created.Status)
	}
	if created.CandidateName != student.Name || created.CandidateEmail != student.Email {
		t.Fatalf("expected candidate snapshot, got %+v", created)
	}
	if len(created.Skills) != 2 || created.Skills[0] != "React" {
		t.Fatalf("expected resume skills copied, got %v", created.Skills)
	}
	if want := f.matcher.Score(student, posting); created.MatchScore != want {
		t.Fatalf("expected score %d derived at apply time, got %d", want, created.MatchScore)
	}
	if created.Date.IsZero() {
		t.Fatal("expected an application date")
	}

	// The job's id list gains the application atomically.
	stored, err := f.jobs.GetByID(ctx, posting.ID)
	if err != nil {
		t.Fatalf("get job: %v", err)
	}
	if len(stored.Applications) != 1 || stored.Applications[0] != created.ID {
		t.Fatalf("expected the job to reference %s, got %v", created.ID, stored.Applications)
	}
}

func TestApplyTwiceConflicts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	student := f.addUser(t, studentWithResume())
	recruiter := f.addUser(t, recruiterAccount())
	posting := f.addJob(t, job.Job{Title: "React Intern", RecruiterID: recruiter.ID})

	if _, err := f.jobService.Apply(ctx, student.ID, posting.ID); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if _, err := f.jobService.Apply(ctx, student.ID, posting.ID); !common.Is(err, common.CodeConflict) {
		t.Fatalf("expected conflict on a second apply, got %v", err)
	}
	apps, err := f.applications.ListByJob(ctx, posting.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(apps) != 1 {
		t.Fatalf("expected the rejected apply to change nothing, got %d applications", len(apps))
	}
}

func TestApplyUnknownJobOrStudent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	student := f.addUser(t, studentWithResume())
	recruiter := f.addUser(t, recruiterAccount())
	posting := f.addJob(t, job.Job{Title: "React Intern", RecruiterID: recruiter.ID})

	if _, err := f.jobService.Apply(ctx, student.ID, "ghost"); !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found for an unknown job, got %v", err)
	}
	if _, err := f.jobService.Apply(ctx, "ghost", posting.ID); !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found for an unknown student, got %v", err)
	}
}

func TestHasApplied(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	student := f.addUser(t, studentWithResume())
	recruiter := f.addUser(t, recruiterAccount())
	posting := f.addJob(t, job.Job{Title: "React Intern", RecruiterID: recruiter.ID})

	applied, err := f.jobService.HasApplied(ctx, student.ID, posting.ID)
	if err != nil || applied {
		t.Fatalf("expected not applied, got applied=%v err=%v", applied, err)
	}
	if _, err := f.jobService.Apply(ctx, student.ID, posting.ID); err != nil {
		t.Fatalf("apply: %v", err)
	}
	applied, err = f.jobService.HasApplied(ctx, student.ID, posting.ID)
	if err != nil || !applied {
		t.Fatalf("expected applied, got applied=%v err=%v", applied, err)
	}
}

func TestListApplicationsUnknownJob(t *testing.T) {
	f := newFixture(t)
	if _, err := f.jobService.ListApplications(context.Background(), "ghost"); !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateApplicationStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	student := f.addUser(t, studentWithResume())
	recruiter := f.addUser(t, recruiterAccount())
	posting := f.addJob(t, job.Job{Title: "React Intern", RecruiterID: recruiter.ID})
	created, err := f.jobService.Apply(ctx, student.ID, posting.ID)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	accepted := application.StatusAccepted
	updated, err := f.jobService.UpdateApplication(ctx, created.ID, application.Update{Status: &accepted})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != application.StatusAccepted {
		t.Fatalf("expected accepted, got %s", updated.Status)
	}

	bogus := application.Status("shortlisted")
	if _, err := f.jobService.UpdateApplication(ctx, created.ID, application.Update{Status: &bogus}); !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error for an unknown status, got %v", err)
	}
}

func TestListByRecruiter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	recruiter := f.addUser(t, recruiterAccount())
	other := f.addUser(t, recruiterAccount())
	f.addJob(t, job.Job{Title: "React Intern", RecruiterID: recruiter.ID})
	f.addJob(t, job.Job{Title: "Design Intern", RecruiterID: other.ID})

	owned, err := f.jobService.ListByRecruiter(ctx, recruiter.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(owned) != 1 || owned[0].Title != "React Intern" {
		t.Fatalf("expected only the recruiter's posting, got %v", owned)
	}
}
