package app

import (
	"context"
	"strings"
	"testing"

	"internmatch/internal/common"
	"internmatch/internal/domain/assignment"
)

func codingChallenge() assignment.Assignment {
	return assignment.Assignment{
		ID:       "assignment1",
		Title:    "Frontend Coding Challenge",
		Category: "Engineering",
		Questions: []assignment.Question{
			{ID: "q1", Text: "Describe your approach", Type: assignment.QuestionTextarea},
		},
	}
}

func TestStartCreatesInProgressRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	student := f.addUser(t, studentWithResume())
	template := f.addTemplate(t, codingChallenge())

	record, err := f.assignments.Start(ctx, student.ID, template.ID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if record.Status != assignment.StatusInProgress {
		t.Fatalf("expected status in-progress, got %s", record.Status)
	}
	if record.StudentName != student.Name || record.AssignmentTitle != template.Title || record.AssignmentCategory != template.Category {
		t.Fatalf("expected denormalized student and template fields, got %+v", record)
	}
	if len(record.Submissions) != 0 {
		t.Fatalf("expected no submissions on start, got %d", len(record.Submissions))
	}
}

func TestStartIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	student := f.addUser(t, studentWithResume())
	template := f.addTemplate(t, codingChallenge())

	first, err := f.assignments.Start(ctx, student.ID, template.ID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	second, err := f.assignments.Start(ctx, student.ID, template.ID)
	if err != nil {
		t.Fatalf("second start: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected the same record, got %s and %s", first.ID, second.ID)
	}
	records, err := f.progress.ListByStudent(ctx, student.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected a single persisted record, got %d", len(records))
	}
}

func TestStartAfterSubmitLeavesRecordCompleted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	student := f.addUser(t, studentWithResume())
	template := f.addTemplate(t, codingChallenge())

	if _, err := f.assignments.Start(ctx, student.ID, template.ID); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := f.assignments.Submit(ctx, student.ID, template.ID, map[string]string{"q1": "hooks"}, []common.ID{"job1"}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	record, err := f.assignments.Start(ctx, student.ID, template.ID)
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	if record.Status != assignment.StatusCompleted {
		t.Fatalf("expected completed record to survive a restart, got %s", record.Status)
	}
}

func TestSubmitCompletesAndAppendsSubmissions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	student := f.addUser(t, studentWithResume())
	template := f.addTemplate(t, codingChallenge())

	if _, err := f.assignments.Start(ctx, student.ID, template.ID); err != nil {
		t.Fatalf("start: %v", err)
	}
	answers := map[string]string{"q1": "component composition"}
	record, err := f.assignments.Submit(ctx, student.ID, template.ID, answers, []common.ID{"job1", "job2"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if record.Status != assignment.StatusCompleted {
		t.Fatalf("expected status completed, got %s", record.Status)
	}
	if record.Answers["q1"] != answers["q1"] {
		t.Fatalf("expected answers stored, got %+v", record.Answers)
	}
	if len(record.Submissions) != 2 {
		t.Fatalf("expected 2 submissions, got %d", len(record.Submissions))
	}
	for _, sub := range record.Submissions {
		if sub.Reviewed {
			t.Fatalf("expected fresh submission %s unreviewed", sub.ID)
		}
		if sub.Date.IsZero() {
			t.Fatalf("expected a submission date on %s", sub.ID)
		}
	}
	if record.Submissions[0].JobID != "job1" || record.Submissions[1].JobID != "job2" {
		t.Fatalf("expected submissions for job1 and job2, got %s and %s", record.Submissions[0].JobID, record.Submissions[1].JobID)
	}
}

func TestSubmitDuplicateJobIDsKeepBoth(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	student := f.addUser(t, studentWithResume())
	template := f.addTemplate(t, codingChallenge())

	if _, err := f.assignments.Start(ctx, student.ID, template.ID); err != nil {
		t.Fatalf("start: %v", err)
	}
	record, err := f.assignments.Submit(ctx, student.ID, template.ID, nil, []common.ID{"job1", "job1"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(record.Submissions) != 2 {
		t.Fatalf("expected duplicate job ids kept, got %d submissions", len(record.Submissions))
	}
	if record.Submissions[0].ID == record.Submissions[1].ID {
		t.Fatal("expected distinct submission ids")
	}
}

func TestSubmitWithoutStart(t *testing.T) {
	f := newFixture(t)
	student := f.addUser(t, studentWithResume())
	f.addTemplate(t, codingChallenge())

	_, err := f.assignments.Submit(context.Background(), student.ID, "assignment1", nil, []common.ID{"job1"})
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListForStudentSynthesizesPlaceholders(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	student := f.addUser(t, studentWithResume())
	started := f.addTemplate(t, codingChallenge())
	untouched := f.addTemplate(t, assignment.Assignment{ID: "assignment2", Title: "Marketing Strategy Case", Category: "Marketing"})

	if _, err := f.assignments.Start(ctx, student.ID, started.ID); err != nil {
		t.Fatalf("start: %v", err)
	}
	list, err := f.assignments.ListForStudent(ctx, student.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(list))
	}
	var placeholder *assignment.StudentAssignment
	for i := range list {
		if list[i].AssignmentID == untouched.ID {
			placeholder = &list[i]
		}
	}
	if placeholder == nil {
		t.Fatal("expected a placeholder for the untouched template")
	}
	if placeholder.Status != assignment.StatusNotStarted {
		t.Fatalf("expected placeholder status not-started, got %s", placeholder.Status)
	}
	if !strings.HasPrefix(placeholder.ID.String(), "placeholder_") {
		t.Fatalf("expected a placeholder id, got %s", placeholder.ID)
	}

	// Placeholders are a projection; the store still holds one record.
	records, err := f.progress.ListByStudent(ctx, student.ID)
	if err != nil {
		t.Fatalf("list persisted: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 persisted record, got %d", len(records))
	}
}

func TestReviewSubmission(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	student := f.addUser(t, studentWithResume())
	template := f.addTemplate(t, codingChallenge())

	if _, err := f.assignments.Start(ctx, student.ID, template.ID); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := f.assignments.Submit(ctx, student.ID, template.ID, nil, []common.ID{"job1"}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := f.assignments.ReviewSubmission(ctx, student.ID, template.ID, "job1", assignment.Review{Feedback: "Strong submission"}); err != nil {
		t.Fatalf("review: %v", err)
	}
	record, err := f.progress.FindByStudentAndAssignment(ctx, student.ID, template.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	sub := record.Submissions[0]
	if !sub.Reviewed || sub.Feedback != "Strong submission" || sub.ReviewDate == nil {
		t.Fatalf("expected reviewed submission with feedback, got %+v", sub)
	}

	// A second review overwrites feedback without clearing the flag.
	if err := f.assignments.ReviewSubmission(ctx, student.ID, template.ID, "job1", assignment.Review{Feedback: "Revised note"}); err != nil {
		t.Fatalf("second review: %v", err)
	}
	record, err = f.progress.FindByStudentAndAssignment(ctx, student.ID, template.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !record.Submissions[0].Reviewed || record.Submissions[0].Feedback != "Revised note" {
		t.Fatalf("expected re-review to keep the flag, got %+v", record.Submissions[0])
	}
}

func TestReviewSubmissionMissingJobIsSilent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	student := f.addUser(t, studentWithResume())
	template := f.addTemplate(t, codingChallenge())

	if _, err := f.assignments.Start(ctx, student.ID, template.ID); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := f.assignments.Submit(ctx, student.ID, template.ID, nil, []common.ID{"job1"}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := f.assignments.ReviewSubmission(ctx, student.ID, template.ID, "job9", assignment.Review{Feedback: "n/a"}); err != nil {
		t.Fatalf("expected silent success for an unmatched job, got %v", err)
	}
	record, err := f.progress.FindByStudentAndAssignment(ctx, student.ID, template.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if record.Submissions[0].Reviewed {
		t.Fatal("expected the existing submission untouched")
	}
}

func TestMeetsRequirements(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	student := f.addUser(t, studentWithResume())
	template := f.addTemplate(t, codingChallenge())

	ok, missing, err := f.assignments.MeetsRequirements(ctx, student.ID, nil)
	if err != nil || !ok || missing != nil {
		t.Fatalf("expected empty requirements to pass, got ok=%v missing=%v err=%v", ok, missing, err)
	}

	ok, missing, err = f.assignments.MeetsRequirements(ctx, student.ID, []string{"Marketing", "Engineering"})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if ok {
		t.Fatal("expected the gate to fail before any completion")
	}
	if len(missing) != 2 || missing[0] != "Engineering" || missing[1] != "Marketing" {
		t.Fatalf("expected sorted missing categories, got %v", missing)
	}

	// An in-progress assignment does not satisfy the gate.
	if _, err := f.assignments.Start(ctx, student.ID, template.ID); err != nil {
		t.Fatalf("start: %v", err)
	}
	ok, _, err = f.assignments.MeetsRequirements(ctx, student.ID, []string{"Engineering"})
	if err != nil || ok {
		t.Fatalf("expected in-progress to not satisfy the gate, ok=%v err=%v", ok, err)
	}

	if _, err := f.assignments.Submit(ctx, student.ID, template.ID, nil, []common.ID{"job1"}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	ok, missing, err = f.assignments.MeetsRequirements(ctx, student.ID, []string{"Engineering"})
	if err != nil || !ok || len(missing) != 0 {
		t.Fatalf("expected completion to open the gate, ok=%v missing=%v err=%v", ok, missing, err)
	}
}
