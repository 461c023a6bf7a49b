package assignment

import (
	"context"
	"time"

	"internmatch/internal/common"
)

type QuestionType string

const (
	QuestionText           QuestionType = "text"
	QuestionTextarea       QuestionType = "textarea"
	QuestionMultipleChoice QuestionType = "multiple-choice"
)

type Question struct {
	ID      string       `json:"id"`
	Text    string       `json:"text"`
	Type    QuestionType `json:"type"`
	Options []string     `json:"options,omitempty"`
}

// Assignment is a reusable questionnaire template tied to a category
// such as "Engineering". Templates are seeded reference data; end users
// never create or mutate them.
type Assignment struct {
	ID            common.ID  `json:"id"`
	Title         string     `json:"title"`
	Category      string     `json:"category"`
	Description   string     `json:"description"`
	EstimatedTime string     `json:"estimatedTime"`
	Questions     []Question `json:"questions"`
}

type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Submission directs one completed assignment at one job.
type Submission struct {
	ID         common.ID  `json:"id"`
	JobID      common.ID  `json:"jobId"`
	Date       time.Time  `json:"date"`
	Reviewed   bool       `json:"reviewed"`
	Feedback   string     `json:"feedback,omitempty"`
	ReviewDate *time.Time `json:"reviewDate,omitempty"`
}

// StudentAssignment tracks one student's progress against one template.
// At most one exists per (student, assignment) pair. Status only moves
// forward: not-started, in-progress, completed.
type StudentAssignment struct {
	ID                 common.ID         `json:"id"`
	StudentID          common.ID         `json:"studentId"`
	StudentName        string            `json:"studentName,omitempty"`
	AssignmentID       common.ID         `json:"assignmentId"`
	AssignmentTitle    string            `json:"assignmentTitle,omitempty"`
	AssignmentCategory string            `json:"assignmentCategory,omitempty"`
	Status             Status            `json:"status"`
	Answers            map[string]string `json:"answers,omitempty"`
	Submissions        []Submission      `json:"submissions"`
}

// Review is the recruiter feedback merged into a submission. The merge
// only ever flips reviewed to true and refreshes feedback and the review
// timestamp; submission identity is never touched.
type Review struct {
	Feedback string `json:"feedback"`
}

type TemplateRepository interface {
	GetByID(ctx context.Context, id common.ID) (*Assignment, error)
	List(ctx context.Context) ([]Assignment, error)
	SaveAll(ctx context.Context, templates []Assignment) error
}

type ProgressRepository interface {
	Create(ctx context.Context, sa StudentAssignment) (*StudentAssignment, error)
	Update(ctx context.Context, sa StudentAssignment) (*StudentAssignment, error)
	FindByStudentAndAssignment(ctx context.Context, studentID, assignmentID common.ID) (*StudentAssignment, error)
	ListByStudent(ctx context.Context, studentID common.ID) ([]StudentAssignment, error)
}
