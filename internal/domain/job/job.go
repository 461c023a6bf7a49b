package job

import (
	"context"
	"time"

	"internmatch/internal/common"
)

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

type Job struct {
	ID           common.ID `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Type         string    `json:"type"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	LogoURL      string    `json:"logoUrl"`
	RecruiterID  common.ID `json:"recruiterId"`
	DatePosted   time.Time `json:"datePosted"`
	Status       Status    `json:"status"`
	// RequiredAssignments lists assignment category names a student must
	// have completed before applying. Empty means no gate.
	RequiredAssignments []string    `json:"requiredAssignments"`
	Applications        []common.ID `json:"applications"`
}

// Match is a job annotated with the score the matching engine computed
// for one student.
type Match struct {
	Job
	MatchScore int `json:"matchScore"`
}

type Repository interface {
	Create(ctx context.Context, j Job) (*Job, error)
	Update(ctx context.Context, j Job) (*Job, error)
	GetByID(ctx context.Context, id common.ID) (*Job, error)
	ListOpen(ctx context.Context) ([]Job, error)
	ListByRecruiter(ctx context.Context, recruiterID common.ID) ([]Job, error)
}
