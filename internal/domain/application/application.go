package application

import (
	"context"
	"time"

	"internmatch/internal/common"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusReviewed Status = "reviewed"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Application snapshots the candidate's identity, résumé fields, and
// match score at apply time; later profile edits do not rewrite it.
type Application struct {
	ID             common.ID `json:"id"`
	JobID          common.ID `json:"jobId"`
	CandidateID    common.ID `json:"candidateId"`
	CandidateName  string    `json:"candidateName"`
	CandidateEmail string    `json:"candidateEmail"`
	Date           time.Time `json:"date"`
	Status         Status    `json:"status"`
	MatchScore     int       `json:"matchScore"`
	Skills         []string  `json:"skills,omitempty"`
	Education      string    `json:"education,omitempty"`
	Experience     string    `json:"experience,omitempty"`
}

// Update carries the fields a partial application update may merge.
// Nil pointers leave the stored value untouched.
type Update struct {
	Status *Status `json:"status,omitempty"`
}

type Repository interface {
	// Create stores the application and appends its id to the owning
	// job's application list as one atomic unit.
	Create(ctx context.Context, app Application) (*Application, error)
	GetByID(ctx context.Context, id common.ID) (*Application, error)
	ListByJob(ctx context.Context, jobID common.ID) ([]Application, error)
	FindByJobAndCandidate(ctx context.Context, jobID, candidateID common.ID) (*Application, error)
	Merge(ctx context.Context, id common.ID, update Update) (*Application, error)
}
