package analytics

import (
	"context"
	"time"

	"internmatch/internal/common"
)

// Event is a best-effort audit record. Services fire events and ignore
// failures; nothing user-facing depends on them.
type Event struct {
	ID      common.ID         `json:"id"`
	Name    string            `json:"name"`
	UserID  *common.ID        `json:"userId,omitempty"`
	Payload map[string]string `json:"payload,omitempty"`
	At      time.Time         `json:"at"`
}

type Repository interface {
	Create(ctx context.Context, event Event) error
}
