package store

import (
	"context"
	"encoding/json"
	"sync"

	"internmatch/internal/common"
)

// Memory keeps collections in process memory. Used by tests and
// ephemeral runs; values round-trip through JSON so callers never share
// record memory with the store.
type Memory struct {
	mu   sync.RWMutex
	data map[string]json.RawMessage
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]json.RawMessage)}
}

func (s *Memory) Load(ctx context.Context, collection string, out any) error {
	s.mu.RLock()
	raw, ok := s.data[collection]
	s.mu.RUnlock()
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return common.NewError(common.CodeInternal, "failed to decode collection "+collection, err)
	}
	return nil
}

func (s *Memory) Save(ctx context.Context, changes ...Change) error {
	encoded := make(map[string]json.RawMessage, len(changes))
	for _, change := range changes {
		raw, err := json.Marshal(change.Value)
		if err != nil {
			return common.NewError(common.CodeInternal, "failed to encode collection "+change.Collection, err)
		}
		encoded[change.Collection] = raw
	}
	s.mu.Lock()
	for collection, raw := range encoded {
		s.data[collection] = raw
	}
	s.mu.Unlock()
	return nil
}
