package store

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"internmatch/internal/common"
)

// File persists every collection inside one JSON document on disk, the
// embedded equivalent of the browser's local storage. Writes go through
// a temp file and rename so a crashed save never leaves a torn document,
// and a multi-collection save lands in a single write.
type File struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
}

func NewFile(path string) (*File, error) {
	s := &File{path: path, data: make(map[string]json.RawMessage)}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, common.NewError(common.CodeInternal, "failed to read store file", err)
	}
	if len(raw) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, common.NewError(common.CodeInternal, "store file is corrupt", err)
	}
	return s, nil
}

func (s *File) Load(ctx context.Context, collection string, out any) error {
	s.mu.Lock()
	raw, ok := s.data[collection]
	s.mu.Unlock()
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return common.NewError(common.CodeInternal, "failed to decode collection "+collection, err)
	}
	return nil
}

func (s *File) Save(ctx context.Context, changes ...Change) error {
	encoded := make(map[string]json.RawMessage, len(changes))
	for _, change := range changes {
		raw, err := json.Marshal(change.Value)
		if err != nil {
			return common.NewError(common.CodeInternal, "failed to encode collection "+change.Collection, err)
		}
		encoded[change.Collection] = raw
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := make(map[string]json.RawMessage, len(s.data)+len(encoded))
	for collection, raw := range s.data {
		next[collection] = raw
	}
	for collection, raw := range encoded {
		next[collection] = raw
	}
	if err := s.flush(next); err != nil {
		return err
	}
	s.data = next
	return nil
}

func (s *File) flush(data map[string]json.RawMessage) error {
	document, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to encode store document", err)
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".internmatch-*.json")
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to create temp store file", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(document); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return common.NewError(common.CodeInternal, "failed to write store file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return common.NewError(common.CodeInternal, "failed to close store file", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return common.NewError(common.CodeInternal, "failed to replace store file", err)
	}
	return nil
}
