package core

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	NoteCount      int    `json:"note_count" yaml:"note_count"`
	NextID         int    `json:"next_id" yaml:"next_id"`
	Persisted      bool   `json:"persisted" yaml:"persisted"`
	RepositoryType string `json:"repository_type" yaml:"repository_type"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	repoType := "unknown"
	if s.repo != nil {
		repoType = "repository"
		if comp, ok := s.repo.(introspection.Component); ok {
			repoType = comp.ComponentType()
		}
	}

	return StoreState{
		NoteCount:      len(s.notes),
		NextID:         len(s.notes) + 1,
		Persisted:      s.loaded,
		RepositoryType: repoType,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
