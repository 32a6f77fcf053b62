package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// StoreConfig holds the collaborators of a Store.
type StoreConfig struct {
	Clock  Clock        // Defaults to time.Now
	Logger *slog.Logger // Defaults to a discarding logger
}

// Store owns the in-memory note collection and persists it after every mutation.
type Store struct {
	mu     sync.RWMutex
	repo   Repository
	notes  []Note
	loaded bool
	now    Clock
	logger *slog.Logger
}

// Query narrows the result of Search.
type Query struct {
	// DatePrefix keeps notes whose timestamp starts with it (textual match).
	DatePrefix string
	// TitlePattern keeps notes whose title matches the glob (e.g. "work*").
	TitlePattern string
}

// NewStore creates a Store and loads the persisted collection from repo.
// A repository with nothing persisted yields an empty store.
func NewStore(ctx context.Context, repo Repository, config StoreConfig) (*Store, error) {
	if repo == nil {
		return nil, fmt.Errorf("store requires a repository")
	}

	s := &Store{
		repo:   repo,
		now:    config.Clock,
		logger: config.Logger,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload replaces the in-memory collection with the persisted one.
// On failure the current collection is kept.
func (s *Store) Reload(ctx context.Context) error {
	notes, exists, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load notes: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loaded = exists
	if !exists {
		s.notes = nil
		s.logger.Debug("no persisted notes, starting empty")
		return nil
	}
	s.notes = notes
	s.logger.Debug("notes loaded", "count", len(notes))
	return nil
}

// Add creates a note with id len+1, appends it and persists the collection.
//
// Ids derive from the current count, so after a deletion a new note may reuse
// the id of a deleted (or surviving) note.
func (s *Store) Add(ctx context.Context, title, body string) (Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	note := NewNote(len(s.notes)+1, title, body, s.now())
	s.notes = append(s.notes, note)

	if err := s.save(ctx); err != nil {
		return note, err
	}
	s.logger.Debug("note added", "id", note.ID)
	return note, nil
}

// Edit overwrites title, body and timestamp of the first note with id.
// It reports false, without persisting, when no note matches.
func (s *Store) Edit(ctx context.Context, id int, title, body string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notes {
		if s.notes[i].ID != id {
			continue
		}
		s.notes[i].Title = title
		s.notes[i].Body = body
		s.notes[i].Timestamp = FormatTimestamp(s.now())

		if err := s.save(ctx); err != nil {
			return true, err
		}
		s.logger.Debug("note edited", "id", id)
		return true, nil
	}
	return false, nil
}

// Delete removes every note with id and persists the collection,
// whether or not anything matched.
func (s *Store) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.notes[:0]
	removed := 0
	for _, n := range s.notes {
		if n.ID == id {
			removed++
			continue
		}
		kept = append(kept, n)
	}
	// Clear the tail so removed notes are not retained by the backing array.
	clear(s.notes[len(kept):])
	s.notes = kept

	if err := s.save(ctx); err != nil {
		return err
	}
	s.logger.Debug("note deleted", "id", id, "removed", removed)
	return nil
}

// List returns the notes in insertion order. A non-empty datePrefix keeps
// only notes whose timestamp starts with it: "2024-01-1" matches both
// "2024-01-10 ..." and "2024-01-15 ...".
func (s *Store) List(datePrefix string) []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Note, 0, len(s.notes))
	for _, n := range s.notes {
		if datePrefix != "" && !strings.HasPrefix(n.Timestamp, datePrefix) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Search is List with an additional title glob.
func (s *Store) Search(q Query) ([]Note, error) {
	if q.TitlePattern != "" && !doublestar.ValidatePattern(q.TitlePattern) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, q.TitlePattern)
	}

	notes := s.List(q.DatePrefix)
	if q.TitlePattern == "" {
		return notes, nil
	}

	out := notes[:0]
	for _, n := range notes {
		ok, err := doublestar.Match(q.TitlePattern, n.Title)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
		}
		if ok {
			out = append(out, n)
		}
	}
	return out, nil
}

// Get returns the first note with id.
func (s *Store) Get(id int) (Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, n := range s.notes {
		if n.ID == id {
			return n, true
		}
	}
	return Note{}, false
}

// Len returns the number of notes held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

// save persists the whole collection. Callers hold s.mu.
// A failed save leaves the in-memory mutation in place.
func (s *Store) save(ctx context.Context) error {
	snapshot := make([]Note, len(s.notes))
	copy(snapshot, s.notes)

	if err := s.repo.Save(ctx, snapshot); err != nil {
		s.logger.Error("failed to persist notes", "error", err)
		return fmt.Errorf("failed to save notes: %w", err)
	}
	s.loaded = true
	return nil
}
