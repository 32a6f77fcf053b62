package core

import "context"

// Repository defines the contract for persisting the note collection.
// Adhering to this interface keeps the store independent of the
// underlying storage format (JSON file, YAML file, memory).
type Repository interface {
	// Load reads the persisted collection.
	// exists is false (with a nil error) when nothing has been persisted yet.
	Load(ctx context.Context) (notes []Note, exists bool, err error)

	// Save replaces the persisted collection with notes, in order.
	Save(ctx context.Context, notes []Note) error
}

// EventType represents the type of change observed on the data file.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change of the persisted collection.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer.
func (e Event) String() string {
	return string(e.Type) + " " + e.Path
}

// Watchable defines an interface for repositories that can report external changes.
type Watchable interface {
	// Watch emits an Event whenever the persisted collection changes.
	// The channel is closed when ctx is done.
	Watch(ctx context.Context) (<-chan Event, error)
}
