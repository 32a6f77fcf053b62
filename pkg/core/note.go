package core

import "time"

// TimestampLayout is the fixed textual layout of Note.Timestamp (YYYY-MM-DD HH:MM:SS).
const TimestampLayout = "2006-01-02 15:04:05"

// Clock returns the current time. Stores use it to stamp notes.
type Clock func() time.Time

// Note is the central entity of the domain.
// Field order is the on-disk key order.
type Note struct {
	ID        int    `json:"note_id" yaml:"note_id"`
	Title     string `json:"title" yaml:"title"`
	Body      string `json:"body" yaml:"body"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
}

// NewNote builds a note stamped with now.
func NewNote(id int, title, body string, now time.Time) Note {
	return Note{
		ID:        id,
		Title:     title,
		Body:      body,
		Timestamp: FormatTimestamp(now),
	}
}

// FormatTimestamp renders t using TimestampLayout in local time.
func FormatTimestamp(t time.Time) string {
	return t.Local().Format(TimestampLayout)
}

// Time parses the note timestamp as local time.
func (n Note) Time() (time.Time, error) {
	return time.ParseInLocation(TimestampLayout, n.Timestamp, time.Local)
}
