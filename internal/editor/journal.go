package editor

import (
	"fmt"
	"strings"

	"github.com/Garsondee/board-editor/internal/board"
	"github.com/Garsondee/board-editor/internal/cursor"
)

// JournalEntry is one recorded edit or selection change.
type JournalEntry struct {
	Tick     int
	Piece    string // short handle, or "--" for board-wide entries
	Category string // piece, marker, cursor
	Key      string // mutation kind or selection field
	Value    string // human-readable detail
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] 1f0c2a9e piece    dropped          wP e4
func (e JournalEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-8s %-8s %-16s %s",
		e.Tick, e.Piece, e.Category, e.Key, e.Value)
}

// Journal is an unbounded, machine-readable record of a session. Unlike the
// on-screen EditLog it keeps everything.
type Journal struct {
	entries []JournalEntry
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Add records a new entry.
func (j *Journal) Add(tick int, piece, category, key, value string) {
	j.entries = append(j.entries, JournalEntry{
		Tick:     tick,
		Piece:    piece,
		Category: category,
		Key:      key,
		Value:    value,
	})
}

// Record is the bus listener.
func (j *Journal) Record(m Mutation) {
	switch m.Kind {
	case MarkerPlaced:
		j.Add(m.Tick, "--", "marker", m.Kind.String(), m.Cell.Name())
	case MarkersCleared:
		names := make([]string, len(m.Cleared))
		for i, c := range m.Cleared {
			names[i] = c.Name()
		}
		j.Add(m.Tick, "--", "marker", m.Kind.String(), strings.Join(names, " "))
	default:
		j.Add(m.Tick, m.Piece.ShortID(), "piece", m.Kind.String(),
			fmt.Sprintf("%s %s %s", m.Piece.Label(), m.Piece.Army, m.Cell.Name()))
	}
}

// RecordSelection logs cursor changes reported by the controller.
func (j *Journal) RecordSelection(tick int, ch cursor.Changes, c *cursor.Controller) {
	if ch.Mode {
		j.Add(tick, "--", "cursor", "mode", c.Mode().String())
	}
	if ch.Army {
		j.Add(tick, "--", "cursor", "army", c.Army().String())
	}
	if ch.Color {
		j.Add(tick, "--", "cursor", "color", c.Color().String())
	}
}

// Entries returns all recorded entries.
func (j *Journal) Entries() []JournalEntry {
	return j.entries
}

// Query selects journal entries. Zero fields match anything; ToTick is only
// applied when positive.
type Query struct {
	Category string
	Key      string
	Piece    string // short handle as printed in the journal
	FromTick int
	ToTick   int
	Contains string // substring of Value
}

// PieceQuery selects every entry about one piece.
func PieceQuery(p board.Piece) Query {
	return Query{Piece: p.ShortID()}
}

func (q Query) match(e JournalEntry) bool {
	switch {
	case q.Category != "" && e.Category != q.Category:
		return false
	case q.Key != "" && e.Key != q.Key:
		return false
	case q.Piece != "" && e.Piece != q.Piece:
		return false
	case e.Tick < q.FromTick:
		return false
	case q.ToTick > 0 && e.Tick > q.ToTick:
		return false
	}
	return strings.Contains(e.Value, q.Contains)
}

// Select returns the matching entries in recording order.
func (j *Journal) Select(q Query) []JournalEntry {
	var out []JournalEntry
	for _, e := range j.entries {
		if q.match(e) {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many entries match q.
func (j *Journal) Count(q Query) int {
	n := 0
	for _, e := range j.entries {
		if q.match(e) {
			n++
		}
	}
	return n
}

// First returns the earliest matching entry.
func (j *Journal) First(q Query) (JournalEntry, bool) {
	for _, e := range j.entries {
		if q.match(e) {
			return e, true
		}
	}
	return JournalEntry{}, false
}

// Last returns the most recent matching entry.
func (j *Journal) Last(q Query) (JournalEntry, bool) {
	for i := len(j.entries) - 1; i >= 0; i-- {
		if q.match(j.entries[i]) {
			return j.entries[i], true
		}
	}
	return JournalEntry{}, false
}

// Has reports whether any entry matches q.
func (j *Journal) Has(q Query) bool {
	_, ok := j.First(q)
	return ok
}

// Format renders the matching entries one per line.
func (j *Journal) Format(q Query) string {
	var sb strings.Builder
	for _, e := range j.entries {
		if q.match(e) {
			sb.WriteString(e.String())
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
