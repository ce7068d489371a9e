// Package entry holds the named records users annotate day by day, and the
// pure transformations applied to a collection of them.
package entry

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"tableflip.dev/moodlog/pkg/dates"
	"tableflip.dev/moodlog/pkg/mood"
)

// MaxNameLength caps entry names, in characters.
const MaxNameLength = 50

// Entry is a named record grouping dated annotations. Dates holds at most one
// annotation per day, sorted ascending.
type Entry struct {
	Name  string           `json:"name"`
	Dates []DateAnnotation `json:"dates"`
	// Days is derived for display and may be absent.
	Days *int `json:"days,omitempty"`
}

// DateAnnotation is one day's optional mood and note.
type DateAnnotation struct {
	Date string
	Mood mood.Mood
	Note string
}

// Input describes an annotation to add.
type Input struct {
	Name string
	// Date defaults to today when empty.
	Date string
	Mood mood.Mood
	Note string
	// Clock supplies "today"; nil reads the system clock.
	Clock dates.Clock
}

// Result reports whether Add changed anything, alongside the collection that
// callers should keep using.
type Result struct {
	Success bool
	Entries []Entry
}

// Add records an annotation for the named entry, creating the entry if no
// existing one matches case-insensitively. It fails, returning entries as
// given, when the name is blank or the entry already has an annotation on that
// day. On success the returned slice is a new snapshot; entries and the dates
// of its members are never modified.
func Add(entries []Entry, in Input) Result {
	name := NormalizeName(in.Name)
	if name == "" {
		return Result{Entries: entries}
	}

	date := in.Date
	if date == "" {
		date = dates.Today(in.Clock.Now())
	}
	annotation := DateAnnotation{Date: date, Mood: in.Mood, Note: in.Note}

	idx := index(entries, name)
	if idx < 0 {
		next := make([]Entry, len(entries), len(entries)+1)
		copy(next, entries)
		next = append(next, Entry{Name: name, Dates: []DateAnnotation{annotation}})
		return Result{Success: true, Entries: next}
	}

	existing := entries[idx]
	if existing.Has(date) {
		return Result{Entries: entries}
	}

	ds := make([]DateAnnotation, len(existing.Dates), len(existing.Dates)+1)
	copy(ds, existing.Dates)
	ds = append(ds, annotation)
	sortDates(ds)

	next := make([]Entry, len(entries))
	copy(next, entries)
	existing.Dates = ds
	next[idx] = existing
	return Result{Success: true, Entries: next}
}

// NormalizeName trims whitespace and caps the name at MaxNameLength characters.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if r := []rune(name); len(r) > MaxNameLength {
		name = strings.TrimRightFunc(string(r[:MaxNameLength]), unicode.IsSpace)
	}
	return name
}

// Find looks up an entry by name, ignoring case and surrounding whitespace.
func Find(entries []Entry, name string) (Entry, bool) {
	if i := index(entries, NormalizeName(name)); i >= 0 {
		return entries[i], true
	}
	return Entry{}, false
}

func index(entries []Entry, name string) int {
	for i := range entries {
		if strings.EqualFold(entries[i].Name, name) {
			return i
		}
	}
	return -1
}

// Has reports whether e already carries an annotation for date.
func (e Entry) Has(date string) bool {
	for _, d := range e.Dates {
		if d.Date == date {
			return true
		}
	}
	return false
}

// Keys returns the annotation dates in stored order.
func (e Entry) Keys() []string {
	keys := make([]string, len(e.Dates))
	for i, d := range e.Dates {
		keys[i] = d.Date
	}
	return keys
}

// Latest returns the most recent annotation.
func (e Entry) Latest() (DateAnnotation, bool) {
	if len(e.Dates) == 0 {
		return DateAnnotation{}, false
	}
	latest := e.Dates[0]
	for _, d := range e.Dates[1:] {
		if d.Date > latest.Date {
			latest = d
		}
	}
	return latest, true
}

// DaysSince is the number of whole days since the latest annotation.
func (e Entry) DaysSince(now time.Time) int {
	return dates.DaysSince(e.Keys(), now)
}

// WithDays returns a copy of entries with Days filled in relative to now.
func WithDays(entries []Entry, now time.Time) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		days := e.DaysSince(now)
		e.Days = &days
		out[i] = e
	}
	return out
}

func sortDates(ds []DateAnnotation) {
	sort.SliceStable(ds, func(i, j int) bool {
		return ds[i].Date < ds[j].Date
	})
}
