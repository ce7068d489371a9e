// Package mood defines the moods an annotation can carry and how they print.
package mood

import (
	"fmt"
	"strings"
)

// Mood is how a day felt. The zero value means no mood was recorded.
type Mood string

const (
	None    Mood = ""
	Sad     Mood = "sad"
	Neutral Mood = "neutral"
	Good    Mood = "good"
	Great   Mood = "great"
)

// Glyph describes how a mood is drawn and which inputs select it.
type Glyph struct {
	Mood    Mood
	Symbol  string
	Meaning string
	Aliases []string
	Order   int
}

// DefaultMoods returns the mood legend, worst to best.
func DefaultMoods() []Glyph {
	return []Glyph{{
		Mood:    Sad,
		Symbol:  "☹",
		Meaning: "sad",
		Aliases: []string{"1", ":(", "bad"},
		Order:   1,
	}, {
		Mood:    Neutral,
		Symbol:  "◦",
		Meaning: "neutral",
		Aliases: []string{"2", ":|", "meh", "ok"},
		Order:   2,
	}, {
		Mood:    Good,
		Symbol:  "☺",
		Meaning: "good",
		Aliases: []string{"3", ":)"},
		Order:   3,
	}, {
		Mood:    Great,
		Symbol:  "★",
		Meaning: "great",
		Aliases: []string{"4", ":D", "awesome"},
		Order:   4,
	}}
}

// ByOrder sorts glyphs worst to best.
type ByOrder []Glyph

func (a ByOrder) Len() int           { return len(a) }
func (a ByOrder) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a ByOrder) Less(i, j int) bool { return a[i].Order < a[j].Order }

// Parse resolves a mood name or alias, case-insensitively. The empty string
// parses as None.
func Parse(alias string) (Mood, error) {
	a := strings.ToLower(strings.TrimSpace(alias))
	if a == "" {
		return None, nil
	}
	for _, g := range DefaultMoods() {
		if a == string(g.Mood) {
			return g.Mood, nil
		}
		for _, al := range g.Aliases {
			if a == strings.ToLower(al) {
				return g.Mood, nil
			}
		}
	}
	return None, fmt.Errorf("unknown mood %q, want one of sad, neutral, good, great", alias)
}

// Valid reports whether m is one of the known moods. None is not valid.
func (m Mood) Valid() bool {
	_, ok := m.glyph()
	return ok
}

// Glyph returns the legend entry for m. Unknown moods get a blank symbol.
func (m Mood) Glyph() Glyph {
	if g, ok := m.glyph(); ok {
		return g
	}
	return Glyph{Mood: m, Symbol: " ", Meaning: string(m)}
}

// Symbol is the printable mark for m.
func (m Mood) Symbol() string {
	return m.Glyph().Symbol
}

func (m Mood) glyph() (Glyph, bool) {
	for _, g := range DefaultMoods() {
		if g.Mood == m {
			return g, true
		}
	}
	return Glyph{}, false
}

func (m Mood) String() string {
	return string(m)
}
