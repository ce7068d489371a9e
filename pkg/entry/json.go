package entry

import (
	"encoding/json"
	"fmt"

	"tableflip.dev/moodlog/pkg/mood"
)

// annotationBody is the value stored under an annotation's date key.
type annotationBody struct {
	Mood *mood.Mood `json:"mood,omitempty"`
	Note string     `json:"note,omitempty"`
}

// MarshalJSON writes the annotation as {"YYYY-MM-DD": {"mood": ..., "note": ...}}.
func (d DateAnnotation) MarshalJSON() ([]byte, error) {
	body := annotationBody{Note: d.Note}
	if d.Mood != mood.None {
		m := d.Mood
		body.Mood = &m
	}
	return json.Marshal(map[string]annotationBody{d.Date: body})
}

// UnmarshalJSON reads a single-key date object. A null mood reads as no mood.
func (d *DateAnnotation) UnmarshalJSON(b []byte) error {
	var raw map[string]*annotationBody
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw) != 1 {
		return fmt.Errorf("entry: date annotation must have exactly one date key, got %d", len(raw))
	}
	for date, body := range raw {
		*d = DateAnnotation{Date: date}
		if body == nil {
			continue
		}
		if body.Mood != nil {
			d.Mood = *body.Mood
		}
		d.Note = body.Note
	}
	return nil
}

// Marshal encodes a collection as the persisted JSON array. A nil collection
// encodes as an empty array.
func Marshal(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	return json.Marshal(entries)
}

// Unmarshal decodes a persisted JSON array. null decodes as an empty collection.
func Unmarshal(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}
