package entry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/moodlog/pkg/mood"
)

func TestMarshalLayout(t *testing.T) {
	entries := []Entry{{
		Name: "bob",
		Dates: []DateAnnotation{
			{Date: "2024-03-01", Mood: mood.Good, Note: "felt fine"},
			{Date: "2024-03-02"},
		},
	}}
	b, err := Marshal(entries)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"bob","dates":[{"2024-03-01":{"mood":"good","note":"felt fine"}},{"2024-03-02":{}}]}]`, string(b))
}

func TestMarshalNil(t *testing.T) {
	b, err := Marshal(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

func TestRoundTrip(t *testing.T) {
	days := 3
	entries := []Entry{
		{Name: "bob", Dates: []DateAnnotation{{Date: "2024-03-01", Mood: mood.Great}}},
		{Name: "Alice", Days: &days, Dates: []DateAnnotation{
			{Date: "2024-01-01", Note: "only a note"},
			{Date: "2024-01-02", Mood: mood.Sad, Note: "both"},
		}},
	}
	b, err := Marshal(entries)
	require.NoError(t, err)
	got, err := Unmarshal(b)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestUnmarshalNullMood(t *testing.T) {
	got, err := Unmarshal([]byte(`[{"name":"x","dates":[{"2024-01-01":{"mood":null,"note":"n"}},{"2024-01-02":null}]}]`))
	require.NoError(t, err)
	assert.Equal(t, []DateAnnotation{{Date: "2024-01-01", Note: "n"}, {Date: "2024-01-02"}}, got[0].Dates)
}

func TestUnmarshalEmpty(t *testing.T) {
	got, err := Unmarshal([]byte(`null`))
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestUnmarshalMalformed(t *testing.T) {
	for _, in := range []string{
		`{`,
		`{"name":"x"}`,
		`[{"name":"x","dates":[{}]}]`,
		`[{"name":"x","dates":[{"2024-01-01":{},"2024-01-02":{}}]}]`,
	} {
		_, err := Unmarshal([]byte(in))
		assert.Error(t, err, in)
	}
}
