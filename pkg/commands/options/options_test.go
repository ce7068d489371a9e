package options

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/moodlog/pkg/mood"
)

func TestGetOn(t *testing.T) {
	o := AddOptions{}
	if on, err := o.GetOn(nil); err != nil || on != "" {
		t.Fatalf("expected empty day for today, got %q, %v", on, err)
	}
	o.OnString = "2024-02-28"
	if on, err := o.GetOn(nil); err != nil || on != "2024-02-28" {
		t.Fatalf("unexpected day %q, %v", on, err)
	}
	o.OnString = "2/28"
	if _, err := o.GetOn(nil); err == nil {
		t.Fatal("expected error for non-ISO day")
	}
}

func TestGetOnAgo(t *testing.T) {
	clock := func() time.Time { return time.Date(2024, time.March, 1, 9, 0, 0, 0, time.Local) }

	o := AddOptions{Ago: "1w1d"}
	if on, err := o.GetOn(clock); err != nil || on != "2024-02-22" {
		t.Fatalf("unexpected day %q, %v", on, err)
	}
	o.OnString = "2024-02-28"
	if _, err := o.GetOn(clock); err == nil {
		t.Fatal("expected error when --on and --ago are combined")
	}
	o = AddOptions{Ago: "3h"}
	if _, err := o.GetOn(clock); err == nil {
		t.Fatal("expected error for hour offsets")
	}
}

func TestGetMood(t *testing.T) {
	o := AddOptions{MoodName: ":)"}
	if m, err := o.GetMood(); err != nil || m != mood.Good {
		t.Fatalf("expected good, got %q, %v", m, err)
	}
	o.MoodName = "furious"
	if _, err := o.GetMood(); err == nil {
		t.Fatal("expected error for unknown mood")
	}
}

func TestHandleError(t *testing.T) {
	plain := OutputOptions{}
	boom := errors.New("boom")
	if err := plain.HandleError(boom); err != boom {
		t.Fatalf("expected error passthrough, got %v", err)
	}
	js := OutputOptions{JSON: true}
	if err := js.HandleError(boom); err != nil {
		t.Fatalf("expected JSON mode to swallow the error, got %v", err)
	}
}

func TestWrap(t *testing.T) {
	got := Wrap("one two three", 7)
	if got != "one two\nthree" {
		t.Fatalf("unexpected wrap %q", got)
	}
}
