package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"tableflip.dev/moodlog/pkg/alert"
	"tableflip.dev/moodlog/pkg/dates"
	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/store"
)

// Alert messages raised by the service.
const (
	MsgSaveFailed    = "Failed to save your entries"
	MsgAdded         = "Entry saved"
	MsgEmptyName     = "Please enter a name"
	MsgDuplicateDate = "That day is already recorded for this entry"
)

// Service provides high-level operations over the entry collection.
// It wraps persistence, entry transformations and alerts so UIs and CLIs can
// share logic.
type Service struct {
	// Persistence may be nil when no storage is available; the collection
	// then always loads empty and saves fail.
	Persistence store.Persistence
	// Alerts receives user-facing notifications; nil drops them.
	Alerts *alert.Store
	Clock  dates.Clock
	Logger *slog.Logger
}

var errNoPersistence = errors.New("app: no persistence configured")

func (s *Service) log() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s.Logger
}

func (s *Service) show(msg string, typ alert.Type) {
	if s.Alerts != nil {
		s.Alerts.Show(msg, typ)
	}
}

// Now reads the service clock.
func (s *Service) Now() time.Time {
	return s.Clock.Now()
}

// Entries loads the saved collection. Without persistence it is empty.
// Corrupt stored data is returned as an error wrapping store.ErrCorrupt.
func (s *Service) Entries(ctx context.Context) ([]entry.Entry, error) {
	if s.Persistence == nil {
		return []entry.Entry{}, nil
	}
	entries, err := s.Persistence.Load(ctx)
	if err != nil {
		s.log().Error("load entries", "path", s.Persistence.BasePath(), "err", err)
		return nil, err
	}
	s.log().Debug("loaded entries", "count", len(entries))
	return entries, nil
}

// Save persists the whole collection. Any failure is logged, raised as an
// error alert and reported as false.
func (s *Service) Save(ctx context.Context, entries []entry.Entry) bool {
	err := errNoPersistence
	if s.Persistence != nil {
		err = s.Persistence.Save(ctx, entries)
	}
	if err != nil {
		s.log().Error("save entries", "err", err)
		s.show(MsgSaveFailed, alert.Error)
		return false
	}
	s.log().Debug("saved entries", "count", len(entries))
	return true
}

// Add records an annotation and saves the result. Rejected input (a blank
// name or a day already recorded) comes back with Success false and the
// collection unchanged; so does a failed save, which has already alerted.
func (s *Service) Add(ctx context.Context, in entry.Input) (entry.Result, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return entry.Result{}, err
	}
	if in.Clock == nil {
		in.Clock = s.Clock
	}

	res := entry.Add(entries, in)
	if !res.Success {
		msg := MsgDuplicateDate
		if entry.NormalizeName(in.Name) == "" {
			msg = MsgEmptyName
		}
		s.log().Debug("add rejected", "name", in.Name, "date", in.Date, "reason", msg)
		s.show(msg, alert.Error)
		return res, nil
	}

	if !s.Save(ctx, res.Entries) {
		return entry.Result{Entries: entries}, nil
	}
	s.log().Info("entry added", "name", entry.NormalizeName(in.Name), "entries", len(res.Entries))
	s.show(MsgAdded, alert.Success)
	return res, nil
}

// Entry finds one entry by name.
func (s *Service) Entry(ctx context.Context, name string) (entry.Entry, bool, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return entry.Entry{}, false, err
	}
	e, ok := entry.Find(entries, name)
	return e, ok, nil
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Watch(ctx)
}
