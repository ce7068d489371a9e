package app

import (
	"context"
	"errors"

	"tableflip.dev/moodlog/pkg/alert"
	"tableflip.dev/moodlog/pkg/store"
)

// Route names the view a session should open on.
type Route string

const (
	// RouteWelcome is the first-run view for an empty journal.
	RouteWelcome Route = "welcome"
	// RouteEntries is the entry listing.
	RouteEntries Route = "entries"
)

// Landing picks the initial view: the listing when anything has been saved,
// the welcome view otherwise. Unreadable stored data also lands on welcome,
// with an error alert, so a corrupt file never blocks startup.
func (s *Service) Landing(ctx context.Context) Route {
	if s.Persistence == nil || !s.Persistence.Exists() {
		return RouteWelcome
	}
	entries, err := s.Entries(ctx)
	if err != nil {
		if errors.Is(err, store.ErrCorrupt) {
			s.show("Saved entries could not be read", alert.Error)
		}
		return RouteWelcome
	}
	if len(entries) > 0 {
		return RouteEntries
	}
	return RouteWelcome
}
