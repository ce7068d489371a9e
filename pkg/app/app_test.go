package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"tableflip.dev/moodlog/pkg/alert"
	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/mood"
	"tableflip.dev/moodlog/pkg/store"
)

type memoryPersistence struct {
	mu      sync.Mutex
	data    []byte
	saves   int
	saveErr error
	loadErr error
}

func newMemoryPersistence(entries ...entry.Entry) *memoryPersistence {
	mp := &memoryPersistence{}
	if len(entries) > 0 {
		b, err := entry.Marshal(entries)
		if err != nil {
			panic(err)
		}
		mp.data = b
	}
	return mp
}

func (m *memoryPersistence) Load(_ context.Context) ([]entry.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.data == nil {
		return []entry.Entry{}, nil
	}
	entries, err := entry.Unmarshal(m.data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrCorrupt, err)
	}
	return entries, nil
}

func (m *memoryPersistence) Save(_ context.Context, entries []entry.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	b, err := entry.Marshal(entries)
	if err != nil {
		return err
	}
	m.data = b
	m.saves++
	return nil
}

func (m *memoryPersistence) Exists() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data != nil
}

func (m *memoryPersistence) BasePath() string { return "memory" }

func (m *memoryPersistence) Watch(_ context.Context) (<-chan store.Event, error) {
	return make(chan store.Event), nil
}

func fixedClock() time.Time {
	return time.Date(2024, time.March, 1, 9, 0, 0, 0, time.Local)
}

func newService(p store.Persistence) (*Service, *alert.Store) {
	alerts := alert.New()
	return &Service{Persistence: p, Alerts: alerts, Clock: fixedClock}, alerts
}

func TestAddPersistsAndAlerts(t *testing.T) {
	ctx := context.Background()
	mp := newMemoryPersistence()
	svc, alerts := newService(mp)
	defer alerts.Close()

	res, err := svc.Add(ctx, entry.Input{Name: "  bob  ", Mood: mood.Good, Note: "felt fine"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !res.Success || len(res.Entries) != 1 {
		t.Fatalf("unexpected result %#v", res)
	}
	if got := res.Entries[0].Dates[0].Date; got != "2024-03-01" {
		t.Fatalf("expected default date from service clock, got %q", got)
	}
	if mp.saves != 1 {
		t.Fatalf("expected one save, got %d", mp.saves)
	}

	loaded, err := svc.Entries(ctx)
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Name != "bob" || loaded[0].Dates[0].Mood != mood.Good {
		t.Fatalf("unexpected stored entries %#v", loaded)
	}

	cur, ok := alerts.Current()
	if !ok || cur.Type != alert.Success || cur.Message != MsgAdded {
		t.Fatalf("expected success alert, got %#v (ok=%v)", cur, ok)
	}
}

func TestAddRejectedDoesNotSave(t *testing.T) {
	ctx := context.Background()
	mp := newMemoryPersistence(entry.Entry{Name: "bob", Dates: []entry.DateAnnotation{{Date: "2024-03-01"}}})
	svc, alerts := newService(mp)
	defer alerts.Close()

	res, err := svc.Add(ctx, entry.Input{Name: "BOB", Date: "2024-03-01"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if res.Success {
		t.Fatal("duplicate day should be rejected")
	}
	if mp.saves != 0 {
		t.Fatalf("rejected add must not save, got %d saves", mp.saves)
	}
	if cur, _ := alerts.Current(); cur.Message != MsgDuplicateDate || cur.Type != alert.Error {
		t.Fatalf("expected duplicate alert, got %#v", cur)
	}

	res, _ = svc.Add(ctx, entry.Input{Name: "   "})
	if res.Success {
		t.Fatal("blank name should be rejected")
	}
	if cur, _ := alerts.Current(); cur.Message != MsgEmptyName {
		t.Fatalf("expected empty name alert, got %#v", cur)
	}
}

func TestSaveFailureAlerts(t *testing.T) {
	ctx := context.Background()
	mp := newMemoryPersistence()
	mp.saveErr = errors.New("disk full")
	svc, alerts := newService(mp)
	defer alerts.Close()

	var seen []*alert.Data
	alerts.Subscribe(func(d *alert.Data) { seen = append(seen, d) })

	if svc.Save(ctx, []entry.Entry{{Name: "x"}}) {
		t.Fatal("expected save to report failure")
	}
	last := seen[len(seen)-1]
	if last == nil || last.Type != alert.Error || last.Message != MsgSaveFailed {
		t.Fatalf("expected save failure alert, got %#v", last)
	}

	res, err := svc.Add(ctx, entry.Input{Name: "walk"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if res.Success || len(res.Entries) != 0 {
		t.Fatalf("failed save should report an unchanged collection, got %#v", res)
	}
}

func TestNoPersistence(t *testing.T) {
	ctx := context.Background()
	svc, alerts := newService(nil)
	defer alerts.Close()

	entries, err := svc.Entries(ctx)
	if err != nil || entries == nil || len(entries) != 0 {
		t.Fatalf("expected empty collection, got %#v, %v", entries, err)
	}
	if svc.Save(ctx, entries) {
		t.Fatal("save without persistence must fail")
	}
	if _, err := svc.Watch(ctx); err == nil {
		t.Fatal("watch without persistence must fail")
	}
	if svc.Landing(ctx) != RouteWelcome {
		t.Fatal("expected welcome route without persistence")
	}
}

func TestCorruptDataPropagates(t *testing.T) {
	ctx := context.Background()
	mp := newMemoryPersistence()
	mp.data = []byte("{oops")
	svc, alerts := newService(mp)
	defer alerts.Close()

	if _, err := svc.Entries(ctx); !errors.Is(err, store.ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
	if _, err := svc.Add(ctx, entry.Input{Name: "x"}); !errors.Is(err, store.ErrCorrupt) {
		t.Fatalf("expected add to surface ErrCorrupt, got %v", err)
	}
	if route := svc.Landing(ctx); route != RouteWelcome {
		t.Fatalf("expected corrupt data to land on welcome, got %q", route)
	}
	if cur, ok := alerts.Current(); !ok || cur.Type != alert.Error {
		t.Fatalf("expected error alert for corrupt data, got %#v", cur)
	}
}

func TestLanding(t *testing.T) {
	ctx := context.Background()

	empty, alerts := newService(newMemoryPersistence())
	defer alerts.Close()
	if got := empty.Landing(ctx); got != RouteWelcome {
		t.Fatalf("expected welcome for empty store, got %q", got)
	}

	savedEmpty := newMemoryPersistence()
	savedEmpty.data = []byte("[]")
	svc, alerts2 := newService(savedEmpty)
	defer alerts2.Close()
	if got := svc.Landing(ctx); got != RouteWelcome {
		t.Fatalf("expected welcome for saved empty list, got %q", got)
	}

	full, alerts3 := newService(newMemoryPersistence(entry.Entry{Name: "x", Dates: []entry.DateAnnotation{{Date: "2024-01-01"}}}))
	defer alerts3.Close()
	if got := full.Landing(ctx); got != RouteEntries {
		t.Fatalf("expected entries route, got %q", got)
	}
}

func TestEntryLookup(t *testing.T) {
	ctx := context.Background()
	svc, alerts := newService(newMemoryPersistence(entry.Entry{Name: "Yoga", Dates: []entry.DateAnnotation{{Date: "2024-01-01"}}}))
	defer alerts.Close()

	e, ok, err := svc.Entry(ctx, "yoga")
	if err != nil || !ok || e.Name != "Yoga" {
		t.Fatalf("expected to find Yoga, got %#v ok=%v err=%v", e, ok, err)
	}
	if _, ok, _ := svc.Entry(ctx, "run"); ok {
		t.Fatal("did not expect to find run")
	}
}
