// Package teaui hosts the Bubble Tea program for the moodlog TUI.
package teaui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/moodlog/pkg/alert"
	"tableflip.dev/moodlog/pkg/app"
	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/mood"
	"tableflip.dev/moodlog/pkg/store"
	"tableflip.dev/moodlog/pkg/tui/theme"
)

type mode int

const (
	modeNormal mode = iota
	modeInsert
)

var errServiceUnavailable = errors.New("service unavailable")

// Model contains UI state
type Model struct {
	svc    *app.Service
	ctx    context.Context
	cancel context.CancelFunc
	mode   mode

	input textinput.Model

	entries     []entry.Entry
	selected    int
	pendingMood mood.Mood

	alert       *alert.Data
	alertCh     chan struct{}
	unsubscribe func()

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc

	status     string
	termWidth  int
	termHeight int
	theme      theme.Theme
}

// New creates a new UI model backed by the Service. The model stops its
// background work when parent is cancelled or the program quits.
func New(parent context.Context, svc *app.Service) *Model {
	if parent == nil {
		parent = context.Background()
	}
	ti := textinput.New()
	ti.Placeholder = "Entry name"
	ti.CharLimit = entry.MaxNameLength
	ti.Prompt = ""
	ti.VirtualCursor = true
	ti.Styles.Cursor.Color = lipgloss.Color("212")
	ti.Styles.Cursor.Shape = tea.CursorBlock

	ctx, cancel := context.WithCancel(parent)
	m := &Model{
		svc:    svc,
		ctx:    ctx,
		cancel: cancel,
		mode:   modeNormal,
		input:  ti,
		theme:  theme.Default(),
	}
	if svc != nil && svc.Alerts != nil {
		m.alertCh = make(chan struct{}, 1)
		ch := m.alertCh
		m.unsubscribe = svc.Alerts.Subscribe(func(*alert.Data) {
			select {
			case ch <- struct{}{}:
			default:
			}
		})
	}
	return m
}

// Init loads initial data
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadEntries(), startWatchCmd(m.ctx, m.svc), m.waitForAlert(), m.waitForNextDay())
}

type errMsg struct{ err error }

type entriesLoadedMsg struct {
	entries []entry.Entry
	err     error
}

type addedMsg struct {
	name   string
	result entry.Result
	err    error
}

type alertChangedMsg struct{}

type dayChangedMsg struct{}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

func (m *Model) loadEntries() tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		if svc == nil {
			return errMsg{errServiceUnavailable}
		}
		entries, err := svc.Entries(ctx)
		return entriesLoadedMsg{entries: entries, err: err}
	}
}

func (m *Model) submitAdd(name string) tea.Cmd {
	svc, ctx := m.svc, m.ctx
	in := entry.Input{Name: name, Mood: m.pendingMood}
	return func() tea.Msg {
		if svc == nil {
			return errMsg{errServiceUnavailable}
		}
		res, err := svc.Add(ctx, in)
		return addedMsg{name: name, result: res, err: err}
	}
}

// waitForAlert blocks until the alert store reports a change.
func (m *Model) waitForAlert() tea.Cmd {
	if m.alertCh == nil {
		return nil
	}
	ch, ctx := m.alertCh, m.ctx
	return func() tea.Msg {
		select {
		case <-ch:
			return alertChangedMsg{}
		case <-ctx.Done():
			return nil
		}
	}
}

// waitForNextDay fires just after the next local midnight so the day counts
// are redrawn.
func (m *Model) waitForNextDay() tea.Cmd {
	return tea.Tick(untilNextDay(m.now()), func(time.Time) tea.Msg {
		return dayChangedMsg{}
	})
}

func untilNextDay(now time.Time) time.Duration {
	y, mo, d := now.Date()
	next := time.Date(y, mo, d+1, 0, 0, 1, 0, now.Location())
	return next.Sub(now)
}

func startWatchCmd(parent context.Context, svc *app.Service) tea.Cmd {
	if svc == nil || svc.Persistence == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

// shutdown releases the watch and the alert subscription.
func (m *Model) shutdown() {
	m.stopWatch()
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	m.cancel()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.input.SetWidth(max(msg.Width-8, 10))
	case errMsg:
		m.setStatus("ERR: " + msg.err.Error())
	case entriesLoadedMsg:
		if msg.err != nil {
			m.setStatus("ERR: " + msg.err.Error())
			break
		}
		m.setEntries(msg.entries, "")
	case addedMsg:
		if msg.err != nil {
			m.setStatus("ERR: " + msg.err.Error())
			break
		}
		if msg.result.Success {
			m.setEntries(msg.result.Entries, msg.name)
			m.pendingMood = mood.None
		}
	case alertChangedMsg:
		m.alert = nil
		if m.svc != nil && m.svc.Alerts != nil {
			if d, ok := m.svc.Alerts.Current(); ok {
				m.alert = &d
			}
		}
		cmds = append(cmds, m.waitForAlert())
	case dayChangedMsg:
		if m.ctx.Err() == nil {
			cmds = append(cmds, m.waitForNextDay())
		}
	case watchStartedMsg:
		if msg.err != nil {
			m.setStatus("ERR: watch " + msg.err.Error())
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		cmds = append(cmds, m.waitForWatch())
	case watchEventMsg:
		// Either event type means another process touched the entries.
		m.setStatus("Reloaded (" + msg.event.Type.String() + ")")
		cmds = append(cmds, m.loadEntries(), m.waitForWatch())
	case watchStoppedMsg:
		m.stopWatch()
		if m.ctx.Err() == nil {
			cmds = append(cmds, startWatchCmd(m.ctx, m.svc))
		}
	case tea.KeyPressMsg:
		m.handleKeyPress(msg, &cmds)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.shutdown()
		*cmds = append(*cmds, tea.Quit)
		return
	}
	switch m.mode {
	case modeInsert:
		m.handleInsertKey(msg, cmds)
	default:
		m.handleNormalKey(msg, cmds)
	}
}

func (m *Model) handleNormalKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch key := msg.String(); key {
	case "q":
		m.shutdown()
		*cmds = append(*cmds, tea.Quit)
	case "a":
		m.mode = modeInsert
		m.input.Reset()
		*cmds = append(*cmds, m.input.Focus())
	case "j", "down":
		if m.selected < len(m.entries)-1 {
			m.selected++
		}
	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}
	case "enter":
		if e, ok := m.selectedEntry(); ok {
			*cmds = append(*cmds, m.submitAdd(e.Name))
		}
	case "1", "2", "3", "4":
		if md, err := mood.Parse(key); err == nil {
			m.pendingMood = md
		}
	case "0":
		m.pendingMood = mood.None
	case "esc":
		if m.svc != nil && m.svc.Alerts != nil {
			m.svc.Alerts.Hide()
		}
	}
}

func (m *Model) handleInsertKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := strings.TrimSpace(m.input.Value())
		m.exitInsert()
		*cmds = append(*cmds, m.submitAdd(name))
	case "esc":
		m.exitInsert()
	case "tab":
		m.pendingMood = nextMood(m.pendingMood)
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) exitInsert() {
	m.mode = modeNormal
	m.input.Blur()
	m.input.Reset()
}

func (m *Model) setEntries(entries []entry.Entry, focus string) {
	m.entries = entries
	if focus != "" {
		for i, e := range m.entries {
			if strings.EqualFold(e.Name, entry.NormalizeName(focus)) {
				m.selected = i
				break
			}
		}
	}
	if m.selected >= len(m.entries) {
		m.selected = max(len(m.entries)-1, 0)
	}
}

func (m *Model) now() time.Time {
	if m.svc == nil {
		return time.Now()
	}
	return m.svc.Now()
}

func (m *Model) selectedEntry() (entry.Entry, bool) {
	if m.selected < 0 || m.selected >= len(m.entries) {
		return entry.Entry{}, false
	}
	return m.entries[m.selected], true
}

func (m *Model) setStatus(msg string) {
	m.status = msg
}

// nextMood cycles none, sad, neutral, good, great.
func nextMood(current mood.Mood) mood.Mood {
	order := []mood.Mood{mood.None, mood.Sad, mood.Neutral, mood.Good, mood.Great}
	for i, md := range order {
		if md == current {
			return order[(i+1)%len(order)]
		}
	}
	return mood.None
}

// Run launches the interactive TUI program.
func Run(ctx context.Context, svc *app.Service) error {
	m := New(ctx, svc)
	defer m.shutdown()
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
