package teaui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/moodlog/pkg/alert"
	"tableflip.dev/moodlog/pkg/dates"
	"tableflip.dev/moodlog/pkg/mood"
)

const helpLine = "a add · enter log today · j/k move · 1-4 mood · 0 clear · esc dismiss · q quit"

// View renders the entry list with the alert banner and footer.
func (m *Model) View() string {
	sections := []string{m.renderHeader(), m.renderEntries()}

	if m.mode == modeInsert {
		prompt := m.theme.Footer.Prompt.Render("Add: ")
		sections = append(sections, prompt+m.input.View()+"  "+m.renderMood())
	}
	if banner := m.renderBanner(); banner != "" {
		sections = append(sections, banner)
	}
	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n\n")
}

func (m *Model) renderHeader() string {
	today := dates.Today(m.now())
	label, err := dates.NiceLabel(today)
	if err != nil {
		label = today
	}
	return m.theme.Header.Title.Render("moodlog") + "  " + m.theme.Header.Date.Render(label)
}

func (m *Model) renderEntries() string {
	if len(m.entries) == 0 {
		return m.theme.List.Empty.Render("No entries yet. Press a to add one.")
	}

	now := m.now()
	width := 0
	for _, e := range m.entries {
		width = max(width, lipgloss.Width(e.Name))
	}

	rows := make([]string, 0, len(m.entries))
	for i, e := range m.entries {
		symbol := " "
		if latest, ok := e.Latest(); ok {
			symbol = latest.Mood.Symbol()
		}
		// Derived at render time so an open UI rolls over at midnight.
		days := e.DaysSince(now)
		name := e.Name + strings.Repeat(" ", width-lipgloss.Width(e.Name))
		row := fmt.Sprintf("%s  %s  %s", name, symbol, m.theme.List.Days.Render(dates.Ago(days)))

		if i == m.selected {
			rows = append(rows, m.theme.List.Selected.Render("→ "+row))
		} else {
			rows = append(rows, m.theme.List.Row.Render("  "+row))
		}
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderBanner() string {
	if m.alert == nil {
		return ""
	}
	style := m.theme.Banner.Success
	if m.alert.Type == alert.Error {
		style = m.theme.Banner.Error
	}
	return style.Render(m.alert.Message)
}

func (m *Model) renderMood() string {
	label := "mood: none"
	if m.pendingMood != mood.None {
		label = "mood: " + m.pendingMood.Symbol() + " " + m.pendingMood.String()
	}
	return m.theme.Footer.Mood.Render(label)
}

func (m *Model) renderFooter() string {
	parts := []string{m.theme.Footer.Help.Render(helpLine)}
	if m.mode == modeNormal {
		parts = append(parts, m.renderMood())
	}
	if m.status != "" {
		parts = append(parts, m.theme.Footer.Status.Render(m.status))
	}
	return strings.Join(parts, "\n")
}
