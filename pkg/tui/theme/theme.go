package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header HeaderTheme
	List   ListTheme
	Banner BannerTheme
	Footer FooterTheme
}

// HeaderTheme styles the title line.
type HeaderTheme struct {
	Title lipgloss.Style
	Date  lipgloss.Style
}

// ListTheme styles the entry rows.
type ListTheme struct {
	Row      lipgloss.Style
	Selected lipgloss.Style
	Days     lipgloss.Style
	Empty    lipgloss.Style
}

// BannerTheme styles alerts by type.
type BannerTheme struct {
	Success lipgloss.Style
	Error   lipgloss.Style
}

// FooterTheme groups styles used by the bottom help/status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Mood   lipgloss.Style
	Prompt lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	banner := lipgloss.NewStyle().Padding(0, 1).Bold(true)

	return Theme{
		Header: HeaderTheme{
			Title: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Date:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		List: ListTheme{
			Row:      lipgloss.NewStyle(),
			Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true),
			Days:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		},
		Banner: BannerTheme{
			Success: banner.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("42")),
			Error:   banner.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("160")),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Mood:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
			Prompt: lipgloss.NewStyle().Bold(true),
		},
	}
}
