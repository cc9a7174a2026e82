package wizard

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"printscout/internal/tui/components"
)

// PrefsModel is the preferences step: two feature toggles. The step has no
// gate; enter always continues.
type PrefsModel struct {
	styles       components.Styles
	cursor       int // 0 enclosure, 1 auto-leveling
	enclosure    bool
	autoLeveling bool
	width        int
	height       int
}

// NewPrefsModel creates the preferences step mirroring the given values.
func NewPrefsModel(styles components.Styles, enclosure, autoLeveling bool) PrefsModel {
	return PrefsModel{
		styles:       styles,
		enclosure:    enclosure,
		autoLeveling: autoLeveling,
	}
}

// SetValues re-syncs the display mirrors from the session's answers.
func (m PrefsModel) SetValues(enclosure, autoLeveling bool) PrefsModel {
	m.enclosure = enclosure
	m.autoLeveling = autoLeveling
	return m
}

// Update handles key events for the toggles.
func (m PrefsModel) Update(msg tea.Msg) (PrefsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < 1 {
				m.cursor++
			}
		case " ":
			if m.cursor == 0 {
				return m, func() tea.Msg { return ToggleEnclosureMsg{} }
			}
			return m, func() tea.Msg { return ToggleAutoLevelingMsg{} }
		case "enter":
			return m, func() tea.Msg { return AdvanceMsg{} }
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the two toggles with their explanations.
func (m PrefsModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Subtitle.Render("Any feature preferences?"))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		desc  string
		on    bool
	}{
		{"Enclosure", "Keeps temperature stable for ABS and other warp-prone materials", m.enclosure},
		{"Auto bed leveling", "Probes the bed before printing so first layers stick", m.autoLeveling},
	}

	for i, row := range rows {
		toggle := m.styles.ToggleOff
		if row.on {
			toggle = m.styles.ToggleOn
		}

		line := "  " + toggle + " " + row.label
		if i == m.cursor {
			line = m.styles.SelectedItem.Render("> " + line[2:])
		}
		b.WriteString(line)
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render("      " + row.desc))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("  space: toggle  enter: see results  esc: back"))

	return b.String()
}
