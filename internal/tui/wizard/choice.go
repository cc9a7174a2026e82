package wizard

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"printscout/internal/quiz"
	"printscout/internal/tui/components"
)

// ChoiceModel is a single-select list over a static option table. It is used
// for both the skill level and use case steps; confirm wraps the picked value
// in the step-specific message.
type ChoiceModel struct {
	styles  components.Styles
	title   string
	options []quiz.ChoiceOption
	confirm func(value string) tea.Msg
	cursor  int
	chosen  string
	width   int
	height  int
}

// NewChoiceModel creates a choice list for the given option table.
func NewChoiceModel(styles components.Styles, title string, options []quiz.ChoiceOption, confirm func(string) tea.Msg) ChoiceModel {
	return ChoiceModel{
		styles:  styles,
		title:   title,
		options: options,
		confirm: confirm,
	}
}

// Chosen returns the confirmed value, or "" if nothing was picked yet.
func (m ChoiceModel) Chosen() string {
	return m.chosen
}

// Update handles key events for the list.
func (m ChoiceModel) Update(msg tea.Msg) (ChoiceModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
		case "enter":
			m.chosen = m.options[m.cursor].Value
			value := m.chosen
			return m, func() tea.Msg { return m.confirm(value) }
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the list with the cursor row highlighted and its description
// shown beneath.
func (m ChoiceModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Subtitle.Render(m.title))
	b.WriteString("\n\n")

	for i, opt := range m.options {
		radio := m.styles.RadioOff
		if opt.Value == m.chosen {
			radio = m.styles.RadioOn
		}

		line := "  " + radio + " " + opt.Label
		if i == m.cursor {
			line = m.styles.SelectedItem.Render("> " + line[2:])
		}
		b.WriteString(line)
		b.WriteString("\n")

		if i == m.cursor {
			b.WriteString(m.styles.Muted.Render("      " + opt.Description))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("  up/down: move  enter: select  esc: back"))

	return b.String()
}
