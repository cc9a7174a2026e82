package wizard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"printscout/internal/quiz"
	"printscout/internal/tui/components"
)

// numPresets matches len(quiz.BudgetPresets); preset rows occupy focus
// indexes [0, numPresets).
const numPresets = 4

// Focus rows on the budget step: the preset rows come first, then the two
// manual entry fields, then the continue control.
const (
	budgetRowMin = numPresets + iota
	budgetRowMax
	budgetRowContinue
)

// BudgetModel is the budget step: quick-pick presets plus manual min/max
// entry. Manual edits may transiently produce min >= max; the continue
// control is disabled until the range is valid again.
type BudgetModel struct {
	styles components.Styles
	focus  int
	min    textinput.Model
	max    textinput.Model
	width  int
	height int
}

// NewBudgetModel creates the budget step seeded with the given bounds.
func NewBudgetModel(styles components.Styles, min, max int) BudgetModel {
	mi := textinput.New()
	mi.CharLimit = 6
	mi.Width = 8
	mi.Prompt = "$ "

	ma := textinput.New()
	ma.CharLimit = 6
	ma.Width = 8
	ma.Prompt = "$ "

	m := BudgetModel{styles: styles, min: mi, max: ma}
	return m.SetBounds(min, max)
}

// SetBounds overwrites both entry fields, used when a preset is applied or
// the session is reset.
func (m BudgetModel) SetBounds(min, max int) BudgetModel {
	m.min.SetValue(strconv.Itoa(min))
	m.max.SetValue(strconv.Itoa(max))
	return m
}

// Bounds returns the parsed entry fields. Unparseable input reads as zero.
func (m BudgetModel) Bounds() (int, int) {
	min, _ := strconv.Atoi(m.min.Value())
	max, _ := strconv.Atoi(m.max.Value())
	return min, max
}

// Update handles key events for the budget step.
func (m BudgetModel) Update(msg tea.Msg) (BudgetModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "shift+tab":
			if m.focus > 0 {
				m.focus--
			}
			m.syncFocus()
			return m, nil
		case "down", "tab":
			if m.focus < budgetRowContinue {
				m.focus++
			}
			m.syncFocus()
			return m, nil
		case "enter":
			if m.focus < numPresets {
				p := quiz.BudgetPresets[m.focus]
				m = m.SetBounds(p.Min, p.Max)
				return m, func() tea.Msg { return PresetAppliedMsg{Min: p.Min, Max: p.Max} }
			}
			min, max := m.Bounds()
			if min < max {
				return m, func() tea.Msg { return AdvanceMsg{} }
			}
			return m, nil
		}

		// Everything else goes to the focused entry field.
		var cmd tea.Cmd
		switch m.focus {
		case budgetRowMin:
			m.min, cmd = m.min.Update(msg)
		case budgetRowMax:
			m.max, cmd = m.max.Update(msg)
		default:
			return m, nil
		}
		min, max := m.Bounds()
		return m, tea.Batch(cmd, func() tea.Msg { return BudgetEditedMsg{Min: min, Max: max} })

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m *BudgetModel) syncFocus() {
	m.min.Blur()
	m.max.Blur()
	switch m.focus {
	case budgetRowMin:
		m.min.Focus()
	case budgetRowMax:
		m.max.Focus()
	}
}

// View renders the preset list, the manual entry fields, and the continue
// control (muted while the range is invalid).
func (m BudgetModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Subtitle.Render("What's your budget?"))
	b.WriteString("\n\n")

	for i, p := range quiz.BudgetPresets {
		line := fmt.Sprintf("  %s  $%d – $%d", p.Label, p.Min, p.Max)
		if i == m.focus {
			line = m.styles.SelectedItem.Render("> " + line[2:])
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")

	minLabel := "  Min "
	maxLabel := "  Max "
	if m.focus == budgetRowMin {
		minLabel = m.styles.SelectedItem.Render("> Min ")
	}
	if m.focus == budgetRowMax {
		maxLabel = m.styles.SelectedItem.Render("> Max ")
	}
	b.WriteString(minLabel + m.min.View())
	b.WriteString("\n")
	b.WriteString(maxLabel + m.max.View())
	b.WriteString("\n\n")

	min, max := m.Bounds()
	cont := "  Continue"
	switch {
	case min >= max:
		b.WriteString(m.styles.Warning.Render("  Min must be less than max"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Muted.Render(cont))
	case m.focus == budgetRowContinue:
		b.WriteString(m.styles.SelectedItem.Render("> Continue"))
	default:
		b.WriteString(cont)
	}
	b.WriteString("\n\n")
	b.WriteString(m.styles.Footer.Render("  up/down: move  enter: apply preset / continue  esc: back"))

	return b.String()
}
