package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"printscout/internal/quiz"
	"printscout/internal/tui/components"
)

// ResultsModel renders the terminal step for all four fetch states: a
// spinner while loading, the ranked list on success, "no matches" for an
// empty list, and the error with a retry hint on failure.
type ResultsModel struct {
	styles  components.Styles
	spinner spinner.Model
	state   quiz.FetchState
	width   int
	height  int
}

// NewResultsModel creates the results step.
func NewResultsModel(styles components.Styles) ResultsModel {
	return ResultsModel{
		styles:  styles,
		spinner: components.NewSpinner(styles),
	}
}

// SetState swaps in the session's current fetch state.
func (m ResultsModel) SetState(state quiz.FetchState) ResultsModel {
	m.state = state
	return m
}

// Init starts the spinner.
func (m ResultsModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles key events and spinner ticks.
func (m ResultsModel) Update(msg tea.Msg) (ResultsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			if m.state.Status == quiz.FetchFailure {
				return m, func() tea.Msg { return RetryMsg{} }
			}
		case "s":
			if m.state.Status != quiz.FetchLoading {
				return m, func() tea.Msg { return ResetMsg{} }
			}
		case "q", "enter":
			if m.state.Status != quiz.FetchLoading {
				return m, tea.Quit
			}
		}

	case spinner.TickMsg:
		if m.state.Status == quiz.FetchLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the active fetch state.
func (m ResultsModel) View() string {
	var b strings.Builder

	switch m.state.Status {
	case quiz.FetchLoading:
		b.WriteString("  " + m.spinner.View() + " Finding printers that match your answers...")
		b.WriteString("\n")

	case quiz.FetchFailure:
		b.WriteString(m.styles.Error.Render("  " + m.state.Message))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Footer.Render("  r: try again  s: start over  q: quit"))

	case quiz.FetchSuccess:
		if len(m.state.Results) == 0 {
			b.WriteString(m.styles.Warning.Render("  No printers matched your answers."))
			b.WriteString("\n")
			b.WriteString(m.styles.Muted.Render("  Try widening your budget or relaxing a preference."))
			b.WriteString("\n\n")
			b.WriteString(m.styles.Footer.Render("  esc: back  s: start over  q: quit"))
			break
		}

		b.WriteString(m.styles.Subtitle.Render("Your matches"))
		b.WriteString("\n\n")
		for i, r := range m.state.Results {
			b.WriteString(m.styles.SelectedItem.Render(
				fmt.Sprintf("  %d. %s", i+1, r.Printer.Name)))
			b.WriteString(m.styles.Muted.Render(
				fmt.Sprintf("  %s · $%d", r.Printer.Brand, r.Printer.Price)))
			b.WriteString("\n")
			b.WriteString(fmt.Sprintf("     %s %d%% match\n", m.scoreBar(r.MatchScore), r.MatchScore))
			for _, reason := range r.Reasons {
				b.WriteString(m.styles.Muted.Render("     • " + reason))
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
		b.WriteString(m.styles.Footer.Render("  esc: back  s: start over  q: quit"))

	default: // FetchIdle
		b.WriteString(m.styles.Muted.Render("  Waiting to fetch recommendations."))
	}

	return b.String()
}

// scoreBar renders a 0–100 match score as a fixed-width bar.
func (m ResultsModel) scoreBar(score int) string {
	const barWidth = 20
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	filled := score * barWidth / 100
	return m.styles.ScoreFull.Render(strings.Repeat("█", filled)) +
		m.styles.ScoreEmpty.Render(strings.Repeat("░", barWidth-filled))
}
