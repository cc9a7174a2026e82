// Package wizard is the bubbletea front end for the recommendation quiz.
// A FlowModel owns one quiz.Session and renders whichever step is current;
// step submodels emit typed messages and never touch the session directly.
package wizard

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"printscout/internal/quiz"
	"printscout/internal/tui/components"
)

// FlowModel is the top-level tea.Model coordinating the five quiz steps.
type FlowModel struct {
	styles  components.Styles
	session *quiz.Session
	client  quiz.Recommender

	skill   ChoiceModel
	useCase ChoiceModel
	budget  BudgetModel
	prefs   PrefsModel
	results ResultsModel

	width    int
	height   int
	quitting bool
}

// New creates a FlowModel ready to display the first step.
func New(client quiz.Recommender) FlowModel {
	styles := components.DefaultStyles()
	session := quiz.NewSession()
	m := FlowModel{
		styles:  styles,
		session: session,
		client:  client,
		results: NewResultsModel(styles),
	}
	m.resetStepModels()
	return m
}

// resetStepModels rebuilds the per-step submodels from the session's current
// answers. Used at construction and after a reset.
func (m *FlowModel) resetStepModels() {
	a := m.session.Answers()
	m.skill = NewChoiceModel(m.styles, "What's your experience level?", quiz.SkillLevelOptions,
		func(v string) tea.Msg { return SkillChosenMsg{Value: v} })
	m.useCase = NewChoiceModel(m.styles, "What will you mostly print?", quiz.UseCaseOptions,
		func(v string) tea.Msg { return UseCaseChosenMsg{Value: v} })
	m.budget = NewBudgetModel(m.styles, a.BudgetMin, a.BudgetMax)
	m.prefs = NewPrefsModel(m.styles, a.PreferEnclosure, a.PreferAutoLeveling)
	m.results = NewResultsModel(m.styles)
}

// Session exposes the underlying session (for tests and post-run inspection).
func (m FlowModel) Session() *quiz.Session {
	return m.session
}

// Init satisfies tea.Model.
func (m FlowModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and delegates to the active step.
func (m FlowModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.skill, _ = m.skill.Update(msg)
		m.useCase, _ = m.useCase.Update(msg)
		m.budget, _ = m.budget.Update(msg)
		m.prefs, _ = m.prefs.Update(msg)
		m.results, _ = m.results.Update(msg)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			// Going back never clears answers or the fetch state.
			m.session.Retreat()
			return m, nil
		}
		return m.updateStep(msg)

	case SkillChosenMsg:
		m.session.SetSkillLevel(msg.Value)
		cmd := m.advance()
		return m, cmd

	case UseCaseChosenMsg:
		m.session.SetUseCase(msg.Value)
		cmd := m.advance()
		return m, cmd

	case PresetAppliedMsg:
		m.session.ApplyPreset(msg.Min, msg.Max)
		return m, nil

	case BudgetEditedMsg:
		m.session.SetBudgetMin(msg.Min)
		m.session.SetBudgetMax(msg.Max)
		return m, nil

	case ToggleEnclosureMsg:
		a := m.session.Answers()
		m.session.SetPreferEnclosure(!a.PreferEnclosure)
		m.prefs = m.prefs.SetValues(!a.PreferEnclosure, a.PreferAutoLeveling)
		return m, nil

	case ToggleAutoLevelingMsg:
		a := m.session.Answers()
		m.session.SetPreferAutoLeveling(!a.PreferAutoLeveling)
		m.prefs = m.prefs.SetValues(a.PreferEnclosure, !a.PreferAutoLeveling)
		return m, nil

	case AdvanceMsg:
		cmd := m.advance()
		return m, cmd

	case RetryMsg:
		cmd := m.beginFetch()
		return m, cmd

	case ResetMsg:
		if m.session.Reset() {
			m.resetStepModels()
		}
		return m, nil

	case FetchResolvedMsg:
		if m.session.ResolveFetch(msg.Outcome) {
			m.results = m.results.SetState(m.session.Fetch())
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	}

	return m, nil
}

// advance moves the session forward when the current gate allows it, and
// kicks off a fetch when Results is entered. Each entry into Results starts
// exactly one fresh fetch.
func (m *FlowModel) advance() tea.Cmd {
	if !m.session.Advance() {
		return nil
	}
	if m.session.Step() == quiz.StepResults {
		return m.beginFetch()
	}
	return nil
}

// beginFetch flips the session to Loading and runs the request off the event
// loop. A stale outcome (superseded by a retry or a reset) is dropped by
// Session.ResolveFetch.
func (m *FlowModel) beginFetch() tea.Cmd {
	run, ok := m.session.BeginFetch(m.client)
	if !ok {
		return nil
	}
	m.results = m.results.SetState(m.session.Fetch())
	return tea.Batch(m.results.Init(), func() tea.Msg {
		return FetchResolvedMsg{Outcome: run(context.Background())}
	})
}

// updateStep routes a key to the submodel for the session's current step.
func (m FlowModel) updateStep(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.session.Step() {
	case quiz.StepSkillLevel:
		m.skill, cmd = m.skill.Update(msg)
	case quiz.StepUseCase:
		m.useCase, cmd = m.useCase.Update(msg)
	case quiz.StepBudget:
		m.budget, cmd = m.budget.Update(msg)
	case quiz.StepPreferences:
		m.prefs, cmd = m.prefs.Update(msg)
	case quiz.StepResults:
		m.results, cmd = m.results.Update(msg)
	}
	return m, cmd
}

// View renders the banner, a step indicator, and the active step.
func (m FlowModel) View() string {
	if m.quitting {
		return ""
	}

	step := m.session.Step()
	header := components.RenderBanner(m.styles) + "\n\n" +
		m.styles.Muted.Render(fmt.Sprintf("  Step %d of 5: %s", int(step)+1, step)) + "\n\n"

	switch step {
	case quiz.StepSkillLevel:
		return header + m.skill.View()
	case quiz.StepUseCase:
		return header + m.useCase.View()
	case quiz.StepBudget:
		return header + m.budget.View()
	case quiz.StepPreferences:
		return header + m.prefs.View()
	case quiz.StepResults:
		return header + m.results.View()
	}
	return header
}
