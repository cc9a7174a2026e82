package wizard

import "printscout/internal/quiz"

// SkillChosenMsg is sent when the user confirms a skill level.
type SkillChosenMsg struct {
	Value string
}

// UseCaseChosenMsg is sent when the user confirms a use case.
type UseCaseChosenMsg struct {
	Value string
}

// PresetAppliedMsg is sent when the user picks a quick budget range.
// Both bounds travel together so they are applied atomically.
type PresetAppliedMsg struct {
	Min int
	Max int
}

// BudgetEditedMsg carries the parsed bounds after manual editing.
type BudgetEditedMsg struct {
	Min int
	Max int
}

// ToggleEnclosureMsg flips the enclosure preference.
type ToggleEnclosureMsg struct{}

// ToggleAutoLevelingMsg flips the auto-leveling preference.
type ToggleAutoLevelingMsg struct{}

// AdvanceMsg requests a move to the next step.
type AdvanceMsg struct{}

// ResetMsg requests a full restart from the results screen.
type ResetMsg struct{}

// RetryMsg re-issues the recommendation request with unchanged answers.
type RetryMsg struct{}

// FetchResolvedMsg carries the outcome of one recommendation fetch.
type FetchResolvedMsg struct {
	Outcome quiz.FetchOutcome
}
