// Package quiz implements the guided questionnaire that produces printer
// recommendations: the ordered step sequence, the answer accumulator with
// per-step validity gating, and the fetch lifecycle for scored results.
// It performs no rendering; the TUI layer reads and drives a Session.
package quiz

import "fmt"

// Step identifies one screen of the quiz flow. Steps are traversed strictly
// one at a time: forward in increasing order, backward in decreasing order.
type Step int

const (
	StepSkillLevel Step = iota
	StepUseCase
	StepBudget
	StepPreferences
	StepResults
)

// String returns the human-readable name for a Step.
func (s Step) String() string {
	switch s {
	case StepSkillLevel:
		return "Skill Level"
	case StepUseCase:
		return "Use Case"
	case StepBudget:
		return "Budget"
	case StepPreferences:
		return "Preferences"
	case StepResults:
		return "Results"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}
