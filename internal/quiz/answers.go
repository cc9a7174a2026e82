package quiz

// Skill level values accepted by the backend.
const (
	SkillBeginner     = "beginner"
	SkillIntermediate = "intermediate"
	SkillPro          = "pro"
)

// Use case values accepted by the backend.
const (
	UseCaseHobby       = "hobby"
	UseCaseEngineering = "engineering"
	UseCaseArt         = "art"
	UseCaseProduction  = "production"
)

// Answers accumulates the user's selections across steps. The zero string
// means "not yet answered" for SkillLevel and UseCase.
type Answers struct {
	SkillLevel         string
	UseCase            string
	BudgetMin          int
	BudgetMax          int
	PreferEnclosure    bool
	PreferAutoLeveling bool
}

// DefaultAnswers returns the answers a fresh quiz starts from.
func DefaultAnswers() Answers {
	return Answers{
		BudgetMin:          100,
		BudgetMax:          1000,
		PreferAutoLeveling: true,
	}
}

// CanAdvance reports whether the given step's gate is satisfied and the user
// may move on. Preferences and Results have no gate.
func CanAdvance(step Step, a Answers) bool {
	switch step {
	case StepSkillLevel:
		return a.SkillLevel != ""
	case StepUseCase:
		return a.UseCase != ""
	case StepBudget:
		return a.BudgetMin < a.BudgetMax
	default:
		return true
	}
}
