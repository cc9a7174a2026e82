package quiz

// ChoiceOption pairs a backend value with its display text. Option tables are
// pure data consulted by the TUI; the quiz logic never branches on them.
type ChoiceOption struct {
	Value       string
	Label       string
	Description string
}

// SkillLevelOptions lists the selectable skill levels in display order.
var SkillLevelOptions = []ChoiceOption{
	{Value: SkillBeginner, Label: "Beginner", Description: "New to 3D printing, wants something that just works"},
	{Value: SkillIntermediate, Label: "Intermediate", Description: "Comfortable tuning slicer profiles and doing basic maintenance"},
	{Value: SkillPro, Label: "Pro", Description: "Builds, mods, and repairs printers without a manual"},
}

// UseCaseOptions lists the selectable use cases in display order.
var UseCaseOptions = []ChoiceOption{
	{Value: UseCaseHobby, Label: "Hobby", Description: "Miniatures, household fixes, weekend projects"},
	{Value: UseCaseEngineering, Label: "Engineering", Description: "Functional prototypes and dimensionally accurate parts"},
	{Value: UseCaseArt, Label: "Art", Description: "Sculpts, props, and display pieces with fine surface detail"},
	{Value: UseCaseProduction, Label: "Production", Description: "Small-batch manufacturing, long unattended runs"},
}

// BudgetPreset is a named budget range selectable on the Budget step.
type BudgetPreset struct {
	Label string
	Min   int
	Max   int
}

// BudgetPresets lists the quick-pick budget ranges in display order.
var BudgetPresets = []BudgetPreset{
	{Label: "Entry", Min: 100, Max: 300},
	{Label: "Mid-Range", Min: 400, Max: 1000},
	{Label: "Enthusiast", Min: 1000, Max: 3000},
	{Label: "Professional", Min: 3000, Max: 10000},
}
