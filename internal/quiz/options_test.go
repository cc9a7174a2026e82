package quiz

import "testing"

func TestOptionTables_ValuesSatisfyGates(t *testing.T) {
	for _, opt := range SkillLevelOptions {
		if opt.Value == "" || opt.Label == "" {
			t.Errorf("skill option %+v has empty fields", opt)
		}
		if !CanAdvance(StepSkillLevel, Answers{SkillLevel: opt.Value}) {
			t.Errorf("skill option %q should pass the gate", opt.Value)
		}
	}
	for _, opt := range UseCaseOptions {
		if opt.Value == "" || opt.Label == "" {
			t.Errorf("use case option %+v has empty fields", opt)
		}
		if !CanAdvance(StepUseCase, Answers{UseCase: opt.Value}) {
			t.Errorf("use case option %q should pass the gate", opt.Value)
		}
	}
}

func TestBudgetPresets_RangesValid(t *testing.T) {
	for _, p := range BudgetPresets {
		if p.Min >= p.Max {
			t.Errorf("preset %q has invalid range %d/%d", p.Label, p.Min, p.Max)
		}
		if !CanAdvance(StepBudget, Answers{BudgetMin: p.Min, BudgetMax: p.Max}) {
			t.Errorf("preset %q should satisfy the budget gate", p.Label)
		}
	}
}
