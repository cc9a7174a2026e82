package quiz

// Session is the state container for one quiz run: the current step, the
// answer accumulator, and the fetch lifecycle. A Session is owned by a single
// flow and is not safe for concurrent use; the TUI's event loop serializes
// all access.
type Session struct {
	step    Step
	answers Answers
	fetch   FetchState
	gen     int // fetch generation, see BeginFetch
}

// NewSession creates a session at the first step with default answers.
func NewSession() *Session {
	return &Session{answers: DefaultAnswers()}
}

// Step returns the current step.
func (s *Session) Step() Step {
	return s.step
}

// Answers returns a snapshot of the accumulated answers.
func (s *Session) Answers() Answers {
	return s.answers
}

// Fetch returns the current fetch state.
func (s *Session) Fetch() FetchState {
	return s.fetch
}

// SetSkillLevel records the skill level selection.
func (s *Session) SetSkillLevel(v string) {
	s.answers.SkillLevel = v
}

// SetUseCase records the use case selection.
func (s *Session) SetUseCase(v string) {
	s.answers.UseCase = v
}

// SetBudgetMin records the lower budget bound. Transient min >= max is
// allowed while editing; CanAdvance gates leaving the step.
func (s *Session) SetBudgetMin(v int) {
	s.answers.BudgetMin = v
}

// SetBudgetMax records the upper budget bound.
func (s *Session) SetBudgetMax(v int) {
	s.answers.BudgetMax = v
}

// SetPreferEnclosure records the enclosure preference.
func (s *Session) SetPreferEnclosure(v bool) {
	s.answers.PreferEnclosure = v
}

// SetPreferAutoLeveling records the auto-leveling preference.
func (s *Session) SetPreferAutoLeveling(v bool) {
	s.answers.PreferAutoLeveling = v
}

// ApplyPreset overwrites both budget bounds in one operation so the
// min < max invariant is never transiently violated when ranges cross.
func (s *Session) ApplyPreset(min, max int) {
	s.answers.BudgetMin = min
	s.answers.BudgetMax = max
}

// CanAdvance reports whether the current step's gate is satisfied.
func (s *Session) CanAdvance() bool {
	return CanAdvance(s.step, s.answers)
}

// Advance moves to the next step and reports whether the step changed.
// It is a silent no-op at Results or when the current gate is unsatisfied;
// the gate check is a defensive re-check, the TUI disables the control first.
func (s *Session) Advance() bool {
	if s.step >= StepResults {
		return false
	}
	if !s.CanAdvance() {
		return false
	}
	s.step++
	return true
}

// Retreat moves to the previous step and reports whether the step changed.
// It never clears answers and never touches the fetch state.
func (s *Session) Retreat() bool {
	if s.step <= StepSkillLevel {
		return false
	}
	s.step--
	return true
}

// Reset restarts the quiz from the first step with default answers and an
// idle fetch. It is only permitted from Results; elsewhere it is a no-op.
// Bumping the generation ensures any in-flight response is discarded.
func (s *Session) Reset() bool {
	if s.step != StepResults {
		return false
	}
	s.step = StepSkillLevel
	s.answers = DefaultAnswers()
	s.fetch = FetchState{}
	s.gen++
	return true
}
