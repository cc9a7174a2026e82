package quiz

import (
	"context"
	"errors"
	"strings"
	"testing"

	"printscout/internal/api"
)

// fakeRecommender records the last request and returns canned results.
type fakeRecommender struct {
	results []api.RecommendationResult
	err     error
	lastReq *api.RecommendRequest
	calls   int
}

func (f *fakeRecommender) Recommend(ctx context.Context, req api.RecommendRequest) ([]api.RecommendationResult, error) {
	f.calls++
	f.lastReq = &req
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

// completedSession returns a session at Results with a Loading fetch and the
// closure that finishes it.
func completedSession(t *testing.T, client Recommender) (*Session, func(context.Context) FetchOutcome) {
	t.Helper()
	s := NewSession()
	s.SetSkillLevel(SkillBeginner)
	s.SetUseCase(UseCaseHobby)
	for s.Step() != StepResults {
		if !s.Advance() {
			t.Fatalf("could not advance past %v", s.Step())
		}
	}
	run, ok := s.BeginFetch(client)
	if !ok {
		t.Fatal("BeginFetch refused to start")
	}
	return s, run
}

// --- step machine ---

func TestNewSession_Defaults(t *testing.T) {
	s := NewSession()

	if s.Step() != StepSkillLevel {
		t.Errorf("step = %v, want SkillLevel", s.Step())
	}
	a := s.Answers()
	want := Answers{BudgetMin: 100, BudgetMax: 1000, PreferAutoLeveling: true}
	if a != want {
		t.Errorf("answers = %+v, want %+v", a, want)
	}
	if s.Fetch().Status != FetchIdle {
		t.Errorf("fetch status = %v, want Idle", s.Fetch().Status)
	}
}

func TestCanAdvance_Gates(t *testing.T) {
	tests := []struct {
		name    string
		step    Step
		answers Answers
		want    bool
	}{
		{"skill unset", StepSkillLevel, Answers{}, false},
		{"skill set", StepSkillLevel, Answers{SkillLevel: SkillPro}, true},
		{"use case unset", StepUseCase, Answers{SkillLevel: SkillPro}, false},
		{"use case set", StepUseCase, Answers{UseCase: UseCaseArt}, true},
		{"budget equal bounds", StepBudget, Answers{BudgetMin: 500, BudgetMax: 500}, false},
		{"budget inverted", StepBudget, Answers{BudgetMin: 600, BudgetMax: 500}, false},
		{"budget valid by one", StepBudget, Answers{BudgetMin: 499, BudgetMax: 500}, true},
		{"preferences always", StepPreferences, Answers{}, true},
		{"results always", StepResults, Answers{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAdvance(tt.step, tt.answers); got != tt.want {
				t.Errorf("CanAdvance(%v, %+v) = %v, want %v", tt.step, tt.answers, got, tt.want)
			}
		})
	}
}

func TestAdvance_BlockedByGate(t *testing.T) {
	s := NewSession()
	if s.Advance() {
		t.Error("advance should fail with skill level unset")
	}
	if s.Step() != StepSkillLevel {
		t.Errorf("step = %v, want SkillLevel", s.Step())
	}

	s.SetSkillLevel(SkillIntermediate)
	if !s.Advance() {
		t.Error("advance should succeed once skill level is set")
	}
	if s.Step() != StepUseCase {
		t.Errorf("step = %v, want UseCase", s.Step())
	}
}

func TestStepOrder_BoundedAndSingleStepped(t *testing.T) {
	s := NewSession()
	s.SetSkillLevel(SkillBeginner)
	s.SetUseCase(UseCaseHobby)

	// Hammer the machine with a mix of moves; the step must stay in range
	// and change by at most one per call.
	moves := []bool{true, true, false, true, true, true, true, false, false, true, true, false}
	for i, forward := range moves {
		before := s.Step()
		if forward {
			s.Advance()
		} else {
			s.Retreat()
		}
		after := s.Step()

		if after < StepSkillLevel || after > StepResults {
			t.Fatalf("move %d: step %v out of range", i, after)
		}
		if diff := int(after) - int(before); diff < -1 || diff > 1 {
			t.Fatalf("move %d: step jumped from %v to %v", i, before, after)
		}
	}
}

func TestAdvance_NoOpAtResults(t *testing.T) {
	s, _ := completedSession(t, &fakeRecommender{})
	if s.Advance() {
		t.Error("advance past Results should be a no-op")
	}
	if s.Step() != StepResults {
		t.Errorf("step = %v, want Results", s.Step())
	}
}

func TestRetreat_NoOpAtFirstStep(t *testing.T) {
	s := NewSession()
	if s.Retreat() {
		t.Error("retreat before SkillLevel should be a no-op")
	}
	if s.Step() != StepSkillLevel {
		t.Errorf("step = %v, want SkillLevel", s.Step())
	}
}

func TestRetreat_PreservesAnswersAndFetch(t *testing.T) {
	client := &fakeRecommender{}
	s, run := completedSession(t, client)
	s.ApplyPreset(400, 1000)
	s.ResolveFetch(run(context.Background()))

	s.Retreat()

	if s.Step() != StepPreferences {
		t.Errorf("step = %v, want Preferences", s.Step())
	}
	a := s.Answers()
	if a.BudgetMin != 400 || a.BudgetMax != 1000 {
		t.Errorf("budget = %d/%d, want 400/1000", a.BudgetMin, a.BudgetMax)
	}
	if s.Fetch().Status != FetchSuccess {
		t.Errorf("retreat cleared fetch state: %v", s.Fetch().Status)
	}
}

func TestApplyPreset_OverwritesBothBounds(t *testing.T) {
	s := NewSession()
	s.SetBudgetMin(2000)
	s.SetBudgetMax(2500)

	// The new range crosses the old one; a field-at-a-time write would pass
	// through min >= max, ApplyPreset must not.
	s.ApplyPreset(1000, 3000)

	a := s.Answers()
	if a.BudgetMin != 1000 || a.BudgetMax != 3000 {
		t.Errorf("budget = %d/%d, want 1000/3000", a.BudgetMin, a.BudgetMax)
	}
	if !CanAdvance(StepBudget, a) {
		t.Error("preset range should satisfy the budget gate")
	}
}

func TestReset_OnlyFromResults(t *testing.T) {
	s := NewSession()
	s.SetSkillLevel(SkillPro)
	if s.Reset() {
		t.Error("reset should be refused outside Results")
	}
	if s.Answers().SkillLevel != SkillPro {
		t.Error("refused reset must not touch answers")
	}
}

func TestReset_RestoresDefaults(t *testing.T) {
	client := &fakeRecommender{}
	s, run := completedSession(t, client)
	s.ApplyPreset(3000, 10000)
	s.SetPreferEnclosure(true)
	s.SetPreferAutoLeveling(false)
	s.ResolveFetch(run(context.Background()))

	if !s.Reset() {
		t.Fatal("reset from Results should succeed")
	}

	if s.Step() != StepSkillLevel {
		t.Errorf("step = %v, want SkillLevel", s.Step())
	}
	want := Answers{BudgetMin: 100, BudgetMax: 1000, PreferAutoLeveling: true}
	if a := s.Answers(); a != want {
		t.Errorf("answers = %+v, want %+v", a, want)
	}
	if s.Fetch().Status != FetchIdle {
		t.Errorf("fetch status = %v, want Idle", s.Fetch().Status)
	}
}

func TestReset_DiscardsInFlightFetch(t *testing.T) {
	client := &fakeRecommender{results: []api.RecommendationResult{{MatchScore: 90}}}
	s, run := completedSession(t, client)
	out := run(context.Background())

	s.Reset()

	if s.ResolveFetch(out) {
		t.Error("outcome from before the reset should be discarded")
	}
	if s.Fetch().Status != FetchIdle {
		t.Errorf("fetch status = %v, want Idle", s.Fetch().Status)
	}
}

// --- fetch lifecycle ---

func TestBeginFetch_RequiresSkillAndUseCase(t *testing.T) {
	client := &fakeRecommender{}
	s := NewSession()

	if _, ok := s.BeginFetch(client); ok {
		t.Error("BeginFetch should refuse with unset answers")
	}
	if s.Fetch().Status != FetchIdle {
		t.Errorf("fetch status = %v, want Idle", s.Fetch().Status)
	}
	if client.calls != 0 {
		t.Errorf("no network call expected, got %d", client.calls)
	}
}

func TestBeginFetch_LoadingBeforeRun(t *testing.T) {
	client := &fakeRecommender{}
	s, run := completedSession(t, client)

	// Loading is set synchronously, before the closure ever runs.
	if s.Fetch().Status != FetchLoading {
		t.Fatalf("fetch status = %v, want Loading", s.Fetch().Status)
	}
	if client.calls != 0 {
		t.Errorf("request ran too early: %d calls", client.calls)
	}

	s.ResolveFetch(run(context.Background()))
	if client.calls != 1 {
		t.Errorf("calls = %d, want 1", client.calls)
	}
}

func TestResolveFetch_Success(t *testing.T) {
	client := &fakeRecommender{results: []api.RecommendationResult{
		{
			Printer:    api.PrinterSummary{Name: "Voron 2.4"},
			MatchScore: 87,
			Reasons:    []string{"Matches your budget"},
		},
	}}
	s, run := completedSession(t, client)

	if !s.ResolveFetch(run(context.Background())) {
		t.Fatal("outcome should be accepted")
	}

	f := s.Fetch()
	if f.Status != FetchSuccess {
		t.Fatalf("status = %v, want Success", f.Status)
	}
	if len(f.Results) != 1 || f.Results[0].MatchScore != 87 {
		t.Errorf("results = %+v, want one entry with score 87", f.Results)
	}
	if f.Message != "" {
		t.Errorf("success should carry no message, got %q", f.Message)
	}
}

func TestResolveFetch_EmptySuccessIsNotFailure(t *testing.T) {
	client := &fakeRecommender{results: []api.RecommendationResult{}}
	s, run := completedSession(t, client)

	s.ResolveFetch(run(context.Background()))

	f := s.Fetch()
	if f.Status != FetchSuccess {
		t.Fatalf("status = %v, want Success for empty list", f.Status)
	}
	if len(f.Results) != 0 {
		t.Errorf("results = %+v, want empty", f.Results)
	}
}

func TestResolveFetch_FailureMessage(t *testing.T) {
	client := &fakeRecommender{err: errors.New("connection refused")}
	s, run := completedSession(t, client)

	s.ResolveFetch(run(context.Background()))

	f := s.Fetch()
	if f.Status != FetchFailure {
		t.Fatalf("status = %v, want Failure", f.Status)
	}
	if !strings.HasPrefix(f.Message, "Failed to get recommendations: ") {
		t.Errorf("message = %q, want the standard prefix", f.Message)
	}
	if !strings.Contains(f.Message, "connection refused") {
		t.Errorf("message = %q, should include the cause", f.Message)
	}
}

func TestResolveFetch_StaleGenerationDiscarded(t *testing.T) {
	client := &fakeRecommender{results: []api.RecommendationResult{{MatchScore: 10}}}
	s, runOld := completedSession(t, client)
	oldOut := runOld(context.Background())

	// A retry supersedes the first request.
	client.results = []api.RecommendationResult{{MatchScore: 99}}
	runNew, ok := s.BeginFetch(client)
	if !ok {
		t.Fatal("retry BeginFetch refused")
	}

	if s.ResolveFetch(oldOut) {
		t.Error("stale outcome should be discarded")
	}
	if s.Fetch().Status != FetchLoading {
		t.Fatalf("status = %v, want still Loading", s.Fetch().Status)
	}

	if !s.ResolveFetch(runNew(context.Background())) {
		t.Fatal("current outcome should be accepted")
	}
	if got := s.Fetch().Results[0].MatchScore; got != 99 {
		t.Errorf("score = %d, want 99 (last write wins)", got)
	}
}

// --- scenarios ---

func TestScenario_DefaultAnswersRequestBody(t *testing.T) {
	client := &fakeRecommender{}
	s := NewSession()
	s.SetSkillLevel(SkillBeginner)
	s.SetUseCase(UseCaseHobby)
	for s.Step() != StepResults {
		s.Advance()
	}

	run, ok := s.BeginFetch(client)
	if !ok {
		t.Fatal("BeginFetch refused")
	}
	run(context.Background())

	want := api.RecommendRequest{
		SkillLevel:         "beginner",
		UseCase:            "hobby",
		BudgetMin:          100,
		BudgetMax:          1000,
		PreferEnclosure:    false,
		PreferAutoLeveling: true,
	}
	if client.lastReq == nil {
		t.Fatal("no request was sent")
	}
	if *client.lastReq != want {
		t.Errorf("request = %+v, want %+v", *client.lastReq, want)
	}
	if client.calls != 1 {
		t.Errorf("calls = %d, want exactly 1", client.calls)
	}
}

func TestScenario_RetryRepeatsIdenticalBody(t *testing.T) {
	client := &fakeRecommender{err: errors.New("HTTP 500")}
	s, run := completedSession(t, client)
	s.ResolveFetch(run(context.Background()))

	if s.Fetch().Status != FetchFailure || s.Fetch().Message == "" {
		t.Fatalf("expected failure with message, got %+v", s.Fetch())
	}
	first := *client.lastReq

	retry, ok := s.BeginFetch(client)
	if !ok {
		t.Fatal("retry BeginFetch refused")
	}
	retry(context.Background())

	if *client.lastReq != first {
		t.Errorf("retry body %+v differs from original %+v", *client.lastReq, first)
	}
}
