package quiz

import (
	"context"

	"printscout/internal/api"
)

// FetchStatus enumerates the lifecycle of one recommendation request.
type FetchStatus int

const (
	FetchIdle FetchStatus = iota
	FetchLoading
	FetchSuccess
	FetchFailure
)

// FetchState is a tagged variant: exactly one status is active, and Results
// and Message are only meaningful for FetchSuccess and FetchFailure
// respectively. The results list is replaced wholesale on every fetch, never
// mutated element-wise.
type FetchState struct {
	Status  FetchStatus
	Results []api.RecommendationResult
	Message string
}

// Recommender is the slice of the gateway client the quiz depends on.
type Recommender interface {
	Recommend(ctx context.Context, req api.RecommendRequest) ([]api.RecommendationResult, error)
}

// FetchOutcome is the terminal result of one fetch, tagged with the
// generation that started it so stale responses can be recognized.
type FetchOutcome struct {
	Gen     int
	Results []api.RecommendationResult
	Err     error
}

// BeginFetch flips the session to Loading and returns a closure that performs
// the request against client. The closure is safe to run on another
// goroutine; it touches only its own captured snapshot of the answers.
//
// Only the outcome of the most recently begun fetch is ever applied
// (ResolveFetch compares generations), so re-invocation and teardown need no
// explicit cancellation.
//
// If skill level or use case is unset the fetch does not start and the state
// stays as it was: step gating makes that unreachable, so hitting it is a
// logic error, not a retryable condition.
func (s *Session) BeginFetch(client Recommender) (func(ctx context.Context) FetchOutcome, bool) {
	if s.answers.SkillLevel == "" || s.answers.UseCase == "" {
		return nil, false
	}

	s.gen++
	gen := s.gen
	s.fetch = FetchState{Status: FetchLoading}

	req := api.RecommendRequest{
		SkillLevel:         s.answers.SkillLevel,
		UseCase:            s.answers.UseCase,
		BudgetMin:          s.answers.BudgetMin,
		BudgetMax:          s.answers.BudgetMax,
		PreferEnclosure:    s.answers.PreferEnclosure,
		PreferAutoLeveling: s.answers.PreferAutoLeveling,
	}

	return func(ctx context.Context) FetchOutcome {
		results, err := client.Recommend(ctx, req)
		return FetchOutcome{Gen: gen, Results: results, Err: err}
	}, true
}

// ResolveFetch applies a fetch outcome and reports whether it was accepted.
// Outcomes from superseded generations are discarded (last write wins).
func (s *Session) ResolveFetch(out FetchOutcome) bool {
	if out.Gen != s.gen || s.fetch.Status != FetchLoading {
		return false
	}
	if out.Err != nil {
		s.fetch = FetchState{
			Status:  FetchFailure,
			Message: "Failed to get recommendations: " + out.Err.Error(),
		}
		return true
	}
	s.fetch = FetchState{Status: FetchSuccess, Results: out.Results}
	return true
}
