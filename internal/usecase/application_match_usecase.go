package usecase

import (
	"context"
	"errors"

	"talent-match/internal/domain/matching"
	"talent-match/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrJobNotFound         = errors.New("job not found")
	ErrCandidateNotFound   = errors.New("candidate not found")
)

// MatchResult is the score for one application plus the per-factor
// breakdown for explainability. Only the score is persisted.
type MatchResult struct {
	ApplicationID uuid.UUID
	JobID         uuid.UUID
	CandidateID   uuid.UUID
	Score         int
	Factors       matching.FactorScores
}

type ApplicationMatchUsecase interface {
	ComputeMatch(ctx context.Context, applicationID uuid.UUID) (MatchResult, error)
}

type ApplicationMatch struct {
	applications repository.ApplicationRepository
	matchData    repository.MatchingRepository
	engine       *matching.Engine
	cache        MatchCache
}

func NewApplicationMatchUsecase(
	applications repository.ApplicationRepository,
	matchData repository.MatchingRepository,
	engine *matching.Engine,
	cache MatchCache,
) *ApplicationMatch {
	return &ApplicationMatch{applications: applications, matchData: matchData, engine: engine, cache: cache}
}

// ComputeMatch scores one application and writes the score back onto it.
// Recomputing is idempotent: the stored score is overwritten, nothing else
// changes.
func (u *ApplicationMatch) ComputeMatch(ctx context.Context, applicationID uuid.UUID) (MatchResult, error) {
	if applicationID == uuid.Nil {
		return MatchResult{}, ErrApplicationNotFound
	}

	app, err := u.applications.FindByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return MatchResult{}, ErrApplicationNotFound
		}
		return MatchResult{}, ErrInternal
	}

	job, err := u.matchData.LoadJobForMatching(ctx, app.JobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return MatchResult{}, ErrJobNotFound
		}
		return MatchResult{}, ErrInternal
	}

	candidate, err := u.matchData.LoadCandidateForMatching(ctx, app.CandidateID)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return MatchResult{}, ErrCandidateNotFound
		}
		return MatchResult{}, ErrInternal
	}

	factors, score := u.engine.Score(matching.Input{
		Job:       jobProfileFromRow(job),
		Candidate: candidateProfileFromRow(candidate),
	})

	if err := u.applications.PersistScore(ctx, app.ID, score); err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return MatchResult{}, ErrApplicationNotFound
		}
		return MatchResult{}, ErrInternal
	}

	if u.cache != nil {
		// The candidate now has an application against this job; cached
		// recommendation pages may still list it.
		_ = u.cache.DeleteByPattern(ctx, "recs:candidate:"+app.CandidateID.String()+":*")
	}

	return MatchResult{
		ApplicationID: app.ID,
		JobID:         app.JobID,
		CandidateID:   app.CandidateID,
		Score:         score,
		Factors:       factors,
	}, nil
}
