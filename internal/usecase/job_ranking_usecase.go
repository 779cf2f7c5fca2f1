package usecase

import (
	"context"
	"errors"
	"sort"

	"talent-match/internal/domain/matching"
	"talent-match/internal/repository"

	"github.com/google/uuid"
)

// minRankScore is the floor below which a candidate is not worth surfacing
// to a recruiter. Compile-time constant so ranking stays deterministic.
const minRankScore = 50

type CandidateScore struct {
	CandidateID uuid.UUID
	FullName    string
	Score       int
	Factors     matching.FactorScores
}

type JobRankingUsecase interface {
	RankCandidates(ctx context.Context, jobID uuid.UUID) ([]CandidateScore, error)
}

type JobRanking struct {
	matchData repository.MatchingRepository
	engine    *matching.Engine
}

func NewJobRankingUsecase(matchData repository.MatchingRepository, engine *matching.Engine) *JobRanking {
	return &JobRanking{matchData: matchData, engine: engine}
}

// RankCandidates scores every eligible candidate against one job and returns
// those at or above the cutoff, best first. Ties keep the repository's
// enumeration order. Truncation is the caller's business, not the ranker's.
func (u *JobRanking) RankCandidates(ctx context.Context, jobID uuid.UUID) ([]CandidateScore, error) {
	if jobID == uuid.Nil {
		return nil, ErrJobNotFound
	}

	job, err := u.matchData.LoadJobForMatching(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, ErrInternal
	}

	candidates, err := u.matchData.EnumerateEligibleCandidates(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	jobProfile := jobProfileFromRow(job)

	out := make([]CandidateScore, 0, len(candidates))
	for _, c := range candidates {
		factors, score := u.engine.Score(matching.Input{
			Job:       jobProfile,
			Candidate: candidateProfileFromRow(c),
		})
		if score < minRankScore {
			continue
		}
		out = append(out, CandidateScore{
			CandidateID: c.ID,
			FullName:    c.FullName,
			Score:       score,
			Factors:     factors,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	return out, nil
}
