package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"talent-match/internal/domain/matching"
	"talent-match/internal/repository"

	"github.com/google/uuid"
)

const (
	// minRecommendScore is stricter than the ranking cutoff: a weak
	// recommendation wastes a candidate's attention.
	minRecommendScore = 60

	// recommendationPoolSize bounds how many recent open jobs one
	// recommendation pass considers.
	recommendationPoolSize = 100

	defaultRecommendLimit = 20
	maxRecommendLimit     = 50
)

type JobScore struct {
	JobID   uuid.UUID `json:"job_id"`
	Title   string    `json:"title"`
	Company string    `json:"company"`
	Score   int       `json:"score"`
}

type JobRecommendationUsecase interface {
	GetRecommendations(ctx context.Context, candidateID uuid.UUID, limit int) ([]JobScore, error)
}

type JobRecommendation struct {
	matchData    repository.MatchingRepository
	applications repository.ApplicationRepository
	engine       *matching.Engine
	cache        MatchCache
	cacheTTL     time.Duration
	logger       *log.Logger
}

func NewJobRecommendationUsecase(
	matchData repository.MatchingRepository,
	applications repository.ApplicationRepository,
	engine *matching.Engine,
	cache MatchCache,
	cacheTTL time.Duration,
	logger *log.Logger,
) *JobRecommendation {
	return &JobRecommendation{
		matchData:    matchData,
		applications: applications,
		engine:       engine,
		cache:        cache,
		cacheTTL:     cacheTTL,
		logger:       logger,
	}
}

// GetRecommendations ranks recent open jobs for one candidate. Jobs the
// candidate already applied to never appear. Only the skills factor is
// computed precisely here; the remaining factors use the neutral set, since
// the pool pass works from job snapshots without per-pair context.
func (u *JobRecommendation) GetRecommendations(ctx context.Context, candidateID uuid.UUID, limit int) ([]JobScore, error) {
	if candidateID == uuid.Nil {
		return nil, ErrCandidateNotFound
	}

	if limit <= 0 {
		limit = defaultRecommendLimit
	}
	if limit > maxRecommendLimit {
		limit = maxRecommendLimit
	}

	cacheKey := fmt.Sprintf("recs:candidate:%s:limit:%d", candidateID, limit)
	if u.cache != nil {
		var cached []JobScore
		if hit, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	candidate, err := u.matchData.LoadCandidateForMatching(ctx, candidateID)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, ErrInternal
	}
	candidateProfile := candidateProfileFromRow(candidate)

	jobs, err := u.matchData.EnumerateActiveJobs(ctx, recommendationPoolSize)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]JobScore, 0, len(jobs))
	for _, j := range jobs {
		applied, err := u.applications.HasApplied(ctx, j.ID, candidateID)
		if err != nil {
			return nil, ErrInternal
		}
		if applied {
			continue
		}

		factors := matching.NeutralFactors()
		factors.Skills = matching.ScoreSkills(jobProfileFromRow(j), candidateProfile)
		score := u.engine.Aggregate(factors)

		if score < minRecommendScore {
			continue
		}
		out = append(out, JobScore{
			JobID:   j.ID,
			Title:   j.Title,
			Company: j.Company,
			Score:   score,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if len(out) > limit {
		out = out[:limit]
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, out, u.cacheTTL); err != nil && u.logger != nil {
			u.logger.Printf("recommendation cache write failed | candidate=%s err=%v", candidateID, err)
		}
	}

	return out, nil
}
