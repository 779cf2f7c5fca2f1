package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"talent-match/internal/domain/matching"
	"talent-match/internal/pkg/workerpool"
	"talent-match/internal/repository"
	"talent-match/internal/ws"

	"github.com/google/uuid"
)

var ErrRecalcInProgress = errors.New("recalculation already in progress")

const recalcLockTTL = 5 * time.Minute

type RecalcSummary struct {
	JobID        uuid.UUID
	Applications int
	Scored       int
	Failed       int
}

type BatchRecalcUsecase interface {
	RecalculateJob(ctx context.Context, jobID uuid.UUID) (RecalcSummary, error)
}

type BatchRecalc struct {
	applications repository.ApplicationRepository
	matchData    repository.MatchingRepository
	engine       *matching.Engine
	cache        MatchCache
	workers      int
	logger       *log.Logger
}

func NewBatchRecalcUsecase(
	applications repository.ApplicationRepository,
	matchData repository.MatchingRepository,
	engine *matching.Engine,
	cache MatchCache,
	workers int,
	logger *log.Logger,
) *BatchRecalc {
	if workers <= 0 {
		workers = 1
	}
	return &BatchRecalc{
		applications: applications,
		matchData:    matchData,
		engine:       engine,
		cache:        cache,
		workers:      workers,
		logger:       logger,
	}
}

// RecalculateJob recomputes and persists the score of every application to
// one job. Pairs are scored concurrently on a bounded pool; each write is
// an independent last-writer-wins update, so partial failure leaves the
// remaining applications with their previous scores.
func (u *BatchRecalc) RecalculateJob(ctx context.Context, jobID uuid.UUID) (RecalcSummary, error) {
	if jobID == uuid.Nil {
		return RecalcSummary{}, ErrJobNotFound
	}

	if u.cache != nil {
		lockKey := "recalc:lock:job:" + jobID.String()
		acquired, err := u.cache.SetIfNotExists(ctx, lockKey, "1", recalcLockTTL)
		if err == nil && !acquired {
			return RecalcSummary{}, ErrRecalcInProgress
		}
		defer func() {
			_ = u.cache.Delete(context.Background(), lockKey)
		}()
	}

	job, err := u.matchData.LoadJobForMatching(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return RecalcSummary{}, ErrJobNotFound
		}
		return RecalcSummary{}, ErrInternal
	}
	jobProfile := jobProfileFromRow(job)

	apps, err := u.applications.ListByJob(ctx, jobID)
	if err != nil {
		return RecalcSummary{}, ErrInternal
	}

	summary := RecalcSummary{JobID: jobID, Applications: len(apps)}
	if len(apps) == 0 {
		return summary, nil
	}

	pool := workerpool.New(u.workers, len(apps))
	results := pool.Run(ctx)

	for _, app := range apps {
		app := app
		pool.Submit(func(taskCtx context.Context) error {
			candidate, err := u.matchData.LoadCandidateForMatching(taskCtx, app.CandidateID)
			if err != nil {
				return err
			}
			_, score := u.engine.Score(matching.Input{
				Job:       jobProfile,
				Candidate: candidateProfileFromRow(candidate),
			})
			return u.applications.PersistScore(taskCtx, app.ID, score)
		})
	}
	pool.Close()

	for res := range results {
		if res.Err != nil {
			summary.Failed++
			if u.logger != nil {
				u.logger.Printf("recalc pair failed | job=%s err=%v", jobID, res.Err)
			}
			continue
		}
		summary.Scored++
	}

	if u.cache != nil {
		// Stored scores moved; cached recommendation pages are stale.
		_ = u.cache.DeleteByPattern(ctx, "recs:candidate:*")
	}

	ws.NotifyScoresRecalculated(jobID, summary.Scored)

	return summary, nil
}
