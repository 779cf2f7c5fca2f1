package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"time"

	"talent-match/internal/app"
	"talent-match/internal/config"
	"talent-match/internal/domain/matching"
	"talent-match/internal/repository"
	"talent-match/internal/usecase"

	"github.com/google/uuid"
)

// Batch driver for score recalculation. With -job it recomputes one job's
// applications; without it, every open job in the pool.
func main() {
	var (
		jobFlag = flag.String("job", "", "job id to recalculate; empty means all open jobs")
		limit   = flag.Int("limit", 100, "maximum open jobs to process when -job is not set")
		timeout = flag.Duration("timeout", 30*time.Minute, "overall run timeout")
	)
	flag.Parse()

	logger := log.Default()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	container, err := app.NewContainer(cfg, logger)
	if err != nil {
		logger.Fatalf("failed to connect: %v", err)
	}
	defer func() {
		if err := container.Close(); err != nil {
			logger.Printf("close error: %v", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	applicationRepo := repository.NewPostgresApplicationRepository(container.DB)
	matchingRepo := repository.NewPostgresMatchingRepository(container.DB)
	engine := matching.NewEngine(matching.DefaultWeights())
	recalc := usecase.NewBatchRecalcUsecase(
		applicationRepo, matchingRepo, engine,
		container.Cache, cfg.Matching.RecalcWorkers, logger,
	)

	jobIDs, err := targetJobs(ctx, matchingRepo, *jobFlag, *limit)
	if err != nil {
		logger.Fatalf("could not resolve target jobs: %v", err)
	}
	if len(jobIDs) == 0 {
		logger.Print("no jobs to recalculate")
		return
	}

	var scored, failed int
	for _, jobID := range jobIDs {
		summary, err := recalc.RecalculateJob(ctx, jobID)
		if err != nil {
			if errors.Is(err, usecase.ErrRecalcInProgress) {
				logger.Printf("skipped, recalc in progress | job=%s", jobID)
				continue
			}
			logger.Printf("recalc failed | job=%s err=%v", jobID, err)
			failed++
			continue
		}
		scored += summary.Scored
		failed += summary.Failed
		logger.Printf("recalc done | job=%s applications=%d scored=%d failed=%d",
			jobID, summary.Applications, summary.Scored, summary.Failed)
	}

	logger.Printf("run complete | jobs=%d scored=%d failed=%d", len(jobIDs), scored, failed)
}

func targetJobs(ctx context.Context, repo repository.MatchingRepository, jobFlag string, limit int) ([]uuid.UUID, error) {
	if jobFlag != "" {
		id, err := uuid.Parse(jobFlag)
		if err != nil {
			return nil, err
		}
		return []uuid.UUID{id}, nil
	}

	jobs, err := repo.EnumerateActiveJobs(ctx, limit)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}
	return ids, nil
}
