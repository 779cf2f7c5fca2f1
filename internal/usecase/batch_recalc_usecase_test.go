package usecase

import (
	"context"
	"errors"
	"testing"

	"talent-match/internal/domain/matching"
	"talent-match/internal/repository"

	"github.com/google/uuid"
)

func TestRecalculateJobScoresAllApplications(t *testing.T) {
	job, candidate := strongPair()
	matchData := &mockMatchingRepo{
		jobs:       map[uuid.UUID]repository.JobMatchRow{job.ID: job},
		candidates: map[uuid.UUID]repository.CandidateMatchRow{candidate.ID: candidate},
	}

	apps := newMockApplicationRepo()
	appIDs := make([]uuid.UUID, 0, 5)
	for i := 0; i < 5; i++ {
		id := uuid.New()
		apps.apps[id] = repository.Application{ID: id, JobID: job.ID, CandidateID: candidate.ID}
		appIDs = append(appIDs, id)
	}

	uc := NewBatchRecalcUsecase(apps, matchData, matching.NewEngine(matching.DefaultWeights()), nil, 3, nil)
	summary, err := uc.RecalculateJob(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("RecalculateJob: %v", err)
	}

	if summary.Applications != 5 || summary.Scored != 5 || summary.Failed != 0 {
		t.Fatalf("summary = %+v, want 5 applications all scored", summary)
	}
	for _, id := range appIDs {
		score, ok := apps.persistedScore(id)
		if !ok {
			t.Fatalf("application %s has no persisted score", id)
		}
		if score != 99 {
			t.Fatalf("application %s score = %d, want 99", id, score)
		}
	}
}

func TestRecalculateJobCountsFailures(t *testing.T) {
	job, candidate := strongPair()
	orphanID := uuid.New()
	matchData := &mockMatchingRepo{
		jobs:       map[uuid.UUID]repository.JobMatchRow{job.ID: job},
		candidates: map[uuid.UUID]repository.CandidateMatchRow{candidate.ID: candidate},
	}

	apps := newMockApplicationRepo()
	okID := uuid.New()
	apps.apps[okID] = repository.Application{ID: okID, JobID: job.ID, CandidateID: candidate.ID}
	brokenID := uuid.New()
	apps.apps[brokenID] = repository.Application{ID: brokenID, JobID: job.ID, CandidateID: orphanID}

	uc := NewBatchRecalcUsecase(apps, matchData, matching.NewEngine(matching.DefaultWeights()), nil, 2, nil)
	summary, err := uc.RecalculateJob(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("RecalculateJob: %v", err)
	}

	if summary.Scored != 1 || summary.Failed != 1 {
		t.Fatalf("summary = %+v, want 1 scored and 1 failed", summary)
	}
	if _, ok := apps.persistedScore(okID); !ok {
		t.Fatal("healthy application was not scored")
	}
	if _, ok := apps.persistedScore(brokenID); ok {
		t.Fatal("application with missing candidate should not have a score")
	}
}

func TestRecalculateJobLockBlocksConcurrentRun(t *testing.T) {
	job, candidate := strongPair()
	matchData := &mockMatchingRepo{
		jobs:       map[uuid.UUID]repository.JobMatchRow{job.ID: job},
		candidates: map[uuid.UUID]repository.CandidateMatchRow{candidate.ID: candidate},
	}
	cache := newMockCache()

	// Simulate a run in flight by pre-seeding the lock key.
	lockKey := "recalc:lock:job:" + job.ID.String()
	if acquired, _ := cache.SetIfNotExists(context.Background(), lockKey, "1", recalcLockTTL); !acquired {
		t.Fatal("could not seed lock")
	}

	uc := NewBatchRecalcUsecase(newMockApplicationRepo(), matchData, matching.NewEngine(matching.DefaultWeights()), cache, 2, nil)
	if _, err := uc.RecalculateJob(context.Background(), job.ID); !errors.Is(err, ErrRecalcInProgress) {
		t.Fatalf("err = %v, want ErrRecalcInProgress", err)
	}
}

func TestRecalculateJobReleasesLock(t *testing.T) {
	job, candidate := strongPair()
	matchData := &mockMatchingRepo{
		jobs:       map[uuid.UUID]repository.JobMatchRow{job.ID: job},
		candidates: map[uuid.UUID]repository.CandidateMatchRow{candidate.ID: candidate},
	}
	cache := newMockCache()

	uc := NewBatchRecalcUsecase(newMockApplicationRepo(), matchData, matching.NewEngine(matching.DefaultWeights()), cache, 2, nil)
	if _, err := uc.RecalculateJob(context.Background(), job.ID); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if _, err := uc.RecalculateJob(context.Background(), job.ID); err != nil {
		t.Fatalf("second run after release: %v", err)
	}
}

func TestRecalculateJobUnknownJob(t *testing.T) {
	uc := NewBatchRecalcUsecase(newMockApplicationRepo(), &mockMatchingRepo{}, matching.NewEngine(matching.DefaultWeights()), nil, 2, nil)

	if _, err := uc.RecalculateJob(context.Background(), uuid.New()); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("err = %v, want ErrJobNotFound", err)
	}
	if _, err := uc.RecalculateJob(context.Background(), uuid.Nil); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("nil id err = %v, want ErrJobNotFound", err)
	}
}
