package usecase

import (
	"context"
	"errors"
	"testing"

	"talent-match/internal/domain/matching"
	"talent-match/internal/repository"

	"github.com/google/uuid"
)

func strongPair() (repository.JobMatchRow, repository.CandidateMatchRow) {
	skillID := uuid.New()
	min := 90000
	max := 120000

	job := repository.JobMatchRow{
		ID:              uuid.New(),
		Title:           "Backend Engineer",
		Company:         "Acme",
		ExperienceLevel: string(matching.ExperienceMid),
		SalaryMin:       &min,
		SalaryMax:       &max,
		City:            "Austin",
		State:           "TX",
		IsRemote:        true,
		Skills: []repository.JobSkillRow{
			{SkillID: skillID, SkillName: "Go", IsRequired: true, MinYearsRequired: 2},
		},
	}
	candidate := repository.CandidateMatchRow{
		ID:               uuid.New(),
		FullName:         "Dana Reyes",
		YearsExperience:  4,
		DesiredSalaryMin: &min,
		DesiredSalaryMax: &max,
		City:             "Austin",
		State:            "TX",
		RemotePreference: string(matching.RemoteOnly),
		Availability:     string(matching.AvailabilityImmediately),
		Skills: []repository.CandidateSkillRow{
			{SkillID: skillID, SkillName: "Go", YearsExperience: 4},
		},
	}
	return job, candidate
}

func TestComputeMatchPersistsScore(t *testing.T) {
	job, candidate := strongPair()
	appID := uuid.New()

	apps := newMockApplicationRepo()
	apps.apps[appID] = repository.Application{ID: appID, JobID: job.ID, CandidateID: candidate.ID}
	matchData := &mockMatchingRepo{
		jobs:       map[uuid.UUID]repository.JobMatchRow{job.ID: job},
		candidates: map[uuid.UUID]repository.CandidateMatchRow{candidate.ID: candidate},
	}

	uc := NewApplicationMatchUsecase(apps, matchData, matching.NewEngine(matching.DefaultWeights()), nil)
	result, err := uc.ComputeMatch(context.Background(), appID)
	if err != nil {
		t.Fatalf("ComputeMatch: %v", err)
	}

	if result.Score != 99 {
		t.Fatalf("score = %d, want 99", result.Score)
	}
	if result.ApplicationID != appID || result.JobID != job.ID || result.CandidateID != candidate.ID {
		t.Fatalf("result identifies wrong rows: %+v", result)
	}

	persisted, ok := apps.persistedScore(appID)
	if !ok {
		t.Fatal("score was not persisted")
	}
	if persisted != result.Score {
		t.Fatalf("persisted score = %d, returned %d", persisted, result.Score)
	}
}

func TestComputeMatchIsIdempotent(t *testing.T) {
	job, candidate := strongPair()
	appID := uuid.New()

	apps := newMockApplicationRepo()
	apps.apps[appID] = repository.Application{ID: appID, JobID: job.ID, CandidateID: candidate.ID}
	matchData := &mockMatchingRepo{
		jobs:       map[uuid.UUID]repository.JobMatchRow{job.ID: job},
		candidates: map[uuid.UUID]repository.CandidateMatchRow{candidate.ID: candidate},
	}

	uc := NewApplicationMatchUsecase(apps, matchData, matching.NewEngine(matching.DefaultWeights()), nil)
	first, err := uc.ComputeMatch(context.Background(), appID)
	if err != nil {
		t.Fatalf("first ComputeMatch: %v", err)
	}
	second, err := uc.ComputeMatch(context.Background(), appID)
	if err != nil {
		t.Fatalf("second ComputeMatch: %v", err)
	}
	if first.Score != second.Score {
		t.Fatalf("scores differ across recomputes: %d vs %d", first.Score, second.Score)
	}
}

func TestComputeMatchInvalidatesCandidateRecommendations(t *testing.T) {
	job, candidate := strongPair()
	appID := uuid.New()

	apps := newMockApplicationRepo()
	apps.apps[appID] = repository.Application{ID: appID, JobID: job.ID, CandidateID: candidate.ID}
	matchData := &mockMatchingRepo{
		jobs:       map[uuid.UUID]repository.JobMatchRow{job.ID: job},
		candidates: map[uuid.UUID]repository.CandidateMatchRow{candidate.ID: candidate},
	}
	cache := newMockCache()

	uc := NewApplicationMatchUsecase(apps, matchData, matching.NewEngine(matching.DefaultWeights()), cache)
	if _, err := uc.ComputeMatch(context.Background(), appID); err != nil {
		t.Fatalf("ComputeMatch: %v", err)
	}

	want := "recs:candidate:" + candidate.ID.String() + ":*"
	found := false
	for _, p := range cache.deletedPatterns {
		if p == want {
			found = true
		}
	}
	if !found {
		t.Fatalf("cached recommendations not invalidated, deletes = %v", cache.deletedPatterns)
	}
}

func TestComputeMatchUnknownApplication(t *testing.T) {
	uc := NewApplicationMatchUsecase(newMockApplicationRepo(), &mockMatchingRepo{}, matching.NewEngine(matching.DefaultWeights()), nil)

	if _, err := uc.ComputeMatch(context.Background(), uuid.New()); !errors.Is(err, ErrApplicationNotFound) {
		t.Fatalf("err = %v, want ErrApplicationNotFound", err)
	}
	if _, err := uc.ComputeMatch(context.Background(), uuid.Nil); !errors.Is(err, ErrApplicationNotFound) {
		t.Fatalf("nil id err = %v, want ErrApplicationNotFound", err)
	}
}

func TestComputeMatchMissingJobAndCandidate(t *testing.T) {
	job, candidate := strongPair()
	appID := uuid.New()

	apps := newMockApplicationRepo()
	apps.apps[appID] = repository.Application{ID: appID, JobID: job.ID, CandidateID: candidate.ID}

	uc := NewApplicationMatchUsecase(apps, &mockMatchingRepo{
		jobs:       map[uuid.UUID]repository.JobMatchRow{},
		candidates: map[uuid.UUID]repository.CandidateMatchRow{candidate.ID: candidate},
	}, matching.NewEngine(matching.DefaultWeights()), nil)
	if _, err := uc.ComputeMatch(context.Background(), appID); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("err = %v, want ErrJobNotFound", err)
	}

	uc = NewApplicationMatchUsecase(apps, &mockMatchingRepo{
		jobs:       map[uuid.UUID]repository.JobMatchRow{job.ID: job},
		candidates: map[uuid.UUID]repository.CandidateMatchRow{},
	}, matching.NewEngine(matching.DefaultWeights()), nil)
	if _, err := uc.ComputeMatch(context.Background(), appID); !errors.Is(err, ErrCandidateNotFound) {
		t.Fatalf("err = %v, want ErrCandidateNotFound", err)
	}
}

func TestComputeMatchRepositoryFailure(t *testing.T) {
	job, candidate := strongPair()
	appID := uuid.New()

	apps := newMockApplicationRepo()
	apps.apps[appID] = repository.Application{ID: appID, JobID: job.ID, CandidateID: candidate.ID}
	apps.err = errors.New("connection reset")

	uc := NewApplicationMatchUsecase(apps, &mockMatchingRepo{}, matching.NewEngine(matching.DefaultWeights()), nil)
	if _, err := uc.ComputeMatch(context.Background(), appID); !errors.Is(err, ErrInternal) {
		t.Fatalf("err = %v, want ErrInternal", err)
	}
}
