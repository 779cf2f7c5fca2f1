package usecase

import (
	"context"
	"errors"
	"testing"

	"talent-match/internal/domain/matching"
	"talent-match/internal/repository"

	"github.com/google/uuid"
)

func rankingFixture() (repository.JobMatchRow, []repository.CandidateMatchRow) {
	goID := uuid.New()
	sqlID := uuid.New()
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
			{SkillID: goID, SkillName: "Go", IsRequired: true, MinYearsRequired: 2},
			{SkillID: sqlID, SkillName: "SQL", IsRequired: false, MinYearsRequired: 1},
		},
	}

	strong := repository.CandidateMatchRow{
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
			{SkillID: goID, SkillName: "Go", YearsExperience: 4},
			{SkillID: sqlID, SkillName: "SQL", YearsExperience: 3},
		},
	}

	partial := strong
	partial.ID = uuid.New()
	partial.FullName = "Sam Ortiz"
	partial.Skills = []repository.CandidateSkillRow{
		{SkillID: goID, SkillName: "Go", YearsExperience: 3},
	}

	// No matching skills at all: the skills factor is 0 and the weighted
	// total lands below the cutoff.
	weak := repository.CandidateMatchRow{
		ID:              uuid.New(),
		FullName:        "Lee Chan",
		YearsExperience: 1,
		Availability:    string(matching.AvailabilityNotLooking),
	}

	return job, []repository.CandidateMatchRow{weak, partial, strong}
}

func TestRankCandidatesSortedAndFiltered(t *testing.T) {
	job, candidates := rankingFixture()
	matchData := &mockMatchingRepo{
		jobs:     map[uuid.UUID]repository.JobMatchRow{job.ID: job},
		eligible: candidates,
	}

	uc := NewJobRankingUsecase(matchData, matching.NewEngine(matching.DefaultWeights()))
	ranked, err := uc.RankCandidates(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("RankCandidates: %v", err)
	}

	if len(ranked) != 2 {
		t.Fatalf("got %d candidates, want 2", len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i-1].Score < ranked[i].Score {
			t.Fatalf("not sorted descending: %d before %d", ranked[i-1].Score, ranked[i].Score)
		}
	}
	if ranked[0].FullName != "Dana Reyes" {
		t.Fatalf("best candidate = %q, want Dana Reyes", ranked[0].FullName)
	}
	for _, cs := range ranked {
		if cs.Score < 50 {
			t.Fatalf("candidate %s below cutoff: %d", cs.CandidateID, cs.Score)
		}
	}
}

func TestRankCandidatesEmptyPool(t *testing.T) {
	job, _ := rankingFixture()
	matchData := &mockMatchingRepo{
		jobs: map[uuid.UUID]repository.JobMatchRow{job.ID: job},
	}

	uc := NewJobRankingUsecase(matchData, matching.NewEngine(matching.DefaultWeights()))
	ranked, err := uc.RankCandidates(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("RankCandidates: %v", err)
	}
	if len(ranked) != 0 {
		t.Fatalf("got %d candidates from empty pool", len(ranked))
	}
}

func TestRankCandidatesUnknownJob(t *testing.T) {
	uc := NewJobRankingUsecase(&mockMatchingRepo{}, matching.NewEngine(matching.DefaultWeights()))

	if _, err := uc.RankCandidates(context.Background(), uuid.New()); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("err = %v, want ErrJobNotFound", err)
	}
	if _, err := uc.RankCandidates(context.Background(), uuid.Nil); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("nil id err = %v, want ErrJobNotFound", err)
	}
}

func TestRankCandidatesRepositoryFailure(t *testing.T) {
	uc := NewJobRankingUsecase(&mockMatchingRepo{err: errors.New("timeout")}, matching.NewEngine(matching.DefaultWeights()))

	if _, err := uc.RankCandidates(context.Background(), uuid.New()); !errors.Is(err, ErrInternal) {
		t.Fatalf("err = %v, want ErrInternal", err)
	}
}
