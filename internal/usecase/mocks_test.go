package usecase

import (
	"context"
	"sync"
	"time"

	"talent-match/internal/repository"

	"github.com/google/uuid"
)

type mockMatchingRepo struct {
	jobs       map[uuid.UUID]repository.JobMatchRow
	candidates map[uuid.UUID]repository.CandidateMatchRow
	eligible   []repository.CandidateMatchRow
	activeJobs []repository.JobMatchRow
	err        error
}

func (m *mockMatchingRepo) LoadJobForMatching(_ context.Context, jobID uuid.UUID) (repository.JobMatchRow, error) {
	if m.err != nil {
		return repository.JobMatchRow{}, m.err
	}
	j, ok := m.jobs[jobID]
	if !ok {
		return repository.JobMatchRow{}, repository.ErrJobNotFound
	}
	return j, nil
}

func (m *mockMatchingRepo) LoadCandidateForMatching(_ context.Context, candidateID uuid.UUID) (repository.CandidateMatchRow, error) {
	if m.err != nil {
		return repository.CandidateMatchRow{}, m.err
	}
	c, ok := m.candidates[candidateID]
	if !ok {
		return repository.CandidateMatchRow{}, repository.ErrCandidateNotFound
	}
	return c, nil
}

func (m *mockMatchingRepo) EnumerateEligibleCandidates(context.Context) ([]repository.CandidateMatchRow, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.eligible, nil
}

func (m *mockMatchingRepo) EnumerateActiveJobs(context.Context, int) ([]repository.JobMatchRow, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.activeJobs, nil
}

type mockApplicationRepo struct {
	mu        sync.Mutex
	apps      map[uuid.UUID]repository.Application
	applied   map[uuid.UUID]map[uuid.UUID]bool
	persisted map[uuid.UUID]int
	err       error
}

func newMockApplicationRepo() *mockApplicationRepo {
	return &mockApplicationRepo{
		apps:      map[uuid.UUID]repository.Application{},
		applied:   map[uuid.UUID]map[uuid.UUID]bool{},
		persisted: map[uuid.UUID]int{},
	}
}

func (m *mockApplicationRepo) FindByID(_ context.Context, applicationID uuid.UUID) (repository.Application, error) {
	if m.err != nil {
		return repository.Application{}, m.err
	}
	a, ok := m.apps[applicationID]
	if !ok {
		return repository.Application{}, repository.ErrApplicationNotFound
	}
	return a, nil
}

func (m *mockApplicationRepo) ListByJob(_ context.Context, jobID uuid.UUID) ([]repository.Application, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]repository.Application, 0)
	for _, a := range m.apps {
		if a.JobID == jobID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockApplicationRepo) HasApplied(_ context.Context, jobID, candidateID uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.applied[jobID][candidateID], nil
}

func (m *mockApplicationRepo) PersistScore(_ context.Context, applicationID uuid.UUID, score int) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.apps[applicationID]; !ok {
		return repository.ErrApplicationNotFound
	}
	m.persisted[applicationID] = score
	return nil
}

func (m *mockApplicationRepo) persistedScore(applicationID uuid.UUID) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	score, ok := m.persisted[applicationID]
	return score, ok
}

type mockCache struct {
	mu              sync.Mutex
	entries         map[string][]byte
	sets            int
	gets            int
	deletedPatterns []string
}

func newMockCache() *mockCache {
	return &mockCache{entries: map[string][]byte{}}
}

func (m *mockCache) GetJSON(context.Context, string, any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	return false, nil
}

func (m *mockCache) SetJSON(_ context.Context, key string, _ any, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets++
	m.entries[key] = []byte("x")
	return nil
}

func (m *mockCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func (m *mockCache) DeleteByPattern(_ context.Context, pattern string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletedPatterns = append(m.deletedPatterns, pattern)
	m.entries = map[string][]byte{}
	return nil
}

func (m *mockCache) SetIfNotExists(_ context.Context, key string, _ string, _ time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[key]; ok {
		return false, nil
	}
	m.entries[key] = []byte("1")
	return true, nil
}
