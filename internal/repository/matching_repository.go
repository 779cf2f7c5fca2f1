package repository

import (
	"context"
	"errors"

	"talent-match/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrJobNotFound       = errors.New("job not found")
	ErrCandidateNotFound = errors.New("candidate not found")
)

type JobSkillRow struct {
	SkillID          uuid.UUID
	SkillName        string
	IsRequired       bool
	MinYearsRequired int
}

type JobMatchRow struct {
	ID              uuid.UUID
	Title           string
	Company         string
	ExperienceLevel string
	SalaryMin       *int
	SalaryMax       *int
	City            string
	State           string
	IsRemote        bool
	Skills          []JobSkillRow
}

type CandidateSkillRow struct {
	SkillID         uuid.UUID
	SkillName       string
	YearsExperience int
}

type CandidateMatchRow struct {
	ID                uuid.UUID
	FullName          string
	YearsExperience   int
	DesiredSalaryMin  *int
	DesiredSalaryMax  *int
	City              string
	State             string
	WillingToRelocate bool
	RemotePreference  string
	Availability      string
	Skills            []CandidateSkillRow
}

// MatchingRepository loads the read-only snapshots the scoring engine
// consumes. Skills come back pre-attached so the engine never goes back to
// the database per pair.
type MatchingRepository interface {
	LoadJobForMatching(ctx context.Context, jobID uuid.UUID) (JobMatchRow, error)
	LoadCandidateForMatching(ctx context.Context, candidateID uuid.UUID) (CandidateMatchRow, error)
	EnumerateEligibleCandidates(ctx context.Context) ([]CandidateMatchRow, error)
	EnumerateActiveJobs(ctx context.Context, limit int) ([]JobMatchRow, error)
}

type PostgresMatchingRepository struct {
	db database.DB
}

func NewPostgresMatchingRepository(db database.DB) *PostgresMatchingRepository {
	return &PostgresMatchingRepository{db: db}
}

func (r *PostgresMatchingRepository) LoadJobForMatching(ctx context.Context, jobID uuid.UUID) (JobMatchRow, error) {
	var job JobMatchRow
	row := r.db.QueryRow(ctx,
		`SELECT id, COALESCE(title, ''), COALESCE(company, ''), COALESCE(experience_level, ''),
		        salary_min, salary_max, COALESCE(city, ''), COALESCE(state, ''), is_remote
		 FROM jobs
		 WHERE id = $1`,
		jobID,
	)
	if err := row.Scan(
		&job.ID, &job.Title, &job.Company, &job.ExperienceLevel,
		&job.SalaryMin, &job.SalaryMax, &job.City, &job.State, &job.IsRemote,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return JobMatchRow{}, ErrJobNotFound
		}
		return JobMatchRow{}, err
	}

	skillsByJob, err := r.jobSkillsByJobIDs(ctx, []uuid.UUID{job.ID})
	if err != nil {
		return JobMatchRow{}, err
	}
	job.Skills = skillsByJob[job.ID]
	return job, nil
}

func (r *PostgresMatchingRepository) LoadCandidateForMatching(ctx context.Context, candidateID uuid.UUID) (CandidateMatchRow, error) {
	var c CandidateMatchRow
	row := r.db.QueryRow(ctx,
		`SELECT id, COALESCE(full_name, ''), GREATEST(years_experience, 0),
		        desired_salary_min, desired_salary_max,
		        COALESCE(city, ''), COALESCE(state, ''), willing_to_relocate,
		        COALESCE(remote_preference, ''), COALESCE(availability, '')
		 FROM candidates
		 WHERE id = $1`,
		candidateID,
	)
	if err := row.Scan(
		&c.ID, &c.FullName, &c.YearsExperience,
		&c.DesiredSalaryMin, &c.DesiredSalaryMax,
		&c.City, &c.State, &c.WillingToRelocate,
		&c.RemotePreference, &c.Availability,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return CandidateMatchRow{}, ErrCandidateNotFound
		}
		return CandidateMatchRow{}, err
	}

	skillsByCandidate, err := r.candidateSkillsByCandidateIDs(ctx, []uuid.UUID{c.ID})
	if err != nil {
		return CandidateMatchRow{}, err
	}
	c.Skills = skillsByCandidate[c.ID]
	return c, nil
}

// EnumerateEligibleCandidates returns every candidate eligible for ranking.
// Eligibility is a query predicate, not scoring logic: active, verified and
// not opted out of the market.
func (r *PostgresMatchingRepository) EnumerateEligibleCandidates(ctx context.Context) ([]CandidateMatchRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, COALESCE(full_name, ''), GREATEST(years_experience, 0),
		        desired_salary_min, desired_salary_max,
		        COALESCE(city, ''), COALESCE(state, ''), willing_to_relocate,
		        COALESCE(remote_preference, ''), COALESCE(availability, '')
		 FROM candidates
		 WHERE is_active = TRUE
		   AND is_verified = TRUE
		   AND availability <> 'not_looking'
		 ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CandidateMatchRow, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var c CandidateMatchRow
		if err := rows.Scan(
			&c.ID, &c.FullName, &c.YearsExperience,
			&c.DesiredSalaryMin, &c.DesiredSalaryMax,
			&c.City, &c.State, &c.WillingToRelocate,
			&c.RemotePreference, &c.Availability,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
		ids = append(ids, c.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	skillsByCandidate, err := r.candidateSkillsByCandidateIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Skills = skillsByCandidate[out[i].ID]
	}
	return out, nil
}

// EnumerateActiveJobs returns the most recent open jobs whose deadline has
// not passed, capped at limit. This is the recommendation candidate pool.
func (r *PostgresMatchingRepository) EnumerateActiveJobs(ctx context.Context, limit int) ([]JobMatchRow, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, COALESCE(title, ''), COALESCE(company, ''), COALESCE(experience_level, ''),
		        salary_min, salary_max, COALESCE(city, ''), COALESCE(state, ''), is_remote
		 FROM jobs
		 WHERE status = 'open'
		   AND (application_deadline IS NULL OR application_deadline > now())
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]JobMatchRow, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var j JobMatchRow
		if err := rows.Scan(
			&j.ID, &j.Title, &j.Company, &j.ExperienceLevel,
			&j.SalaryMin, &j.SalaryMax, &j.City, &j.State, &j.IsRemote,
		); err != nil {
			return nil, err
		}
		out = append(out, j)
		ids = append(ids, j.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	skillsByJob, err := r.jobSkillsByJobIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Skills = skillsByJob[out[i].ID]
	}
	return out, nil
}

func (r *PostgresMatchingRepository) jobSkillsByJobIDs(ctx context.Context, jobIDs []uuid.UUID) (map[uuid.UUID][]JobSkillRow, error) {
	out := make(map[uuid.UUID][]JobSkillRow, len(jobIDs))
	if len(jobIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT jsr.job_id, jsr.skill_id, s.name, jsr.is_required, GREATEST(jsr.min_years_required, 0)
		 FROM job_skill_requirements jsr
		 JOIN skills s ON s.id = jsr.skill_id
		 WHERE jsr.job_id = ANY($1)
		 ORDER BY s.name ASC`,
		jobIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var jobID uuid.UUID
		var it JobSkillRow
		if err := rows.Scan(&jobID, &it.SkillID, &it.SkillName, &it.IsRequired, &it.MinYearsRequired); err != nil {
			return nil, err
		}
		out[jobID] = append(out[jobID], it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresMatchingRepository) candidateSkillsByCandidateIDs(ctx context.Context, candidateIDs []uuid.UUID) (map[uuid.UUID][]CandidateSkillRow, error) {
	out := make(map[uuid.UUID][]CandidateSkillRow, len(candidateIDs))
	if len(candidateIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT cs.candidate_id, cs.skill_id, s.name, GREATEST(cs.years_experience, 0)
		 FROM candidate_skills cs
		 JOIN skills s ON s.id = cs.skill_id
		 WHERE cs.candidate_id = ANY($1)
		 ORDER BY s.name ASC`,
		candidateIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var candidateID uuid.UUID
		var it CandidateSkillRow
		if err := rows.Scan(&candidateID, &it.SkillID, &it.SkillName, &it.YearsExperience); err != nil {
			return nil, err
		}
		out[candidateID] = append(out[candidateID], it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
