package repository

import (
	"context"
	"errors"

	"talent-match/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrApplicationNotFound = errors.New("application not found")

type Application struct {
	ID          uuid.UUID
	JobID       uuid.UUID
	CandidateID uuid.UUID
	MatchScore  *int
}

type ApplicationRepository interface {
	FindByID(ctx context.Context, applicationID uuid.UUID) (Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]Application, error)
	HasApplied(ctx context.Context, jobID, candidateID uuid.UUID) (bool, error)
	PersistScore(ctx context.Context, applicationID uuid.UUID, score int) error
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) FindByID(ctx context.Context, applicationID uuid.UUID) (Application, error) {
	var a Application
	row := r.db.QueryRow(ctx,
		`SELECT id, job_id, candidate_id, match_score FROM applications WHERE id = $1`,
		applicationID,
	)
	if err := row.Scan(&a.ID, &a.JobID, &a.CandidateID, &a.MatchScore); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Application{}, ErrApplicationNotFound
		}
		return Application{}, err
	}
	return a, nil
}

func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, job_id, candidate_id, match_score
		 FROM applications
		 WHERE job_id = $1
		 ORDER BY created_at ASC`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Application, 0)
	for rows.Next() {
		var a Application
		if err := rows.Scan(&a.ID, &a.JobID, &a.CandidateID, &a.MatchScore); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) HasApplied(ctx context.Context, jobID, candidateID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND candidate_id = $2)`,
		jobID, candidateID,
	)
	if err := row.Scan(&exists); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return exists, nil
}

// PersistScore overwrites the application's stored score. Scores are derived
// fresh on every computation, so a plain last-writer-wins UPDATE is enough.
func (r *PostgresApplicationRepository) PersistScore(ctx context.Context, applicationID uuid.UUID, score int) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE applications SET match_score = $2, match_scored_at = now() WHERE id = $1`,
		applicationID, score,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
