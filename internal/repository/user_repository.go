package repository

import (
	"context"
	"errors"
	"strings"

	"talent-match/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrUserNotFound = errors.New("user not found")

const (
	RoleRecruiter = "recruiter"
	RoleCandidate = "candidate"
)

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (User, error)
	FindCandidateIDByUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
}

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var u User
	row := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, COALESCE(role, '') FROM users WHERE lower(email) = $1`,
		email,
	)
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrUserNotFound
		}
		return User{}, err
	}
	return u, nil
}

// FindCandidateIDByUser resolves the candidate profile owned by a user
// account.
func (r *PostgresUserRepository) FindCandidateIDByUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	var candidateID uuid.UUID
	row := r.db.QueryRow(ctx,
		`SELECT id FROM candidates WHERE user_id = $1`,
		userID,
	)
	if err := row.Scan(&candidateID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, ErrCandidateNotFound
		}
		return uuid.Nil, err
	}
	return candidateID, nil
}
