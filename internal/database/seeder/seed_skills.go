package seeder

import (
	"context"
	"fmt"

	"talent-match/internal/database"
)

// SkillsSeeder seeds the baseline skill taxonomy referenced by job
// requirements and candidate profiles.
type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	names := []string{
		"Go", "JavaScript", "TypeScript", "Python", "Java",
		"React", "Node.js", "PostgreSQL", "Redis", "Docker",
		"Kubernetes", "AWS", "GCP", "Terraform", "GraphQL",
	}

	for _, name := range names {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO skills (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`,
			name,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
