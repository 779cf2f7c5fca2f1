package seeder

import (
	"context"
	"log"

	"talent-match/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

func RunAll(ctx context.Context, db database.DB, logger *log.Logger) error {
	seeders := []Seeder{
		SkillsSeeder{},
	}

	for _, s := range seeders {
		if err := s.Run(ctx, db); err != nil {
			return err
		}
		if logger != nil {
			logger.Printf("seeder done | name=%s", s.Name())
		}
	}
	return nil
}
