package seeder

import (
	"context"
	"fmt"

	"hireall/internal/database"
	"hireall/internal/logger"
)

type Runner struct {
	Seeders []Seeder
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		logger.Info().Str("seeder", s.Name()).Msg("seed completed")
	}
	return nil
}
