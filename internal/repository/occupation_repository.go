package repository

import (
	"context"

	"hireall/internal/database"
	"hireall/internal/soc"
)

type OccupationRepository interface {
	ListAll(ctx context.Context) ([]soc.OccupationCode, error)
}

type PostgresOccupationRepository struct {
	db database.DB
}

func NewPostgresOccupationRepository(db database.DB) *PostgresOccupationRepository {
	return &PostgresOccupationRepository{db: db}
}

func (r *PostgresOccupationRepository) ListAll(ctx context.Context) ([]soc.OccupationCode, error) {
	rows, err := r.db.Query(ctx,
		`SELECT code, title, related_titles, COALESCE(eligibility_note, '')
		 FROM occupation_codes
		 ORDER BY code`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]soc.OccupationCode, 0, 64)
	for rows.Next() {
		var e soc.OccupationCode
		if err := rows.Scan(&e.Code, &e.Title, &e.RelatedTitles, &e.EligibilityNote); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
