package repository

import (
	"context"

	"hireall/internal/database"
)

type SourceSummary struct {
	Source string `json:"source"`
	Jobs   int    `json:"jobs"`
}

type PipelineSummary struct {
	TotalJobs         int             `json:"total_jobs"`
	ClassifiedJobs    int             `json:"classified_jobs"`
	AverageConfidence float64         `json:"average_confidence"`
	ResumesParsed     int             `json:"resumes_parsed"`
	BySource          []SourceSummary `json:"by_source"`
}

type StatsRepository interface {
	GetPipelineSummary(ctx context.Context) (PipelineSummary, error)
}

type PostgresStatsRepository struct {
	db database.DB
}

func NewPostgresStatsRepository(db database.DB) *PostgresStatsRepository {
	return &PostgresStatsRepository{db: db}
}

func (r *PostgresStatsRepository) GetPipelineSummary(ctx context.Context) (PipelineSummary, error) {
	var out PipelineSummary

	row := r.db.QueryRow(ctx,
		`SELECT COUNT(1),
			COALESCE(COUNT(1) FILTER (WHERE soc_code IS NOT NULL), 0),
			COALESCE(AVG(soc_confidence) FILTER (WHERE soc_confidence IS NOT NULL), 0)
		 FROM jobs`,
	)
	if err := row.Scan(&out.TotalJobs, &out.ClassifiedJobs, &out.AverageConfidence); err != nil {
		return PipelineSummary{}, err
	}

	row = r.db.QueryRow(ctx, `SELECT COUNT(1) FROM resumes`)
	if err := row.Scan(&out.ResumesParsed); err != nil {
		return PipelineSummary{}, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT source, COUNT(1)
		 FROM jobs
		 WHERE source <> ''
		 GROUP BY source
		 ORDER BY COUNT(1) DESC`,
	)
	if err != nil {
		return PipelineSummary{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var s SourceSummary
		if err := rows.Scan(&s.Source, &s.Jobs); err != nil {
			return PipelineSummary{}, err
		}
		out.BySource = append(out.BySource, s)
	}
	if err := rows.Err(); err != nil {
		return PipelineSummary{}, err
	}
	return out, nil
}
