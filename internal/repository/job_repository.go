package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hireall/internal/database"
	"hireall/internal/posting"
	"hireall/internal/soc"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Upsert(ctx context.Context, rec *posting.JobRecord, source string, match *soc.Match) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (StoredJob, error)
	List(ctx context.Context, limit, offset int) ([]StoredJob, error)
}

// StoredJob is a persisted posting row. SOCCode and SOCConfidence are zero
// when classification found no match.
type StoredJob struct {
	ID            uuid.UUID
	Title         string
	Company       string
	Location      string
	URL           string
	Source        string
	Description   string
	SalaryMin     sql.NullFloat64
	SalaryMax     sql.NullFloat64
	Currency      string
	Period        string
	NormTitle     string
	Keywords      []string
	Skills        []string
	Department    string
	Seniority     string
	Employment    string
	LocationType  string
	SOCCode       string
	SOCConfidence float64
	CreatedAt     time.Time
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

// Upsert keys on the posting URL so repeated scrapes of the same page update
// in place. Postings without a URL always insert.
func (r *PostgresJobRepository) Upsert(ctx context.Context, rec *posting.JobRecord, source string, match *soc.Match) (uuid.UUID, error) {
	if rec == nil {
		return uuid.Nil, errors.New("nil job record")
	}

	var salaryMin, salaryMax sql.NullFloat64
	currency, period := "", ""
	if rec.Salary != nil {
		salaryMin = sql.NullFloat64{Float64: rec.Salary.Min, Valid: true}
		salaryMax = sql.NullFloat64{Float64: rec.Salary.Max, Valid: true}
		currency = rec.Salary.Currency
		period = string(rec.Salary.Period)
	}

	var socCode sql.NullString
	var socConfidence sql.NullFloat64
	if match != nil {
		socCode = sql.NullString{String: match.Code, Valid: true}
		socConfidence = sql.NullFloat64{Float64: match.Confidence, Valid: true}
	}

	var id uuid.UUID
	row := r.db.QueryRow(ctx,
		`INSERT INTO jobs (
			title, company, location, url, source, description, company_size, posted_date,
			salary_min, salary_max, salary_currency, salary_period,
			normalized_title, keywords, skills, requirements, benefits, qualifications,
			department, seniority, employment_type, location_type,
			soc_code, soc_confidence
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18,
			$19, $20, $21, $22,
			$23, $24
		)
		ON CONFLICT (url) WHERE url <> '' DO UPDATE SET
			title = EXCLUDED.title,
			company = EXCLUDED.company,
			location = EXCLUDED.location,
			source = EXCLUDED.source,
			description = EXCLUDED.description,
			company_size = EXCLUDED.company_size,
			posted_date = EXCLUDED.posted_date,
			salary_min = EXCLUDED.salary_min,
			salary_max = EXCLUDED.salary_max,
			salary_currency = EXCLUDED.salary_currency,
			salary_period = EXCLUDED.salary_period,
			normalized_title = EXCLUDED.normalized_title,
			keywords = EXCLUDED.keywords,
			skills = EXCLUDED.skills,
			requirements = EXCLUDED.requirements,
			benefits = EXCLUDED.benefits,
			qualifications = EXCLUDED.qualifications,
			department = EXCLUDED.department,
			seniority = EXCLUDED.seniority,
			employment_type = EXCLUDED.employment_type,
			location_type = EXCLUDED.location_type,
			soc_code = EXCLUDED.soc_code,
			soc_confidence = EXCLUDED.soc_confidence,
			updated_at = now()
		RETURNING id`,
		rec.Title, rec.Company, rec.Location, rec.URL, source, rec.Description, rec.CompanySize, rec.PostedDate,
		salaryMin, salaryMax, currency, period,
		rec.NormalizedTitle, rec.Keywords, rec.Skills, rec.Requirements, rec.Benefits, rec.Qualifications,
		rec.Department, rec.Seniority, rec.EmploymentType, rec.LocationType,
		socCode, socConfidence,
	)
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (StoredJob, error) {
	row := r.db.QueryRow(ctx, selectJob+` WHERE id = $1`, id)
	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return StoredJob{}, ErrJobNotFound
		}
		return StoredJob{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) List(ctx context.Context, limit, offset int) ([]StoredJob, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx, selectJob+` ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]StoredJob, 0, limit)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

const selectJob = `SELECT id, title, company, location, url, source, description,
	salary_min, salary_max, salary_currency, salary_period,
	normalized_title, keywords, skills, department, seniority, employment_type, location_type,
	COALESCE(soc_code, ''), COALESCE(soc_confidence, 0), created_at
 FROM jobs`

type scanner interface {
	Scan(dest ...any) error
}

func scanJob(s scanner) (StoredJob, error) {
	var j StoredJob
	err := s.Scan(
		&j.ID, &j.Title, &j.Company, &j.Location, &j.URL, &j.Source, &j.Description,
		&j.SalaryMin, &j.SalaryMax, &j.Currency, &j.Period,
		&j.NormTitle, &j.Keywords, &j.Skills, &j.Department, &j.Seniority, &j.Employment, &j.LocationType,
		&j.SOCCode, &j.SOCConfidence, &j.CreatedAt,
	)
	return j, err
}
