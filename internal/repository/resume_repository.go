package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"hireall/internal/database"
	"hireall/internal/resume"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrResumeNotFound = errors.New("resume not found")

type ResumeRepository interface {
	Insert(ctx context.Context, userID uuid.UUID, result resume.ParseResult) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (StoredResume, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]StoredResume, error)
}

type StoredResume struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Parsed          resume.ParseResult
	ParseConfidence int
	WordCount       int
	CreatedAt       time.Time
}

type PostgresResumeRepository struct {
	db database.DB
}

func NewPostgresResumeRepository(db database.DB) *PostgresResumeRepository {
	return &PostgresResumeRepository{db: db}
}

func (r *PostgresResumeRepository) Insert(ctx context.Context, userID uuid.UUID, result resume.ParseResult) (uuid.UUID, error) {
	parsed, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	row := r.db.QueryRow(ctx,
		`INSERT INTO resumes (user_id, raw_text, parsed, parse_confidence, word_count)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		userID, result.RawText, parsed, result.ParseConfidence, result.WordCount,
	)
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *PostgresResumeRepository) GetByID(ctx context.Context, id uuid.UUID) (StoredResume, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, parsed, parse_confidence, word_count, created_at
		 FROM resumes WHERE id = $1`,
		id,
	)
	sr, err := scanResume(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return StoredResume{}, ErrResumeNotFound
		}
		return StoredResume{}, err
	}
	return sr, nil
}

func (r *PostgresResumeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]StoredResume, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, parsed, parse_confidence, word_count, created_at
		 FROM resumes WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]StoredResume, 0, 4)
	for rows.Next() {
		sr, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanResume(s scanner) (StoredResume, error) {
	var sr StoredResume
	var parsed []byte
	if err := s.Scan(&sr.ID, &sr.UserID, &parsed, &sr.ParseConfidence, &sr.WordCount, &sr.CreatedAt); err != nil {
		return StoredResume{}, err
	}
	if err := json.Unmarshal(parsed, &sr.Parsed); err != nil {
		return StoredResume{}, err
	}
	return sr, nil
}
