package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"interview-ai-backend/internal/domain"
	"interview-ai-backend/internal/domain/model"
	"interview-ai-backend/internal/domain/ports/repository"
)

var _ repository.ResumeRepository = (*ResumeRepo)(nil)

type ResumeRepo struct {
	pool *pgxpool.Pool
}

func NewResumeRepo(pool *pgxpool.Pool) *ResumeRepo {
	return &ResumeRepo{pool: pool}
}

func (r *ResumeRepo) Save(ctx context.Context, tx repository.Tx, res *model.Resume) error {
	const q = `
INSERT INTO resumes (id, user_id, name, job_description, extracted_text,
                     ats_score, best_practices_score, suggestions, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,COALESCE($9,NOW()),NOW())
ON CONFLICT (id) DO UPDATE SET
  ats_score = EXCLUDED.ats_score,
  best_practices_score = EXCLUDED.best_practices_score,
  suggestions = EXCLUDED.suggestions,
  updated_at = NOW();`
	_, err := pick(r.pool, tx).Exec(ctx, q, res.ID, res.UserID, res.Name, res.JobDescription,
		res.ExtractedText, res.ATSScore, res.BestPracticesScore, res.Suggestions, res.CreatedAt)
	if err != nil {
		return fmt.Errorf("save resume: %w", err)
	}
	return nil
}

func (r *ResumeRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.Resume, error) {
	const q = `
SELECT id, user_id, name, job_description, extracted_text,
       ats_score, best_practices_score, suggestions, created_at, updated_at
  FROM resumes WHERE id=$1;`
	var res model.Resume
	err := pick(r.pool, tx).QueryRow(ctx, q, id).Scan(&res.ID, &res.UserID, &res.Name,
		&res.JobDescription, &res.ExtractedText, &res.ATSScore, &res.BestPracticesScore,
		&res.Suggestions, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan resume: %w", err)
	}
	return &res, nil
}

func (r *ResumeRepo) FindAllByUser(ctx context.Context, tx repository.Tx, userID string) ([]*model.Resume, error) {
	const q = `
SELECT id, user_id, name, job_description, extracted_text,
       ats_score, best_practices_score, suggestions, created_at, updated_at
  FROM resumes WHERE user_id=$1 ORDER BY created_at DESC;`
	rows, err := pick(r.pool, tx).Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.Resume
	for rows.Next() {
		var res model.Resume
		if err := rows.Scan(&res.ID, &res.UserID, &res.Name, &res.JobDescription,
			&res.ExtractedText, &res.ATSScore, &res.BestPracticesScore,
			&res.Suggestions, &res.CreatedAt, &res.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &res)
	}
	return out, rows.Err()
}
