package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"interview-ai-backend/internal/domain"
	"interview-ai-backend/internal/domain/model"
	"interview-ai-backend/internal/domain/ports/repository"
	"interview-ai-backend/internal/infra/redis"
)

var _ repository.InterviewRepository = (*InterviewRepo)(nil)

// InterviewRepo persists interview aggregates across the interviews row and
// the append-only interview_messages table. The optional session cache is
// written through on reads and evicted once the writing transaction has
// committed; the cache is never the source of truth.
type InterviewRepo struct {
	pool  *pgxpool.Pool
	cache *redis.SessionCache
}

func NewInterviewRepo(pool *pgxpool.Pool, cache *redis.SessionCache) *InterviewRepo {
	return &InterviewRepo{pool: pool, cache: cache}
}

func (r *InterviewRepo) Create(ctx context.Context, tx repository.Tx, iv *model.Interview) error {
	const q = `
INSERT INTO interviews (id, user_id, job_description, questions, current_index, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8);`
	questions, err := json.Marshal(iv.Questions)
	if err != nil {
		return fmt.Errorf("marshal questions: %w", err)
	}
	ex := pick(r.pool, tx)
	if _, err := ex.Exec(ctx, q, iv.ID, iv.UserID, iv.JobDescription, questions,
		iv.CurrentIndex, string(iv.Status), iv.CreatedAt, iv.UpdatedAt); err != nil {
		return fmt.Errorf("insert interview: %w", err)
	}
	return r.insertEntries(ctx, ex, iv.ID, iv.Transcript)
}

func (r *InterviewRepo) AppendEntries(ctx context.Context, tx repository.Tx, interviewID string, entries []model.TranscriptEntry) error {
	if err := r.insertEntries(ctx, pick(r.pool, tx), interviewID, entries); err != nil {
		// A duplicate-seq failure means the caller worked from a stale
		// aggregate; evict so the next read goes to the table.
		r.invalidate(ctx, interviewID)
		return err
	}
	afterCommit(ctx, func(ctx context.Context) { r.invalidate(ctx, interviewID) })
	return nil
}

func (r *InterviewRepo) insertEntries(ctx context.Context, ex executor, interviewID string, entries []model.TranscriptEntry) error {
	const q = `
INSERT INTO interview_messages (interview_id, seq, role, content, created_at)
VALUES ($1,$2,$3,$4,$5);`
	for _, e := range entries {
		if _, err := ex.Exec(ctx, q, interviewID, e.Seq, e.Role, e.Content, e.CreatedAt); err != nil {
			return fmt.Errorf("insert message seq %d: %w", e.Seq, err)
		}
	}
	return nil
}

func (r *InterviewRepo) UpdateProgress(ctx context.Context, tx repository.Tx, interviewID string, currentIndex int, status model.InterviewStatus) error {
	const q = `UPDATE interviews SET current_index=$2, status=$3, updated_at=NOW() WHERE id=$1;`
	tag, err := pick(r.pool, tx).Exec(ctx, q, interviewID, currentIndex, string(status))
	if err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	afterCommit(ctx, func(ctx context.Context) { r.invalidate(ctx, interviewID) })
	return nil
}

func (r *InterviewRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.Interview, error) {
	if r.cache != nil && tx == repository.NoTX {
		if iv, err := r.cache.Get(ctx, id); err == nil && iv != nil {
			return iv, nil
		}
	}

	const q = `
SELECT id, user_id, job_description, questions, current_index, status, created_at, updated_at
  FROM interviews WHERE id=$1;`
	ex := pick(r.pool, tx)
	var iv model.Interview
	var questions []byte
	var status string
	err := ex.QueryRow(ctx, q, id).Scan(&iv.ID, &iv.UserID, &iv.JobDescription,
		&questions, &iv.CurrentIndex, &status, &iv.CreatedAt, &iv.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan interview: %w", err)
	}
	if err := json.Unmarshal(questions, &iv.Questions); err != nil {
		return nil, fmt.Errorf("unmarshal questions: %w", err)
	}
	iv.Status = model.InterviewStatus(status)

	if err := r.loadTranscript(ctx, ex, &iv); err != nil {
		return nil, err
	}
	if r.cache != nil && tx == repository.NoTX {
		_ = r.cache.Store(ctx, &iv)
	}
	return &iv, nil
}

func (r *InterviewRepo) loadTranscript(ctx context.Context, ex executor, iv *model.Interview) error {
	const q = `
SELECT seq, role, content, created_at
  FROM interview_messages WHERE interview_id=$1 ORDER BY seq ASC;`
	rows, err := ex.Query(ctx, q, iv.ID)
	if err != nil {
		return fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		e := model.TranscriptEntry{InterviewID: iv.ID}
		if err := rows.Scan(&e.Seq, &e.Role, &e.Content, &e.CreatedAt); err != nil {
			return fmt.Errorf("scan message: %w", err)
		}
		iv.Transcript = append(iv.Transcript, e)
	}
	return rows.Err()
}

func (r *InterviewRepo) FindAllByUser(ctx context.Context, tx repository.Tx, userID string) ([]*model.Interview, error) {
	const q = `SELECT id FROM interviews WHERE user_id=$1 ORDER BY created_at DESC;`
	rows, err := pick(r.pool, tx).Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	out := make([]*model.Interview, 0, len(ids))
	for _, id := range ids {
		iv, err := r.FindByID(ctx, tx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, iv)
	}
	return out, nil
}

func (r *InterviewRepo) Delete(ctx context.Context, tx repository.Tx, id string) error {
	// Messages go via ON DELETE CASCADE.
	const q = `DELETE FROM interviews WHERE id=$1;`
	tag, err := pick(r.pool, tx).Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	afterCommit(ctx, func(ctx context.Context) { r.invalidate(ctx, id) })
	return nil
}

func (r *InterviewRepo) invalidate(ctx context.Context, id string) {
	if r.cache != nil {
		_ = r.cache.Delete(ctx, id)
	}
}
