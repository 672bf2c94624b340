package repository

import (
	"context"

	"interview-ai-backend/internal/domain/model"
)

// -----------------------------
// Resumes
// -----------------------------

type ResumeRepository interface {
	Save(ctx context.Context, tx Tx, r *model.Resume) error
	FindByID(ctx context.Context, tx Tx, id string) (*model.Resume, error)
	FindAllByUser(ctx context.Context, tx Tx, userID string) ([]*model.Resume, error)
}
