package repository

import (
	"context"

	"interview-ai-backend/internal/domain/model"
)

// -----------------------------
// Interviews
// -----------------------------

// InterviewRepository owns interview aggregates for their whole lifetime.
// The transcript is append-only: entries are only ever added, with Seq
// assigned by the aggregate before the call.
type InterviewRepository interface {
	// Create inserts the interview row together with its seed transcript.
	Create(ctx context.Context, tx Tx, iv *model.Interview) error
	// AppendEntries adds transcript entries in the given order.
	AppendEntries(ctx context.Context, tx Tx, interviewID string, entries []model.TranscriptEntry) error
	// UpdateProgress moves the cursor and, on the final answer, the status.
	UpdateProgress(ctx context.Context, tx Tx, interviewID string, currentIndex int, status model.InterviewStatus) error
	FindByID(ctx context.Context, tx Tx, id string) (*model.Interview, error)
	FindAllByUser(ctx context.Context, tx Tx, userID string) ([]*model.Interview, error)
	Delete(ctx context.Context, tx Tx, id string) error
}
