// Package memory provides the transient storage backend. Every repo here is
// an explicit, injected store guarded by its own mutex; sessions do not
// survive a process restart and their ids must be treated as non-durable.
package memory

import (
	"context"
	"sort"
	"sync"

	"interview-ai-backend/internal/domain"
	"interview-ai-backend/internal/domain/model"
	"interview-ai-backend/internal/domain/ports/repository"
)

// Compile-time check
var _ repository.InterviewRepository = (*InterviewRepo)(nil)

type InterviewRepo struct {
	mu   sync.RWMutex
	byID map[string]*model.Interview
}

func NewInterviewRepo() *InterviewRepo {
	return &InterviewRepo{byID: make(map[string]*model.Interview)}
}

func (r *InterviewRepo) Create(ctx context.Context, tx repository.Tx, iv *model.Interview) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[iv.ID]; ok {
		return domain.ErrAlreadyExists
	}
	r.byID[iv.ID] = cloneInterview(iv)
	return nil
}

func (r *InterviewRepo) AppendEntries(ctx context.Context, tx repository.Tx, interviewID string, entries []model.TranscriptEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	iv, ok := r.byID[interviewID]
	if !ok {
		return domain.ErrNotFound
	}
	iv.Transcript = append(iv.Transcript, entries...)
	return nil
}

func (r *InterviewRepo) UpdateProgress(ctx context.Context, tx repository.Tx, interviewID string, currentIndex int, status model.InterviewStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	iv, ok := r.byID[interviewID]
	if !ok {
		return domain.ErrNotFound
	}
	iv.CurrentIndex = currentIndex
	iv.Status = status
	return nil
}

func (r *InterviewRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.Interview, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	iv, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneInterview(iv), nil
}

func (r *InterviewRepo) FindAllByUser(ctx context.Context, tx repository.Tx, userID string) ([]*model.Interview, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*model.Interview
	for _, iv := range r.byID {
		if iv.UserID == userID {
			out = append(out, cloneInterview(iv))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *InterviewRepo) Delete(ctx context.Context, tx repository.Tx, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// cloneInterview keeps callers from mutating the stored aggregate in place;
// all writes must flow through the repository methods.
func cloneInterview(iv *model.Interview) *model.Interview {
	cp := *iv
	cp.Questions = append([]string(nil), iv.Questions...)
	cp.Transcript = append([]model.TranscriptEntry(nil), iv.Transcript...)
	return &cp
}
