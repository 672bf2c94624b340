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
var _ repository.ResumeRepository = (*ResumeRepo)(nil)

type ResumeRepo struct {
	mu   sync.RWMutex
	byID map[string]*model.Resume
}

func NewResumeRepo() *ResumeRepo {
	return &ResumeRepo{byID: make(map[string]*model.Resume)}
}

func (r *ResumeRepo) Save(ctx context.Context, tx repository.Tx, res *model.Resume) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *res
	r.byID[res.ID] = &cp
	return nil
}

func (r *ResumeRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.Resume, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *res
	return &cp, nil
}

func (r *ResumeRepo) FindAllByUser(ctx context.Context, tx repository.Tx, userID string) ([]*model.Resume, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*model.Resume
	for _, res := range r.byID {
		if res.UserID == userID {
			cp := *res
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
