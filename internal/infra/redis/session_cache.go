package redis

import (
	"context"
	"encoding/json"
	"time"

	"interview-ai-backend/internal/domain/model"
)

// SessionCache is a read-through cache for interview aggregates in front of
// the durable store. Entries are stored as an explicit DTO so the cache wire
// format stays stable regardless of domain struct tags.
type SessionCache struct {
	client RedisClient
	ttl    time.Duration
}

func NewSessionCache(client RedisClient, ttl time.Duration) *SessionCache {
	return &SessionCache{client: client, ttl: ttl}
}

type cachedEntry struct {
	Seq       int       `json:"seq"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type cachedInterview struct {
	ID             string        `json:"id"`
	UserID         string        `json:"user_id"`
	JobDescription string        `json:"job_description"`
	Questions      []string      `json:"questions"`
	Transcript     []cachedEntry `json:"transcript"`
	CurrentIndex   int           `json:"current_index"`
	Status         string        `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

func cacheKey(id string) string { return "interview:session:" + id }

func (c *SessionCache) Store(ctx context.Context, iv *model.Interview) error {
	dto := cachedInterview{
		ID:             iv.ID,
		UserID:         iv.UserID,
		JobDescription: iv.JobDescription,
		Questions:      iv.Questions,
		Transcript:     make([]cachedEntry, 0, len(iv.Transcript)),
		CurrentIndex:   iv.CurrentIndex,
		Status:         string(iv.Status),
		CreatedAt:      iv.CreatedAt,
		UpdatedAt:      iv.UpdatedAt,
	}
	for _, e := range iv.Transcript {
		dto.Transcript = append(dto.Transcript, cachedEntry{
			Seq: e.Seq, Role: e.Role, Content: e.Content, CreatedAt: e.CreatedAt,
		})
	}
	data, err := json.Marshal(dto)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey(iv.ID), data, c.ttl)
}

// Get returns (nil, nil) on a cache miss.
func (c *SessionCache) Get(ctx context.Context, id string) (*model.Interview, error) {
	data, err := c.client.Get(ctx, cacheKey(id))
	if err != nil {
		if IsNil(err) {
			return nil, nil
		}
		return nil, err
	}
	var dto cachedInterview
	if err := json.Unmarshal([]byte(data), &dto); err != nil {
		return nil, err
	}
	iv := &model.Interview{
		ID:             dto.ID,
		UserID:         dto.UserID,
		JobDescription: dto.JobDescription,
		Questions:      dto.Questions,
		Transcript:     make([]model.TranscriptEntry, 0, len(dto.Transcript)),
		CurrentIndex:   dto.CurrentIndex,
		Status:         model.InterviewStatus(dto.Status),
		CreatedAt:      dto.CreatedAt,
		UpdatedAt:      dto.UpdatedAt,
	}
	for _, e := range dto.Transcript {
		iv.Transcript = append(iv.Transcript, model.TranscriptEntry{
			InterviewID: dto.ID, Seq: e.Seq, Role: e.Role, Content: e.Content, CreatedAt: e.CreatedAt,
		})
	}
	return iv, nil
}

func (c *SessionCache) Delete(ctx context.Context, id string) error {
	return c.client.Del(ctx, cacheKey(id))
}
