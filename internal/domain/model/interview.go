package model

import (
	"time"
)

type InterviewStatus string

const (
	InterviewOngoing   InterviewStatus = "ongoing"
	InterviewCompleted InterviewStatus = "completed"
)

// Transcript roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// TranscriptEntry is one role-tagged turn in an interview transcript.
// Seq is the authoritative ordering key within an interview.
type TranscriptEntry struct {
	InterviewID string    `json:"-"`
	Seq         int       `json:"-"`
	Role        string    `json:"role"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"-"`
}

// Interview is the aggregate root for one mock-interview conversation.
// Questions are fixed at creation; the transcript is an append-only log;
// CurrentIndex is the authoritative cursor into Questions (never derived
// from transcript length, which interleaves feedback entries).
type Interview struct {
	ID             string
	UserID         string
	JobDescription string
	Questions      []string
	Transcript     []TranscriptEntry
	CurrentIndex   int
	Status         InterviewStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewInterview seeds the transcript with the assistant asking the first
// question, which is the invariant every stored interview must satisfy.
func NewInterview(id, userID, jobDescription string, questions []string) *Interview {
	now := time.Now()
	iv := &Interview{
		ID:             id,
		UserID:         userID,
		JobDescription: jobDescription,
		Questions:      questions,
		Transcript:     make([]TranscriptEntry, 0, 2*len(questions)),
		CurrentIndex:   0,
		Status:         InterviewOngoing,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	iv.Append(RoleAssistant, questions[0])
	return iv
}

// Append adds a transcript entry and returns it with its sequence assigned.
func (iv *Interview) Append(role, content string) TranscriptEntry {
	e := TranscriptEntry{
		InterviewID: iv.ID,
		Seq:         len(iv.Transcript),
		Role:        role,
		Content:     content,
		CreatedAt:   time.Now(),
	}
	iv.Transcript = append(iv.Transcript, e)
	iv.UpdatedAt = e.CreatedAt
	return e
}

// CurrentQuestion returns the question the candidate is answering next.
func (iv *Interview) CurrentQuestion() (string, bool) {
	if iv.CurrentIndex < 0 || iv.CurrentIndex >= len(iv.Questions) {
		return "", false
	}
	return iv.Questions[iv.CurrentIndex], true
}

func (iv *Interview) Completed() bool {
	return iv.Status == InterviewCompleted
}
