package usecase

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"interview-ai-backend/internal/domain/model"
	"interview-ai-backend/internal/domain/ports/adapter"
	"interview-ai-backend/internal/domain/ports/repository"
	"interview-ai-backend/internal/infra/memory"
)

// ---- Fakes ----

// fakeAI scripts completions per prompt kind. The question prompt asks for a
// "welcoming interview script"; the evaluation prompt starts with an
// "HR specialist evaluating" preamble.
type fakeAI struct {
	mu         sync.Mutex
	calls      int
	script     string // returned for question-generation prompts
	verdict    string // returned for evaluation prompts
	scores     string // returned for scoring prompts
	failWith   error
	lastPrompt string
}

func (f *fakeAI) promptSeen() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastPrompt
}

func (f *fakeAI) Complete(ctx context.Context, prompt string, format adapter.CompletionFormat) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastPrompt = prompt
	if f.failWith != nil {
		return "", f.failWith
	}
	switch {
	case strings.Contains(prompt, "welcoming interview script"):
		return f.script, nil
	case strings.Contains(prompt, "evaluating a candidate's response"):
		return f.verdict, nil
	default:
		return f.scores, nil
	}
}

func (f *fakeAI) ModelName() string { return "test-model" }

type fakeTTS struct {
	mu       sync.Mutex
	calls    int
	disabled bool
	failWith error
}

func (f *fakeTTS) Synthesize(ctx context.Context, text string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	if f.disabled {
		return nil, nil
	}
	return []byte("mp3-bytes"), nil
}

type fakeAudioStore struct{}

func (fakeAudioStore) Put(ctx context.Context, name string, data []byte) (string, error) {
	return "http://localhost:8080/audio/" + name, nil
}

type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) Extract(filename string, data []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

// ---- Harness ----

type interviewHarness struct {
	uc         *interviewUC
	interviews *memory.InterviewRepo
	users      *memory.UserRepo
	ai         *fakeAI
	tts        *fakeTTS
	userID     string
}

func newInterviewHarness(t *testing.T, ai *fakeAI, tts *fakeTTS) *interviewHarness {
	t.Helper()
	logger := zerolog.Nop()
	users := memory.NewUserRepo()
	interviews := memory.NewInterviewRepo()

	usr := model.NewUser("user-1", "amine", "amine@example.com")
	if err := users.Save(context.Background(), repository.NoTX, usr); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	uc := NewInterviewUseCase(
		interviews, users, memory.NewTxManager(),
		ai, tts, fakeAudioStore{}, memory.NewLocker(), &logger,
	)
	return &interviewHarness{
		uc:         uc,
		interviews: interviews,
		users:      users,
		ai:         ai,
		tts:        tts,
		userID:     usr.ID,
	}
}

const threeQuestionScript = `Welcome to the interview, glad you could make it.
To break the ice, could you tell me a little about yourself?
That's great to hear.
What drew you to backend engineering?
And finally, how do you approach debugging a production incident?`

const okVerdict = `{"correct": true, "feedback": "Great job!", "correct_answer": "", "follow_up_question": ""}`
