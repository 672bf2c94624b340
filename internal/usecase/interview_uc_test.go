package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"interview-ai-backend/internal/domain"
	"interview-ai-backend/internal/domain/model"
	"interview-ai-backend/internal/domain/ports/repository"
	"interview-ai-backend/internal/llmparse"
)

func TestStartInterview_SeedsTranscriptWithFirstQuestion(t *testing.T) {
	h := newInterviewHarness(t, &fakeAI{script: threeQuestionScript}, &fakeTTS{})

	res, err := h.uc.Start(context.Background(), h.userID, "Backend engineer, Go, Postgres")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	iv := res.Interview
	if len(iv.Questions) != 3 {
		t.Fatalf("questions = %d, want 3", len(iv.Questions))
	}
	if iv.Status != model.InterviewOngoing || iv.CurrentIndex != 0 {
		t.Fatalf("status=%s index=%d after start", iv.Status, iv.CurrentIndex)
	}
	if len(iv.Transcript) != 1 || iv.Transcript[0].Role != model.RoleAssistant || iv.Transcript[0].Content != iv.Questions[0] {
		t.Fatalf("transcript not seeded with first question: %+v", iv.Transcript)
	}
	if !strings.HasSuffix(res.AudioURL, iv.ID+"_question_0.mp3") {
		t.Fatalf("audio URL = %q", res.AudioURL)
	}
	if p := h.ai.promptSeen(); !strings.Contains(p, "Backend engineer, Go, Postgres") {
		t.Fatalf("question prompt does not carry the job description: %q", p)
	}

	stored, err := h.interviews.FindByID(context.Background(), repository.NoTX, iv.ID)
	if err != nil {
		t.Fatalf("FindByID after start: %v", err)
	}
	if len(stored.Transcript) != 1 {
		t.Fatalf("stored transcript length = %d, want 1", len(stored.Transcript))
	}
}

func TestStartInterview_NoQuestions(t *testing.T) {
	ai := &fakeAI{script: "Thanks for coming in today. We are excited to meet you."}
	h := newInterviewHarness(t, ai, &fakeTTS{})

	_, err := h.uc.Start(context.Background(), h.userID, "some job")
	if !errors.Is(err, domain.ErrNoQuestionsGenerated) {
		t.Fatalf("err = %v, want ErrNoQuestionsGenerated", err)
	}
	list, err := h.interviews.FindAllByUser(context.Background(), repository.NoTX, h.userID)
	if err != nil {
		t.Fatalf("FindAllByUser: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("a session was persisted despite the failed start")
	}
}

func TestStartInterview_UnknownUser(t *testing.T) {
	h := newInterviewHarness(t, &fakeAI{script: threeQuestionScript}, &fakeTTS{})

	_, err := h.uc.Start(context.Background(), "nope", "some job")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestStartInterview_DisabledTTSYieldsNoAudio(t *testing.T) {
	h := newInterviewHarness(t, &fakeAI{script: threeQuestionScript}, &fakeTTS{disabled: true})

	res, err := h.uc.Start(context.Background(), h.userID, "some job")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if res.AudioURL != "" {
		t.Fatalf("AudioURL = %q, want empty", res.AudioURL)
	}
}

func TestSubmitAnswer_CompletesAfterAllQuestions(t *testing.T) {
	h := newInterviewHarness(t, &fakeAI{script: threeQuestionScript, verdict: okVerdict}, &fakeTTS{})
	ctx := context.Background()

	res, err := h.uc.Start(ctx, h.userID, "some job")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	id := res.Interview.ID

	for i := 0; i < 3; i++ {
		ans, err := h.uc.SubmitAnswer(ctx, id, "my answer")
		if err != nil {
			t.Fatalf("SubmitAnswer #%d: %v", i+1, err)
		}
		if ans.Evaluation.Feedback != "Great job!" {
			t.Fatalf("feedback = %q", ans.Evaluation.Feedback)
		}
		last := i == 2
		if ans.Completed != last {
			t.Fatalf("Completed = %v on answer #%d", ans.Completed, i+1)
		}
		if last && ans.NextQuestion != "" {
			t.Fatalf("final answer still returned a next question: %q", ans.NextQuestion)
		}
		if !last && ans.NextQuestion != res.Interview.Questions[i+1] {
			t.Fatalf("next question = %q, want %q", ans.NextQuestion, res.Interview.Questions[i+1])
		}
	}

	iv, err := h.uc.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if iv.Status != model.InterviewCompleted || iv.CurrentIndex != 3 {
		t.Fatalf("status=%s index=%d after final answer", iv.Status, iv.CurrentIndex)
	}
	// 1 seed question + 2 full rounds of 3 entries + final round of 2.
	if len(iv.Transcript) != 9 {
		t.Fatalf("transcript length = %d, want 9", len(iv.Transcript))
	}
	for i, e := range iv.Transcript {
		if e.Seq != i {
			t.Fatalf("entry %d has seq %d", i, e.Seq)
		}
	}
}

func TestSubmitAnswer_CompletedSessionRejected(t *testing.T) {
	h := newInterviewHarness(t, &fakeAI{script: "Only one question here?", verdict: okVerdict}, &fakeTTS{})
	ctx := context.Background()

	res, err := h.uc.Start(ctx, h.userID, "some job")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := h.uc.SubmitAnswer(ctx, res.Interview.ID, "done"); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	before, _ := h.uc.Get(ctx, res.Interview.ID)
	_, err = h.uc.SubmitAnswer(ctx, res.Interview.ID, "one more")
	if !errors.Is(err, domain.ErrInterviewCompleted) {
		t.Fatalf("err = %v, want ErrInterviewCompleted", err)
	}
	after, _ := h.uc.Get(ctx, res.Interview.ID)
	if len(after.Transcript) != len(before.Transcript) || after.CurrentIndex != before.CurrentIndex {
		t.Fatalf("rejected submission mutated the session")
	}
}

func TestSubmitAnswer_MalformedVerdictLeavesSessionUntouched(t *testing.T) {
	ai := &fakeAI{script: threeQuestionScript, verdict: "I think the answer was decent."}
	h := newInterviewHarness(t, ai, &fakeTTS{})
	ctx := context.Background()

	res, err := h.uc.Start(ctx, h.userID, "some job")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	_, err = h.uc.SubmitAnswer(ctx, res.Interview.ID, "my answer")
	var perr *llmparse.Error
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *llmparse.Error", err)
	}
	if perr.Raw != "I think the answer was decent." {
		t.Fatalf("Raw = %q", perr.Raw)
	}

	iv, _ := h.uc.Get(ctx, res.Interview.ID)
	if len(iv.Transcript) != 1 || iv.CurrentIndex != 0 {
		t.Fatalf("failed evaluation mutated the session: len=%d index=%d", len(iv.Transcript), iv.CurrentIndex)
	}
}

func TestSubmitAnswer_EmptyAnswer(t *testing.T) {
	h := newInterviewHarness(t, &fakeAI{script: threeQuestionScript, verdict: okVerdict}, &fakeTTS{})
	ctx := context.Background()

	res, err := h.uc.Start(ctx, h.userID, "some job")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := h.uc.SubmitAnswer(ctx, res.Interview.ID, "   \t "); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestSubmitAnswer_ConcurrentWritersSerialized(t *testing.T) {
	h := newInterviewHarness(t, &fakeAI{script: threeQuestionScript, verdict: okVerdict}, &fakeTTS{})
	ctx := context.Background()

	res, err := h.uc.Start(ctx, h.userID, "some job")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	id := res.Interview.ID

	const writers = 8
	var wg sync.WaitGroup
	var mu sync.Mutex
	var succeeded, completedErrs int
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := h.uc.SubmitAnswer(ctx, id, "concurrent answer")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, domain.ErrInterviewCompleted):
				completedErrs++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if succeeded != 3 || completedErrs != writers-3 {
		t.Fatalf("succeeded=%d completedErrs=%d, want 3 and %d", succeeded, completedErrs, writers-3)
	}

	iv, _ := h.uc.Get(ctx, id)
	if len(iv.Transcript) != 9 {
		t.Fatalf("transcript length = %d, want 9", len(iv.Transcript))
	}
	for i, e := range iv.Transcript {
		if e.Seq != i {
			t.Fatalf("entry %d has seq %d, ordering broken under contention", i, e.Seq)
		}
	}
	// No submission may interleave inside another's round: every user entry is
	// immediately followed by assistant feedback.
	for i, e := range iv.Transcript {
		if e.Role == model.RoleUser && iv.Transcript[i+1].Role != model.RoleAssistant {
			t.Fatalf("user entry %d not followed by feedback", i)
		}
	}
}

type busyLocker struct{}

func (busyLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (string, error) {
	return "", domain.ErrInterviewBusy
}
func (busyLocker) Unlock(ctx context.Context, key, token string) error { return nil }

func TestSubmitAnswer_LockedSessionIsBusy(t *testing.T) {
	h := newInterviewHarness(t, &fakeAI{script: threeQuestionScript, verdict: okVerdict}, &fakeTTS{})
	ctx := context.Background()

	res, err := h.uc.Start(ctx, h.userID, "some job")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	h.uc.locker = busyLocker{}
	if _, err := h.uc.SubmitAnswer(ctx, res.Interview.ID, "answer"); !errors.Is(err, domain.ErrInterviewBusy) {
		t.Fatalf("err = %v, want ErrInterviewBusy", err)
	}
}

func TestDeleteInterview(t *testing.T) {
	h := newInterviewHarness(t, &fakeAI{script: threeQuestionScript}, &fakeTTS{})
	ctx := context.Background()

	res, err := h.uc.Start(ctx, h.userID, "some job")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := h.uc.Delete(ctx, res.Interview.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := h.uc.Get(ctx, res.Interview.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err after delete = %v, want ErrNotFound", err)
	}
	if err := h.uc.Delete(ctx, res.Interview.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second delete = %v, want ErrNotFound", err)
	}
}
