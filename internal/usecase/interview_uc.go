package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"interview-ai-backend/internal/domain"
	"interview-ai-backend/internal/domain/model"
	"interview-ai-backend/internal/domain/ports/adapter"
	"interview-ai-backend/internal/domain/ports/repository"
	"interview-ai-backend/internal/infra/logging"
	"interview-ai-backend/internal/infra/metrics"
	"interview-ai-backend/internal/llmparse"
	"interview-ai-backend/internal/sanitize"
)

// Locker provides per-key mutual exclusion so that at most one request
// mutates a given interview at a time.
type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (token string, err error)
	Unlock(ctx context.Context, key, token string) error
}

// Compile-time check
var _ InterviewUseCase = (*interviewUC)(nil)

// StartResult is returned when an interview session is created.
type StartResult struct {
	Interview *model.Interview
	AudioURL  string
}

// AnswerResult is returned for each submitted answer. NextQuestion and
// AudioURL are empty once the interview completes.
type AnswerResult struct {
	Interview    *model.Interview
	Evaluation   model.Evaluation
	NextQuestion string
	AudioURL     string
	Completed    bool
}

type InterviewUseCase interface {
	Start(ctx context.Context, userID, jobDescription string) (*StartResult, error)
	SubmitAnswer(ctx context.Context, interviewID, answer string) (*AnswerResult, error)
	Get(ctx context.Context, interviewID string) (*model.Interview, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Interview, error)
	Delete(ctx context.Context, interviewID string) error
}

type interviewUC struct {
	interviews repository.InterviewRepository
	users      repository.UserRepository
	tm         repository.TransactionManager
	ai         adapter.AIClient
	tts        adapter.SpeechSynthesizer
	audio      adapter.AudioStore
	locker     Locker
	parser     *llmparse.Parser
	log        *zerolog.Logger
}

const answerLockTTL = 45 * time.Second

func NewInterviewUseCase(
	interviews repository.InterviewRepository,
	users repository.UserRepository,
	tm repository.TransactionManager,
	ai adapter.AIClient,
	tts adapter.SpeechSynthesizer,
	audio adapter.AudioStore,
	locker Locker,
	logger *zerolog.Logger,
) *interviewUC {
	return &interviewUC{
		interviews: interviews,
		users:      users,
		tm:         tm,
		ai:         ai,
		tts:        tts,
		audio:      audio,
		locker:     locker,
		parser:     llmparse.NewParser(logger),
		log:        logger,
	}
}

// Start generates the question list for a job description and creates the
// session. Nothing is persisted until question generation and speech
// synthesis have both succeeded.
func (u *interviewUC) Start(ctx context.Context, userID, jobDescription string) (*StartResult, error) {
	defer logging.TraceDuration(u.log, "InterviewUC.Start")()

	jd := sanitize.Clean(jobDescription)
	if userID == "" || jd == "" {
		return nil, domain.ErrInvalidArgument
	}
	ctx = logging.WithUserID(ctx, userID)
	log := logging.With(ctx, u.log)

	if _, err := u.users.FindByID(ctx, repository.NoTX, userID); err != nil {
		return nil, err
	}

	raw, err := u.ai.Complete(ctx, questionPrompt(jd), adapter.FormatText)
	if err != nil {
		return nil, fmt.Errorf("%w: generate questions: %v", domain.ErrUpstream, err)
	}
	questions := questionLines(raw)
	if len(questions) == 0 {
		return nil, domain.ErrNoQuestionsGenerated
	}

	iv := model.NewInterview(uuid.NewString(), userID, jd, questions)
	audioURL, err := u.speak(ctx, iv.ID, 0, questions[0])
	if err != nil {
		return nil, err
	}

	err = u.tm.WithTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		return u.interviews.Create(ctx, tx, iv)
	})
	if err != nil {
		return nil, err
	}

	metrics.IncInterviewStarted(len(questions))
	log.Info().Str("interview_id", iv.ID).Int("questions", len(questions)).
		Msg("interview started")
	return &StartResult{Interview: iv, AudioURL: audioURL}, nil
}

// SubmitAnswer evaluates the candidate's answer against the current question
// and advances the cursor. The whole method is evaluate-then-commit: every
// outbound call happens before the first write, so a failed LLM or TTS call
// leaves the session exactly as it was.
func (u *interviewUC) SubmitAnswer(ctx context.Context, interviewID, answer string) (*AnswerResult, error) {
	defer logging.TraceDuration(u.log, "InterviewUC.SubmitAnswer")()

	answer = strings.TrimSpace(answer)
	if interviewID == "" || answer == "" {
		return nil, domain.ErrInvalidArgument
	}
	ctx = logging.WithInterviewID(ctx, interviewID)
	log := logging.With(ctx, u.log)

	// Serialize writers on this interview.
	token, err := u.locker.TryLock(ctx, "interview:"+interviewID, answerLockTTL)
	if err != nil {
		return nil, domain.ErrInterviewBusy
	}
	defer func() {
		if err := u.locker.Unlock(ctx, "interview:"+interviewID, token); err != nil {
			log.Warn().Err(err).Msg("unlock failed")
		}
	}()

	iv, err := u.interviews.FindByID(ctx, repository.NoTX, interviewID)
	if err != nil {
		return nil, err
	}
	if iv.Completed() {
		return nil, domain.ErrInterviewCompleted
	}
	question, ok := iv.CurrentQuestion()
	if !ok {
		return nil, domain.ErrInterviewCompleted
	}

	raw, err := u.ai.Complete(ctx, evaluationPrompt(question, answer), adapter.FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("%w: evaluate answer: %v", domain.ErrUpstream, err)
	}
	ev, err := u.parser.Evaluation(raw)
	if err != nil {
		metrics.IncParseFallback("evaluation")
		return nil, err
	}

	entries := []model.TranscriptEntry{
		iv.Append(model.RoleUser, answer),
		iv.Append(model.RoleAssistant, ev.Feedback),
	}

	nextIndex := iv.CurrentIndex + 1
	status := iv.Status
	result := &AnswerResult{Interview: iv, Evaluation: ev}

	if nextIndex >= len(iv.Questions) {
		status = model.InterviewCompleted
		result.Completed = true
	} else {
		next := iv.Questions[nextIndex]
		audioURL, err := u.speak(ctx, iv.ID, nextIndex, next)
		if err != nil {
			return nil, err
		}
		entries = append(entries, iv.Append(model.RoleAssistant, next))
		result.NextQuestion = next
		result.AudioURL = audioURL
	}

	err = u.tm.WithTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		if err := u.interviews.AppendEntries(ctx, tx, iv.ID, entries); err != nil {
			return err
		}
		return u.interviews.UpdateProgress(ctx, tx, iv.ID, nextIndex, status)
	})
	if err != nil {
		return nil, err
	}

	iv.CurrentIndex = nextIndex
	iv.Status = status
	if result.Completed {
		metrics.IncInterviewCompleted()
		log.Info().Int("questions", len(iv.Questions)).Msg("interview completed")
	}
	return result, nil
}

func (u *interviewUC) Get(ctx context.Context, interviewID string) (*model.Interview, error) {
	return u.interviews.FindByID(ctx, repository.NoTX, interviewID)
}

func (u *interviewUC) ListByUser(ctx context.Context, userID string) ([]*model.Interview, error) {
	if _, err := u.users.FindByID(ctx, repository.NoTX, userID); err != nil {
		return nil, err
	}
	return u.interviews.FindAllByUser(ctx, repository.NoTX, userID)
}

func (u *interviewUC) Delete(ctx context.Context, interviewID string) error {
	return u.interviews.Delete(ctx, repository.NoTX, interviewID)
}

// speak synthesizes a question and stores the clip, returning its URL.
// A disabled synthesizer yields no data and no URL.
func (u *interviewUC) speak(ctx context.Context, interviewID string, index int, text string) (string, error) {
	start := time.Now()
	data, err := u.tts.Synthesize(ctx, text)
	metrics.ObserveTTS(start, len(data), err)
	if err != nil {
		return "", fmt.Errorf("%w: synthesize speech: %v", domain.ErrUpstream, err)
	}
	if len(data) == 0 {
		return "", nil
	}
	name := fmt.Sprintf("%s_question_%d.mp3", interviewID, index)
	url, err := u.audio.Put(ctx, name, data)
	if err != nil {
		return "", fmt.Errorf("store audio: %w", err)
	}
	return url, nil
}

// questionLines keeps the lines of a free-text script that are questions.
func questionLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasSuffix(line, "?") {
			out = append(out, line)
		}
	}
	return out
}
