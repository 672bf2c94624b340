package usecase

import (
	"context"
	"fmt"

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

// Compile-time check
var _ ResumeUseCase = (*resumeUC)(nil)

type ResumeUseCase interface {
	Evaluate(ctx context.Context, userID, name, jobDescription, filename string, file []byte) (*model.Resume, error)
	Get(ctx context.Context, resumeID string) (*model.Resume, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Resume, error)
}

type resumeUC struct {
	resumes   repository.ResumeRepository
	users     repository.UserRepository
	ai        adapter.AIClient
	extractor adapter.TextExtractor
	parser    *llmparse.Parser
	log       *zerolog.Logger
}

func NewResumeUseCase(
	resumes repository.ResumeRepository,
	users repository.UserRepository,
	ai adapter.AIClient,
	extractor adapter.TextExtractor,
	logger *zerolog.Logger,
) *resumeUC {
	return &resumeUC{
		resumes:   resumes,
		users:     users,
		ai:        ai,
		extractor: extractor,
		parser:    llmparse.NewParser(logger),
		log:       logger,
	}
}

// Evaluate extracts text from an uploaded document, scores it against the
// job description and persists the result. Scoring never fails on malformed
// model output; unparseable responses degrade to the fixed fallback scores.
func (u *resumeUC) Evaluate(ctx context.Context, userID, name, jobDescription, filename string, file []byte) (*model.Resume, error) {
	defer logging.TraceDuration(u.log, "ResumeUC.Evaluate")()

	if userID == "" || jobDescription == "" || len(file) == 0 {
		return nil, domain.ErrInvalidArgument
	}
	ctx = logging.WithUserID(ctx, userID)
	log := logging.With(ctx, u.log)

	if _, err := u.users.FindByID(ctx, repository.NoTX, userID); err != nil {
		return nil, err
	}

	text, err := u.extractor.Extract(filename, file)
	if err != nil {
		return nil, err
	}
	text = sanitize.Clean(text)
	jd := sanitize.Clean(jobDescription)
	if text == "" {
		return nil, fmt.Errorf("%w: document contains no extractable text", domain.ErrExtraction)
	}

	raw, err := u.ai.Complete(ctx, scoringPrompt(text, jd), adapter.FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("%w: score resume: %v", domain.ErrUpstream, err)
	}
	scores := u.parser.Scores(raw)

	r := &model.Resume{
		ID:                 uuid.NewString(),
		UserID:             userID,
		Name:               name,
		JobDescription:     jd,
		ExtractedText:      text,
		ATSScore:           scores.ATSScore,
		BestPracticesScore: scores.BestPracticesScore,
		Suggestions:        scores.Suggestions,
	}
	if err := u.resumes.Save(ctx, repository.NoTX, r); err != nil {
		return nil, err
	}

	metrics.IncResumeScored()
	log.Info().Str("resume_id", r.ID).Float64("ats_score", r.ATSScore).
		Msg("resume scored")
	return r, nil
}

func (u *resumeUC) Get(ctx context.Context, resumeID string) (*model.Resume, error) {
	return u.resumes.FindByID(ctx, repository.NoTX, resumeID)
}

func (u *resumeUC) ListByUser(ctx context.Context, userID string) ([]*model.Resume, error) {
	if _, err := u.users.FindByID(ctx, repository.NoTX, userID); err != nil {
		return nil, err
	}
	return u.resumes.FindAllByUser(ctx, repository.NoTX, userID)
}
