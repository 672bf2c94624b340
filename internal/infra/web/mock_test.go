//go:build !integration

package web

import (
	"context"

	"interview-ai-backend/internal/domain/model"
	"interview-ai-backend/internal/usecase"
)

type mockInterviewUC struct {
	startFn  func(ctx context.Context, userID, jobDescription string) (*usecase.StartResult, error)
	submitFn func(ctx context.Context, interviewID, answer string) (*usecase.AnswerResult, error)
	getFn    func(ctx context.Context, interviewID string) (*model.Interview, error)
	listFn   func(ctx context.Context, userID string) ([]*model.Interview, error)
	deleteFn func(ctx context.Context, interviewID string) error
}

var _ usecase.InterviewUseCase = (*mockInterviewUC)(nil)

func (m *mockInterviewUC) Start(ctx context.Context, userID, jd string) (*usecase.StartResult, error) {
	return m.startFn(ctx, userID, jd)
}
func (m *mockInterviewUC) SubmitAnswer(ctx context.Context, id, answer string) (*usecase.AnswerResult, error) {
	return m.submitFn(ctx, id, answer)
}
func (m *mockInterviewUC) Get(ctx context.Context, id string) (*model.Interview, error) {
	return m.getFn(ctx, id)
}
func (m *mockInterviewUC) ListByUser(ctx context.Context, userID string) ([]*model.Interview, error) {
	return m.listFn(ctx, userID)
}
func (m *mockInterviewUC) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

type mockResumeUC struct {
	evaluateFn func(ctx context.Context, userID, name, jobDescription, filename string, file []byte) (*model.Resume, error)
	getFn      func(ctx context.Context, resumeID string) (*model.Resume, error)
	listFn     func(ctx context.Context, userID string) ([]*model.Resume, error)
}

var _ usecase.ResumeUseCase = (*mockResumeUC)(nil)

func (m *mockResumeUC) Evaluate(ctx context.Context, userID, name, jd, filename string, file []byte) (*model.Resume, error) {
	return m.evaluateFn(ctx, userID, name, jd, filename, file)
}
func (m *mockResumeUC) Get(ctx context.Context, id string) (*model.Resume, error) {
	return m.getFn(ctx, id)
}
func (m *mockResumeUC) ListByUser(ctx context.Context, userID string) ([]*model.Resume, error) {
	return m.listFn(ctx, userID)
}

type mockUserUC struct {
	registerFn func(ctx context.Context, username, email string) (*model.User, error)
	getFn      func(ctx context.Context, userID string) (*model.User, error)
	listFn     func(ctx context.Context, offset, limit int) ([]*model.User, error)
	countFn    func(ctx context.Context) (int, error)
}

var _ usecase.UserUseCase = (*mockUserUC)(nil)

func (m *mockUserUC) Register(ctx context.Context, username, email string) (*model.User, error) {
	return m.registerFn(ctx, username, email)
}
func (m *mockUserUC) Get(ctx context.Context, id string) (*model.User, error) {
	return m.getFn(ctx, id)
}
func (m *mockUserUC) List(ctx context.Context, offset, limit int) ([]*model.User, error) {
	return m.listFn(ctx, offset, limit)
}
func (m *mockUserUC) Count(ctx context.Context) (int, error) { return m.countFn(ctx) }
