package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"interview-ai-backend/internal/usecase"
)

type Server struct {
	interviewUC usecase.InterviewUseCase
	resumeUC    usecase.ResumeUseCase
	userUC      usecase.UserUseCase
	audioDir    string // non-empty only with the local audio backend
	log         *zerolog.Logger
}

func NewServer(
	interviewUC usecase.InterviewUseCase,
	resumeUC usecase.ResumeUseCase,
	userUC usecase.UserUseCase,
	audioDir string,
	logger *zerolog.Logger,
) *Server {
	return &Server{
		interviewUC: interviewUC,
		resumeUC:    resumeUC,
		userUC:      userUC,
		audioDir:    audioDir,
		log:         logger,
	}
}

// Router builds the full route tree.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/users", s.handleCreateUser)
		r.Get("/users", s.handleListUsers)
		r.Get("/users/{id}", s.handleGetUser)
		r.Get("/users/{id}/interviews", s.handleListInterviews)
		r.Get("/users/{id}/resumes", s.handleListResumes)

		r.Post("/interviews", s.handleStartInterview)
		r.Get("/interviews/{id}", s.handleGetInterview)
		r.Delete("/interviews/{id}", s.handleDeleteInterview)
		r.Post("/interviews/{id}/answers", s.handleSubmitAnswer)

		r.Post("/resumes", s.handleEvaluateResume)
		r.Get("/resumes/{id}", s.handleGetResume)
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	if s.audioDir != "" {
		fs := http.StripPrefix("/audio/", http.FileServer(http.Dir(s.audioDir)))
		r.Get("/audio/*", fs.ServeHTTP)
	}
	return r
}
