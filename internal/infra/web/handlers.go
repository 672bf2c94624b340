package web

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"interview-ai-backend/internal/domain/model"
)

const maxResumeUpload = 10 << 20 // 10 MiB

// ---- users ----

type userCreateRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *model.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username, Email: u.Email, CreatedAt: u.CreatedAt}
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req userCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	u, err := s.userUC.Register(r.Context(), req.Username, req.Email)
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUserResponse(u))
}

type userListResponse struct {
	Users []userResponse `json:"users"`
	Total int            `json:"total"`
}

const defaultUserPageSize = 50

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	offset, err := queryInt(r, "offset", 0)
	if err != nil || offset < 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid offset"})
		return
	}
	limit, err := queryInt(r, "limit", defaultUserPageSize)
	if err != nil || limit < 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid limit"})
		return
	}

	users, err := s.userUC.List(r.Context(), offset, limit)
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	total, err := s.userUC.Count(r.Context())
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	resp := userListResponse{Users: make([]userResponse, 0, len(users)), Total: total}
	for _, u := range users {
		resp.Users = append(resp.Users, toUserResponse(u))
	}
	writeJSON(w, http.StatusOK, resp)
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	u, err := s.userUC.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// ---- interviews ----

type interviewStartRequest struct {
	UserID         string `json:"user_id"`
	JobDescription string `json:"job_description"`
}

type transcriptEntryResponse struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type interviewResponse struct {
	InterviewID         string                    `json:"interview_id"`
	Status              string                    `json:"status"`
	CurrentQuestion     string                    `json:"current_question,omitempty"`
	ConversationHistory []transcriptEntryResponse `json:"conversation_history"`
	AudioURL            string                    `json:"audio_url,omitempty"`
	Feedback            string                    `json:"feedback,omitempty"`
	Message             string                    `json:"message,omitempty"`
}

func toInterviewResponse(iv *model.Interview) interviewResponse {
	resp := interviewResponse{
		InterviewID:         iv.ID,
		Status:              string(iv.Status),
		ConversationHistory: make([]transcriptEntryResponse, 0, len(iv.Transcript)),
	}
	if q, ok := iv.CurrentQuestion(); ok && !iv.Completed() {
		resp.CurrentQuestion = q
	}
	for _, e := range iv.Transcript {
		resp.ConversationHistory = append(resp.ConversationHistory, transcriptEntryResponse{
			Role: e.Role, Content: e.Content,
		})
	}
	return resp
}

func (s *Server) handleStartInterview(w http.ResponseWriter, r *http.Request) {
	var req interviewStartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	res, err := s.interviewUC.Start(r.Context(), req.UserID, req.JobDescription)
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	resp := toInterviewResponse(res.Interview)
	resp.AudioURL = res.AudioURL
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Answer string `json:"answer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	res, err := s.interviewUC.SubmitAnswer(r.Context(), chi.URLParam(r, "id"), req.Answer)
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	resp := toInterviewResponse(res.Interview)
	resp.Feedback = res.Evaluation.Feedback
	resp.AudioURL = res.AudioURL
	if res.Completed {
		resp.Message = "Interview completed. Thank you for participating!"
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetInterview(w http.ResponseWriter, r *http.Request) {
	iv, err := s.interviewUC.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toInterviewResponse(iv))
}

func (s *Server) handleDeleteInterview(w http.ResponseWriter, r *http.Request) {
	if err := s.interviewUC.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, s.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListInterviews(w http.ResponseWriter, r *http.Request) {
	list, err := s.interviewUC.ListByUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	out := make([]interviewResponse, 0, len(list))
	for _, iv := range list {
		out = append(out, toInterviewResponse(iv))
	}
	writeJSON(w, http.StatusOK, out)
}

// ---- resumes ----

type resumeResponse struct {
	ResumeID           string    `json:"resume_id"`
	Name               string    `json:"name"`
	ATSScore           float64   `json:"ats_score"`
	BestPracticesScore float64   `json:"best_practices_score"`
	Suggestions        string    `json:"suggestions"`
	CreatedAt          time.Time `json:"created_at"`
}

func toResumeResponse(res *model.Resume) resumeResponse {
	return resumeResponse{
		ResumeID:           res.ID,
		Name:               res.Name,
		ATSScore:           res.ATSScore,
		BestPracticesScore: res.BestPracticesScore,
		Suggestions:        res.Suggestions,
		CreatedAt:          res.CreatedAt,
	}
}

func (s *Server) handleEvaluateResume(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxResumeUpload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid multipart form"})
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "file field is required"})
		return
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, maxResumeUpload+1))
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	if len(data) > maxResumeUpload {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "file too large"})
		return
	}

	name := r.FormValue("name")
	if name == "" {
		name = header.Filename
	}
	res, err := s.resumeUC.Evaluate(r.Context(),
		r.FormValue("user_id"), name, r.FormValue("job_description"), header.Filename, data)
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toResumeResponse(res))
}

func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	res, err := s.resumeUC.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toResumeResponse(res))
}

func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	list, err := s.resumeUC.ListByUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	out := make([]resumeResponse, 0, len(list))
	for _, res := range list {
		out = append(out, toResumeResponse(res))
	}
	writeJSON(w, http.StatusOK, out)
}
