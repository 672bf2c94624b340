package model

import "time"

// ResumeScores is the parsed outcome of one LLM scoring call. It has no
// identity of its own; it is folded into a Resume record immediately.
type ResumeScores struct {
	ATSScore           float64 `json:"ats_score"`
	BestPracticesScore float64 `json:"best_practices_score"`
	Suggestions        string  `json:"suggestions"`
}

// Evaluation is the structured verdict for one interview answer.
type Evaluation struct {
	Correct       bool   `json:"correct"`
	Feedback      string `json:"feedback"`
	CorrectAnswer string `json:"correct_answer"`
	FollowUp      string `json:"follow_up_question"`
}

// Resume stores one scored resume upload.
type Resume struct {
	ID                 string
	UserID             string
	Name               string
	JobDescription     string
	ExtractedText      string
	ATSScore           float64
	BestPracticesScore float64
	Suggestions        string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
