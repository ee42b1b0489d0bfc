package dto

import "time"

// GenerateQuizRequest is the JSON body for topic-driven generation.
// Document uploads send the same fields as multipart form values next to a "file" part.
// @Description Request body for generating a quiz from a topic
type GenerateQuizRequest struct {
	Topic string `json:"topic" form:"topic" example:"James Webb Space Telescope"`
	// Count defaults to the server's configured question count when omitted.
	Count int `json:"count" form:"count" example:"10"`
}

// SourceResponse is a citation backing an explanation.
type SourceResponse struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// QuestionResponse is a full question including its answer.
// @Description Quiz question with answer and explanation
type QuestionResponse struct {
	Question      string           `json:"question"`
	Options       []string         `json:"options"`
	CorrectAnswer string           `json:"correctAnswer"`
	Explanation   string           `json:"explanation"`
	Sources       []SourceResponse `json:"sources"`
}

// QuizResponse is the result of stateless generation.
type QuizResponse struct {
	Title     string             `json:"title"`
	Count     int                `json:"count"`
	Questions []QuestionResponse `json:"questions"`
}

// TrendingTopicsResponse always carries a list; it is empty when suggestions are unavailable.
type TrendingTopicsResponse struct {
	Topics []string `json:"topics"`
}

// AnswerRequest selects an option for the current question.
type AnswerRequest struct {
	Answer string `json:"answer" example:"Mercury"`
}

// PlayQuestionResponse is the current question as shown to a player.
// Answer details are only filled in once an answer has been selected.
type PlayQuestionResponse struct {
	Question      string           `json:"question"`
	Options       []string         `json:"options"`
	CorrectAnswer string           `json:"correctAnswer,omitempty"`
	Explanation   string           `json:"explanation,omitempty"`
	Sources       []SourceResponse `json:"sources,omitempty"`
}

// SummaryResponse is the final score of a finished session.
type SummaryResponse struct {
	Score      int    `json:"score"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
	Band       string `json:"band"`
	Message    string `json:"message"`
}

// SessionStateResponse describes where a player is in a session.
// @Description Quiz session state
type SessionStateResponse struct {
	SessionID          string                `json:"session_id"`
	Title              string                `json:"title"`
	Phase              string                `json:"phase"`
	Position           int                   `json:"position"`
	Total              int                   `json:"total"`
	Score              int                   `json:"score"`
	Progress           float64               `json:"progress"`
	ProgressLabel      string                `json:"progress_label,omitempty"`
	Question           *PlayQuestionResponse `json:"question,omitempty"`
	SelectedAnswer     *string               `json:"selected_answer,omitempty"`
	Correct            *bool                 `json:"correct,omitempty"`
	ExplanationVisible bool                  `json:"explanation_visible"`
	Summary            *SummaryResponse      `json:"summary,omitempty"`
}

// SessionCreatedResponse carries the bearer token required by the session routes.
type SessionCreatedResponse struct {
	Token     string               `json:"token"`
	ExpiresAt time.Time            `json:"expires_at"`
	State     SessionStateResponse `json:"state"`
}

// AnswerResponse reports whether the selection was recorded.
// Accepted is false when the question had already been answered.
type AnswerResponse struct {
	Accepted bool                 `json:"accepted"`
	State    SessionStateResponse `json:"state"`
}
