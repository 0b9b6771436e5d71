package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- DTOs for mock exams (start, answer, finish, history) ---

// StartExamRequest starts a new mock exam for a user.
type StartExamRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

// ExamQuestionDTO is one exam slot as shown to the learner. It never carries the correct answer.
type ExamQuestionDTO struct {
	QuestionNumber int      `json:"question_number"`
	QuestionID     uint     `json:"question_id"`
	Content        string   `json:"content"`
	Choices        []string `json:"choices"`
	ExamArea       string   `json:"exam_area"`
	CategoryName   string   `json:"category_name"`
	Topic          string   `json:"topic,omitempty"`
	SelectedAnswer *int     `json:"selected_answer,omitempty"`
	// Filled only once the exam is finished.
	CorrectAnswer *int   `json:"correct_answer,omitempty"`
	IsCorrect     *bool  `json:"is_correct,omitempty"`
	Explanation   string `json:"explanation,omitempty"`
}

// StartExamResponse is returned when an exam starts.
type StartExamResponse struct {
	ExamID           uuid.UUID         `json:"exam_id"`
	UserID           uint              `json:"user_id"`
	StartedAt        time.Time         `json:"started_at"`
	TotalQuestions   int               `json:"total_questions"`
	TimeLimitMinutes int               `json:"time_limit_minutes"`
	Questions        []ExamQuestionDTO `json:"questions"`
}

// RecordAnswerRequest records the learner's choice for one slot.
type RecordAnswerRequest struct {
	UserID         uint `json:"user_id" binding:"required"`
	SelectedAnswer *int `json:"selected_answer" binding:"required,min=0"`
}

// RecordAnswerResponse acknowledges a recorded answer without revealing correctness.
type RecordAnswerResponse struct {
	ExamID         uuid.UUID `json:"exam_id"`
	QuestionNumber int       `json:"question_number"`
	SelectedAnswer int       `json:"selected_answer"`
	AnsweredAt     time.Time `json:"answered_at"`
}

// FinishExamRequest finishes an exam on behalf of its owner.
type FinishExamRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

// AreaScoreDTO is the result of one exam area.
type AreaScoreDTO struct {
	Area     string  `json:"area"`
	Total    int     `json:"total"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"`
	Grade    string  `json:"grade"`
}

// ExamResultResponse is the scored outcome of a finished exam.
type ExamResultResponse struct {
	ExamID         uuid.UUID      `json:"exam_id"`
	UserID         uint           `json:"user_id"`
	Status         string         `json:"status"`
	StartedAt      time.Time      `json:"started_at"`
	FinishedAt     *time.Time     `json:"finished_at,omitempty"`
	TotalQuestions int            `json:"total_questions"`
	AnsweredCount  int            `json:"answered_count"`
	CorrectCount   int            `json:"correct_count"`
	Score          float64        `json:"score"`
	Passed         bool           `json:"passed"`
	CategoryScores []AreaScoreDTO `json:"category_scores"`
	AIAnalysis     *string        `json:"ai_analysis,omitempty"`
}

// ExamDetailResponse shows an exam with all of its slots.
type ExamDetailResponse struct {
	ExamID         uuid.UUID         `json:"exam_id"`
	UserID         uint              `json:"user_id"`
	Status         string            `json:"status"`
	StartedAt      time.Time         `json:"started_at"`
	FinishedAt     *time.Time        `json:"finished_at,omitempty"`
	TotalQuestions int               `json:"total_questions"`
	AnsweredCount  int               `json:"answered_count"`
	Score          *float64          `json:"score,omitempty"`
	Passed         *bool             `json:"passed,omitempty"`
	Questions      []ExamQuestionDTO `json:"questions"`
}

// ExamSummaryDTO is used for listing a user's exam history.
type ExamSummaryDTO struct {
	ID             uuid.UUID  `json:"id"`
	Status         string     `json:"status"`
	StartedAt      time.Time  `json:"started_at"`
	FinishedAt     *time.Time `json:"finished_at,omitempty"`
	TotalQuestions int        `json:"total_questions"`
	CorrectCount   *int       `json:"correct_count,omitempty"`
	Score          *float64   `json:"score,omitempty"`
	Passed         *bool      `json:"passed,omitempty"`
}

// ExamConfigResponse exposes the exam layout to clients.
type ExamConfigResponse struct {
	TotalQuestions   int            `json:"total_questions"`
	PassingScore     float64        `json:"passing_score"`
	TimeLimitMinutes int            `json:"time_limit_minutes"`
	MasteryThreshold int            `json:"mastery_threshold"`
	Areas            []AreaQuotaDTO `json:"areas"`
}

type AreaQuotaDTO struct {
	Area  string `json:"area"`
	Count int    `json:"count"`
}
