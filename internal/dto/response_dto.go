package dto

import "time"

// PracticeAnswerResponse reveals the outcome of a standalone practice answer.
type PracticeAnswerResponse struct {
	AttemptID      uint      `json:"attempt_id"`
	QuestionID     uint      `json:"question_id"`
	SelectedAnswer int       `json:"selected_answer"`
	CorrectAnswer  int       `json:"correct_answer"`
	IsCorrect      bool      `json:"is_correct"`
	Explanation    string    `json:"explanation,omitempty"`
	ReviewStatus   *string   `json:"review_status,omitempty"`
	AnsweredAt     time.Time `json:"answered_at"`
}

// PracticeAttemptDTO is a row of a user's practice history.
type PracticeAttemptDTO struct {
	ID             uint      `json:"id"`
	QuestionID     uint      `json:"question_id"`
	Content        string    `json:"content"`
	Topic          string    `json:"topic,omitempty"`
	SelectedAnswer int       `json:"selected_answer"`
	IsCorrect      bool      `json:"is_correct"`
	AnsweredAt     time.Time `json:"answered_at"`
}

// ReviewItemDTO is a user's mastery record for one question.
type ReviewItemDTO struct {
	ID             uint       `json:"id"`
	QuestionID     uint       `json:"question_id"`
	CorrectCount   int        `json:"correct_count"`
	Status         string     `json:"status"`
	FirstWrongAt   time.Time  `json:"first_wrong_at"`
	LastAnsweredAt time.Time  `json:"last_answered_at"`
	MasteredAt     *time.Time `json:"mastered_at,omitempty"`
}

// ReviewQuestionDTO is a question queued for review. The answer key is withheld.
type ReviewQuestionDTO struct {
	ReviewItemID   uint      `json:"review_item_id"`
	QuestionID     uint      `json:"question_id"`
	Content        string    `json:"content"`
	Choices        []string  `json:"choices"`
	Topic          string    `json:"topic,omitempty"`
	CorrectCount   int       `json:"correct_count"`
	LastAnsweredAt time.Time `json:"last_answered_at"`
}

// ReviewStatsResponse counts a user's review items by status.
type ReviewStatsResponse struct {
	UserID           uint `json:"user_id"`
	Active           int  `json:"active"`
	Mastered         int  `json:"mastered"`
	Total            int  `json:"total"`
	MasteryThreshold int  `json:"mastery_threshold"`
}

// BackfillResponse reports what a backfill run did.
type BackfillResponse struct {
	UserID       uint `json:"user_id"`
	ExamsScanned int  `json:"exams_scanned"`
	ItemsCreated int  `json:"items_created"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
