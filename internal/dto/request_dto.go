package dto

// PracticeAnswerRequest submits an answer to a single question outside of an exam.
type PracticeAnswerRequest struct {
	UserID         uint `json:"user_id" binding:"required"`
	QuestionID     uint `json:"question_id" binding:"required"`
	SelectedAnswer *int `json:"selected_answer" binding:"required,min=0"`
}

// BackfillRequest rebuilds review items from a user's finished exams.
type BackfillRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}
