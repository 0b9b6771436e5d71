package model

import (
	"time"

	"github.com/google/uuid"
)

// MockExamAnswer is one slot of an exam. ExamArea, CategoryName, Topic,
// CorrectAnswer and ChoiceCount are copied from the question when the exam
// starts and are never refreshed from the catalog.
type MockExamAnswer struct {
	ID             uint       `gorm:"primarykey" json:"id"`
	ExamID         uuid.UUID  `json:"exam_id" gorm:"type:uuid;not null;uniqueIndex:idx_exam_question_number,priority:1"`
	QuestionID     uint       `json:"question_id" gorm:"not null;index"`
	Question       Question   `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	QuestionNumber int        `json:"question_number" gorm:"not null;uniqueIndex:idx_exam_question_number,priority:2"`
	SelectedAnswer *int       `json:"selected_answer,omitempty"`
	IsCorrect      *bool      `json:"is_correct,omitempty"`
	AnsweredAt     *time.Time `json:"answered_at,omitempty"`
	ExamArea       string     `json:"exam_area" gorm:"not null"`
	CategoryName   string     `json:"category_name"`
	Topic          string     `json:"topic,omitempty"`
	CorrectAnswer  int        `json:"-" gorm:"not null"`
	ChoiceCount    int        `json:"-" gorm:"not null"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (a *MockExamAnswer) IsAnswered() bool {
	return a.SelectedAnswer != nil
}
