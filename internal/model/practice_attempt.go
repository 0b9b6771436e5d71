package model

import (
	"time"

	"gorm.io/gorm"
)

// PracticeAttempt is a standalone answer to a single question outside of an exam.
type PracticeAttempt struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	UserID         uint           `json:"user_id" gorm:"not null;index"`
	QuestionID     uint           `json:"question_id" gorm:"not null;index"`
	Question       Question       `json:"question" gorm:"foreignKey:QuestionID"`
	SelectedAnswer int            `json:"selected_answer" gorm:"not null"`
	IsCorrect      bool           `json:"is_correct" gorm:"not null"`
	AnsweredAt     time.Time      `json:"answered_at" gorm:"not null"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
