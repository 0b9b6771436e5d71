package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExamStatus string

const (
	ExamStatusInProgress ExamStatus = "in_progress"
	ExamStatusFinished   ExamStatus = "finished"
)

// AreaScore is the result of one exam area.
type AreaScore struct {
	Total    int     `json:"total"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"`
	Grade    string  `json:"grade"`
}

// AreaBreakdown is keyed by exam area name.
type AreaBreakdown map[string]AreaScore

// MockExam is one timed exam attempt. CorrectCount, Score, Passed and
// CategoryScores stay nil until the exam is finished.
type MockExam struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uint             `json:"user_id" gorm:"not null;index:idx_mock_exams_user_status,priority:1"`
	StartedAt      time.Time        `json:"started_at" gorm:"not null"`
	FinishedAt     *time.Time       `json:"finished_at,omitempty"`
	TotalQuestions int              `json:"total_questions" gorm:"not null"`
	CorrectCount   *int             `json:"correct_count,omitempty"`
	Score          *float64         `json:"score,omitempty"`
	Passed         *bool            `json:"passed,omitempty"`
	CategoryScores AreaBreakdown    `json:"category_scores,omitempty" gorm:"type:jsonb;serializer:json"`
	AIAnalysis     *string          `json:"ai_analysis,omitempty" gorm:"type:text"`
	Status         ExamStatus       `json:"status" gorm:"type:varchar(16);not null;default:'in_progress';index:idx_mock_exams_user_status,priority:2"`
	Answers        []MockExamAnswer `json:"answers,omitempty" gorm:"foreignKey:ExamID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func (e *MockExam) BeforeCreate(_ *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (e *MockExam) IsFinished() bool {
	return e.Status == ExamStatusFinished
}
