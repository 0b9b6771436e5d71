package model

import "time"

type ReviewStatus string

const (
	ReviewStatusActive   ReviewStatus = "active"
	ReviewStatusMastered ReviewStatus = "mastered"
)

// ReviewItem tracks a user's mastery of a question they once got wrong.
// There is at most one row per (user, question).
type ReviewItem struct {
	ID             uint         `gorm:"primarykey" json:"id"`
	UserID         uint         `json:"user_id" gorm:"not null;uniqueIndex:idx_review_user_question,priority:1;index:idx_review_user_status,priority:1"`
	QuestionID     uint         `json:"question_id" gorm:"not null;uniqueIndex:idx_review_user_question,priority:2"`
	Question       Question     `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	CorrectCount   int          `json:"correct_count" gorm:"not null;default:0"`
	Status         ReviewStatus `json:"status" gorm:"type:varchar(16);not null;default:'active';index:idx_review_user_status,priority:2"`
	FirstWrongAt   time.Time    `json:"first_wrong_at" gorm:"not null"`
	LastAnsweredAt time.Time    `json:"last_answered_at" gorm:"not null"`
	MasteredAt     *time.Time   `json:"mastered_at,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
