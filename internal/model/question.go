package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Question struct {
	ID            uint                        `gorm:"primarykey" json:"id"`
	CategoryID    uint                        `json:"category_id" gorm:"not null;index"`
	Category      Category                    `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Content       string                      `json:"content" gorm:"type:text;not null"`
	Choices       datatypes.JSONSlice[string] `json:"choices" gorm:"not null"`
	CorrectAnswer int                         `json:"correct_answer" gorm:"not null"` // 0-based index into Choices
	Explanation   string                      `json:"explanation,omitempty" gorm:"type:text"`
	Topic         string                      `json:"topic,omitempty" gorm:"index"`
	Difficulty    int                         `json:"difficulty,omitempty" gorm:"default:1"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`
	DeletedAt     gorm.DeletedAt              `gorm:"index" json:"-"`
}
