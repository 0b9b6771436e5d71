package model

import (
	"time"

	"gorm.io/gorm"
)

// Category is a subject grouping of questions. ExamArea names the exam area
// whose quota the category's questions count towards. Names are unique among
// categories that are not deleted.
type Category struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `json:"name" gorm:"not null;uniqueIndex:idx_categories_live_name,where:deleted_at IS NULL"`
	ExamArea    string         `json:"exam_area" gorm:"not null;index"`
	Description string         `json:"description,omitempty"`
	Questions   []Question     `json:"questions,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
