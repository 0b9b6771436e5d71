package dto

import "time"

// CategoryCreateDTO is used by admins to create a question category.
type CategoryCreateDTO struct {
	Name        string `json:"name" binding:"required,max=100"`
	ExamArea    string `json:"exam_area" binding:"required"`
	Description string `json:"description,omitempty"`
}

// CategoryResponseDTO is a category with its question count.
type CategoryResponseDTO struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	ExamArea      string    `json:"exam_area"`
	Description   string    `json:"description,omitempty"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// QuestionCreateDTO is used by admins to create or replace a question.
type QuestionCreateDTO struct {
	CategoryID    uint     `json:"category_id" binding:"required"`
	Content       string   `json:"content" binding:"required"`
	Choices       []string `json:"choices" binding:"required,min=2,max=10,dive,required"`
	CorrectAnswer *int     `json:"correct_answer" binding:"required,min=0"`
	Explanation   string   `json:"explanation,omitempty"`
	Topic         string   `json:"topic,omitempty"`
	Difficulty    int      `json:"difficulty,omitempty" binding:"omitempty,min=1,max=5"`
}

// QuestionResponseDTO is the admin view of a question, including its answer key.
type QuestionResponseDTO struct {
	ID            uint      `json:"id"`
	CategoryID    uint      `json:"category_id"`
	CategoryName  string    `json:"category_name,omitempty"`
	ExamArea      string    `json:"exam_area,omitempty"`
	Content       string    `json:"content"`
	Choices       []string  `json:"choices"`
	CorrectAnswer int       `json:"correct_answer"`
	Explanation   string    `json:"explanation,omitempty"`
	Topic         string    `json:"topic,omitempty"`
	Difficulty    int       `json:"difficulty,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// QuestionFilter narrows admin question listings.
type QuestionFilter struct {
	CategoryID *uint
	ExamArea   string
	Topic      string
}

// AreaCoverageDTO compares an exam area's quota with the questions available for it.
type AreaCoverageDTO struct {
	Area      string `json:"area"`
	Required  int    `json:"required"`
	Available int    `json:"available"`
	Ready     bool   `json:"ready"`
}
