package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/lshigami/certprep/internal/model"
	"gorm.io/gorm"
)

type MockExamAnswerRepository interface {
	WithTx(tx *gorm.DB) MockExamAnswerRepository
	FindByExamAndNumber(ctx context.Context, examID uuid.UUID, questionNumber int) (*model.MockExamAnswer, error)
	FindByExam(ctx context.Context, examID uuid.UUID) ([]model.MockExamAnswer, error)
	UpdateAnswer(ctx context.Context, answer *model.MockExamAnswer) error
}

type mockExamAnswerRepository struct {
	db *gorm.DB
}

func NewMockExamAnswerRepository(db *gorm.DB) MockExamAnswerRepository {
	return &mockExamAnswerRepository{db: db}
}

func (r *mockExamAnswerRepository) WithTx(tx *gorm.DB) MockExamAnswerRepository {
	return &mockExamAnswerRepository{db: tx}
}

func (r *mockExamAnswerRepository) FindByExamAndNumber(ctx context.Context, examID uuid.UUID, questionNumber int) (*model.MockExamAnswer, error) {
	var answer model.MockExamAnswer
	err := r.db.WithContext(ctx).
		Where("exam_id = ? AND question_number = ?", examID, questionNumber).
		First(&answer).Error
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *mockExamAnswerRepository) FindByExam(ctx context.Context, examID uuid.UUID) ([]model.MockExamAnswer, error) {
	var answers []model.MockExamAnswer
	err := r.db.WithContext(ctx).
		Where("exam_id = ?", examID).
		Order("question_number ASC").
		Find(&answers).Error
	return answers, err
}

// UpdateAnswer overwrites the learner's choice for a slot; the snapshot columns are left alone.
// updated_at is written as given, not stamped by gorm.
func (r *mockExamAnswerRepository) UpdateAnswer(ctx context.Context, answer *model.MockExamAnswer) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{SkipHooks: true}).
		Model(answer).
		Select("selected_answer", "is_correct", "answered_at", "updated_at").
		Updates(answer).Error
}
