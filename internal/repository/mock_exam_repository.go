package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/lshigami/certprep/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MockExamRepository interface {
	// WithTx returns a repository bound to the given transaction.
	WithTx(tx *gorm.DB) MockExamRepository
	Create(ctx context.Context, exam *model.MockExam) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.MockExam, error)
	// FindByIDForUpdate locks the exam row exclusively until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.MockExam, error)
	// FindByIDForShare locks the exam row against concurrent finishing.
	FindByIDForShare(ctx context.Context, id uuid.UUID) (*model.MockExam, error)
	FindByIDWithDetails(ctx context.Context, id uuid.UUID) (*model.MockExam, error)
	FindAllByUser(ctx context.Context, userID uint) ([]model.MockExam, error)
	FindFinishedByUser(ctx context.Context, userID uint) ([]model.MockExam, error)
	SaveResult(ctx context.Context, exam *model.MockExam) error
	UpdateAnalysis(ctx context.Context, id uuid.UUID, analysis string) error
}

type mockExamRepository struct {
	db *gorm.DB
}

func NewMockExamRepository(db *gorm.DB) MockExamRepository {
	return &mockExamRepository{db: db}
}

func (r *mockExamRepository) WithTx(tx *gorm.DB) MockExamRepository {
	return &mockExamRepository{db: tx}
}

// Create inserts the exam together with its populated Answers slots.
func (r *mockExamRepository) Create(ctx context.Context, exam *model.MockExam) error {
	return r.db.WithContext(ctx).Omit("Answers.Question").Create(exam).Error
}

func (r *mockExamRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.MockExam, error) {
	var exam model.MockExam
	if err := r.db.WithContext(ctx).First(&exam, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *mockExamRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.MockExam, error) {
	return r.findLocked(ctx, id, "UPDATE")
}

func (r *mockExamRepository) FindByIDForShare(ctx context.Context, id uuid.UUID) (*model.MockExam, error) {
	return r.findLocked(ctx, id, "SHARE")
}

func (r *mockExamRepository) findLocked(ctx context.Context, id uuid.UUID, strength string) (*model.MockExam, error) {
	var exam model.MockExam
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: strength}).
		First(&exam, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *mockExamRepository) FindByIDWithDetails(ctx context.Context, id uuid.UUID) (*model.MockExam, error) {
	var exam model.MockExam
	err := r.db.WithContext(ctx).
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("mock_exam_answers.question_number ASC")
		}).
		Preload("Answers.Question", func(db *gorm.DB) *gorm.DB {
			return db.Unscoped()
		}).
		First(&exam, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *mockExamRepository) FindAllByUser(ctx context.Context, userID uint) ([]model.MockExam, error) {
	var exams []model.MockExam
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("started_at DESC").
		Find(&exams).Error
	return exams, err
}

// FindFinishedByUser returns finished exams oldest first.
func (r *mockExamRepository) FindFinishedByUser(ctx context.Context, userID uint) ([]model.MockExam, error) {
	var exams []model.MockExam
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, model.ExamStatusFinished).
		Order("started_at ASC").
		Find(&exams).Error
	return exams, err
}

// SaveResult writes the terminal fields of a finished exam, updated_at included as given.
func (r *mockExamRepository) SaveResult(ctx context.Context, exam *model.MockExam) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{SkipHooks: true}).
		Model(exam).
		Omit(clause.Associations).
		Select("finished_at", "correct_count", "score", "passed", "category_scores", "status", "updated_at").
		Updates(exam).Error
}

func (r *mockExamRepository) UpdateAnalysis(ctx context.Context, id uuid.UUID, analysis string) error {
	return r.db.WithContext(ctx).
		Model(&model.MockExam{}).
		Where("id = ?", id).
		Update("ai_analysis", analysis).Error
}
