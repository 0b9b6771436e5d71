package repository

import (
	"context"

	"github.com/lshigami/certprep/internal/model"
	"gorm.io/gorm"
)

type PracticeAttemptRepository interface {
	WithTx(tx *gorm.DB) PracticeAttemptRepository
	Create(ctx context.Context, attempt *model.PracticeAttempt) error
	FindByUser(ctx context.Context, userID uint, limit int) ([]model.PracticeAttempt, error)
}

type practiceAttemptRepository struct {
	db *gorm.DB
}

func NewPracticeAttemptRepository(db *gorm.DB) PracticeAttemptRepository {
	return &practiceAttemptRepository{db: db}
}

func (r *practiceAttemptRepository) WithTx(tx *gorm.DB) PracticeAttemptRepository {
	return &practiceAttemptRepository{db: tx}
}

func (r *practiceAttemptRepository) Create(ctx context.Context, attempt *model.PracticeAttempt) error {
	return r.db.WithContext(ctx).Omit("Question").Create(attempt).Error
}

func (r *practiceAttemptRepository) FindByUser(ctx context.Context, userID uint, limit int) ([]model.PracticeAttempt, error) {
	var attempts []model.PracticeAttempt
	query := r.db.WithContext(ctx).
		Preload("Question", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Where("user_id = ?", userID).
		Order("answered_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&attempts).Error
	return attempts, err
}
