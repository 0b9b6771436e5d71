package repository

import (
	"context"
	"time"

	"github.com/lshigami/certprep/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewItemRepository interface {
	WithTx(tx *gorm.DB) ReviewItemRepository
	// FindByUserAndQuestionForUpdate locks the item row until the transaction ends.
	FindByUserAndQuestionForUpdate(ctx context.Context, userID, questionID uint) (*model.ReviewItem, error)
	FindByUserAndQuestion(ctx context.Context, userID, questionID uint) (*model.ReviewItem, error)
	// UpsertWrong creates an active item or reopens the existing one. It never
	// touches first_wrong_at of an existing row.
	UpsertWrong(ctx context.Context, userID, questionID uint, at time.Time) error
	UpdateProgress(ctx context.Context, item *model.ReviewItem) error
	FindByUser(ctx context.Context, userID uint, status *model.ReviewStatus) ([]model.ReviewItem, error)
	FindDueWithQuestions(ctx context.Context, userID uint, limit int) ([]model.ReviewItem, error)
	QuestionIDsByUser(ctx context.Context, userID uint) ([]uint, error)
	CountByStatus(ctx context.Context, userID uint) (map[model.ReviewStatus]int, error)
}

type reviewItemRepository struct {
	db *gorm.DB
}

func NewReviewItemRepository(db *gorm.DB) ReviewItemRepository {
	return &reviewItemRepository{db: db}
}

func (r *reviewItemRepository) WithTx(tx *gorm.DB) ReviewItemRepository {
	return &reviewItemRepository{db: tx}
}

func (r *reviewItemRepository) FindByUserAndQuestionForUpdate(ctx context.Context, userID, questionID uint) (*model.ReviewItem, error) {
	var item model.ReviewItem
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND question_id = ?", userID, questionID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *reviewItemRepository) FindByUserAndQuestion(ctx context.Context, userID, questionID uint) (*model.ReviewItem, error) {
	var item model.ReviewItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND question_id = ?", userID, questionID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *reviewItemRepository) UpsertWrong(ctx context.Context, userID, questionID uint, at time.Time) error {
	item := model.ReviewItem{
		UserID:         userID,
		QuestionID:     questionID,
		CorrectCount:   0,
		Status:         model.ReviewStatusActive,
		FirstWrongAt:   at,
		LastAnsweredAt: at,
		CreatedAt:      at,
		UpdatedAt:      at,
	}
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "question_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"status":           string(model.ReviewStatusActive),
				"correct_count":    0,
				"last_answered_at": at,
				"mastered_at":      nil,
				"updated_at":       at,
			}),
		}).
		Create(&item).Error
}

func (r *reviewItemRepository) UpdateProgress(ctx context.Context, item *model.ReviewItem) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{SkipHooks: true}).
		Model(item).
		Select("correct_count", "status", "last_answered_at", "mastered_at", "updated_at").
		Updates(item).Error
}

func (r *reviewItemRepository) FindByUser(ctx context.Context, userID uint, status *model.ReviewStatus) ([]model.ReviewItem, error) {
	var items []model.ReviewItem
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Order("last_answered_at DESC").Find(&items).Error
	return items, err
}

// FindDueWithQuestions returns active items, least recently answered first.
func (r *reviewItemRepository) FindDueWithQuestions(ctx context.Context, userID uint, limit int) ([]model.ReviewItem, error) {
	var items []model.ReviewItem
	query := r.db.WithContext(ctx).
		Preload("Question").
		Joins("JOIN questions ON questions.id = review_items.question_id AND questions.deleted_at IS NULL").
		Where("review_items.user_id = ? AND review_items.status = ?", userID, model.ReviewStatusActive).
		Order("review_items.last_answered_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&items).Error
	return items, err
}

func (r *reviewItemRepository) QuestionIDsByUser(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&model.ReviewItem{}).
		Where("user_id = ?", userID).
		Pluck("question_id", &ids).Error
	return ids, err
}

func (r *reviewItemRepository) CountByStatus(ctx context.Context, userID uint) (map[model.ReviewStatus]int, error) {
	var rows []struct {
		Status model.ReviewStatus
		Count  int
	}
	err := r.db.WithContext(ctx).
		Model(&model.ReviewItem{}).
		Select("status, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[model.ReviewStatus]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
