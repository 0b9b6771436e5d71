package repository

import (
	"context"

	"github.com/lshigami/certprep/internal/dto"
	"github.com/lshigami/certprep/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(ctx context.Context, question *model.Question) error
	FindByID(ctx context.Context, id uint) (*model.Question, error)
	FindAll(ctx context.Context, filter dto.QuestionFilter) ([]model.Question, error)
	// SampleByArea draws up to count random questions whose category belongs
	// to the exam area, skipping the excluded ids.
	SampleByArea(ctx context.Context, area string, count int, exclude []uint) ([]model.Question, error)
	// CountByArea counts live questions whose category belongs to the exam area.
	CountByArea(ctx context.Context, area string) (int64, error)
	Update(ctx context.Context, question *model.Question) error
	Delete(ctx context.Context, id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Omit("Category").Create(question).Error
}

func (r *questionRepository) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).Preload("Category").First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindAll(ctx context.Context, filter dto.QuestionFilter) ([]model.Question, error) {
	var questions []model.Question
	query := r.db.WithContext(ctx).Preload("Category")
	if filter.CategoryID != nil {
		query = query.Where("questions.category_id = ?", *filter.CategoryID)
	}
	if filter.ExamArea != "" {
		query = r.joinArea(query, filter.ExamArea)
	}
	if filter.Topic != "" {
		query = query.Where("questions.topic = ?", filter.Topic)
	}
	err := query.Order("questions.id ASC").Find(&questions).Error
	return questions, err
}

func (r *questionRepository) SampleByArea(ctx context.Context, area string, count int, exclude []uint) ([]model.Question, error) {
	var questions []model.Question
	if count <= 0 {
		return questions, nil
	}
	query := r.joinArea(r.db.WithContext(ctx).Preload("Category"), area)
	if len(exclude) > 0 {
		query = query.Where("questions.id NOT IN ?", exclude)
	}
	err := query.Order("RANDOM()").Limit(count).Find(&questions).Error
	return questions, err
}

func (r *questionRepository) CountByArea(ctx context.Context, area string) (int64, error) {
	var count int64
	err := r.joinArea(r.db.WithContext(ctx).Model(&model.Question{}), area).Count(&count).Error
	return count, err
}

func (r *questionRepository) Update(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Omit("Category").Save(question).Error
}

func (r *questionRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Question{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *questionRepository) joinArea(query *gorm.DB, area string) *gorm.DB {
	return query.
		Joins("JOIN categories ON categories.id = questions.category_id AND categories.deleted_at IS NULL").
		Where("categories.exam_area = ?", area)
}
