package repository

import (
	"context"

	"github.com/lshigami/certprep/internal/model"
	"gorm.io/gorm"
)

// CategoryWithCount is a category joined with the number of live questions in it.
type CategoryWithCount struct {
	model.Category
	QuestionCount int
}

type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	FindByID(ctx context.Context, id uint) (*model.Category, error)
	FindByName(ctx context.Context, name string) (*model.Category, error)
	FindAllWithQuestionCount(ctx context.Context) ([]CategoryWithCount, error)
	Delete(ctx context.Context, id uint) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *model.Category) error {
	return translateWriteError(r.db.WithContext(ctx).Create(category).Error)
}

func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*model.Category, error) {
	var category model.Category
	err := r.db.WithContext(ctx).First(&category, id).Error
	return &category, err
}

func (r *categoryRepository) FindByName(ctx context.Context, name string) (*model.Category, error) {
	var category model.Category
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error
	return &category, err
}

func (r *categoryRepository) FindAllWithQuestionCount(ctx context.Context) ([]CategoryWithCount, error) {
	var results []CategoryWithCount
	err := r.db.WithContext(ctx).Model(&model.Category{}).
		Select("categories.*, (SELECT COUNT(*) FROM questions WHERE questions.category_id = categories.id AND questions.deleted_at IS NULL) as question_count").
		Where("categories.deleted_at IS NULL").
		Order("categories.exam_area ASC, categories.name ASC").
		Scan(&results).Error
	return results, err
}

func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
