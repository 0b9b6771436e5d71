package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lshigami/certprep/config"
	"github.com/lshigami/certprep/internal/dto"
	"github.com/lshigami/certprep/internal/model"
	"github.com/lshigami/certprep/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, req dto.CategoryCreateDTO) (*dto.CategoryResponseDTO, error)
	ListCategories(ctx context.Context) ([]dto.CategoryResponseDTO, error)
	DeleteCategory(ctx context.Context, id uint) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	areas        map[string]bool
}

func NewCategoryService(categoryRepo repository.CategoryRepository, cfg config.ExamConfig) CategoryService {
	areas := make(map[string]bool, len(cfg.Areas))
	for _, a := range cfg.Areas {
		areas[a.Area] = true
	}
	return &categoryService{categoryRepo: categoryRepo, areas: areas}
}

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CategoryCreateDTO) (*dto.CategoryResponseDTO, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, validationError("category name must not be blank")
	}
	if !s.areas[req.ExamArea] {
		return nil, validationError("unknown exam area %q", req.ExamArea)
	}

	if _, err := s.categoryRepo.FindByName(ctx, name); err == nil {
		return nil, fmt.Errorf("%w: category %q", ErrDuplicate, name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("error checking category name: %w", err)
	}

	category := model.Category{Name: name, ExamArea: req.ExamArea, Description: req.Description}
	if err := s.categoryRepo.Create(ctx, &category); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: category %q", ErrDuplicate, name)
		}
		log.Error().Err(err).Str("name", name).Msg("CreateCategory: Failed to create category")
		return nil, err
	}

	log.Info().Uint("categoryID", category.ID).Str("examArea", category.ExamArea).Msg("CreateCategory: Category created")
	return &dto.CategoryResponseDTO{
		ID:          category.ID,
		Name:        category.Name,
		ExamArea:    category.ExamArea,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
	}, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]dto.CategoryResponseDTO, error) {
	rows, err := s.categoryRepo.FindAllWithQuestionCount(ctx)
	if err != nil {
		log.Error().Err(err).Msg("ListCategories: Failed to get categories with question count from repository")
		return nil, fmt.Errorf("error fetching categories: %w", err)
	}

	dtos := make([]dto.CategoryResponseDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, dto.CategoryResponseDTO{
			ID:            row.Category.ID,
			Name:          row.Category.Name,
			ExamArea:      row.Category.ExamArea,
			Description:   row.Category.Description,
			QuestionCount: row.QuestionCount,
			CreatedAt:     row.Category.CreatedAt,
		})
	}
	return dtos, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id uint) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %d", ErrCategoryNotFound, id)
		}
		log.Error().Err(err).Uint("categoryID", id).Msg("DeleteCategory: Failed to delete category")
		return err
	}
	return nil
}
