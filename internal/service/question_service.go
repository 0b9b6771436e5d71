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

type QuestionService interface {
	CreateQuestion(ctx context.Context, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	GetQuestion(ctx context.Context, id uint) (*dto.QuestionResponseDTO, error)
	ListQuestions(ctx context.Context, filter dto.QuestionFilter) ([]dto.QuestionResponseDTO, error)
	UpdateQuestion(ctx context.Context, id uint, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	DeleteQuestion(ctx context.Context, id uint) error
	// Coverage reports, per exam area in quota order, whether the catalog can fill the quota.
	Coverage(ctx context.Context) ([]dto.AreaCoverageDTO, error)
}

type questionService struct {
	repo         repository.QuestionRepository
	categoryRepo repository.CategoryRepository
	areas        []config.AreaQuota
}

func NewQuestionService(repo repository.QuestionRepository, categoryRepo repository.CategoryRepository, cfg config.ExamConfig) QuestionService {
	return &questionService{repo: repo, categoryRepo: categoryRepo, areas: cfg.AreaQuotas()}
}

func (s *questionService) Coverage(ctx context.Context) ([]dto.AreaCoverageDTO, error) {
	coverage := make([]dto.AreaCoverageDTO, 0, len(s.areas))
	for _, quota := range s.areas {
		available, err := s.repo.CountByArea(ctx, quota.Area)
		if err != nil {
			log.Error().Err(err).Str("area", quota.Area).Msg("Coverage: Failed to count questions")
			return nil, fmt.Errorf("error counting questions for area %q: %w", quota.Area, err)
		}
		coverage = append(coverage, dto.AreaCoverageDTO{
			Area:      quota.Area,
			Required:  quota.Count,
			Available: int(available),
			Ready:     int(available) >= quota.Count,
		})
	}
	return coverage, nil
}

func (s *questionService) CreateQuestion(ctx context.Context, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	category, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	question := model.Question{}
	applyQuestionFields(&question, req)
	if err := s.repo.Create(ctx, &question); err != nil {
		log.Error().Err(err).Msg("CreateQuestion: Failed to create question")
		return nil, err
	}
	question.Category = *category
	return toQuestionResponse(&question), nil
}

func (s *questionService) GetQuestion(ctx context.Context, id uint) (*dto.QuestionResponseDTO, error) {
	question, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, questionLookupError(id, err)
	}
	return toQuestionResponse(question), nil
}

func (s *questionService) ListQuestions(ctx context.Context, filter dto.QuestionFilter) ([]dto.QuestionResponseDTO, error) {
	questions, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("ListQuestions: Failed to fetch questions")
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}
	out := make([]dto.QuestionResponseDTO, 0, len(questions))
	for i := range questions {
		out = append(out, *toQuestionResponse(&questions[i]))
	}
	return out, nil
}

// UpdateQuestion replaces a question. Exams already started keep their captured answer keys.
func (s *questionService) UpdateQuestion(ctx context.Context, id uint, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	question, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, questionLookupError(id, err)
	}
	category, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	applyQuestionFields(question, req)
	if err := s.repo.Update(ctx, question); err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("UpdateQuestion: Failed to update question")
		return nil, err
	}
	question.Category = *category
	return toQuestionResponse(question), nil
}

func (s *questionService) DeleteQuestion(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return questionLookupError(id, err)
	}
	return nil
}

func (s *questionService) validate(ctx context.Context, req dto.QuestionCreateDTO) (*model.Category, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, validationError("question content must not be blank")
	}
	if len(req.Choices) < 2 {
		return nil, validationError("a question needs at least two choices, got %d", len(req.Choices))
	}
	if req.CorrectAnswer == nil || *req.CorrectAnswer < 0 || *req.CorrectAnswer >= len(req.Choices) {
		return nil, validationError("correct_answer must index into the %d choices", len(req.Choices))
	}

	category, err := s.categoryRepo.FindByID(ctx, req.CategoryID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %d", ErrCategoryNotFound, req.CategoryID)
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching category: %w", err)
	}
	return category, nil
}

func applyQuestionFields(q *model.Question, req dto.QuestionCreateDTO) {
	q.CategoryID = req.CategoryID
	q.Content = req.Content
	q.Choices = append([]string(nil), req.Choices...)
	q.CorrectAnswer = *req.CorrectAnswer
	q.Explanation = req.Explanation
	q.Topic = req.Topic
	q.Difficulty = req.Difficulty
	if q.Difficulty == 0 {
		q.Difficulty = 1
	}
}

func toQuestionResponse(q *model.Question) *dto.QuestionResponseDTO {
	return &dto.QuestionResponseDTO{
		ID:            q.ID,
		CategoryID:    q.CategoryID,
		CategoryName:  q.Category.Name,
		ExamArea:      q.Category.ExamArea,
		Content:       q.Content,
		Choices:       q.Choices,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
		Topic:         q.Topic,
		Difficulty:    q.Difficulty,
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}
}

func questionLookupError(id uint, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %d", ErrQuestionNotFound, id)
	}
	return fmt.Errorf("error fetching question %d: %w", id, err)
}
