package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lshigami/certprep/internal/dto"
	"github.com/lshigami/certprep/internal/model"
	"github.com/lshigami/certprep/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const defaultPracticeHistory = 50

// PracticeService records standalone answers to single questions.
type PracticeService interface {
	SubmitAnswer(ctx context.Context, req dto.PracticeAnswerRequest) (*dto.PracticeAnswerResponse, error)
	ListAttempts(ctx context.Context, userID uint, limit int) ([]dto.PracticeAttemptDTO, error)
}

type practiceService struct {
	db           *gorm.DB
	attemptRepo  repository.PracticeAttemptRepository
	questionRepo repository.QuestionRepository
	reviews      ReviewItemService
	clock        Clock
}

func NewPracticeService(
	db *gorm.DB,
	attemptRepo repository.PracticeAttemptRepository,
	questionRepo repository.QuestionRepository,
	reviews ReviewItemService,
	clock Clock,
) PracticeService {
	return &practiceService{
		db:           db,
		attemptRepo:  attemptRepo,
		questionRepo: questionRepo,
		reviews:      reviews,
		clock:        clock,
	}
}

func (s *practiceService) SubmitAnswer(ctx context.Context, req dto.PracticeAnswerRequest) (*dto.PracticeAnswerResponse, error) {
	if req.SelectedAnswer == nil {
		return nil, validationError("selected_answer is required")
	}
	selected := *req.SelectedAnswer

	question, err := s.questionRepo.FindByID(ctx, req.QuestionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %d", ErrQuestionNotFound, req.QuestionID)
	}
	if err != nil {
		log.Error().Err(err).Uint("questionID", req.QuestionID).Msg("SubmitAnswer: Failed to find question for submission")
		return nil, fmt.Errorf("error fetching question: %w", err)
	}
	if selected < 0 || selected >= len(question.Choices) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidChoice, selected, len(question.Choices))
	}

	attempt := model.PracticeAttempt{
		UserID:         req.UserID,
		QuestionID:     question.ID,
		SelectedAnswer: selected,
		IsCorrect:      selected == question.CorrectAnswer,
		AnsweredAt:     s.clock.Now(),
	}
	attempt.CreatedAt = attempt.AnsweredAt
	attempt.UpdatedAt = attempt.AnsweredAt

	var item *model.ReviewItem
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.attemptRepo.WithTx(tx).Create(ctx, &attempt); err != nil {
			return fmt.Errorf("failed to create practice attempt: %w", err)
		}
		var err error
		item, err = s.reviews.OnAnswer(ctx, tx, req.UserID, question.ID, attempt.IsCorrect, attempt.AnsweredAt)
		return err
	})
	if err != nil {
		log.Error().Err(err).Uint("userID", req.UserID).Uint("questionID", question.ID).Msg("SubmitAnswer: Transaction failed")
		return nil, err
	}

	resp := &dto.PracticeAnswerResponse{
		AttemptID:      attempt.ID,
		QuestionID:     question.ID,
		SelectedAnswer: selected,
		CorrectAnswer:  question.CorrectAnswer,
		IsCorrect:      attempt.IsCorrect,
		Explanation:    question.Explanation,
		AnsweredAt:     attempt.AnsweredAt,
	}
	if item != nil {
		status := string(item.Status)
		resp.ReviewStatus = &status
	}
	return resp, nil
}

func (s *practiceService) ListAttempts(ctx context.Context, userID uint, limit int) ([]dto.PracticeAttemptDTO, error) {
	if limit <= 0 {
		limit = defaultPracticeHistory
	}
	attempts, err := s.attemptRepo.FindByUser(ctx, userID, limit)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("ListAttempts: Failed to fetch practice attempts")
		return nil, fmt.Errorf("error fetching practice attempts: %w", err)
	}

	out := make([]dto.PracticeAttemptDTO, 0, len(attempts))
	for _, a := range attempts {
		out = append(out, dto.PracticeAttemptDTO{
			ID:             a.ID,
			QuestionID:     a.QuestionID,
			Content:        a.Question.Content,
			Topic:          a.Question.Topic,
			SelectedAnswer: a.SelectedAnswer,
			IsCorrect:      a.IsCorrect,
			AnsweredAt:     a.AnsweredAt,
		})
	}
	return out, nil
}
