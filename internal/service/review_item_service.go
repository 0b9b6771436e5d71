package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/certprep/config"
	"github.com/lshigami/certprep/internal/dto"
	"github.com/lshigami/certprep/internal/model"
	"github.com/lshigami/certprep/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const defaultReviewBatch = 20

// ReviewItemService keeps one mastery record per (user, question) from answer outcomes.
type ReviewItemService interface {
	// OnAnswer applies one answer event. A nil tx runs on the service's own connection.
	// The returned item is nil when a correct answer had nothing to track.
	OnAnswer(ctx context.Context, tx *gorm.DB, userID, questionID uint, isCorrect bool, at time.Time) (*model.ReviewItem, error)
	Backfill(ctx context.Context, userID uint) (*dto.BackfillResponse, error)
	ListItems(ctx context.Context, userID uint, status string) ([]dto.ReviewItemDTO, error)
	Stats(ctx context.Context, userID uint) (*dto.ReviewStatsResponse, error)
	ReviewQuestions(ctx context.Context, userID uint, limit int) ([]dto.ReviewQuestionDTO, error)
}

type reviewItemService struct {
	db               *gorm.DB
	reviewRepo       repository.ReviewItemRepository
	examRepo         repository.MockExamRepository
	answerRepo       repository.MockExamAnswerRepository
	masteryThreshold int
}

func NewReviewItemService(
	db *gorm.DB,
	reviewRepo repository.ReviewItemRepository,
	examRepo repository.MockExamRepository,
	answerRepo repository.MockExamAnswerRepository,
	cfg config.ExamConfig,
) ReviewItemService {
	threshold := cfg.MasteryThreshold
	if threshold <= 0 {
		threshold = config.DefaultMasteryThreshold
	}
	return &reviewItemService{
		db:               db,
		reviewRepo:       reviewRepo,
		examRepo:         examRepo,
		answerRepo:       answerRepo,
		masteryThreshold: threshold,
	}
}

func (s *reviewItemService) OnAnswer(ctx context.Context, tx *gorm.DB, userID, questionID uint, isCorrect bool, at time.Time) (*model.ReviewItem, error) {
	repo := s.reviewRepo
	if tx != nil {
		repo = repo.WithTx(tx)
	}

	if !isCorrect {
		if err := repo.UpsertWrong(ctx, userID, questionID, at); err != nil {
			return nil, fmt.Errorf("failed to upsert review item: %w", err)
		}
		item, err := repo.FindByUserAndQuestion(ctx, userID, questionID)
		if err != nil {
			return nil, fmt.Errorf("failed to reload review item: %w", err)
		}
		return item, nil
	}

	item, err := repo.FindByUserAndQuestionForUpdate(ctx, userID, questionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load review item: %w", err)
	}

	item.LastAnsweredAt = at
	item.UpdatedAt = at
	if item.Status == model.ReviewStatusActive {
		item.CorrectCount++
		if item.CorrectCount >= s.masteryThreshold {
			masteredAt := at
			item.Status = model.ReviewStatusMastered
			item.MasteredAt = &masteredAt
			log.Info().Uint("userID", userID).Uint("questionID", questionID).Msg("OnAnswer: Review item mastered")
		}
	}

	if err := repo.UpdateProgress(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update review item: %w", err)
	}
	return item, nil
}

func (s *reviewItemService) Backfill(ctx context.Context, userID uint) (*dto.BackfillResponse, error) {
	resp := &dto.BackfillResponse{UserID: userID}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existingIDs, err := s.reviewRepo.WithTx(tx).QuestionIDsByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to load existing review items: %w", err)
		}
		tracked := make(map[uint]bool, len(existingIDs))
		for _, id := range existingIDs {
			tracked[id] = true
		}

		exams, err := s.examRepo.WithTx(tx).FindFinishedByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to load finished exams: %w", err)
		}

		answerRepo := s.answerRepo.WithTx(tx)
		for _, exam := range exams {
			resp.ExamsScanned++

			answers, err := answerRepo.FindByExam(ctx, exam.ID)
			if err != nil {
				return fmt.Errorf("failed to load answers of exam %s: %w", exam.ID, err)
			}
			sortByAnsweredAt(answers)

			for _, a := range answers {
				if !a.IsAnswered() || a.IsCorrect == nil || *a.IsCorrect || tracked[a.QuestionID] {
					continue
				}
				at := exam.StartedAt
				if a.AnsweredAt != nil {
					at = *a.AnsweredAt
				}
				if _, err := s.OnAnswer(ctx, tx, userID, a.QuestionID, false, at); err != nil {
					return err
				}
				tracked[a.QuestionID] = true
				resp.ItemsCreated++
			}
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Backfill: Failed to rebuild review items")
		return nil, err
	}

	log.Info().Uint("userID", userID).Int("examsScanned", resp.ExamsScanned).Int("itemsCreated", resp.ItemsCreated).
		Msg("Backfill: Review items rebuilt")
	return resp, nil
}

// sortByAnsweredAt orders answered slots chronologically, unanswered last.
func sortByAnsweredAt(answers []model.MockExamAnswer) {
	sort.SliceStable(answers, func(i, j int) bool {
		ai, aj := answers[i].AnsweredAt, answers[j].AnsweredAt
		switch {
		case ai == nil:
			return false
		case aj == nil:
			return true
		default:
			return ai.Before(*aj)
		}
	})
}

func (s *reviewItemService) ListItems(ctx context.Context, userID uint, status string) ([]dto.ReviewItemDTO, error) {
	var filter *model.ReviewStatus
	switch model.ReviewStatus(status) {
	case "":
	case model.ReviewStatusActive, model.ReviewStatusMastered:
		st := model.ReviewStatus(status)
		filter = &st
	default:
		return nil, validationError("unknown review status %q", status)
	}

	items, err := s.reviewRepo.FindByUser(ctx, userID, filter)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("ListItems: Failed to fetch review items")
		return nil, fmt.Errorf("error fetching review items: %w", err)
	}

	dtos := make([]dto.ReviewItemDTO, 0, len(items))
	if err := copier.Copy(&dtos, &items); err != nil {
		return nil, fmt.Errorf("failed to map review items: %w", err)
	}
	return dtos, nil
}

func (s *reviewItemService) Stats(ctx context.Context, userID uint) (*dto.ReviewStatsResponse, error) {
	counts, err := s.reviewRepo.CountByStatus(ctx, userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Stats: Failed to count review items")
		return nil, fmt.Errorf("error counting review items: %w", err)
	}
	active := counts[model.ReviewStatusActive]
	mastered := counts[model.ReviewStatusMastered]
	return &dto.ReviewStatsResponse{
		UserID:           userID,
		Active:           active,
		Mastered:         mastered,
		Total:            active + mastered,
		MasteryThreshold: s.masteryThreshold,
	}, nil
}

func (s *reviewItemService) ReviewQuestions(ctx context.Context, userID uint, limit int) ([]dto.ReviewQuestionDTO, error) {
	if limit <= 0 {
		limit = defaultReviewBatch
	}
	items, err := s.reviewRepo.FindDueWithQuestions(ctx, userID, limit)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("ReviewQuestions: Failed to fetch due review items")
		return nil, fmt.Errorf("error fetching review questions: %w", err)
	}

	out := make([]dto.ReviewQuestionDTO, 0, len(items))
	for _, item := range items {
		out = append(out, dto.ReviewQuestionDTO{
			ReviewItemID:   item.ID,
			QuestionID:     item.QuestionID,
			Content:        item.Question.Content,
			Choices:        item.Question.Choices,
			Topic:          item.Question.Topic,
			CorrectCount:   item.CorrectCount,
			LastAnsweredAt: item.LastAnsweredAt,
		})
	}
	return out, nil
}
