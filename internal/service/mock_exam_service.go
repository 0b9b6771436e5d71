package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/certprep/config"
	"github.com/lshigami/certprep/internal/dto"
	"github.com/lshigami/certprep/internal/model"
	"github.com/lshigami/certprep/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// analysisSettleWindow bounds how long after finishing a result without an
// analysis is kept out of the result cache.
const analysisSettleWindow = 2 * time.Minute

// MockExamService runs timed mock exams from start to scored result.
type MockExamService interface {
	StartExam(ctx context.Context, userID uint) (*dto.StartExamResponse, error)
	RecordAnswer(ctx context.Context, examID uuid.UUID, userID uint, questionNumber, selected int) (*dto.RecordAnswerResponse, error)
	// FinishExam is idempotent: finishing a finished exam returns its stored result.
	FinishExam(ctx context.Context, examID uuid.UUID, userID uint) (*dto.ExamResultResponse, error)
	GetExam(ctx context.Context, examID uuid.UUID, userID uint) (*dto.ExamDetailResponse, error)
	GetResult(ctx context.Context, examID uuid.UUID, userID uint) (*dto.ExamResultResponse, error)
	ListExams(ctx context.Context, userID uint) ([]dto.ExamSummaryDTO, error)
	ExamConfig() dto.ExamConfigResponse
}

type mockExamService struct {
	db         *gorm.DB
	examRepo   repository.MockExamRepository
	answerRepo repository.MockExamAnswerRepository
	sampler    *QuestionSampler
	scorer     *Scorer
	analysis   AnalysisService
	reviews    ReviewItemService
	cache      ExamResultCache
	clock      Clock
	cfg        config.ExamConfig
}

func NewMockExamService(
	db *gorm.DB,
	examRepo repository.MockExamRepository,
	answerRepo repository.MockExamAnswerRepository,
	sampler *QuestionSampler,
	scorer *Scorer,
	analysis AnalysisService,
	reviews ReviewItemService,
	cache ExamResultCache,
	clock Clock,
	cfg config.ExamConfig,
) MockExamService {
	return &mockExamService{
		db:         db,
		examRepo:   examRepo,
		answerRepo: answerRepo,
		sampler:    sampler,
		scorer:     scorer,
		analysis:   analysis,
		reviews:    reviews,
		cache:      cache,
		clock:      clock,
		cfg:        cfg,
	}
}

func (s *mockExamService) StartExam(ctx context.Context, userID uint) (*dto.StartExamResponse, error) {
	sampled, err := s.sampler.Sample(ctx)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("StartExam: Failed to sample questions")
		return nil, err
	}

	now := s.clock.Now()
	exam := model.MockExam{
		UserID:         userID,
		StartedAt:      now,
		TotalQuestions: len(sampled),
		Status:         model.ExamStatusInProgress,
		Answers:        make([]model.MockExamAnswer, 0, len(sampled)),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for i, sq := range sampled {
		exam.Answers = append(exam.Answers, model.MockExamAnswer{
			CreatedAt:      now,
			UpdatedAt:      now,
			QuestionID:     sq.Question.ID,
			QuestionNumber: i,
			ExamArea:       sq.Area,
			CategoryName:   sq.Question.Category.Name,
			Topic:          sq.Question.Topic,
			CorrectAnswer:  sq.Question.CorrectAnswer,
			ChoiceCount:    len(sq.Question.Choices),
		})
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.examRepo.WithTx(tx).Create(ctx, &exam); err != nil {
			return fmt.Errorf("failed to create mock exam record: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("StartExam: Transaction failed for creating exam and its slots")
		return nil, err
	}

	questions := make([]dto.ExamQuestionDTO, 0, len(sampled))
	for i, sq := range sampled {
		questions = append(questions, dto.ExamQuestionDTO{
			QuestionNumber: i,
			QuestionID:     sq.Question.ID,
			Content:        sq.Question.Content,
			Choices:        sq.Question.Choices,
			ExamArea:       sq.Area,
			CategoryName:   sq.Question.Category.Name,
			Topic:          sq.Question.Topic,
		})
	}

	log.Info().Str("examID", exam.ID.String()).Uint("userID", userID).Int("questions", exam.TotalQuestions).
		Msg("StartExam: Mock exam started")
	return &dto.StartExamResponse{
		ExamID:           exam.ID,
		UserID:           userID,
		StartedAt:        exam.StartedAt,
		TotalQuestions:   exam.TotalQuestions,
		TimeLimitMinutes: int(s.cfg.TimeLimit.Minutes()),
		Questions:        questions,
	}, nil
}

func (s *mockExamService) RecordAnswer(ctx context.Context, examID uuid.UUID, userID uint, questionNumber, selected int) (*dto.RecordAnswerResponse, error) {
	var resp *dto.RecordAnswerResponse

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exam, err := s.examRepo.WithTx(tx).FindByIDForShare(ctx, examID)
		if err != nil {
			return examLookupError(examID, err)
		}
		if exam.UserID != userID {
			return ErrNotOwner
		}
		if exam.IsFinished() {
			return ErrExamAlreadyFinished
		}
		if questionNumber < 0 || questionNumber >= exam.TotalQuestions {
			return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidOrdinal, questionNumber, exam.TotalQuestions)
		}

		answerRepo := s.answerRepo.WithTx(tx)
		slot, err := answerRepo.FindByExamAndNumber(ctx, examID, questionNumber)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: slot %d missing", ErrInvalidOrdinal, questionNumber)
		}
		if err != nil {
			return fmt.Errorf("failed to load exam slot: %w", err)
		}
		if selected < 0 || selected >= slot.ChoiceCount {
			return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidChoice, selected, slot.ChoiceCount)
		}

		// Re-saving the same choice is not a new answer for review tracking.
		unchanged := slot.SelectedAnswer != nil && *slot.SelectedAnswer == selected

		now := s.clock.Now()
		isCorrect := selected == slot.CorrectAnswer
		slot.SelectedAnswer = &selected
		slot.IsCorrect = &isCorrect
		slot.AnsweredAt = &now
		slot.UpdatedAt = now
		if err := answerRepo.UpdateAnswer(ctx, slot); err != nil {
			return fmt.Errorf("failed to save answer: %w", err)
		}

		if !unchanged {
			if _, err := s.reviews.OnAnswer(ctx, tx, userID, slot.QuestionID, isCorrect, now); err != nil {
				return err
			}
		}

		resp = &dto.RecordAnswerResponse{
			ExamID:         examID,
			QuestionNumber: questionNumber,
			SelectedAnswer: selected,
			AnsweredAt:     now,
		}
		return nil
	})
	if err != nil {
		log.Warn().Err(err).Str("examID", examID.String()).Int("questionNumber", questionNumber).
			Msg("RecordAnswer: Answer rejected")
		return nil, err
	}
	return resp, nil
}

func (s *mockExamService) FinishExam(ctx context.Context, examID uuid.UUID, userID uint) (*dto.ExamResultResponse, error) {
	var (
		exam            *model.MockExam
		answers         []model.MockExamAnswer
		alreadyFinished bool
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		exam, err = s.examRepo.WithTx(tx).FindByIDForUpdate(ctx, examID)
		if err != nil {
			return examLookupError(examID, err)
		}
		if exam.UserID != userID {
			return ErrNotOwner
		}

		answers, err = s.answerRepo.WithTx(tx).FindByExam(ctx, examID)
		if err != nil {
			return fmt.Errorf("failed to load exam slots: %w", err)
		}
		if exam.IsFinished() {
			alreadyFinished = true
			return nil
		}

		result := s.scorer.Score(answers, exam.TotalQuestions)
		now := s.clock.Now()
		exam.FinishedAt = &now
		exam.UpdatedAt = now
		exam.CorrectCount = &result.CorrectCount
		exam.Score = &result.Score
		exam.Passed = &result.Passed
		exam.CategoryScores = result.Breakdown
		exam.Status = model.ExamStatusFinished

		if err := s.examRepo.WithTx(tx).SaveResult(ctx, exam); err != nil {
			return fmt.Errorf("failed to save exam result: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Warn().Err(err).Str("examID", examID.String()).Uint("userID", userID).Msg("FinishExam: Failed to finish exam")
		return nil, err
	}

	if !alreadyFinished {
		log.Info().Str("examID", examID.String()).Float64("score", *exam.Score).Bool("passed", *exam.Passed).
			Msg("FinishExam: Mock exam scored")
		s.requestAnalysis(ctx, exam, answers)
	}

	// Reload so repeated calls render the stored values, not the in-memory ones.
	reloaded, reloadErr := s.examRepo.FindByID(ctx, examID)
	if reloadErr != nil {
		log.Error().Err(reloadErr).Str("examID", examID.String()).
			Msg("FinishExam: Failed to reload finished exam for response. Constructing result from current state.")
		return s.buildResult(exam, answers), nil
	}

	resp := s.buildResult(reloaded, answers)
	s.cache.Set(ctx, resp)
	return resp, nil
}

// requestAnalysis stores a generated critique. Any failure, including a panic
// in the generator, leaves ai_analysis unset.
func (s *mockExamService) requestAnalysis(ctx context.Context, exam *model.MockExam, answers []model.MockExamAnswer) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("examID", exam.ID.String()).Msg("requestAnalysis: Recovered from analysis panic")
		}
	}()

	text, err := s.analysis.Analyze(ctx, exam, answers)
	if err != nil {
		log.Warn().Err(err).Str("examID", exam.ID.String()).Msg("requestAnalysis: Analysis unavailable, exam finished without it")
		return
	}
	if err := s.examRepo.UpdateAnalysis(ctx, exam.ID, text); err != nil {
		log.Error().Err(err).Str("examID", exam.ID.String()).Msg("requestAnalysis: Failed to store analysis")
		return
	}
	exam.AIAnalysis = &text
}

func (s *mockExamService) GetExam(ctx context.Context, examID uuid.UUID, userID uint) (*dto.ExamDetailResponse, error) {
	exam, err := s.examRepo.FindByIDWithDetails(ctx, examID)
	if err != nil {
		return nil, examLookupError(examID, err)
	}
	if exam.UserID != userID {
		return nil, ErrNotOwner
	}

	finished := exam.IsFinished()
	questions := make([]dto.ExamQuestionDTO, 0, len(exam.Answers))
	answered := 0
	for _, slot := range exam.Answers {
		if slot.IsAnswered() {
			answered++
		}
		q := dto.ExamQuestionDTO{
			QuestionNumber: slot.QuestionNumber,
			QuestionID:     slot.QuestionID,
			Content:        slot.Question.Content,
			Choices:        slot.Question.Choices,
			ExamArea:       slot.ExamArea,
			CategoryName:   slot.CategoryName,
			Topic:          slot.Topic,
			SelectedAnswer: slot.SelectedAnswer,
		}
		if finished {
			correct := slot.CorrectAnswer
			isCorrect := slot.IsCorrect != nil && *slot.IsCorrect
			q.CorrectAnswer = &correct
			q.IsCorrect = &isCorrect
			q.Explanation = slot.Question.Explanation
		}
		questions = append(questions, q)
	}

	return &dto.ExamDetailResponse{
		ExamID:         exam.ID,
		UserID:         exam.UserID,
		Status:         string(exam.Status),
		StartedAt:      exam.StartedAt,
		FinishedAt:     exam.FinishedAt,
		TotalQuestions: exam.TotalQuestions,
		AnsweredCount:  answered,
		Score:          exam.Score,
		Passed:         exam.Passed,
		Questions:      questions,
	}, nil
}

func (s *mockExamService) GetResult(ctx context.Context, examID uuid.UUID, userID uint) (*dto.ExamResultResponse, error) {
	if cached, ok := s.cache.Get(ctx, examID); ok {
		if cached.UserID != userID {
			return nil, ErrNotOwner
		}
		return cached, nil
	}

	exam, err := s.examRepo.FindByID(ctx, examID)
	if err != nil {
		return nil, examLookupError(examID, err)
	}
	if exam.UserID != userID {
		return nil, ErrNotOwner
	}
	if !exam.IsFinished() {
		return nil, ErrExamNotFinished
	}

	answers, err := s.answerRepo.FindByExam(ctx, examID)
	if err != nil {
		log.Error().Err(err).Str("examID", examID.String()).Msg("GetResult: Failed to load exam slots")
		return nil, fmt.Errorf("error fetching exam slots: %w", err)
	}

	resp := s.buildResult(exam, answers)
	if s.resultSettled(exam) {
		s.cache.Set(ctx, resp)
	}
	return resp, nil
}

// resultSettled reports whether a finished exam can no longer gain an analysis.
// FinishExam stores the analysis after its transaction commits, so a read in
// that window must not pin the analysis-less result in the cache.
func (s *mockExamService) resultSettled(exam *model.MockExam) bool {
	if exam.AIAnalysis != nil || exam.FinishedAt == nil {
		return true
	}
	return s.clock.Now().Sub(*exam.FinishedAt) >= analysisSettleWindow
}

func (s *mockExamService) ListExams(ctx context.Context, userID uint) ([]dto.ExamSummaryDTO, error) {
	exams, err := s.examRepo.FindAllByUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("ListExams: Failed to find exams from repository")
		return nil, fmt.Errorf("error fetching exams for user %d: %w", userID, err)
	}

	summaries := make([]dto.ExamSummaryDTO, 0, len(exams))
	if err := copier.Copy(&summaries, &exams); err != nil {
		log.Error().Err(err).Msg("ListExams: Error copying exams to summary DTOs")
		return nil, fmt.Errorf("error preparing exam history: %w", err)
	}
	return summaries, nil
}

func (s *mockExamService) ExamConfig() dto.ExamConfigResponse {
	areas := make([]dto.AreaQuotaDTO, 0, len(s.cfg.Areas))
	for _, a := range s.cfg.AreaQuotas() {
		areas = append(areas, dto.AreaQuotaDTO{Area: a.Area, Count: a.Count})
	}
	return dto.ExamConfigResponse{
		TotalQuestions:   s.cfg.TotalQuestions(),
		PassingScore:     s.cfg.PassingScore,
		TimeLimitMinutes: int(s.cfg.TimeLimit.Minutes()),
		MasteryThreshold: s.cfg.MasteryThreshold,
		Areas:            areas,
	}
}

func (s *mockExamService) buildResult(exam *model.MockExam, answers []model.MockExamAnswer) *dto.ExamResultResponse {
	answered := 0
	for _, a := range answers {
		if a.IsAnswered() {
			answered++
		}
	}

	resp := &dto.ExamResultResponse{
		ExamID:         exam.ID,
		UserID:         exam.UserID,
		Status:         string(exam.Status),
		StartedAt:      exam.StartedAt,
		FinishedAt:     exam.FinishedAt,
		TotalQuestions: exam.TotalQuestions,
		AnsweredCount:  answered,
		CategoryScores: s.scorer.OrderedBreakdown(exam.CategoryScores),
		AIAnalysis:     exam.AIAnalysis,
	}
	if exam.CorrectCount != nil {
		resp.CorrectCount = *exam.CorrectCount
	}
	if exam.Score != nil {
		resp.Score = *exam.Score
	}
	if exam.Passed != nil {
		resp.Passed = *exam.Passed
	}
	return resp
}

func examLookupError(examID uuid.UUID, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", ErrExamNotFound, examID)
	}
	return fmt.Errorf("failed to load mock exam %s: %w", examID, err)
}
