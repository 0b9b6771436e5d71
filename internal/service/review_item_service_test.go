package service

import (
	"context"
	"testing"
	"time"

	"github.com/lshigami/certprep/config"
	"github.com/lshigami/certprep/internal/model"
	"github.com/lshigami/certprep/internal/repository"
	"github.com/lshigami/certprep/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReviewService(t *testing.T, threshold int) (ReviewItemService, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	cfg := config.DefaultExamConfig()
	cfg.MasteryThreshold = threshold
	svc := NewReviewItemService(
		db,
		repository.NewReviewItemRepository(db),
		repository.NewMockExamRepository(db),
		repository.NewMockExamAnswerRepository(db),
		cfg,
	)
	return svc, db
}

func seedOneQuestion(t *testing.T, db *gorm.DB) *model.Question {
	t.Helper()
	category := model.Category{Name: "Neural Networks", ExamArea: "Deep Learning"}
	require.NoError(t, db.Create(&category).Error)
	return testutil.SeedQuestion(t, db, category.ID, "Backpropagation")
}

func countItems(t *testing.T, db *gorm.DB, userID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&model.ReviewItem{}).Where("user_id = ?", userID).Count(&n).Error)
	return n
}

func TestOnAnswerWrongCreatesActiveItem(t *testing.T) {
	svc, db := newReviewService(t, 3)
	q := seedOneQuestion(t, db)
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	item, err := svc.OnAnswer(context.Background(), nil, 7, q.ID, false, at)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, model.ReviewStatusActive, item.Status)
	assert.Equal(t, 0, item.CorrectCount)
	assert.True(t, item.FirstWrongAt.Equal(at))
	assert.True(t, item.LastAnsweredAt.Equal(at))
	assert.Nil(t, item.MasteredAt)
}

func TestOnAnswerCorrectWithoutItemIsNoop(t *testing.T) {
	svc, db := newReviewService(t, 3)
	q := seedOneQuestion(t, db)

	item, err := svc.OnAnswer(context.Background(), nil, 7, q.ID, true, time.Now().UTC())
	require.NoError(t, err)
	assert.Nil(t, item)
	assert.Zero(t, countItems(t, db, 7))
}

func TestOnAnswerMasteryAtThreshold(t *testing.T) {
	const threshold = 3
	svc, db := newReviewService(t, threshold)
	q := seedOneQuestion(t, db)
	ctx := context.Background()
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	_, err := svc.OnAnswer(ctx, nil, 7, q.ID, false, at)
	require.NoError(t, err)

	for i := 1; i < threshold; i++ {
		at = at.Add(time.Hour)
		item, err := svc.OnAnswer(ctx, nil, 7, q.ID, true, at)
		require.NoError(t, err)
		assert.Equal(t, i, item.CorrectCount)
		assert.Equal(t, model.ReviewStatusActive, item.Status, "mastered too early after %d correct", i)
		assert.Nil(t, item.MasteredAt)
	}

	at = at.Add(time.Hour)
	item, err := svc.OnAnswer(ctx, nil, 7, q.ID, true, at)
	require.NoError(t, err)
	assert.Equal(t, threshold, item.CorrectCount)
	assert.Equal(t, model.ReviewStatusMastered, item.Status)
	require.NotNil(t, item.MasteredAt)
	assert.True(t, item.MasteredAt.Equal(at))

	// Further correct answers only move last_answered_at.
	later := at.Add(time.Hour)
	item, err = svc.OnAnswer(ctx, nil, 7, q.ID, true, later)
	require.NoError(t, err)
	assert.Equal(t, threshold, item.CorrectCount)
	assert.Equal(t, model.ReviewStatusMastered, item.Status)
	assert.True(t, item.MasteredAt.Equal(at))
	assert.True(t, item.LastAnsweredAt.Equal(later))
}

func TestOnAnswerWrongResetsStreak(t *testing.T) {
	svc, db := newReviewService(t, 3)
	q := seedOneQuestion(t, db)
	ctx := context.Background()
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	_, err := svc.OnAnswer(ctx, nil, 7, q.ID, false, at)
	require.NoError(t, err)
	_, err = svc.OnAnswer(ctx, nil, 7, q.ID, true, at.Add(time.Minute))
	require.NoError(t, err)
	_, err = svc.OnAnswer(ctx, nil, 7, q.ID, true, at.Add(2*time.Minute))
	require.NoError(t, err)

	item, err := svc.OnAnswer(ctx, nil, 7, q.ID, false, at.Add(3*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 0, item.CorrectCount)

	item, err = svc.OnAnswer(ctx, nil, 7, q.ID, true, at.Add(4*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, item.CorrectCount)
	assert.Equal(t, model.ReviewStatusActive, item.Status)
}

func TestOnAnswerReopensMasteredItem(t *testing.T) {
	svc, db := newReviewService(t, 1)
	q := seedOneQuestion(t, db)
	ctx := context.Background()
	firstWrong := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	_, err := svc.OnAnswer(ctx, nil, 7, q.ID, false, firstWrong)
	require.NoError(t, err)
	item, err := svc.OnAnswer(ctx, nil, 7, q.ID, true, firstWrong.Add(time.Hour))
	require.NoError(t, err)
	require.Equal(t, model.ReviewStatusMastered, item.Status)

	reopenedAt := firstWrong.Add(2 * time.Hour)
	item, err = svc.OnAnswer(ctx, nil, 7, q.ID, false, reopenedAt)
	require.NoError(t, err)
	assert.Equal(t, model.ReviewStatusActive, item.Status)
	assert.Equal(t, 0, item.CorrectCount)
	assert.Nil(t, item.MasteredAt)
	assert.True(t, item.FirstWrongAt.Equal(firstWrong), "first_wrong_at must not move")
	assert.True(t, item.LastAnsweredAt.Equal(reopenedAt))
	assert.EqualValues(t, 1, countItems(t, db, 7))
}

func TestOnAnswerKeepsOneItemPerUserAndQuestion(t *testing.T) {
	svc, db := newReviewService(t, 3)
	q := seedOneQuestion(t, db)
	ctx := context.Background()
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 4; i++ {
		_, err := svc.OnAnswer(ctx, nil, 7, q.ID, false, at.Add(time.Duration(i)*time.Minute))
		require.NoError(t, err)
	}
	_, err := svc.OnAnswer(ctx, nil, 8, q.ID, false, at)
	require.NoError(t, err)

	assert.EqualValues(t, 1, countItems(t, db, 7))
	assert.EqualValues(t, 1, countItems(t, db, 8))
}

func TestOnAnswerRollsBackWithCallerTransaction(t *testing.T) {
	svc, db := newReviewService(t, 3)
	q := seedOneQuestion(t, db)

	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := svc.OnAnswer(context.Background(), tx, 7, q.ID, false, time.Now().UTC())
		require.NoError(t, err)
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)
	assert.Zero(t, countItems(t, db, 7))
}

// seedFinishedExam stores a finished exam whose slots are answered as given.
// A nil entry leaves the slot unanswered.
func seedFinishedExam(t *testing.T, db *gorm.DB, userID uint, startedAt time.Time, questions []model.Question, correct []*bool) *model.MockExam {
	t.Helper()
	exam := &model.MockExam{
		UserID:         userID,
		StartedAt:      startedAt,
		TotalQuestions: len(questions),
		Status:         model.ExamStatusFinished,
	}
	for i, q := range questions {
		slot := model.MockExamAnswer{
			QuestionID:     q.ID,
			QuestionNumber: i,
			ExamArea:       "Deep Learning",
			CorrectAnswer:  q.CorrectAnswer,
			ChoiceCount:    len(q.Choices),
		}
		if correct[i] != nil {
			selected := 0
			if *correct[i] {
				selected = q.CorrectAnswer
			}
			answeredAt := startedAt.Add(time.Duration(i+1) * time.Minute)
			slot.SelectedAnswer = &selected
			slot.IsCorrect = correct[i]
			slot.AnsweredAt = &answeredAt
		}
		exam.Answers = append(exam.Answers, slot)
	}
	require.NoError(t, repository.NewMockExamRepository(db).Create(context.Background(), exam))
	return exam
}

func TestBackfillCreatesItemsForWrongAnswers(t *testing.T) {
	svc, db := newReviewService(t, 3)
	category := model.Category{Name: "Neural Networks", ExamArea: "Deep Learning"}
	require.NoError(t, db.Create(&category).Error)
	var questions []model.Question
	for i := 0; i < 4; i++ {
		questions = append(questions, *testutil.SeedQuestion(t, db, category.ID, "CNN"))
	}

	yes, no := true, false
	start := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	seedFinishedExam(t, db, 7, start, questions, []*bool{&no, &yes, nil, &no})
	// A later exam misses question 0 again and question 1 for the first time.
	seedFinishedExam(t, db, 7, start.Add(48*time.Hour), questions, []*bool{&no, &no, &yes, &yes})
	// In-progress exams are not scanned.
	inProgress := seedFinishedExam(t, db, 7, start.Add(72*time.Hour), questions, []*bool{&no, &no, &no, &no})
	require.NoError(t, db.Model(&model.MockExam{}).Where("id = ?", inProgress.ID).
		Update("status", model.ExamStatusInProgress).Error)

	resp, err := svc.Backfill(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.ExamsScanned)
	assert.Equal(t, 3, resp.ItemsCreated)

	var item model.ReviewItem
	require.NoError(t, db.Where("user_id = ? AND question_id = ?", 7, questions[0].ID).First(&item).Error)
	assert.True(t, item.FirstWrongAt.Equal(start.Add(time.Minute)), "earliest miss wins")
	assert.Equal(t, model.ReviewStatusActive, item.Status)

	var untouched int64
	require.NoError(t, db.Model(&model.ReviewItem{}).Where("question_id = ?", questions[2].ID).Count(&untouched).Error)
	assert.Zero(t, untouched)
}

func TestBackfillIsIdempotent(t *testing.T) {
	svc, db := newReviewService(t, 3)
	category := model.Category{Name: "Neural Networks", ExamArea: "Deep Learning"}
	require.NoError(t, db.Create(&category).Error)
	questions := []model.Question{
		*testutil.SeedQuestion(t, db, category.ID, "RNN"),
		*testutil.SeedQuestion(t, db, category.ID, "LSTM"),
	}
	no := false
	seedFinishedExam(t, db, 7, time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC), questions, []*bool{&no, &no})

	ctx := context.Background()
	first, err := svc.Backfill(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, first.ItemsCreated)

	var before []model.ReviewItem
	require.NoError(t, db.Order("id").Find(&before).Error)

	second, err := svc.Backfill(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, second.ExamsScanned)
	assert.Equal(t, 0, second.ItemsCreated)

	var after []model.ReviewItem
	require.NoError(t, db.Order("id").Find(&after).Error)
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].QuestionID, after[i].QuestionID)
		assert.Equal(t, before[i].Status, after[i].Status)
		assert.Equal(t, before[i].CorrectCount, after[i].CorrectCount)
		assert.True(t, before[i].LastAnsweredAt.Equal(after[i].LastAnsweredAt))
	}
}

func TestBackfillLeavesExistingItemsAlone(t *testing.T) {
	svc, db := newReviewService(t, 1)
	q := seedOneQuestion(t, db)
	ctx := context.Background()

	// Mastered through practice before the backfill runs.
	_, err := svc.OnAnswer(ctx, nil, 7, q.ID, false, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = svc.OnAnswer(ctx, nil, 7, q.ID, true, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	no := false
	seedFinishedExam(t, db, 7, time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC), []model.Question{*q}, []*bool{&no})

	resp, err := svc.Backfill(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.ItemsCreated)

	stats, err := svc.Stats(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Mastered)
	assert.Equal(t, 0, stats.Active)
}

func TestReviewReads(t *testing.T) {
	svc, db := newReviewService(t, 2)
	category := model.Category{Name: "Neural Networks", ExamArea: "Deep Learning"}
	require.NoError(t, db.Create(&category).Error)
	q1 := testutil.SeedQuestion(t, db, category.ID, "GAN")
	q2 := testutil.SeedQuestion(t, db, category.ID, "VAE")
	q3 := testutil.SeedQuestion(t, db, category.ID, "Diffusion")
	ctx := context.Background()
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	for i, q := range []*model.Question{q1, q2, q3} {
		_, err := svc.OnAnswer(ctx, nil, 7, q.ID, false, at.Add(time.Duration(i)*time.Minute))
		require.NoError(t, err)
	}
	for i := 0; i < 2; i++ {
		_, err := svc.OnAnswer(ctx, nil, 7, q3.ID, true, at.Add(time.Hour+time.Duration(i)*time.Minute))
		require.NoError(t, err)
	}
	_, err := svc.OnAnswer(ctx, nil, 7, q1.ID, true, at.Add(2*time.Hour))
	require.NoError(t, err)

	stats, err := svc.Stats(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Active)
	assert.Equal(t, 1, stats.Mastered)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.MasteryThreshold)

	mastered, err := svc.ListItems(ctx, 7, "mastered")
	require.NoError(t, err)
	require.Len(t, mastered, 1)
	assert.Equal(t, q3.ID, mastered[0].QuestionID)
	assert.Equal(t, "mastered", mastered[0].Status)

	all, err := svc.ListItems(ctx, 7, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = svc.ListItems(ctx, 7, "forgotten")
	assert.ErrorIs(t, err, ErrValidation)

	due, err := svc.ReviewQuestions(ctx, 7, 10)
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, q2.ID, due[0].QuestionID, "least recently answered first")
	assert.Equal(t, q1.ID, due[1].QuestionID)
	assert.Equal(t, 1, due[1].CorrectCount)
	assert.Equal(t, []string{"A", "B", "C", "D"}, due[0].Choices)
}

func TestOnAnswerBookkeepingTimestampsUseEventTime(t *testing.T) {
	svc, db := newReviewService(t, 3)
	q := seedOneQuestion(t, db)
	ctx := context.Background()
	wrongAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	correctAt := wrongAt.Add(time.Hour)

	_, err := svc.OnAnswer(ctx, nil, 7, q.ID, false, wrongAt)
	require.NoError(t, err)
	_, err = svc.OnAnswer(ctx, nil, 7, q.ID, true, correctAt)
	require.NoError(t, err)

	var item model.ReviewItem
	require.NoError(t, db.Where("user_id = ? AND question_id = ?", 7, q.ID).First(&item).Error)
	assert.True(t, item.CreatedAt.Equal(wrongAt))
	assert.True(t, item.UpdatedAt.Equal(correctAt))
	assert.True(t, item.LastAnsweredAt.Equal(correctAt))
}
