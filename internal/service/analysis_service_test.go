package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/lshigami/certprep/config"
	"github.com/lshigami/certprep/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	text    string
	err     error
	prompts []string
}

func (g *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	return g.text, nil
}

func finishedExamFixture(t *testing.T, cfg config.ExamConfig, correctPerArea map[string]int) (*model.MockExam, []model.MockExamAnswer) {
	t.Helper()
	slots := buildSlots(cfg, correctPerArea)
	for i := range slots {
		slots[i].Topic = slots[i].ExamArea + " basics"
	}
	result := NewScorer(cfg).Score(slots, cfg.TotalQuestions())
	exam := &model.MockExam{
		ID:             uuid.New(),
		UserID:         1,
		TotalQuestions: cfg.TotalQuestions(),
		CorrectCount:   &result.CorrectCount,
		Score:          &result.Score,
		Passed:         &result.Passed,
		CategoryScores: result.Breakdown,
		Status:         model.ExamStatusFinished,
	}
	return exam, slots
}

func TestAnalyzeBuildsPromptFromResult(t *testing.T) {
	cfg := config.DefaultExamConfig()
	gen := &fakeGenerator{text: "Focus on AI Ethics."}
	svc := NewAnalysisService(gen, NewScorer(cfg))

	exam, slots := finishedExamFixture(t, cfg, map[string]int{
		"Applied Mathematics": 10,
		"Machine Learning":    25,
		"Deep Learning":       20,
		"Data Processing":     10,
		"AI Ethics":           0,
	})

	text, err := svc.Analyze(context.Background(), exam, slots)
	require.NoError(t, err)
	assert.Equal(t, "Focus on AI Ethics.", text)

	require.Len(t, gen.prompts, 1)
	prompt := gen.prompts[0]
	assert.Contains(t, prompt, "Overall score: 65.0% (65 of 100 correct). The learner passed.")
	assert.Contains(t, prompt, "- Deep Learning: 20/30 correct, accuracy 66.7%, grade B")
	assert.Contains(t, prompt, "- Data Processing basics (15 missed)")
	assert.Contains(t, prompt, "- AI Ethics basics (10 missed)")
	assert.NotContains(t, prompt, "Applied Mathematics basics (")
}

func TestAnalyzePropagatesGenerationError(t *testing.T) {
	cfg := config.DefaultExamConfig()
	gen := &fakeGenerator{err: &GenerationError{Reason: "quota exceeded"}}
	svc := NewAnalysisService(gen, NewScorer(cfg))

	exam, slots := finishedExamFixture(t, cfg, map[string]int{})
	_, err := svc.Analyze(context.Background(), exam, slots)
	assert.ErrorIs(t, err, ErrGeneration)
}

func TestAnalyzeRejectsUnfinishedExam(t *testing.T) {
	gen := &fakeGenerator{text: "unused"}
	svc := NewAnalysisService(gen, NewScorer(config.DefaultExamConfig()))

	exam := &model.MockExam{ID: uuid.New(), Status: model.ExamStatusInProgress}
	_, err := svc.Analyze(context.Background(), exam, nil)
	assert.ErrorIs(t, err, ErrExamNotFinished)
	assert.Empty(t, gen.prompts)
}

func TestWeakestTopicsRanking(t *testing.T) {
	wrong, right := false, true
	answers := []model.MockExamAnswer{
		{Topic: "CNN", IsCorrect: &wrong},
		{Topic: "CNN", IsCorrect: &wrong},
		{Topic: "Bias", IsCorrect: &wrong},
		{Topic: "Attention"},
		{Topic: "Attention", IsCorrect: &wrong},
		{Topic: "Regression", IsCorrect: &right},
		{CategoryName: "Statistics", IsCorrect: &wrong},
	}

	got := weakestTopics(answers, 3)
	require.Len(t, got, 3)
	assert.Equal(t, topicMiss{"Attention", 2}, got[0])
	assert.Equal(t, topicMiss{"CNN", 2}, got[1])
	assert.Equal(t, topicMiss{"Bias", 1}, got[2])
}

func TestGenerationErrorMatchesSentinel(t *testing.T) {
	cause := errors.New("deadline exceeded")
	err := error(&GenerationError{Reason: "gemini api call", Err: cause})
	assert.ErrorIs(t, err, ErrGeneration)
	assert.ErrorIs(t, err, cause)
}
