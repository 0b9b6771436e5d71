package service

import (
	"testing"

	"github.com/lshigami/certprep/config"
	"github.com/lshigami/certprep/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSlots lays out slots per the default quota table and marks the first
// correctPerArea[area] slots of each area as correct. Negative values leave
// the area's slots unanswered.
func buildSlots(cfg config.ExamConfig, correctPerArea map[string]int) []model.MockExamAnswer {
	var slots []model.MockExamAnswer
	n := 0
	for _, quota := range cfg.Areas {
		want := correctPerArea[quota.Area]
		for i := 0; i < quota.Count; i++ {
			slot := model.MockExamAnswer{QuestionNumber: n, ExamArea: quota.Area, QuestionID: uint(n + 1)}
			if want >= 0 {
				selected := 0
				ok := i < want
				slot.SelectedAnswer = &selected
				slot.IsCorrect = &ok
			}
			slots = append(slots, slot)
			n++
		}
	}
	return slots
}

func TestScorerPassingBoundary(t *testing.T) {
	cfg := config.DefaultExamConfig()
	scorer := NewScorer(cfg)

	slots := buildSlots(cfg, map[string]int{
		"Applied Mathematics": 10,
		"Machine Learning":    25,
		"Deep Learning":       20,
		"Data Processing":     10,
		"AI Ethics":           0,
	})
	result := scorer.Score(slots, cfg.TotalQuestions())

	assert.Equal(t, 65, result.CorrectCount)
	assert.Equal(t, 65.0, result.Score)
	assert.True(t, result.Passed)
	assert.Equal(t, "S", result.Breakdown["Applied Mathematics"].Grade)
	assert.Equal(t, 66.7, result.Breakdown["Deep Learning"].Accuracy)
	assert.Equal(t, "B", result.Breakdown["Deep Learning"].Grade)
	assert.Equal(t, 40.0, result.Breakdown["Data Processing"].Accuracy)
	assert.Equal(t, "D", result.Breakdown["Data Processing"].Grade)
	assert.Equal(t, "F", result.Breakdown["AI Ethics"].Grade)
}

func TestScorerAreaAtSixtyFivePercentGradesB(t *testing.T) {
	cfg := config.DefaultExamConfig()
	cfg.Areas = []config.AreaQuota{{Area: "Machine Learning", Count: 20}}
	scorer := NewScorer(cfg)

	result := scorer.Score(buildSlots(cfg, map[string]int{"Machine Learning": 13}), 20)

	assert.Equal(t, 65.0, result.Breakdown["Machine Learning"].Accuracy)
	assert.Equal(t, "B", result.Breakdown["Machine Learning"].Grade)
	assert.True(t, result.Passed)
}

func TestScorerGradesUnroundedAccuracy(t *testing.T) {
	cfg := config.DefaultExamConfig()
	cfg.Areas = []config.AreaQuota{{Area: "Machine Learning", Count: 197}}
	scorer := NewScorer(cfg)

	// 128/197 is 64.97%, shown as 65.0 but still below the B band and the pass mark.
	result := scorer.Score(buildSlots(cfg, map[string]int{"Machine Learning": 128}), 197)

	assert.Equal(t, 65.0, result.Score)
	assert.False(t, result.Passed)
	assert.Equal(t, 65.0, result.Breakdown["Machine Learning"].Accuracy)
	assert.Equal(t, "C", result.Breakdown["Machine Learning"].Grade)
	assert.Equal(t, GetGrade(percentage(128, 197)), result.Breakdown["Machine Learning"].Grade)
}

func TestScorerJustBelowPassing(t *testing.T) {
	cfg := config.DefaultExamConfig()
	scorer := NewScorer(cfg)

	slots := buildSlots(cfg, map[string]int{
		"Applied Mathematics": 10,
		"Machine Learning":    25,
		"Deep Learning":       19,
		"Data Processing":     10,
		"AI Ethics":           0,
	})
	result := scorer.Score(slots, cfg.TotalQuestions())

	assert.Equal(t, 64.0, result.Score)
	assert.False(t, result.Passed)
}

func TestScorerUnansweredSlotsCountAsWrong(t *testing.T) {
	cfg := config.DefaultExamConfig()
	scorer := NewScorer(cfg)

	slots := buildSlots(cfg, map[string]int{
		"Applied Mathematics": -1,
		"Machine Learning":    -1,
		"Deep Learning":       -1,
		"Data Processing":     -1,
		"AI Ethics":           -1,
	})
	result := scorer.Score(slots, cfg.TotalQuestions())

	assert.Equal(t, 0, result.CorrectCount)
	assert.Equal(t, 0.0, result.Score)
	assert.False(t, result.Passed)
	assert.Len(t, result.Breakdown, 5)
}

func TestScorerBreakdownSumsMatchTotals(t *testing.T) {
	cfg := config.DefaultExamConfig()
	scorer := NewScorer(cfg)

	slots := buildSlots(cfg, map[string]int{
		"Applied Mathematics": 3,
		"Machine Learning":    -1,
		"Deep Learning":       29,
		"Data Processing":     7,
		"AI Ethics":           10,
	})
	result := scorer.Score(slots, cfg.TotalQuestions())

	sumTotal, sumCorrect := 0, 0
	for _, area := range result.Breakdown {
		sumTotal += area.Total
		sumCorrect += area.Correct
	}
	assert.Equal(t, cfg.TotalQuestions(), sumTotal)
	assert.Equal(t, result.CorrectCount, sumCorrect)
	assert.Equal(t, 49, result.CorrectCount)
}

func TestOrderedBreakdownFollowsQuotaOrder(t *testing.T) {
	cfg := config.DefaultExamConfig()
	scorer := NewScorer(cfg)

	result := scorer.Score(buildSlots(cfg, map[string]int{}), cfg.TotalQuestions())
	result.Breakdown["Legacy Area"] = model.AreaScore{Total: 1}

	ordered := scorer.OrderedBreakdown(result.Breakdown)
	require.Len(t, ordered, 6)
	for i, quota := range cfg.Areas {
		assert.Equal(t, quota.Area, ordered[i].Area)
	}
	assert.Equal(t, "Legacy Area", ordered[5].Area)
}
