package service

import (
	"sort"

	"github.com/lshigami/certprep/config"
	"github.com/lshigami/certprep/internal/dto"
	"github.com/lshigami/certprep/internal/model"
)

// ExamResult is the scored outcome of an exam's slot set.
type ExamResult struct {
	CorrectCount int
	Score        float64
	Passed       bool
	Breakdown    model.AreaBreakdown
}

// Scorer computes overall and per-area results. Unanswered slots count as wrong.
type Scorer struct {
	passingScore float64
	grades       GradingTable
	areaOrder    []string
}

func NewScorer(cfg config.ExamConfig) *Scorer {
	order := make([]string, 0, len(cfg.Areas))
	for _, a := range cfg.Areas {
		order = append(order, a.Area)
	}
	return &Scorer{
		passingScore: cfg.PassingScore,
		grades:       NewGradingTable(cfg),
		areaOrder:    order,
	}
}

func (s *Scorer) Score(slots []model.MockExamAnswer, totalQuestions int) ExamResult {
	breakdown := make(model.AreaBreakdown)
	correct := 0
	for _, slot := range slots {
		area := breakdown[slot.ExamArea]
		area.Total++
		if slot.IsCorrect != nil && *slot.IsCorrect {
			area.Correct++
			correct++
		}
		breakdown[slot.ExamArea] = area
	}
	// Grades and the pass flag use the exact ratio; rounding is for display.
	for name, area := range breakdown {
		accuracy := percentage(area.Correct, area.Total)
		area.Accuracy = roundScore(accuracy)
		area.Grade = s.grades.Grade(accuracy)
		breakdown[name] = area
	}

	score := percentage(correct, totalQuestions)
	return ExamResult{
		CorrectCount: correct,
		Score:        roundScore(score),
		Passed:       score >= s.passingScore,
		Breakdown:    breakdown,
	}
}

// OrderedBreakdown lists areas in quota order, then any unknown areas alphabetically.
func (s *Scorer) OrderedBreakdown(breakdown model.AreaBreakdown) []dto.AreaScoreDTO {
	out := make([]dto.AreaScoreDTO, 0, len(breakdown))
	seen := make(map[string]bool, len(breakdown))
	for _, name := range s.areaOrder {
		if area, ok := breakdown[name]; ok {
			out = append(out, toAreaScoreDTO(name, area))
			seen[name] = true
		}
	}
	var rest []string
	for name := range breakdown {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		out = append(out, toAreaScoreDTO(name, breakdown[name]))
	}
	return out
}

func toAreaScoreDTO(name string, area model.AreaScore) dto.AreaScoreDTO {
	return dto.AreaScoreDTO{
		Area:     name,
		Total:    area.Total,
		Correct:  area.Correct,
		Accuracy: area.Accuracy,
		Grade:    area.Grade,
	}
}
