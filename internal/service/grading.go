package service

import (
	"math"

	"github.com/lshigami/certprep/config"
)

// GradingTable maps an accuracy percentage to a letter grade. Bands are
// checked highest bound first and each bound is inclusive.
type GradingTable struct {
	bands    []config.GradeBand
	fallback string
}

func NewGradingTable(cfg config.ExamConfig) GradingTable {
	return GradingTable{bands: cfg.GradeBands(), fallback: cfg.FallbackGrade}
}

var defaultGradingTable = NewGradingTable(config.DefaultExamConfig())

// GetGrade grades an accuracy with the default table:
// >=90 S, >=80 A, >=65 B, >=50 C, >=30 D, otherwise F.
func GetGrade(accuracy float64) string {
	return defaultGradingTable.Grade(accuracy)
}

func (t GradingTable) Grade(accuracy float64) string {
	for _, band := range t.bands {
		if accuracy >= band.Min {
			return band.Grade
		}
	}
	return t.fallback
}

// roundScore rounds a percentage to one decimal place.
func roundScore(v float64) float64 {
	return math.Round(v*10) / 10
}

func percentage(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) * 100 / float64(whole)
}
