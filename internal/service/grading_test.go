package service

import (
	"testing"

	"github.com/lshigami/certprep/config"
	"github.com/stretchr/testify/assert"
)

func TestGetGradeBoundaries(t *testing.T) {
	cases := []struct {
		accuracy float64
		want     string
	}{
		{100, "S"},
		{90, "S"},
		{89.999, "A"},
		{80, "A"},
		{79.9, "B"},
		{65, "B"},
		{64.99, "C"},
		{50, "C"},
		{30, "D"},
		{29.999, "F"},
		{0, "F"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, GetGrade(tc.accuracy), "accuracy %v", tc.accuracy)
	}
}

func TestGetGradeIsMonotonic(t *testing.T) {
	rank := map[string]int{"F": 0, "D": 1, "C": 2, "B": 3, "A": 4, "S": 5}
	prev := rank[GetGrade(0)]
	for a := 0.0; a <= 100; a += 0.25 {
		cur := rank[GetGrade(a)]
		assert.GreaterOrEqual(t, cur, prev, "grade dropped at %v", a)
		prev = cur
	}
}

func TestGradingTableUsesInjectedBands(t *testing.T) {
	cfg := config.DefaultExamConfig()
	cfg.Grades = []config.GradeBand{{Min: 50, Grade: "PASS"}}
	cfg.FallbackGrade = "FAIL"
	table := NewGradingTable(cfg)

	assert.Equal(t, "PASS", table.Grade(50))
	assert.Equal(t, "FAIL", table.Grade(49.9))
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 65.0, percentage(65, 100))
	assert.InDelta(t, 33.333, percentage(1, 3), 0.001)
	assert.Equal(t, 33.3, roundScore(percentage(1, 3)))
	assert.Equal(t, 66.7, roundScore(percentage(2, 3)))
	assert.Equal(t, 0.0, percentage(3, 0))
}
