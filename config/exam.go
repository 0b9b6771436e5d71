package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultMasteryThreshold is the number of consecutive correct answers that
// moves a review item from active to mastered.
const DefaultMasteryThreshold = 3

const DefaultPassingScore = 65.0

// AreaQuota is the number of questions an exam draws from one exam area.
type AreaQuota struct {
	Area  string `json:"area" validate:"required"`
	Count int    `json:"count" validate:"gt=0"`
}

// GradeBand maps an inclusive lower accuracy bound to a letter grade.
type GradeBand struct {
	Min   float64 `json:"min" validate:"gte=0,lte=100"`
	Grade string  `json:"grade" validate:"required"`
}

// ExamConfig is passed by value into the sampler, scorer and review tracker.
// Areas keeps the order in which area blocks appear in an exam.
type ExamConfig struct {
	Areas            []AreaQuota   `validate:"required,min=1,dive"`
	Grades           []GradeBand   `validate:"required,min=1,dive"`
	FallbackGrade    string        `validate:"required"`
	PassingScore     float64       `validate:"gt=0,lte=100"`
	MasteryThreshold int           `validate:"gt=0"`
	TimeLimit        time.Duration `validate:"gte=0"`
}

func DefaultExamConfig() ExamConfig {
	return ExamConfig{
		Areas: []AreaQuota{
			{Area: "Applied Mathematics", Count: 10},
			{Area: "Machine Learning", Count: 25},
			{Area: "Deep Learning", Count: 30},
			{Area: "Data Processing", Count: 25},
			{Area: "AI Ethics", Count: 10},
		},
		Grades: []GradeBand{
			{Min: 90, Grade: "S"},
			{Min: 80, Grade: "A"},
			{Min: 65, Grade: "B"},
			{Min: 50, Grade: "C"},
			{Min: 30, Grade: "D"},
		},
		FallbackGrade:    "F",
		PassingScore:     DefaultPassingScore,
		MasteryThreshold: DefaultMasteryThreshold,
		TimeLimit:        150 * time.Minute,
	}
}

func (c ExamConfig) TotalQuestions() int {
	total := 0
	for _, a := range c.Areas {
		total += a.Count
	}
	return total
}

// AreaQuotas returns a copy of the ordered quota table.
func (c ExamConfig) AreaQuotas() []AreaQuota {
	out := make([]AreaQuota, len(c.Areas))
	copy(out, c.Areas)
	return out
}

// GradeBands returns a copy of the grade bands sorted highest bound first.
func (c ExamConfig) GradeBands() []GradeBand {
	out := make([]GradeBand, len(c.Grades))
	copy(out, c.Grades)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Min > out[j].Min })
	return out
}

func (c ExamConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid exam configuration: %w", err)
	}
	seen := make(map[string]bool, len(c.Areas))
	for _, a := range c.Areas {
		if seen[a.Area] {
			return fmt.Errorf("invalid exam configuration: duplicate area %q", a.Area)
		}
		seen[a.Area] = true
	}
	return nil
}

// ParseAreaQuotas parses "Area One:10,Area Two:25" into an ordered quota table.
func ParseAreaQuotas(raw string) ([]AreaQuota, error) {
	var areas []AreaQuota
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		idx := strings.LastIndex(part, ":")
		if idx <= 0 || idx == len(part)-1 {
			return nil, fmt.Errorf("invalid area quota %q, expected <area>:<count>", part)
		}
		count, err := strconv.Atoi(strings.TrimSpace(part[idx+1:]))
		if err != nil || count <= 0 {
			return nil, fmt.Errorf("invalid question count in area quota %q", part)
		}
		areas = append(areas, AreaQuota{Area: strings.TrimSpace(part[:idx]), Count: count})
	}
	if len(areas) == 0 {
		return nil, fmt.Errorf("area quota list is empty")
	}
	return areas, nil
}
