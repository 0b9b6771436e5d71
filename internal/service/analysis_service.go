package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/lshigami/certprep/internal/model"
	"github.com/rs/zerolog/log"
)

const maxWeakTopics = 5

// AnalysisService asks the text generator for a study critique of a finished exam.
type AnalysisService interface {
	Analyze(ctx context.Context, exam *model.MockExam, answers []model.MockExamAnswer) (string, error)
}

type analysisService struct {
	generator TextGenerator
	scorer    *Scorer
}

func NewAnalysisService(generator TextGenerator, scorer *Scorer) AnalysisService {
	return &analysisService{generator: generator, scorer: scorer}
}

func (s *analysisService) Analyze(ctx context.Context, exam *model.MockExam, answers []model.MockExamAnswer) (string, error) {
	if !exam.IsFinished() || exam.Score == nil || exam.Passed == nil {
		return "", fmt.Errorf("analyze exam %s: %w", exam.ID, ErrExamNotFinished)
	}

	prompt := s.buildPrompt(exam, answers)
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		log.Warn().Err(err).Str("examID", exam.ID.String()).Msg("Analyze: Text generation failed")
		return "", err
	}
	return text, nil
}

func (s *analysisService) buildPrompt(exam *model.MockExam, answers []model.MockExamAnswer) string {
	var b strings.Builder
	b.WriteString("You are an experienced tutor for an AI engineering certification exam.\n")
	b.WriteString("A learner has just finished a full mock exam. Write a short, encouraging analysis in plain text.\n\n")

	outcome := "did not pass"
	if *exam.Passed {
		outcome = "passed"
	}
	correct := 0
	if exam.CorrectCount != nil {
		correct = *exam.CorrectCount
	}
	fmt.Fprintf(&b, "Overall score: %.1f%% (%d of %d correct). The learner %s.\n\n", *exam.Score, correct, exam.TotalQuestions, outcome)

	b.WriteString("Results per exam area:\n")
	for _, area := range s.scorer.OrderedBreakdown(exam.CategoryScores) {
		fmt.Fprintf(&b, "- %s: %d/%d correct, accuracy %.1f%%, grade %s\n", area.Area, area.Correct, area.Total, area.Accuracy, area.Grade)
	}

	if topics := weakestTopics(answers, maxWeakTopics); len(topics) > 0 {
		b.WriteString("\nTopics with the most wrong or unanswered questions:\n")
		for _, t := range topics {
			fmt.Fprintf(&b, "- %s (%d missed)\n", t.topic, t.missed)
		}
	}

	b.WriteString("\nPlease cover:\n")
	b.WriteString("1. The strongest and weakest exam areas.\n")
	b.WriteString("2. Concrete study priorities for the weak topics.\n")
	b.WriteString("3. One suggestion for how to approach the next mock exam.\n")
	return b.String()
}

type topicMiss struct {
	topic  string
	missed int
}

// weakestTopics ranks topics by missed slots, ties broken by name.
func weakestTopics(answers []model.MockExamAnswer, limit int) []topicMiss {
	counts := make(map[string]int)
	for _, a := range answers {
		if a.IsCorrect != nil && *a.IsCorrect {
			continue
		}
		topic := a.Topic
		if topic == "" {
			topic = a.CategoryName
		}
		if topic == "" {
			continue
		}
		counts[topic]++
	}

	out := make([]topicMiss, 0, len(counts))
	for topic, n := range counts {
		out = append(out, topicMiss{topic: topic, missed: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].missed != out[j].missed {
			return out[i].missed > out[j].missed
		}
		return out[i].topic < out[j].topic
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
