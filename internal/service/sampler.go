package service

import (
	"context"
	"fmt"

	"github.com/lshigami/certprep/config"
	"github.com/lshigami/certprep/internal/model"
	"github.com/rs/zerolog/log"
)

// QuestionCatalog is the part of the question store the sampler draws from.
type QuestionCatalog interface {
	SampleByArea(ctx context.Context, area string, count int, exclude []uint) ([]model.Question, error)
}

// SampledQuestion is one exam slot: the question and the area it was drawn for.
type SampledQuestion struct {
	Question model.Question
	Area     string
}

// QuestionSampler builds the ordered question list of a new exam.
type QuestionSampler struct {
	catalog QuestionCatalog
	areas   []config.AreaQuota
}

func NewQuestionSampler(catalog QuestionCatalog, cfg config.ExamConfig) *QuestionSampler {
	return &QuestionSampler{catalog: catalog, areas: cfg.AreaQuotas()}
}

// Sample draws each area's quota without replacement and concatenates the
// area blocks in configuration order. A short area fails the whole draw.
func (s *QuestionSampler) Sample(ctx context.Context) ([]SampledQuestion, error) {
	total := 0
	for _, quota := range s.areas {
		total += quota.Count
	}

	sampled := make([]SampledQuestion, 0, total)
	drawn := make(map[uint]bool, total)
	exclude := make([]uint, 0, total)

	for _, quota := range s.areas {
		questions, err := s.catalog.SampleByArea(ctx, quota.Area, quota.Count, exclude)
		if err != nil {
			return nil, fmt.Errorf("failed to sample questions for area %q: %w", quota.Area, err)
		}

		block := make([]SampledQuestion, 0, quota.Count)
		for _, q := range questions {
			if drawn[q.ID] || len(block) == quota.Count {
				continue
			}
			drawn[q.ID] = true
			exclude = append(exclude, q.ID)
			block = append(block, SampledQuestion{Question: q, Area: quota.Area})
		}

		if len(block) < quota.Count {
			log.Warn().Str("area", quota.Area).Int("required", quota.Count).Int("available", len(block)).
				Msg("Sample: Not enough questions for exam area")
			return nil, &InsufficientQuestionsError{Area: quota.Area, Required: quota.Count, Available: len(block)}
		}
		sampled = append(sampled, block...)
	}
	return sampled, nil
}
