package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/lshigami/certprep/internal/dto"
)

// ExamResultCache stores results of finished exams. Results never change once
// an exam is finished, so entries are only ever written, never invalidated.
// Implementations log their own failures; a miss is always safe.
type ExamResultCache interface {
	Get(ctx context.Context, examID uuid.UUID) (*dto.ExamResultResponse, bool)
	Set(ctx context.Context, result *dto.ExamResultResponse)
}

type noopResultCache struct{}

func NewNoopResultCache() ExamResultCache { return noopResultCache{} }

func (noopResultCache) Get(context.Context, uuid.UUID) (*dto.ExamResultResponse, bool) {
	return nil, false
}

func (noopResultCache) Set(context.Context, *dto.ExamResultResponse) {}
