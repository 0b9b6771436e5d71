package service

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientQuestions = errors.New("insufficient questions for exam area")
	ErrExamNotFound          = errors.New("mock exam not found")
	ErrNotOwner              = errors.New("mock exam belongs to another user")
	ErrExamAlreadyFinished   = errors.New("mock exam already finished")
	ErrExamNotFinished       = errors.New("mock exam is not finished yet")
	ErrInvalidOrdinal        = errors.New("question number is outside the exam")
	ErrInvalidChoice         = errors.New("selected answer is outside the question's choices")
	ErrQuestionNotFound      = errors.New("question not found")
	ErrCategoryNotFound      = errors.New("category not found")
	ErrDuplicate             = errors.New("resource already exists")
	ErrValidation            = errors.New("validation error")
	ErrGeneration            = errors.New("text generation failed")
)

// InsufficientQuestionsError names the exam area whose quota could not be met.
type InsufficientQuestionsError struct {
	Area      string
	Required  int
	Available int
}

func (e *InsufficientQuestionsError) Error() string {
	return fmt.Sprintf("exam area %q needs %d questions but only %d are available", e.Area, e.Required, e.Available)
}

func (e *InsufficientQuestionsError) Is(target error) bool {
	return target == ErrInsufficientQuestions
}

// GenerationError wraps any failure of the text generation backend.
type GenerationError struct {
	Reason string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("text generation failed: %s: %v", e.Reason, e.Err)
	}
	return "text generation failed: " + e.Reason
}

func (e *GenerationError) Unwrap() error { return e.Err }

func (e *GenerationError) Is(target error) bool {
	return target == ErrGeneration
}

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
