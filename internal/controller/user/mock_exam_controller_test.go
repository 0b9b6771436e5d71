package user

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lshigami/certprep/internal/dto"
	"github.com/lshigami/certprep/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordCall struct {
	examID         uuid.UUID
	userID         uint
	questionNumber int
	selected       int
}

// stubExamService answers every call from its fields and remembers RecordAnswer arguments.
type stubExamService struct {
	err    error
	result *dto.ExamResultResponse
	calls  []recordCall
}

func (s *stubExamService) StartExam(ctx context.Context, userID uint) (*dto.StartExamResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dto.StartExamResponse{ExamID: uuid.New(), UserID: userID, TotalQuestions: 100}, nil
}

func (s *stubExamService) RecordAnswer(ctx context.Context, examID uuid.UUID, userID uint, questionNumber, selected int) (*dto.RecordAnswerResponse, error) {
	s.calls = append(s.calls, recordCall{examID, userID, questionNumber, selected})
	if s.err != nil {
		return nil, s.err
	}
	return &dto.RecordAnswerResponse{ExamID: examID, QuestionNumber: questionNumber, SelectedAnswer: selected, AnsweredAt: time.Now()}, nil
}

func (s *stubExamService) FinishExam(ctx context.Context, examID uuid.UUID, userID uint) (*dto.ExamResultResponse, error) {
	return s.result, s.err
}

func (s *stubExamService) GetExam(ctx context.Context, examID uuid.UUID, userID uint) (*dto.ExamDetailResponse, error) {
	return nil, s.err
}

func (s *stubExamService) GetResult(ctx context.Context, examID uuid.UUID, userID uint) (*dto.ExamResultResponse, error) {
	return s.result, s.err
}

func (s *stubExamService) ListExams(ctx context.Context, userID uint) ([]dto.ExamSummaryDTO, error) {
	return []dto.ExamSummaryDTO{}, s.err
}

func (s *stubExamService) ExamConfig() dto.ExamConfigResponse {
	return dto.ExamConfigResponse{TotalQuestions: 100, PassingScore: 65, MasteryThreshold: 3}
}

func newExamRouter(svc service.MockExamService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	c := NewMockExamController(svc)
	r.POST("/mock-exams", c.StartExam)
	r.PUT("/mock-exams/:exam_id/answers/:question_number", c.RecordAnswer)
	r.POST("/mock-exams/:exam_id/finish", c.FinishExam)
	r.GET("/mock-exams/:exam_id/result", c.GetResult)
	r.GET("/exam-config", c.GetExamConfig)
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRecordAnswerRoute(t *testing.T) {
	svc := &stubExamService{}
	r := newExamRouter(svc)
	examID := uuid.New()

	w := serve(r, http.MethodPut, "/mock-exams/"+examID.String()+"/answers/42", `{"user_id": 3, "selected_answer": 0}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Len(t, svc.calls, 1)
	assert.Equal(t, recordCall{examID, 3, 42, 0}, svc.calls[0])

	var resp dto.RecordAnswerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 42, resp.QuestionNumber)
}

func TestRecordAnswerRejectsBadInput(t *testing.T) {
	svc := &stubExamService{}
	r := newExamRouter(svc)
	examID := uuid.New().String()

	cases := map[string]struct{ path, body string }{
		"bad exam id":         {"/mock-exams/not-a-uuid/answers/1", `{"user_id": 3, "selected_answer": 1}`},
		"bad question number": {"/mock-exams/" + examID + "/answers/first", `{"user_id": 3, "selected_answer": 1}`},
		"missing answer":      {"/mock-exams/" + examID + "/answers/1", `{"user_id": 3}`},
		"negative answer":     {"/mock-exams/" + examID + "/answers/1", `{"user_id": 3, "selected_answer": -1}`},
		"missing user":        {"/mock-exams/" + examID + "/answers/1", `{"selected_answer": 1}`},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			w := serve(r, http.MethodPut, tc.path, tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
	assert.Empty(t, svc.calls)
}

func TestServiceErrorsMapToStatus(t *testing.T) {
	examID := uuid.New().String()
	cases := map[string]struct {
		err  error
		want int
	}{
		"already finished": {service.ErrExamAlreadyFinished, http.StatusConflict},
		"not owner":        {service.ErrNotOwner, http.StatusForbidden},
		"not found":        {service.ErrExamNotFound, http.StatusNotFound},
		"bad ordinal":      {service.ErrInvalidOrdinal, http.StatusBadRequest},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r := newExamRouter(&stubExamService{err: tc.err})
			w := serve(r, http.MethodPut, "/mock-exams/"+examID+"/answers/100", `{"user_id": 3, "selected_answer": 1}`)
			assert.Equal(t, tc.want, w.Code)

			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestStartExamInsufficientQuestions(t *testing.T) {
	r := newExamRouter(&stubExamService{err: &service.InsufficientQuestionsError{Area: "Deep Learning", Required: 30, Available: 29}})
	w := serve(r, http.MethodPost, "/mock-exams", `{"user_id": 1}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Deep Learning")
}

func TestFinishAndResultRoutes(t *testing.T) {
	examID := uuid.New()
	result := &dto.ExamResultResponse{ExamID: examID, UserID: 5, Status: "finished", Score: 72.5, Passed: true}
	r := newExamRouter(&stubExamService{result: result})

	w := serve(r, http.MethodPost, "/mock-exams/"+examID.String()+"/finish", `{"user_id": 5}`)
	require.Equal(t, http.StatusOK, w.Code)
	var got dto.ExamResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 72.5, got.Score)
	assert.True(t, got.Passed)

	w = serve(r, http.MethodGet, "/mock-exams/"+examID.String()+"/result", "")
	assert.Equal(t, http.StatusBadRequest, w.Code, "user_id is required")

	w = serve(r, http.MethodGet, "/mock-exams/"+examID.String()+"/result?user_id=5", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, http.MethodGet, "/exam-config", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"mastery_threshold":3`)
}
