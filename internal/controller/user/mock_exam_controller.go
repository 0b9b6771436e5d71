package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/certprep/internal/controller"
	"github.com/lshigami/certprep/internal/dto"
	"github.com/lshigami/certprep/internal/service"
	"github.com/rs/zerolog/log"
)

type MockExamController struct {
	mockExamService service.MockExamService
}

func NewMockExamController(mes service.MockExamService) *MockExamController {
	return &MockExamController{mockExamService: mes}
}

// StartExam godoc
// @Summary (User) Start a mock exam
// @Description Samples a new 100-question mock exam following the exam area quotas. Correct answers are withheld.
// @Tags User - Mock Exams
// @Accept json
// @Produce json
// @Param request body dto.StartExamRequest true "User starting the exam"
// @Success 201 {object} dto.StartExamResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 422 {object} dto.ErrorResponse "Not enough questions in an exam area"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mock-exams [post]
func (c *MockExamController) StartExam(ctx *gin.Context) {
	var req dto.StartExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "StartExam", err)
		return
	}

	resp, err := c.mockExamService.StartExam(ctx.Request.Context(), req.UserID)
	if err != nil {
		controller.RespondError(ctx, "StartExam", err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListExams godoc
// @Summary (User) List mock exam history
// @Description Lists a user's mock exams, newest first.
// @Tags User - Mock Exams
// @Produce json
// @Param user_id query int true "User ID"
// @Success 200 {array} dto.ExamSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid User ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mock-exams [get]
func (c *MockExamController) ListExams(ctx *gin.Context) {
	userID, ok := controller.UserIDQuery(ctx)
	if !ok {
		return
	}
	exams, err := c.mockExamService.ListExams(ctx.Request.Context(), userID)
	if err != nil {
		controller.RespondError(ctx, "ListExams", err)
		return
	}
	ctx.JSON(http.StatusOK, exams)
}

// GetExam godoc
// @Summary (User) Get a mock exam
// @Description Returns every slot with the current answers. Correct answers and explanations are included once the exam is finished.
// @Tags User - Mock Exams
// @Produce json
// @Param exam_id path string true "Exam ID (UUID)"
// @Param user_id query int true "User ID"
// @Success 200 {object} dto.ExamDetailResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 403 {object} dto.ErrorResponse "Exam belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /mock-exams/{exam_id} [get]
func (c *MockExamController) GetExam(ctx *gin.Context) {
	examID, ok := controller.UUIDParam(ctx, "exam_id")
	if !ok {
		return
	}
	userID, ok := controller.UserIDQuery(ctx)
	if !ok {
		return
	}
	exam, err := c.mockExamService.GetExam(ctx.Request.Context(), examID, userID)
	if err != nil {
		controller.RespondError(ctx, "GetExam", err)
		return
	}
	ctx.JSON(http.StatusOK, exam)
}

// RecordAnswer godoc
// @Summary (User) Answer one exam question
// @Description Records the selected choice for one slot. Answering the same slot again overwrites the previous choice.
// @Tags User - Mock Exams
// @Accept json
// @Produce json
// @Param exam_id path string true "Exam ID (UUID)"
// @Param question_number path int true "0-based question number"
// @Param request body dto.RecordAnswerRequest true "Selected answer"
// @Success 200 {object} dto.RecordAnswerResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid question number or choice"
// @Failure 403 {object} dto.ErrorResponse "Exam belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 409 {object} dto.ErrorResponse "Exam already finished"
// @Router /mock-exams/{exam_id}/answers/{question_number} [put]
func (c *MockExamController) RecordAnswer(ctx *gin.Context) {
	examID, ok := controller.UUIDParam(ctx, "exam_id")
	if !ok {
		return
	}
	questionNumber, err := strconv.Atoi(ctx.Param("question_number"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question_number format"})
		return
	}

	var req dto.RecordAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "RecordAnswer", err)
		return
	}

	resp, err := c.mockExamService.RecordAnswer(ctx.Request.Context(), examID, req.UserID, questionNumber, *req.SelectedAnswer)
	if err != nil {
		controller.RespondError(ctx, "RecordAnswer", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// FinishExam godoc
// @Summary (User) Finish a mock exam
// @Description Scores the exam and stores the result. Finishing an already finished exam returns the stored result.
// @Tags User - Mock Exams
// @Accept json
// @Produce json
// @Param exam_id path string true "Exam ID (UUID)"
// @Param request body dto.FinishExamRequest true "Exam owner"
// @Success 200 {object} dto.ExamResultResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 403 {object} dto.ErrorResponse "Exam belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /mock-exams/{exam_id}/finish [post]
func (c *MockExamController) FinishExam(ctx *gin.Context) {
	examID, ok := controller.UUIDParam(ctx, "exam_id")
	if !ok {
		return
	}
	var req dto.FinishExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "FinishExam", err)
		return
	}

	result, err := c.mockExamService.FinishExam(ctx.Request.Context(), examID, req.UserID)
	if err != nil {
		controller.RespondError(ctx, "FinishExam", err)
		return
	}
	log.Info().Str("examID", examID.String()).Float64("score", result.Score).Msg("User FinishExam: Result returned")
	ctx.JSON(http.StatusOK, result)
}

// GetResult godoc
// @Summary (User) Get a finished exam's result
// @Tags User - Mock Exams
// @Produce json
// @Param exam_id path string true "Exam ID (UUID)"
// @Param user_id query int true "User ID"
// @Success 200 {object} dto.ExamResultResponse
// @Failure 403 {object} dto.ErrorResponse "Exam belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 409 {object} dto.ErrorResponse "Exam not finished yet"
// @Router /mock-exams/{exam_id}/result [get]
func (c *MockExamController) GetResult(ctx *gin.Context) {
	examID, ok := controller.UUIDParam(ctx, "exam_id")
	if !ok {
		return
	}
	userID, ok := controller.UserIDQuery(ctx)
	if !ok {
		return
	}
	result, err := c.mockExamService.GetResult(ctx.Request.Context(), examID, userID)
	if err != nil {
		controller.RespondError(ctx, "GetResult", err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetExamConfig godoc
// @Summary Exam layout
// @Description Area quotas, passing score, time limit and review mastery threshold.
// @Tags User - Mock Exams
// @Produce json
// @Success 200 {object} dto.ExamConfigResponse
// @Router /exam-config [get]
func (c *MockExamController) GetExamConfig(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.mockExamService.ExamConfig())
}
