package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/certprep/internal/controller"
	"github.com/lshigami/certprep/internal/dto"
	"github.com/lshigami/certprep/internal/service"
)

type PracticeController struct {
	practiceService service.PracticeService
}

func NewPracticeController(ps service.PracticeService) *PracticeController {
	return &PracticeController{practiceService: ps}
}

// SubmitAnswer godoc
// @Summary (User) Answer a single practice question
// @Description Grades the answer immediately and updates the user's review item for the question.
// @Tags User - Practice
// @Accept json
// @Produce json
// @Param request body dto.PracticeAnswerRequest true "Practice answer"
// @Success 201 {object} dto.PracticeAnswerResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or choice"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /practice/answers [post]
func (c *PracticeController) SubmitAnswer(ctx *gin.Context) {
	var req dto.PracticeAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "SubmitAnswer", err)
		return
	}
	resp, err := c.practiceService.SubmitAnswer(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "SubmitAnswer", err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListAttempts godoc
// @Summary (User) Practice history
// @Tags User - Practice
// @Produce json
// @Param user_id query int true "User ID"
// @Param limit query int false "Maximum number of attempts (default 50)"
// @Success 200 {array} dto.PracticeAttemptDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameter"
// @Router /practice/attempts [get]
func (c *PracticeController) ListAttempts(ctx *gin.Context) {
	userID, ok := controller.UserIDQuery(ctx)
	if !ok {
		return
	}
	limit, ok := controller.IntQuery(ctx, "limit", 0)
	if !ok {
		return
	}
	attempts, err := c.practiceService.ListAttempts(ctx.Request.Context(), userID, limit)
	if err != nil {
		controller.RespondError(ctx, "ListAttempts", err)
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}
