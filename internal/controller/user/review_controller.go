package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/certprep/internal/controller"
	"github.com/lshigami/certprep/internal/dto"
	"github.com/lshigami/certprep/internal/service"
)

type ReviewController struct {
	reviewService service.ReviewItemService
}

func NewReviewController(rs service.ReviewItemService) *ReviewController {
	return &ReviewController{reviewService: rs}
}

// ListItems godoc
// @Summary (User) List review items
// @Tags User - Review
// @Produce json
// @Param user_id query int true "User ID"
// @Param status query string false "active or mastered"
// @Success 200 {array} dto.ReviewItemDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameter"
// @Router /review-items [get]
func (c *ReviewController) ListItems(ctx *gin.Context) {
	userID, ok := controller.UserIDQuery(ctx)
	if !ok {
		return
	}
	items, err := c.reviewService.ListItems(ctx.Request.Context(), userID, ctx.Query("status"))
	if err != nil {
		controller.RespondError(ctx, "ListItems", err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// Stats godoc
// @Summary (User) Review progress counts
// @Tags User - Review
// @Produce json
// @Param user_id query int true "User ID"
// @Success 200 {object} dto.ReviewStatsResponse
// @Router /review-items/stats [get]
func (c *ReviewController) Stats(ctx *gin.Context) {
	userID, ok := controller.UserIDQuery(ctx)
	if !ok {
		return
	}
	stats, err := c.reviewService.Stats(ctx.Request.Context(), userID)
	if err != nil {
		controller.RespondError(ctx, "Stats", err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// ReviewQuestions godoc
// @Summary (User) Questions due for review
// @Description Active review items' questions, least recently answered first. Answer them through /practice/answers.
// @Tags User - Review
// @Produce json
// @Param user_id query int true "User ID"
// @Param limit query int false "Batch size (default 20)"
// @Success 200 {array} dto.ReviewQuestionDTO
// @Router /review-items/questions [get]
func (c *ReviewController) ReviewQuestions(ctx *gin.Context) {
	userID, ok := controller.UserIDQuery(ctx)
	if !ok {
		return
	}
	limit, ok := controller.IntQuery(ctx, "limit", 0)
	if !ok {
		return
	}
	questions, err := c.reviewService.ReviewQuestions(ctx.Request.Context(), userID, limit)
	if err != nil {
		controller.RespondError(ctx, "ReviewQuestions", err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// Backfill godoc
// @Summary (User) Rebuild review items from exam history
// @Description Creates review items for wrong answers in finished exams that are not tracked yet. Safe to repeat.
// @Tags User - Review
// @Accept json
// @Produce json
// @Param request body dto.BackfillRequest true "User to backfill"
// @Success 200 {object} dto.BackfillResponse
// @Router /review-items/backfill [post]
func (c *ReviewController) Backfill(ctx *gin.Context) {
	var req dto.BackfillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "Backfill", err)
		return
	}
	resp, err := c.reviewService.Backfill(ctx.Request.Context(), req.UserID)
	if err != nil {
		controller.RespondError(ctx, "Backfill", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
