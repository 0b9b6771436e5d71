package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/certprep/internal/controller"
	"github.com/lshigami/certprep/internal/dto"
	"github.com/lshigami/certprep/internal/service"
	"github.com/rs/zerolog/log"
)

type CatalogController struct {
	categoryService service.CategoryService
	questionService service.QuestionService
}

func NewCatalogController(categoryService service.CategoryService, questionService service.QuestionService) *CatalogController {
	return &CatalogController{categoryService: categoryService, questionService: questionService}
}

// CreateCategory godoc
// @Summary (Admin) Create a question category
// @Description A category belongs to exactly one configured exam area.
// @Tags Admin - Catalog
// @Accept json
// @Produce json
// @Param category body dto.CategoryCreateDTO true "Category data"
// @Success 201 {object} dto.CategoryResponseDTO "Category created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input data or unknown exam area"
// @Failure 409 {object} dto.ErrorResponse "Category name already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/categories [post]
func (c *CatalogController) CreateCategory(ctx *gin.Context) {
	var req dto.CategoryCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "Admin CreateCategory", err)
		return
	}

	resp, err := c.categoryService.CreateCategory(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "Admin CreateCategory", err)
		return
	}
	log.Info().Uint("categoryID", resp.ID).Str("examArea", resp.ExamArea).Msg("Admin CreateCategory: Category created")
	ctx.JSON(http.StatusCreated, resp)
}

// ListCategories godoc
// @Summary (Admin) List categories
// @Tags Admin - Catalog
// @Produce json
// @Success 200 {array} dto.CategoryResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/categories [get]
func (c *CatalogController) ListCategories(ctx *gin.Context) {
	categories, err := c.categoryService.ListCategories(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, "Admin ListCategories", err)
		return
	}
	ctx.JSON(http.StatusOK, categories)
}

// DeleteCategory godoc
// @Summary (Admin) Delete a category
// @Tags Admin - Catalog
// @Param id path int true "Category ID"
// @Success 204 "Category deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Router /admin/categories/{id} [delete]
func (c *CatalogController) DeleteCategory(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.categoryService.DeleteCategory(ctx.Request.Context(), id); err != nil {
		controller.RespondError(ctx, "Admin DeleteCategory", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// CreateQuestion godoc
// @Summary (Admin) Create a question
// @Description correct_answer is the 0-based index into choices.
// @Tags Admin - Catalog
// @Accept json
// @Produce json
// @Param question body dto.QuestionCreateDTO true "Question data"
// @Success 201 {object} dto.QuestionResponseDTO "Question created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Router /admin/questions [post]
func (c *CatalogController) CreateQuestion(ctx *gin.Context) {
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "Admin CreateQuestion", err)
		return
	}

	resp, err := c.questionService.CreateQuestion(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "Admin CreateQuestion", err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListQuestions godoc
// @Summary (Admin) List questions
// @Tags Admin - Catalog
// @Produce json
// @Param category_id query int false "Filter by category"
// @Param exam_area query string false "Filter by exam area"
// @Param topic query string false "Filter by topic"
// @Success 200 {array} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameter"
// @Router /admin/questions [get]
func (c *CatalogController) ListQuestions(ctx *gin.Context) {
	filter := dto.QuestionFilter{
		ExamArea: ctx.Query("exam_area"),
		Topic:    ctx.Query("topic"),
	}
	if ctx.Query("category_id") != "" {
		categoryID, ok := controller.IntQuery(ctx, "category_id", 0)
		if !ok {
			return
		}
		id := uint(categoryID)
		filter.CategoryID = &id
	}

	questions, err := c.questionService.ListQuestions(ctx.Request.Context(), filter)
	if err != nil {
		controller.RespondError(ctx, "Admin ListQuestions", err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// GetQuestion godoc
// @Summary (Admin) Get a question with its answer key
// @Tags Admin - Catalog
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /admin/questions/{id} [get]
func (c *CatalogController) GetQuestion(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	question, err := c.questionService.GetQuestion(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, "Admin GetQuestion", err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// UpdateQuestion godoc
// @Summary (Admin) Replace a question
// @Description Existing mock exams keep their own snapshot of the question.
// @Tags Admin - Catalog
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param question body dto.QuestionCreateDTO true "Question data"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 404 {object} dto.ErrorResponse "Question or category not found"
// @Router /admin/questions/{id} [put]
func (c *CatalogController) UpdateQuestion(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "Admin UpdateQuestion", err)
		return
	}

	resp, err := c.questionService.UpdateQuestion(ctx.Request.Context(), id, req)
	if err != nil {
		controller.RespondError(ctx, "Admin UpdateQuestion", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteQuestion godoc
// @Summary (Admin) Delete a question
// @Tags Admin - Catalog
// @Param id path int true "Question ID"
// @Success 204 "Question deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /admin/questions/{id} [delete]
func (c *CatalogController) DeleteQuestion(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.questionService.DeleteQuestion(ctx.Request.Context(), id); err != nil {
		controller.RespondError(ctx, "Admin DeleteQuestion", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Coverage godoc
// @Summary (Admin) Catalog readiness per exam area
// @Description Compares each exam area's quota with the live questions available. Starting an exam fails while any area is not ready.
// @Tags Admin - Catalog
// @Produce json
// @Success 200 {array} dto.AreaCoverageDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/catalog/coverage [get]
func (c *CatalogController) Coverage(ctx *gin.Context) {
	coverage, err := c.questionService.Coverage(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, "Admin Coverage", err)
		return
	}
	ctx.JSON(http.StatusOK, coverage)
}
