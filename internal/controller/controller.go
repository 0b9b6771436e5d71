// Package controller holds the helpers shared by the admin and user HTTP controllers.
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lshigami/certprep/internal/dto"
	"github.com/lshigami/certprep/internal/service"
	"github.com/rs/zerolog/log"
)

// StatusFor maps a service error to its HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrExamNotFound),
		errors.Is(err, service.ErrQuestionNotFound),
		errors.Is(err, service.ErrCategoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, service.ErrExamAlreadyFinished),
		errors.Is(err, service.ErrExamNotFinished),
		errors.Is(err, service.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, service.ErrInsufficientQuestions):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrInvalidOrdinal),
		errors.Is(err, service.ErrInvalidChoice),
		errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes err as a dto.ErrorResponse. Internal errors are logged
// and their message is not exposed.
func RespondError(ctx *gin.Context, op string, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg(op + ": Service error")
		ctx.JSON(status, dto.ErrorResponse{Message: "Internal server error"})
		return
	}
	log.Warn().Err(err).Int("status", status).Msg(op + ": Request rejected")
	ctx.JSON(status, dto.ErrorResponse{Message: err.Error()})
}

// RespondBindError reports a request body that failed binding or validation.
func RespondBindError(ctx *gin.Context, op string, err error) {
	log.Warn().Err(err).Msg(op + ": Failed to bind request")
	resp := dto.ErrorResponse{Message: "Invalid request body"}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			resp.Details = append(resp.Details, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
		}
	} else {
		resp.Details = []string{err.Error()}
	}
	ctx.JSON(http.StatusBadRequest, resp)
}

// UintParam parses a positive numeric path parameter.
func UintParam(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || val == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: fmt.Sprintf("Invalid %s format", name)})
		return 0, false
	}
	return uint(val), true
}

// UUIDParam parses an exam id path parameter.
func UUIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: fmt.Sprintf("Invalid %s format", name)})
		return uuid.Nil, false
	}
	return id, true
}

// UserIDQuery reads the required user_id query parameter.
func UserIDQuery(ctx *gin.Context) (uint, bool) {
	raw := ctx.Query("user_id")
	val, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || val == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid or missing user_id query parameter"})
		return 0, false
	}
	return uint(val), true
}

// IntQuery reads an optional integer query parameter, falling back to def.
func IntQuery(ctx *gin.Context, name string, def int) (int, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return def, true
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: fmt.Sprintf("Invalid %s query parameter", name)})
		return 0, false
	}
	return val, true
}
