package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/certprep/internal/dto"
	"github.com/lshigami/certprep/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("lookup: %w", service.ErrExamNotFound), http.StatusNotFound},
		{service.ErrQuestionNotFound, http.StatusNotFound},
		{service.ErrNotOwner, http.StatusForbidden},
		{service.ErrExamAlreadyFinished, http.StatusConflict},
		{service.ErrExamNotFinished, http.StatusConflict},
		{&service.InsufficientQuestionsError{Area: "Deep Learning", Required: 30, Available: 12}, http.StatusUnprocessableEntity},
		{service.ErrInvalidOrdinal, http.StatusBadRequest},
		{service.ErrInvalidChoice, http.StatusBadRequest},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusFor(tc.err), tc.err.Error())
	}
}

func TestRespondErrorHidesInternalErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	RespondError(ctx, "Test", errors.New("pq: password authentication failed"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body.Message)
}

func TestQueryHelpers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/?user_id=7&limit=15", nil)
	userID, ok := UserIDQuery(ctx)
	require.True(t, ok)
	assert.Equal(t, uint(7), userID)
	limit, ok := IntQuery(ctx, "limit", 20)
	require.True(t, ok)
	assert.Equal(t, 15, limit)
	def, ok := IntQuery(ctx, "offset", 20)
	require.True(t, ok)
	assert.Equal(t, 20, def)

	w = httptest.NewRecorder()
	ctx, _ = gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/?user_id=abc", nil)
	_, ok = UserIDQuery(ctx)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
