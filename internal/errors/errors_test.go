package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestResponders(t *testing.T) {
	tests := []struct {
		name        string
		respond     func(c *gin.Context)
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{"unauthorized default", func(c *gin.Context) { Unauthorized(c, "") }, http.StatusUnauthorized, ErrCodeUnauthorized, "Authentication required"},
		{"not found", func(c *gin.Context) { NotFound(c, "task not found") }, http.StatusNotFound, ErrCodeNotFound, "task not found"},
		{"bad request default", func(c *gin.Context) { BadRequest(c, "") }, http.StatusBadRequest, ErrCodeInvalidInput, "Invalid request"},
		{"conflict default", func(c *gin.Context) { Conflict(c, "") }, http.StatusConflict, ErrCodeConflict, "Resource conflict"},
		{"conflict with code", func(c *gin.Context) { ConflictWithCode(c, ErrCodeInvalidTransition, "nope") }, http.StatusConflict, ErrCodeInvalidTransition, "nope"},
		{"internal default", func(c *gin.Context) { InternalError(c, "") }, http.StatusInternalServerError, ErrCodeInternalError, "Internal server error"},
		{"unprocessable", func(c *gin.Context) { UnprocessableEntity(c, "length mismatch") }, http.StatusUnprocessableEntity, ErrCodeInvalidOperation, "length mismatch"},
		{"unavailable default", func(c *gin.Context) { ServiceUnavailable(c, "") }, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Service temporarily unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			tt.respond(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body APIError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}

func TestBadRequestWithDetails(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	BadRequestWithDetails(c, "title is required", gin.H{"field": "workingOrder.title"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, ErrCodeInvalidInput, body["code"])
	assert.Equal(t, map[string]any{"field": "workingOrder.title"}, body["details"])
}

func TestAPIError_Error(t *testing.T) {
	err := NewAPIError(ErrCodeNotFound, "missing")
	assert.Equal(t, "missing", err.Error())
}
