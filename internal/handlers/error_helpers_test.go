package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthyfeet/salon-scheduler/internal/httperr"
)

func TestWriteBusinessError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	type testCase struct {
		name       string
		code       string
		wantStatus int
	}

	tests := []testCase{
		{"ReferenceNotFound", httperr.CodeReferenceNotFound, http.StatusNotFound},
		{"SlotConflict", httperr.CodeSlotConflict, http.StatusConflict},
		{"DoubleBooking", httperr.CodeDoubleBooking, http.StatusConflict},
		{"InvalidTransition", httperr.CodeInvalidTransition, http.StatusBadRequest},
		{"InvalidState", httperr.CodeInvalidState, http.StatusBadRequest},
		{"ValidationError", httperr.CodeValidationError, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			handled := writeBusinessError(c, httperr.ErrBusiness(tt.code))

			require.True(t, handled)
			assert.Equal(t, tt.wantStatus, w.Code)

			var body httperr.HTTPError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestWriteBusinessError_IgnoresPlainErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	handled := writeBusinessError(c, errors.New("connection refused"))

	assert.False(t, handled)
}
