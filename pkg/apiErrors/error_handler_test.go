package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		code       string
		wantStatus int
	}{
		{ErrInvalidFormat, http.StatusBadRequest},
		{ErrDateNotInPast, http.StatusBadRequest},
		{ErrMethodNotAllowed, http.StatusMethodNotAllowed},
		{ErrStoreOperation, http.StatusInternalServerError},
		{ErrInvalidToken, http.StatusUnauthorized},
		{"UNKNOWN", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "something failed", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, `{"code":"`+tt.code+`","error":"something failed"}`, rec.Body.String())
		})
	}
}

