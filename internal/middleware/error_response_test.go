package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hitoshi/mentorhub/internal/model"
)

// TestWriteServiceError はサービス層エラーのHTTPステータス変換をテストする。
func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "invalid credentials",
			err:        model.NewInvalidCredentialsError(),
			wantStatus: http.StatusUnauthorized,
			wantCode:   model.ErrCodeInvalidCredentials,
		},
		{
			name:       "network error",
			err:        model.NewNetworkError(),
			wantStatus: http.StatusBadGateway,
			wantCode:   model.ErrCodeNetworkError,
		},
		{
			name:       "mentor not found",
			err:        model.NewMentorNotFoundError("james-wilson"),
			wantStatus: http.StatusNotFound,
			wantCode:   model.ErrCodeMentorNotFound,
		},
		{
			name:       "invalid role",
			err:        model.NewInvalidRoleError("superuser"),
			wantStatus: http.StatusBadRequest,
			wantCode:   model.ErrCodeInvalidRole,
		},
		{
			name:       "wrapped api error",
			err:        fmt.Errorf("handling request: %w", model.NewTopicRequiredError()),
			wantStatus: http.StatusBadRequest,
			wantCode:   model.ErrCodeTopicRequired,
		},
		{
			name:       "plain error",
			err:        errors.New("database exploded"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteServiceError(rec, tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, want %q", ct, "application/json")
			}

			var body ErrorResponseBody
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if body.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", body.Code, tt.wantCode)
			}
			if body.Message == "" {
				t.Error("message is empty")
			}
		})
	}
}

// TestWriteInternalServerError は内部エラーレスポンスが詳細を漏らさないことをテストする。
func TestWriteInternalServerError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteInternalServerError(rec)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}

	var body ErrorResponseBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Message != "Something went wrong on our end." {
		t.Errorf("message = %q, want generic message", body.Message)
	}
}
