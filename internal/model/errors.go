// Package model はドメインモデルを定義する。
package model

import "fmt"

// APIError は統一エラーフォーマットを表す。
// UIに表示する原因カテゴリと対処方法を含む。
type APIError struct {
	Code     string // エラーコード
	Message  string // エラーメッセージ
	Category string // カテゴリ: auth, validation, booking, content, system
	Action   string // ユーザー向け対処方法
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeNetworkError       = "NETWORK_ERROR"
	ErrCodeRegistrationFailed = "REGISTRATION_FAILED"
	ErrCodeSocialLoginFailed  = "SOCIAL_LOGIN_FAILED"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeInvalidRole        = "INVALID_ROLE"
	ErrCodeInvalidStatus      = "INVALID_STATUS"
	ErrCodeInvalidTimeSlot    = "INVALID_TIME_SLOT"
	ErrCodeTopicRequired      = "TOPIC_REQUIRED"
	ErrCodeMentorNotFound     = "MENTOR_NOT_FOUND"
	ErrCodePostNotFound       = "POST_NOT_FOUND"
	ErrCodeStoryNotFound      = "STORY_NOT_FOUND"
	ErrCodeUserNotFound       = "USER_NOT_FOUND"
)

// NewInvalidCredentialsError はログイン失敗エラーを生成する。
// デモ照合と遠隔照合のどちらで失敗したかは区別しない（情報漏えい防止）。
func NewInvalidCredentialsError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidCredentials,
		Message:  "Invalid email or password.",
		Category: "auth",
		Action:   "Check your credentials and try again.",
	}
}

// NewNetworkError は外部交換の失敗を汎用のリトライ可能エラーとして生成する。
func NewNetworkError() *APIError {
	return &APIError{
		Code:     ErrCodeNetworkError,
		Message:  "Network error. Please try again.",
		Category: "system",
		Action:   "Wait a moment and retry the request.",
	}
}

// NewRegistrationFailedError は登録失敗エラーを生成する。
func NewRegistrationFailedError(reason string) *APIError {
	msg := "Registration failed."
	if reason != "" {
		msg = fmt.Sprintf("Registration failed: %s", reason)
	}
	return &APIError{
		Code:     ErrCodeRegistrationFailed,
		Message:  msg,
		Category: "auth",
		Action:   "Check the submitted details and try again.",
	}
}

// NewSocialLoginFailedError はソーシャルログイン失敗エラーを生成する。
func NewSocialLoginFailedError() *APIError {
	return &APIError{
		Code:     ErrCodeSocialLoginFailed,
		Message:  "Social authentication failed.",
		Category: "auth",
		Action:   "Try again or sign in with email instead.",
	}
}

// NewUnauthorizedError は認証が必要なエラーを生成する。
func NewUnauthorizedError() *APIError {
	return &APIError{
		Code:     ErrCodeUnauthorized,
		Message:  "Authentication required.",
		Category: "auth",
		Action:   "Sign in and try again.",
	}
}

// NewInvalidRoleError は無効なロールエラーを生成する。
func NewInvalidRoleError(role string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidRole,
		Message:  fmt.Sprintf("Invalid role: %s", role),
		Category: "validation",
		Action:   "Role must be one of mentee, mentor, or admin.",
	}
}

// NewInvalidStatusError は無効なステータス値エラーを生成する。
func NewInvalidStatusError(status string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidStatus,
		Message:  fmt.Sprintf("Invalid status: %s", status),
		Category: "validation",
		Action:   "Use a status from the documented list.",
	}
}

// NewInvalidTimeSlotError は固定リスト外の時間枠エラーを生成する。
func NewInvalidTimeSlotError(slot string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidTimeSlot,
		Message:  fmt.Sprintf("Invalid time slot: %s", slot),
		Category: "booking",
		Action:   "Choose one of the offered time slots.",
	}
}

// NewTopicRequiredError はトピック未入力エラーを生成する。
func NewTopicRequiredError() *APIError {
	return &APIError{
		Code:     ErrCodeTopicRequired,
		Message:  "Session topic is required.",
		Category: "booking",
		Action:   "Describe what you want to discuss.",
	}
}

// NewMentorNotFoundError はメンター未検出エラーを生成する。
func NewMentorNotFoundError(slug string) *APIError {
	return &APIError{
		Code:     ErrCodeMentorNotFound,
		Message:  fmt.Sprintf("Mentor not found: %s", slug),
		Category: "content",
		Action:   "Check the mentor profile link.",
	}
}

// NewPostNotFoundError はブログ記事未検出エラーを生成する。
func NewPostNotFoundError(slug string) *APIError {
	return &APIError{
		Code:     ErrCodePostNotFound,
		Message:  fmt.Sprintf("Post not found: %s", slug),
		Category: "content",
		Action:   "Check the article link.",
	}
}

// NewStoryNotFoundError はサクセスストーリー未検出エラーを生成する。
func NewStoryNotFoundError(slug string) *APIError {
	return &APIError{
		Code:     ErrCodeStoryNotFound,
		Message:  fmt.Sprintf("Story not found: %s", slug),
		Category: "content",
		Action:   "Check the story link.",
	}
}

// NewUserNotFoundError はユーザー未検出エラーを生成する。
func NewUserNotFoundError(id int64) *APIError {
	return &APIError{
		Code:     ErrCodeUserNotFound,
		Message:  fmt.Sprintf("User not found: %d", id),
		Category: "auth",
		Action:   "Check the user identifier.",
	}
}
