package middleware

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hitoshi/mentorhub/internal/model"
)

// ErrorResponseBody はAPIエラーレスポンスの統一フォーマット。
// 原因カテゴリと対処方法を含む。
type ErrorResponseBody struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Category string `json:"category"`
	Action   string `json:"action,omitempty"`
}

// WriteErrorResponse は統一エラーフォーマットでHTTPエラーレスポンスを書き込む。
// すべてのAPIエンドポイントで一貫したエラーレスポンスを提供する。
func WriteErrorResponse(w http.ResponseWriter, statusCode int, apiErr *model.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponseBody{
		Code:     apiErr.Code,
		Message:  apiErr.Message,
		Category: apiErr.Category,
		Action:   apiErr.Action,
	})
}

// WriteServiceError はサービス層のエラーを適切なHTTPステータスへ変換して書き込む。
// *model.APIErrorはコードに応じたステータスで、それ以外は500で返す。
func WriteServiceError(w http.ResponseWriter, err error) {
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		WriteInternalServerError(w)
		return
	}
	WriteErrorResponse(w, statusForCode(apiErr.Code), apiErr)
}

// statusForCode はエラーコードをHTTPステータスへ対応付ける。
func statusForCode(code string) int {
	switch code {
	case model.ErrCodeInvalidCredentials, model.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case model.ErrCodeMentorNotFound, model.ErrCodePostNotFound,
		model.ErrCodeStoryNotFound, model.ErrCodeUserNotFound:
		return http.StatusNotFound
	case model.ErrCodeNetworkError:
		return http.StatusBadGateway
	case model.ErrCodeRegistrationFailed, model.ErrCodeSocialLoginFailed,
		model.ErrCodeInvalidRole, model.ErrCodeInvalidStatus,
		model.ErrCodeInvalidTimeSlot, model.ErrCodeTopicRequired:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// WriteInternalServerError は内部サーバーエラーの統一レスポンスを書き込む。
// 詳細はログのみに記録し、ユーザーには一般的なメッセージを返す。
func WriteInternalServerError(w http.ResponseWriter) {
	WriteErrorResponse(w, http.StatusInternalServerError, &model.APIError{
		Code:     "INTERNAL_ERROR",
		Message:  "Something went wrong on our end.",
		Category: "system",
		Action:   "Please try again in a moment.",
	})
}
