package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/mentorhub/internal/middleware"
	"github.com/hitoshi/mentorhub/internal/model"
)

// UserDirectory は管理者ハンドラーが必要とするユーザー名簿インターフェース。
type UserDirectory interface {
	// All は名簿全体のコピーを返す。
	All() []model.User
	// GetMentees はメンティーの一覧を返す。
	GetMentees() []model.User
	// GetMentors はメンターの一覧を返す。
	GetMentors() []model.User
	// GetPendingUsers は審査待ちユーザーの一覧を返す。
	GetPendingUsers() []model.User
	// GetUserByID はIDでユーザーを検索する。見つからない場合はnil。
	GetUserByID(userID int64) *model.User
	// UpdateUserStatus は審査ステータスを更新しイベントを発火する。
	UpdateUserStatus(userID int64, status model.ApprovalStatus, consultationDate string)
}

// AdminHandler は管理者コンソールのHTTPハンドラー。
type AdminHandler struct {
	users   UserDirectory
	metrics MetricsRecorder
}

// NewAdminHandler はAdminHandlerを生成する。metricsはnilでもよい。
func NewAdminHandler(users UserDirectory, metrics MetricsRecorder) *AdminHandler {
	return &AdminHandler{
		users:   users,
		metrics: orNoopMetrics(metrics),
	}
}

// updateUserStatusRequest は審査ステータス変更リクエストのボディ。
type updateUserStatusRequest struct {
	ApprovalStatus   model.ApprovalStatus `json:"approvalStatus"`
	ConsultationDate string               `json:"consultationDate,omitempty"`
}

// ListUsers はユーザー名簿を返す。roleクエリパラメータで絞り込める。
// GET /api/admin/users?role=mentee|mentor
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	var users []model.User
	switch r.URL.Query().Get("role") {
	case string(model.RoleMentee):
		users = h.users.GetMentees()
	case string(model.RoleMentor):
		users = h.users.GetMentors()
	default:
		users = h.users.All()
	}

	writeJSON(w, http.StatusOK, users)
}

// ListPendingUsers は審査待ちユーザーの一覧を返す。
// GET /api/admin/users/pending
func (h *AdminHandler) ListPendingUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.users.GetPendingUsers())
}

// UpdateUserStatus は審査ステータスの変更を処理する。
// 変更はステータスイベントバス経由で該当ユーザーのライブセッションへ伝播する。
// PATCH /api/admin/users/:id/status
func (h *AdminHandler) UpdateUserStatus(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		middleware.WriteErrorResponse(w, http.StatusBadRequest, &model.APIError{
			Code:     "INVALID_REQUEST",
			Message:  "The user id must be a number.",
			Category: "validation",
			Action:   "Please check the request path.",
		})
		return
	}

	var req updateUserStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestBody(w)
		return
	}

	if !req.ApprovalStatus.IsValid() {
		middleware.WriteServiceError(w, model.NewInvalidStatusError(string(req.ApprovalStatus)))
		return
	}

	if h.users.GetUserByID(userID) == nil {
		middleware.WriteServiceError(w, model.NewUserNotFoundError(userID))
		return
	}

	h.users.UpdateUserStatus(userID, req.ApprovalStatus, req.ConsultationDate)
	h.metrics.RecordUserStatusChange(string(req.ApprovalStatus))

	updated := h.users.GetUserByID(userID)
	writeJSON(w, http.StatusOK, updated)
}
