package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/mentorhub/internal/middleware"
	"github.com/hitoshi/mentorhub/internal/model"
)

// SessionCollection はセッションハンドラーが必要とするストアインターフェース。
type SessionCollection interface {
	// AddSession は新規セッション依頼を作成し先頭へ追加する。
	AddSession(data model.SessionRequest) model.SessionRequest
	// UpdateSessionStatus は該当レコードのステータスを差し替える。
	UpdateSessionStatus(sessionID string, status model.SessionStatus) bool
	// GetMenteeSessions は指定メンティーIDのセッション一覧を返す。
	GetMenteeSessions(menteeID string) []model.SessionRequest
	// GetMentorSessions は指定メンター表示名のセッション一覧を返す。
	GetMentorSessions(mentorName string) []model.SessionRequest
	// GetPendingRequestsForMentor は指定メンター表示名のpendingな依頼のみを返す。
	GetPendingRequestsForMentor(mentorName string) []model.SessionRequest
}

// SessionHandler はメンタリングセッション依頼のHTTPハンドラー。
type SessionHandler struct {
	sessions SessionCollection
	metrics  MetricsRecorder
}

// NewSessionHandler はSessionHandlerを生成する。metricsはnilでもよい。
func NewSessionHandler(sessions SessionCollection, metrics MetricsRecorder) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		metrics:  orNoopMetrics(metrics),
	}
}

// createSessionRequest はセッション依頼作成リクエストのボディ。
// メンター側フィールドは作成時点のスナップショットとして保存される。
type createSessionRequest struct {
	MentorID        string `json:"mentorId"`
	MentorName      string `json:"mentorName"`
	MentorRole      string `json:"mentorRole"`
	MentorCompany   string `json:"mentorCompany"`
	MentorImage     string `json:"mentorImage"`
	MentorSpecialty string `json:"mentorSpecialty"`

	Date    string `json:"date"`
	Time    string `json:"time"`
	Topic   string `json:"topic"`
	Message string `json:"message,omitempty"`
}

// updateSessionStatusRequest はステータス変更リクエストのボディ。
type updateSessionStatusRequest struct {
	Status model.SessionStatus `json:"status"`
}

// CreateSession はセッション依頼の作成を処理する。
// メンティー側スナップショットは認証済みユーザーから取得する。
// POST /api/sessions
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeUnauthorized(w)
		return
	}

	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestBody(w)
		return
	}

	if strings.TrimSpace(req.Topic) == "" {
		middleware.WriteServiceError(w, model.NewTopicRequiredError())
		return
	}
	if !model.IsValidTimeSlot(req.Time) {
		middleware.WriteServiceError(w, model.NewInvalidTimeSlotError(req.Time))
		return
	}

	session := h.sessions.AddSession(model.SessionRequest{
		MentorID:        req.MentorID,
		MentorName:      req.MentorName,
		MentorRole:      req.MentorRole,
		MentorCompany:   req.MentorCompany,
		MentorImage:     req.MentorImage,
		MentorSpecialty: req.MentorSpecialty,
		MenteeID:        strconv.FormatInt(user.ID, 10),
		MenteeName:      user.Name,
		MenteeEmail:     user.Email,
		Date:            req.Date,
		Time:            req.Time,
		Topic:           req.Topic,
		Message:         req.Message,
	})

	h.metrics.RecordSessionCreated()
	writeJSON(w, http.StatusCreated, session)
}

// ListMenteeSessions は認証済みメンティーのセッション一覧を返す。
// GET /api/mentee/sessions
func (h *SessionHandler) ListMenteeSessions(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeUnauthorized(w)
		return
	}

	sessions := h.sessions.GetMenteeSessions(strconv.FormatInt(user.ID, 10))
	writeJSON(w, http.StatusOK, sessions)
}

// ListMentorSessions は認証済みメンターのセッション一覧を返す。
// 照合はメンターの表示名で行う。
// GET /api/mentor/sessions
func (h *SessionHandler) ListMentorSessions(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeUnauthorized(w)
		return
	}

	sessions := h.sessions.GetMentorSessions(user.Name)
	writeJSON(w, http.StatusOK, sessions)
}

// ListMentorRequests は認証済みメンターへのpendingな依頼一覧を返す。
// GET /api/mentor/requests
func (h *SessionHandler) ListMentorRequests(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeUnauthorized(w)
		return
	}

	requests := h.sessions.GetPendingRequestsForMentor(user.Name)
	writeJSON(w, http.StatusOK, requests)
}

// UpdateSessionStatus はセッション依頼のステータス変更を処理する。
// 遷移の組み合わせは制限しない。IDが存在しない場合は404を返す。
// PATCH /api/sessions/:id/status
func (h *SessionHandler) UpdateSessionStatus(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	var req updateSessionStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestBody(w)
		return
	}

	if !req.Status.IsValid() {
		middleware.WriteServiceError(w, model.NewInvalidStatusError(string(req.Status)))
		return
	}

	if !h.sessions.UpdateSessionStatus(sessionID, req.Status) {
		middleware.WriteErrorResponse(w, http.StatusNotFound, &model.APIError{
			Code:     "SESSION_NOT_FOUND",
			Message:  "The session request was not found.",
			Category: "validation",
			Action:   "Please refresh the list and try again.",
		})
		return
	}

	h.metrics.RecordSessionStatusChange(string(req.Status))
	writeJSON(w, http.StatusOK, map[string]string{"status": string(req.Status)})
}
