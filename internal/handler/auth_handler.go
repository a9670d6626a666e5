package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hitoshi/mentorhub/internal/auth"
	"github.com/hitoshi/mentorhub/internal/middleware"
	"github.com/hitoshi/mentorhub/internal/model"
)

// AuthServiceInterface は認証ハンドラーが必要とするサービスインターフェース。
type AuthServiceInterface interface {
	// Login はメール＋パスワードでログインし、ユーザーとトークンを返す。
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	// Register は新規アカウントを作成し、ユーザーとトークンを返す。
	Register(ctx context.Context, input auth.RegisterInput) (*model.User, string, error)
	// SocialLogin はソーシャルプロバイダー経由でログインする。
	SocialLogin(ctx context.Context, provider model.AuthProvider, profile auth.SocialProfile, role model.UserRole) (*model.User, string, error)
	// UpdateProfile はトークンに紐づくユーザーのプロフィールを更新する。
	UpdateProfile(ctx context.Context, token string, patch model.ProfilePatch) *model.User
	// Logout はトークンのセッションを破棄する。
	Logout(token string)
	// CurrentUser はトークンに紐づくユーザーのスナップショットを返す。
	CurrentUser(token string) *model.User
}

// AuthHandler は認証関連のHTTPハンドラー。
type AuthHandler struct {
	service AuthServiceInterface
	metrics MetricsRecorder
}

// NewAuthHandler はAuthHandlerを生成する。metricsはnilでもよい。
func NewAuthHandler(service AuthServiceInterface, metrics MetricsRecorder) *AuthHandler {
	return &AuthHandler{
		service: service,
		metrics: orNoopMetrics(metrics),
	}
}

// loginRequest はログインリクエストのボディ。
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// registerRequest は新規登録リクエストのボディ。
type registerRequest struct {
	Email    string              `json:"email"`
	Password string              `json:"password"`
	Name     string              `json:"name"`
	Role     model.UserRole      `json:"userRole,omitempty"`
	Profile  *model.ProfilePatch `json:"profile,omitempty"`
}

// socialLoginRequest はソーシャルログインリクエストのボディ。
type socialLoginRequest struct {
	Provider model.AuthProvider `json:"provider"`
	Email    string             `json:"email"`
	Name     string             `json:"name"`
	Avatar   string             `json:"avatar,omitempty"`
	Role     model.UserRole     `json:"userRole,omitempty"`
}

// authResponse は認証成功レスポンス。
type authResponse struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Login はメール＋パスワードのログインを処理する。
// POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestBody(w)
		return
	}

	user, token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.metrics.RecordLoginFailure()
		middleware.WriteServiceError(w, err)
		return
	}

	h.metrics.RecordLoginSuccess()
	writeJSON(w, http.StatusOK, authResponse{User: user, Token: token})
}

// Register は新規アカウント登録を処理する。
// POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestBody(w)
		return
	}

	user, token, err := h.service.Register(r.Context(), auth.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
		Profile:  req.Profile,
	})
	if err != nil {
		middleware.WriteServiceError(w, err)
		return
	}

	h.metrics.RecordRegistration(string(user.Role))
	writeJSON(w, http.StatusCreated, authResponse{User: user, Token: token})
}

// SocialLogin はソーシャルプロバイダー経由のログインを処理する。
// POST /auth/social
func (h *AuthHandler) SocialLogin(w http.ResponseWriter, r *http.Request) {
	var req socialLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestBody(w)
		return
	}

	user, token, err := h.service.SocialLogin(r.Context(), req.Provider, auth.SocialProfile{
		Email:  req.Email,
		Name:   req.Name,
		Avatar: req.Avatar,
	}, req.Role)
	if err != nil {
		middleware.WriteServiceError(w, err)
		return
	}

	h.metrics.RecordSocialLogin(string(user.Provider))
	writeJSON(w, http.StatusOK, authResponse{User: user, Token: token})
}

// Me は現在のユーザー情報を返す。
// GET /auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeUnauthorized(w)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// UpdateProfile はプロフィール更新を処理する。
// PUT /auth/profile
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	token, err := middleware.TokenFromContext(r.Context())
	if err != nil {
		writeUnauthorized(w)
		return
	}

	var patch model.ProfilePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeInvalidRequestBody(w)
		return
	}

	user := h.service.UpdateProfile(r.Context(), token, patch)
	if user == nil {
		writeUnauthorized(w)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Logout はログアウトを処理する。セッションがない場合も200を返す。
// POST /auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token, err := middleware.TokenFromContext(r.Context()); err == nil {
		h.service.Logout(token)
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
}
