package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hitoshi/mentorhub/internal/auth"
	"github.com/hitoshi/mentorhub/internal/middleware"
	"github.com/hitoshi/mentorhub/internal/model"
)

// mockAuthService はAuthServiceInterfaceのモック実装。
type mockAuthService struct {
	loginFn         func(ctx context.Context, email, password string) (*model.User, string, error)
	registerFn      func(ctx context.Context, input auth.RegisterInput) (*model.User, string, error)
	socialLoginFn   func(ctx context.Context, provider model.AuthProvider, profile auth.SocialProfile, role model.UserRole) (*model.User, string, error)
	updateProfileFn func(ctx context.Context, token string, patch model.ProfilePatch) *model.User
	logoutFn        func(token string)
	currentUserFn   func(token string) *model.User
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) Register(ctx context.Context, input auth.RegisterInput) (*model.User, string, error) {
	return m.registerFn(ctx, input)
}

func (m *mockAuthService) SocialLogin(ctx context.Context, provider model.AuthProvider, profile auth.SocialProfile, role model.UserRole) (*model.User, string, error) {
	return m.socialLoginFn(ctx, provider, profile, role)
}

func (m *mockAuthService) UpdateProfile(ctx context.Context, token string, patch model.ProfilePatch) *model.User {
	return m.updateProfileFn(ctx, token, patch)
}

func (m *mockAuthService) Logout(token string) {
	if m.logoutFn != nil {
		m.logoutFn(token)
	}
}

func (m *mockAuthService) CurrentUser(token string) *model.User {
	if m.currentUserFn != nil {
		return m.currentUserFn(token)
	}
	return nil
}

var _ AuthServiceInterface = (*mockAuthService)(nil)

// TestAuthHandler_Login はログイン成功時にユーザーとトークンが返ることをテストする。
func TestAuthHandler_Login(t *testing.T) {
	service := &mockAuthService{
		loginFn: func(ctx context.Context, email, password string) (*model.User, string, error) {
			if email != "sarah@example.com" || password != "mentee123" {
				t.Errorf("credentials = (%q, %q)", email, password)
			}
			return &model.User{ID: 1001, Email: email, Role: model.RoleMentee}, "issued-token", nil
		},
	}
	h := NewAuthHandler(service, nil)

	body := `{"email":"sarah@example.com","password":"mentee123"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp authResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.User == nil || resp.User.ID != 1001 {
		t.Errorf("user = %+v, want ID 1001", resp.User)
	}
	if resp.Token != "issued-token" {
		t.Errorf("token = %q, want %q", resp.Token, "issued-token")
	}
}

// TestAuthHandler_Login_InvalidCredentials は認証失敗が401になることをテストする。
func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	service := &mockAuthService{
		loginFn: func(ctx context.Context, email, password string) (*model.User, string, error) {
			return nil, "", model.NewInvalidCredentialsError()
		},
	}
	h := NewAuthHandler(service, nil)

	body := `{"email":"sarah@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

// TestAuthHandler_Login_InvalidBody は不正なJSONが400になることをテストする。
func TestAuthHandler_Login_InvalidBody(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

// TestAuthHandler_Register は登録成功時に201が返ることをテストする。
func TestAuthHandler_Register(t *testing.T) {
	service := &mockAuthService{
		registerFn: func(ctx context.Context, input auth.RegisterInput) (*model.User, string, error) {
			if input.Role != model.RoleMentor {
				t.Errorf("role = %q, want mentor", input.Role)
			}
			return &model.User{ID: 5001, Email: input.Email, Role: input.Role, ApprovalStatus: model.ApprovalPending}, "issued-token", nil
		},
	}
	h := NewAuthHandler(service, nil)

	body := `{"email":"new@example.com","password":"secret123","name":"New Mentor","userRole":"mentor"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}

	var resp authResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.User.ApprovalStatus != model.ApprovalPending {
		t.Errorf("approvalStatus = %q, want pending", resp.User.ApprovalStatus)
	}
}

// TestAuthHandler_SocialLogin はソーシャルログインのパラメータ受け渡しをテストする。
func TestAuthHandler_SocialLogin(t *testing.T) {
	service := &mockAuthService{
		socialLoginFn: func(ctx context.Context, provider model.AuthProvider, profile auth.SocialProfile, role model.UserRole) (*model.User, string, error) {
			if provider != model.ProviderGoogle {
				t.Errorf("provider = %q, want google", provider)
			}
			if profile.Email != "g@example.com" {
				t.Errorf("email = %q", profile.Email)
			}
			return &model.User{ID: 7001, Email: profile.Email, Provider: provider}, "issued-token", nil
		},
	}
	h := NewAuthHandler(service, nil)

	body := `{"provider":"google","email":"g@example.com","name":"G User"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/social", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.SocialLogin(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

// TestAuthHandler_Me は認証済みコンテキストのユーザーが返ることをテストする。
func TestAuthHandler_Me(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{}, nil)

	user := &model.User{ID: 1001, Email: "sarah@example.com"}
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req = req.WithContext(middleware.ContextWithIdentity(req.Context(), user, "token"))
	rec := httptest.NewRecorder()

	h.Me(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var got model.User
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.ID != 1001 {
		t.Errorf("user ID = %d, want 1001", got.ID)
	}
}

// TestAuthHandler_Me_Unauthenticated は未認証の/auth/meが401になることをテストする。
func TestAuthHandler_Me_Unauthenticated(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()

	h.Me(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

// TestAuthHandler_UpdateProfile はプロフィール更新がトークンとパッチを渡すことをテストする。
func TestAuthHandler_UpdateProfile(t *testing.T) {
	service := &mockAuthService{
		updateProfileFn: func(ctx context.Context, token string, patch model.ProfilePatch) *model.User {
			if token != "session-token" {
				t.Errorf("token = %q", token)
			}
			if patch.Bio == nil || *patch.Bio != "Product leader" {
				t.Errorf("bio patch = %v", patch.Bio)
			}
			return &model.User{ID: 1001, Bio: *patch.Bio, ProfileComplete: true}
		},
	}
	h := NewAuthHandler(service, nil)

	body := `{"bio":"Product leader"}`
	req := httptest.NewRequest(http.MethodPut, "/auth/profile", strings.NewReader(body))
	req = req.WithContext(middleware.ContextWithIdentity(req.Context(), &model.User{ID: 1001}, "session-token"))
	rec := httptest.NewRecorder()

	h.UpdateProfile(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

// TestAuthHandler_Logout はログアウトがトークンを破棄し200を返すことをテストする。
func TestAuthHandler_Logout(t *testing.T) {
	var loggedOut string
	service := &mockAuthService{
		logoutFn: func(token string) { loggedOut = token },
	}
	h := NewAuthHandler(service, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req = req.WithContext(middleware.ContextWithIdentity(req.Context(), &model.User{ID: 1001}, "session-token"))
	rec := httptest.NewRecorder()

	h.Logout(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if loggedOut != "session-token" {
		t.Errorf("logged out token = %q, want %q", loggedOut, "session-token")
	}
}
