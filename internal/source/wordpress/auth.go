// Package wordpress はWordPressサイトを接続先とするアダプタ実装を提供する。
// 認証はJWT Authenticationプラグインのトークンエンドポイント、
// ブログ記事はサイトのRSSフィードから取得する。
// 外向きHTTPにはSSRF防止付きクライアントを渡すこと。
package wordpress

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hitoshi/mentorhub/internal/model"
	"github.com/hitoshi/mentorhub/internal/source"
)

const maxResponseBytes = 4 << 20

// AuthSource はWP JWT Authenticationプラグインによる認証アダプタ。
// adminTokenはユーザー作成・検索に使用する管理者権限のトークン。
type AuthSource struct {
	baseURL    string
	adminToken string
	httpClient *http.Client
}

// NewAuthSource はAuthSourceを生成する。
func NewAuthSource(baseURL, adminToken string, httpClient *http.Client) *AuthSource {
	return &AuthSource{
		baseURL:    strings.TrimRight(baseURL, "/"),
		adminToken: adminToken,
		httpClient: httpClient,
	}
}

// wpTokenResponse はjwt-auth/v1/tokenのレスポンス。
type wpTokenResponse struct {
	Token           string `json:"token"`
	UserEmail       string `json:"user_email"`
	UserNicename    string `json:"user_nicename"`
	UserDisplayName string `json:"user_display_name"`
}

// wpUser はwp/v2/usersのレスポンス要素。
type wpUser struct {
	ID        int64             `json:"id"`
	Name      string            `json:"name"`
	Slug      string            `json:"slug"`
	Email     string            `json:"email"`
	AvatarURL map[string]string `json:"avatar_urls"`
}

// Login はトークンエンドポイントで認証情報を交換し、
// 取得したトークンでユーザー詳細を引き当てる。
func (s *AuthSource) Login(ctx context.Context, email, password string) (*model.User, error) {
	body, err := json.Marshal(map[string]string{"username": email, "password": password})
	if err != nil {
		return nil, fmt.Errorf("failed to encode token request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.baseURL+"/wp-json/jwt-auth/v1/token", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusUnauthorized {
		return nil, source.ErrInvalidCredentials
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from token endpoint", resp.StatusCode)
	}

	var tokenResp wpTokenResponse
	if err := decodeJSON(resp.Body, &tokenResp); err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}

	wp, err := s.fetchMe(ctx, tokenResp.Token)
	if err != nil {
		return nil, err
	}

	user := s.toUser(wp)
	if user.Email == "" {
		user.Email = tokenResp.UserEmail
	}
	if user.Name == "" {
		user.Name = tokenResp.UserDisplayName
	}
	return user, nil
}

// Register は管理者トークンでWPユーザーを作成する。
func (s *AuthSource) Register(ctx context.Context, regReq source.RegisterRequest) (*model.User, error) {
	body, err := json.Marshal(map[string]string{
		"username": regReq.Email,
		"email":    regReq.Email,
		"password": regReq.Password,
		"name":     regReq.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode user request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.baseURL+"/wp-json/wp/v2/users", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build user request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.adminToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("user request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read user response: %w", err)
	}

	if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusConflict {
		// WPは重複をエラーコードexisting_user_login / existing_user_emailで返す
		if bytes.Contains(data, []byte("existing_user")) {
			return nil, source.ErrUserExists
		}
		return nil, fmt.Errorf("user creation rejected with status %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from user endpoint", resp.StatusCode)
	}

	var wp wpUser
	if err := json.Unmarshal(data, &wp); err != nil {
		return nil, fmt.Errorf("failed to decode user response: %w", err)
	}

	user := s.toUser(&wp)
	if user.Email == "" {
		user.Email = regReq.Email
	}
	if user.Name == "" {
		user.Name = regReq.Name
	}
	return user, nil
}

// GetUserByEmail は管理者トークンでユーザーを検索する。
func (s *AuthSource) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	endpoint := s.baseURL + "/wp-json/wp/v2/users?context=edit&search=" + url.QueryEscape(email)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.adminToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from user search", resp.StatusCode)
	}

	var users []wpUser
	if err := decodeJSON(resp.Body, &users); err != nil {
		return nil, fmt.Errorf("failed to decode user search response: %w", err)
	}

	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return s.toUser(&users[i]), nil
		}
	}
	return nil, nil
}

// fetchMe は取得済みトークンで自ユーザーの詳細を取得する。
func (s *AuthSource) fetchMe(ctx context.Context, token string) (*wpUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		s.baseURL+"/wp-json/wp/v2/users/me?context=edit", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build me request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("me request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from me endpoint", resp.StatusCode)
	}

	var wp wpUser
	if err := decodeJSON(resp.Body, &wp); err != nil {
		return nil, fmt.Errorf("failed to decode me response: %w", err)
	}
	return &wp, nil
}

// toUser はWPユーザーをドメインモデルへ変換する。
// WPはロール・審査ステータスを持たないため、新規相当のデフォルトを設定する。
func (s *AuthSource) toUser(wp *wpUser) *model.User {
	avatar := ""
	if wp.AvatarURL != nil {
		avatar = wp.AvatarURL["96"]
	}
	return &model.User{
		ID:             wp.ID,
		Email:          wp.Email,
		Name:           wp.Name,
		Avatar:         avatar,
		Role:           model.RoleMentee,
		ApprovalStatus: model.ApprovalPending,
		Provider:       model.ProviderEmail,
	}
}

func decodeJSON(r io.Reader, out any) error {
	data, err := io.ReadAll(io.LimitReader(r, maxResponseBytes))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
