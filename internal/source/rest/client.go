// Package rest は設定されたベースURLに対するJSONクライアントの
// アダプタ実装を提供する。リクエスト/レスポンスボディはプレーンJSONで、
// スキーマは接続先バックエンドが定義する。
package rest

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

// maxResponseBytes はレスポンスボディの読み込み上限。
const maxResponseBytes = 4 << 20

// Client はRESTバックエンドへの全ファミリーのアダプタ実装。
// HTTPクライアントにはSSRF防止付きのものを渡すこと。
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient はClientを生成する。baseURLは末尾スラッシュなしに正規化される。
func NewClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Login はPOST /auth/loginで認証情報を交換する。
func (c *Client) Login(ctx context.Context, email, password string) (*model.User, error) {
	body := map[string]string{"email": email, "password": password}
	var user model.User
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Register はPOST /auth/registerで新規ユーザーを作成する。
func (c *Client) Register(ctx context.Context, req source.RegisterRequest) (*model.User, error) {
	body := map[string]string{
		"email":    req.Email,
		"password": req.Password,
		"name":     req.Name,
	}
	var user model.User
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail はGET /auth/users?email= でユーザーを検索する。
func (c *Client) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	path := "/auth/users?email=" + url.QueryEscape(email)
	var user model.User
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &user); err != nil {
		if err == errNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (c *Client) ListMentors(ctx context.Context) ([]model.Mentor, error) {
	var mentors []model.Mentor
	if err := c.doJSON(ctx, http.MethodGet, "/mentors", nil, &mentors); err != nil {
		return nil, err
	}
	return mentors, nil
}

func (c *Client) GetMentorBySlug(ctx context.Context, slug string) (*model.Mentor, error) {
	var mentor model.Mentor
	err := c.doJSON(ctx, http.MethodGet, "/mentors/"+url.PathEscape(slug), nil, &mentor)
	if err == errNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &mentor, nil
}

func (c *Client) ListPosts(ctx context.Context) ([]model.BlogPost, error) {
	var posts []model.BlogPost
	if err := c.doJSON(ctx, http.MethodGet, "/posts", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *Client) GetPostBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	var post model.BlogPost
	err := c.doJSON(ctx, http.MethodGet, "/posts/"+url.PathEscape(slug), nil, &post)
	if err == errNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) ListStories(ctx context.Context) ([]model.SuccessStory, error) {
	var stories []model.SuccessStory
	if err := c.doJSON(ctx, http.MethodGet, "/stories", nil, &stories); err != nil {
		return nil, err
	}
	return stories, nil
}

func (c *Client) GetStoryBySlug(ctx context.Context, slug string) (*model.SuccessStory, error) {
	var story model.SuccessStory
	err := c.doJSON(ctx, http.MethodGet, "/stories/"+url.PathEscape(slug), nil, &story)
	if err == errNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &story, nil
}

func (c *Client) SubmitStory(ctx context.Context, sub model.StorySubmission) (*model.SuccessStory, error) {
	var story model.SuccessStory
	if err := c.doJSON(ctx, http.MethodPost, "/stories", sub, &story); err != nil {
		return nil, err
	}
	return &story, nil
}

// errNotFound は404をファミリー共通の「見つからない」へ変換するための内部センチネル。
var errNotFound = fmt.Errorf("not found")

// doJSON はJSONリクエストを送信し、レスポンスをoutへデコードする。
// ステータスコードはアダプタのエラー分類へ変換される:
// 401/403 → ErrInvalidCredentials、409 → ErrUserExists、
// 404 → errNotFound、その他の非2xx → トランスポートエラー。
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return source.ErrInvalidCredentials
	case resp.StatusCode == http.StatusConflict:
		return source.ErrUserExists
	case resp.StatusCode == http.StatusNotFound:
		return errNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf("unexpected status %d from %s %s", resp.StatusCode, method, path)
	}

	if out == nil {
		return nil
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
