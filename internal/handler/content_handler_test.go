package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/mentorhub/internal/middleware"
	"github.com/hitoshi/mentorhub/internal/model"
	"github.com/hitoshi/mentorhub/internal/security"
	"github.com/hitoshi/mentorhub/internal/source"
	"github.com/hitoshi/mentorhub/internal/source/static"
)

// mockMentorSource はMentorSourceのモック実装。
type mockMentorSource struct {
	listMentorsFn     func(ctx context.Context) ([]model.Mentor, error)
	getMentorBySlugFn func(ctx context.Context, slug string) (*model.Mentor, error)
}

func (m *mockMentorSource) ListMentors(ctx context.Context) ([]model.Mentor, error) {
	return m.listMentorsFn(ctx)
}

func (m *mockMentorSource) GetMentorBySlug(ctx context.Context, slug string) (*model.Mentor, error) {
	return m.getMentorBySlugFn(ctx, slug)
}

var _ source.MentorSource = (*mockMentorSource)(nil)

func newStaticContentHandler() *ContentHandler {
	return NewContentHandler(
		static.NewMentorSource(),
		static.NewBlogSource(),
		static.NewStorySource(),
		security.NewContentSanitizer(),
	)
}

func newSlugRequest(method, path, slug string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("slug", slug)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// TestContentHandler_ListMentors はメンターカタログの一覧取得をテストする。
func TestContentHandler_ListMentors(t *testing.T) {
	h := newStaticContentHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/mentors", nil)
	rec := httptest.NewRecorder()

	h.ListMentors(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var mentors []model.Mentor
	if err := json.NewDecoder(rec.Body).Decode(&mentors); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(mentors) == 0 {
		t.Fatal("no mentors returned")
	}
	if mentors[0].Slug == "" {
		t.Error("mentor slug is empty")
	}
}

// TestContentHandler_GetMentor はスラッグ検索の成功と404をテストする。
func TestContentHandler_GetMentor(t *testing.T) {
	h := newStaticContentHandler()

	t.Run("found", func(t *testing.T) {
		mentors, _ := static.NewMentorSource().ListMentors(context.Background())
		slug := mentors[0].Slug

		rec := httptest.NewRecorder()
		h.GetMentor(rec, newSlugRequest(http.MethodGet, "/api/mentors/"+slug, slug))

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	})

	t.Run("not found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.GetMentor(rec, newSlugRequest(http.MethodGet, "/api/mentors/no-such-mentor", "no-such-mentor"))

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}

		var body middleware.ErrorResponseBody
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if body.Code != model.ErrCodeMentorNotFound {
			t.Errorf("code = %q, want %q", body.Code, model.ErrCodeMentorNotFound)
		}
	})
}

// TestContentHandler_SourceFailure はアダプタ障害が502になることをテストする。
func TestContentHandler_SourceFailure(t *testing.T) {
	h := NewContentHandler(
		&mockMentorSource{
			listMentorsFn: func(ctx context.Context) ([]model.Mentor, error) {
				return nil, errors.New("connection refused")
			},
		},
		static.NewBlogSource(),
		static.NewStorySource(),
		security.NewContentSanitizer(),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/mentors", nil)
	rec := httptest.NewRecorder()

	h.ListMentors(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadGateway)
	}
}

// TestContentHandler_ListPosts はブログ記事一覧の取得をテストする。
func TestContentHandler_ListPosts(t *testing.T) {
	h := newStaticContentHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	rec := httptest.NewRecorder()

	h.ListPosts(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var posts []model.BlogPost
	if err := json.NewDecoder(rec.Body).Decode(&posts); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(posts) == 0 {
		t.Fatal("no posts returned")
	}
}

// TestContentHandler_ListStories は承認済みストーリーのみ返ることをテストする。
func TestContentHandler_ListStories(t *testing.T) {
	h := newStaticContentHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/stories", nil)
	rec := httptest.NewRecorder()

	h.ListStories(rec, req)

	var stories []model.SuccessStory
	if err := json.NewDecoder(rec.Body).Decode(&stories); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	for _, s := range stories {
		if s.Status != model.StoryApproved {
			t.Errorf("story %q status = %q, want approved", s.Slug, s.Status)
		}
	}
}

// TestContentHandler_SubmitStory は投稿の受け付けとサニタイズをテストする。
func TestContentHandler_SubmitStory(t *testing.T) {
	h := newStaticContentHandler()

	t.Run("accepted as pending", func(t *testing.T) {
		body := `{
			"name": "Taylor Reed",
			"role": "Engineering Manager",
			"previousRole": "Senior Engineer",
			"mentorName": "James Wilson",
			"quote": "My mentor changed <script>alert(1)</script>everything.",
			"highlight": "Promoted within 8 months",
			"duration": "8 months"
		}`
		req := httptest.NewRequest(http.MethodPost, "/api/stories", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.SubmitStory(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
		}

		var story model.SuccessStory
		if err := json.NewDecoder(rec.Body).Decode(&story); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if story.Status != model.StoryPending {
			t.Errorf("status = %q, want pending", story.Status)
		}
		if story.Slug != "taylor-reed" {
			t.Errorf("slug = %q, want taylor-reed", story.Slug)
		}
		if strings.Contains(story.Quote, "<script>") {
			t.Errorf("quote was not sanitized: %q", story.Quote)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/stories", strings.NewReader(`{"name":"","quote":""}`))
		rec := httptest.NewRecorder()

		h.SubmitStory(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})
}
