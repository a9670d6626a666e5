package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/mentorhub/internal/middleware"
	"github.com/hitoshi/mentorhub/internal/model"
	"github.com/hitoshi/mentorhub/internal/security"
	"github.com/hitoshi/mentorhub/internal/source"
)

// ContentHandler はメンターカタログ・ブログ・サクセスストーリーのHTTPハンドラー。
// 各ファミリーのアダプタは設定によって static / rest / wordpress / postgres
// のいずれかが注入される。
type ContentHandler struct {
	mentors   source.MentorSource
	blog      source.BlogSource
	stories   source.StorySource
	sanitizer security.ContentSanitizerService
}

// NewContentHandler はContentHandlerを生成する。
func NewContentHandler(
	mentors source.MentorSource,
	blog source.BlogSource,
	stories source.StorySource,
	sanitizer security.ContentSanitizerService,
) *ContentHandler {
	return &ContentHandler{
		mentors:   mentors,
		blog:      blog,
		stories:   stories,
		sanitizer: sanitizer,
	}
}

// ListMentors はメンターカタログの一覧を返す。
// GET /api/mentors
func (h *ContentHandler) ListMentors(w http.ResponseWriter, r *http.Request) {
	mentors, err := h.mentors.ListMentors(r.Context())
	if err != nil {
		slog.Error("failed to list mentors", slog.Any("error", err))
		middleware.WriteServiceError(w, model.NewNetworkError())
		return
	}

	writeJSON(w, http.StatusOK, mentors)
}

// GetMentor はスラッグでメンターを取得する。
// GET /api/mentors/:slug
func (h *ContentHandler) GetMentor(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	mentor, err := h.mentors.GetMentorBySlug(r.Context(), slug)
	if err != nil {
		slog.Error("failed to get mentor", slog.String("slug", slug), slog.Any("error", err))
		middleware.WriteServiceError(w, model.NewNetworkError())
		return
	}
	if mentor == nil {
		middleware.WriteServiceError(w, model.NewMentorNotFoundError(slug))
		return
	}

	writeJSON(w, http.StatusOK, mentor)
}

// ListPosts はブログ記事の一覧を返す。
// GET /api/posts
func (h *ContentHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.blog.ListPosts(r.Context())
	if err != nil {
		slog.Error("failed to list posts", slog.Any("error", err))
		middleware.WriteServiceError(w, model.NewNetworkError())
		return
	}

	writeJSON(w, http.StatusOK, posts)
}

// GetPost はスラッグでブログ記事を取得する。
// GET /api/posts/:slug
func (h *ContentHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, err := h.blog.GetPostBySlug(r.Context(), slug)
	if err != nil {
		slog.Error("failed to get post", slog.String("slug", slug), slog.Any("error", err))
		middleware.WriteServiceError(w, model.NewNetworkError())
		return
	}
	if post == nil {
		middleware.WriteServiceError(w, model.NewPostNotFoundError(slug))
		return
	}

	writeJSON(w, http.StatusOK, post)
}

// ListStories は公開承認済みのサクセスストーリー一覧を返す。
// GET /api/stories
func (h *ContentHandler) ListStories(w http.ResponseWriter, r *http.Request) {
	stories, err := h.stories.ListStories(r.Context())
	if err != nil {
		slog.Error("failed to list stories", slog.Any("error", err))
		middleware.WriteServiceError(w, model.NewNetworkError())
		return
	}

	writeJSON(w, http.StatusOK, stories)
}

// GetStory はスラッグでサクセスストーリーを取得する。
// GET /api/stories/:slug
func (h *ContentHandler) GetStory(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	story, err := h.stories.GetStoryBySlug(r.Context(), slug)
	if err != nil {
		slog.Error("failed to get story", slog.String("slug", slug), slog.Any("error", err))
		middleware.WriteServiceError(w, model.NewNetworkError())
		return
	}
	if story == nil {
		middleware.WriteServiceError(w, model.NewStoryNotFoundError(slug))
		return
	}

	writeJSON(w, http.StatusOK, story)
}

// SubmitStory はサクセスストーリーの投稿を受け付ける。
// 投稿は審査待ち状態で保存され、公開一覧には現れない。
// 自由入力のテキストフィールドはすべてサニタイズする。
// POST /api/stories
func (h *ContentHandler) SubmitStory(w http.ResponseWriter, r *http.Request) {
	var sub model.StorySubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeInvalidRequestBody(w)
		return
	}

	if strings.TrimSpace(sub.Name) == "" || strings.TrimSpace(sub.Quote) == "" {
		middleware.WriteErrorResponse(w, http.StatusBadRequest, &model.APIError{
			Code:     "INVALID_REQUEST",
			Message:  "Name and quote are required.",
			Category: "validation",
			Action:   "Please fill in the required fields.",
		})
		return
	}

	sub.Name = h.sanitizer.SanitizeText(sub.Name)
	sub.Role = h.sanitizer.SanitizeText(sub.Role)
	sub.PreviousRole = h.sanitizer.SanitizeText(sub.PreviousRole)
	sub.MentorName = h.sanitizer.SanitizeText(sub.MentorName)
	sub.Quote = h.sanitizer.SanitizeText(sub.Quote)
	sub.Highlight = h.sanitizer.SanitizeText(sub.Highlight)
	sub.Duration = h.sanitizer.SanitizeText(sub.Duration)

	story, err := h.stories.SubmitStory(r.Context(), sub)
	if err != nil {
		slog.Error("failed to submit story", slog.Any("error", err))
		middleware.WriteServiceError(w, model.NewNetworkError())
		return
	}

	writeJSON(w, http.StatusCreated, story)
}
