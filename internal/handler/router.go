package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/mentorhub/internal/guard"
	"github.com/hitoshi/mentorhub/internal/middleware"
	"github.com/hitoshi/mentorhub/internal/model"
	"github.com/hitoshi/mentorhub/internal/security"
	"github.com/hitoshi/mentorhub/internal/source"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	TokenValidator    middleware.TokenValidator
	CORSAllowedOrigin string
	RateLimiter       *middleware.RateLimiter
	Logger            *slog.Logger

	// 認証
	AuthService AuthServiceInterface

	// セッション依頼とユーザー名簿
	Sessions SessionCollection
	Users    UserDirectory

	// コンテンツアダプタ
	Mentors   source.MentorSource
	Blog      source.BlogSource
	Stories   source.StorySource
	Sanitizer security.ContentSanitizerService

	// ステータス配信WebSocketハンドラー（任意）
	LiveHandler http.Handler

	// ドメインメトリクスのレコーダー（任意）
	Metrics MetricsRecorder

	// HTTPステータスのレコーダー（任意）
	HTTPMetrics middleware.HTTPStatusRecorder

	// Prometheusメトリクスハンドラー（任意）
	MetricsHandler http.Handler
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	Recovery → SecurityHeaders → CORS → Identity → Logging
//
// 認証エンドポイント（/auth/login等）には専用のレート制限を追加する。
// 保護ルートはガードミドルウェアが順序付きチェックで判定する。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	r.Use(middleware.NewIdentityMiddleware(deps.TokenValidator))
	r.Use(middleware.NewLoggingMiddleware(deps.Logger))
	if deps.HTTPMetrics != nil {
		r.Use(middleware.NewMetricsMiddleware(deps.HTTPMetrics))
	}

	authHandler := NewAuthHandler(deps.AuthService, deps.Metrics)
	sessionHandler := NewSessionHandler(deps.Sessions, deps.Metrics)
	adminHandler := NewAdminHandler(deps.Users, deps.Metrics)
	contentHandler := NewContentHandler(deps.Mentors, deps.Blog, deps.Stories, deps.Sanitizer)

	// --- 認証不要のルート ---

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	if deps.MetricsHandler != nil {
		r.Handle("/metrics", deps.MetricsHandler)
	}

	r.Route("/auth", func(r chi.Router) {
		// ログイン・登録には総当たり対策の専用レート制限を適用
		r.With(deps.RateLimiter.AuthMiddleware()).Post("/login", authHandler.Login)
		r.With(deps.RateLimiter.AuthMiddleware()).Post("/register", authHandler.Register)
		r.With(deps.RateLimiter.AuthMiddleware()).Post("/social", authHandler.SocialLogin)

		r.Get("/me", authHandler.Me)
		r.Put("/profile", authHandler.UpdateProfile)
		r.Post("/logout", authHandler.Logout)
	})

	// 公開コンテンツ（カタログ・ブログ・ストーリー）
	r.Group(func(r chi.Router) {
		r.Use(deps.RateLimiter.GeneralMiddleware())

		r.Route("/api/mentors", func(r chi.Router) {
			r.Get("/", contentHandler.ListMentors)
			r.Get("/{slug}", contentHandler.GetMentor)
		})

		r.Route("/api/posts", func(r chi.Router) {
			r.Get("/", contentHandler.ListPosts)
			r.Get("/{slug}", contentHandler.GetPost)
		})

		r.Route("/api/stories", func(r chi.Router) {
			r.Get("/", contentHandler.ListStories)
			r.Get("/{slug}", contentHandler.GetStory)
			r.Post("/", contentHandler.SubmitStory)
		})
	})

	// --- ガード付きルート ---

	// メンティー専用
	r.Group(func(r chi.Router) {
		r.Use(deps.RateLimiter.GeneralMiddleware())
		r.Use(middleware.NewGuardMiddleware(guard.NewConfig(model.RoleMentee)))

		r.Get("/api/mentee/sessions", sessionHandler.ListMenteeSessions)
		r.Post("/api/sessions", sessionHandler.CreateSession)
	})

	// メンター専用
	r.Group(func(r chi.Router) {
		r.Use(deps.RateLimiter.GeneralMiddleware())
		r.Use(middleware.NewGuardMiddleware(guard.NewConfig(model.RoleMentor)))

		r.Get("/api/mentor/sessions", sessionHandler.ListMentorSessions)
		r.Get("/api/mentor/requests", sessionHandler.ListMentorRequests)
		r.Patch("/api/sessions/{id}/status", sessionHandler.UpdateSessionStatus)
	})

	// 管理者コンソール。管理者アカウントは承認フローを通らないため
	// 承認チェックは要求しない。
	r.Group(func(r chi.Router) {
		r.Use(deps.RateLimiter.GeneralMiddleware())
		r.Use(middleware.NewGuardMiddleware(guard.Config{
			AllowedRoles:           []model.UserRole{model.RoleAdmin},
			RequireApproval:        false,
			RequireProfileComplete: true,
		}))

		r.Get("/api/admin/users", adminHandler.ListUsers)
		r.Get("/api/admin/users/pending", adminHandler.ListPendingUsers)
		r.Patch("/api/admin/users/{id}/status", adminHandler.UpdateUserStatus)
	})

	// ステータス配信WebSocket
	if deps.LiveHandler != nil {
		r.Handle("/ws/status", deps.LiveHandler)
	}

	return r
}
