// Package app はアプリケーションの起動とワイヤリングを提供する。
package app

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/hitoshi/mentorhub/internal/auth"
	"github.com/hitoshi/mentorhub/internal/bus"
	"github.com/hitoshi/mentorhub/internal/config"
	"github.com/hitoshi/mentorhub/internal/database"
	"github.com/hitoshi/mentorhub/internal/fixture"
	"github.com/hitoshi/mentorhub/internal/handler"
	"github.com/hitoshi/mentorhub/internal/live"
	"github.com/hitoshi/mentorhub/internal/logger"
	"github.com/hitoshi/mentorhub/internal/metrics"
	"github.com/hitoshi/mentorhub/internal/middleware"
	"github.com/hitoshi/mentorhub/internal/security"
	"github.com/hitoshi/mentorhub/internal/source"
	"github.com/hitoshi/mentorhub/internal/source/postgres"
	"github.com/hitoshi/mentorhub/internal/source/rest"
	"github.com/hitoshi/mentorhub/internal/source/static"
	"github.com/hitoshi/mentorhub/internal/source/wordpress"
	"github.com/hitoshi/mentorhub/internal/store"
	"github.com/hitoshi/mentorhub/internal/worker/complete"
)

// Init はアプリケーションの初期化を行う。
// 環境変数からConfigを読み込み、JSON構造化ログをセットアップする。
// writerが指定された場合はログ出力先としてそのwriterを使用する。
func Init(w io.Writer) (*config.Config, error) {
	// 設定読み込み前にログを使えるようにする
	logger.SetupDefault(w)

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}

// Run はアプリケーションのメインエントリーポイント。
// コマンドライン引数からサブコマンドを解析し、対応するモードで起動する。
// argsにはos.Args[1:]を渡す。
func Run(w io.Writer, args []string) error {
	cmd := ParseCommand(args)

	// healthcheck は軽量サブコマンドのため、フル初期化をスキップする
	if cmd == CommandHealthcheck {
		port := os.Getenv("SERVER_PORT")
		if port == "" {
			port = "8080"
		}
		return runHealthcheck(port)
	}

	cfg, err := Init(w)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	slog.Info("starting application",
		slog.String("command", string(cmd)),
		slog.String("port", cfg.ServerPort),
		slog.String("source_auth", string(cfg.SourceAuth)),
		slog.String("source_mentors", string(cfg.SourceMentors)),
		slog.String("source_blog", string(cfg.SourceBlog)),
		slog.String("source_stories", string(cfg.SourceStories)),
	)

	switch cmd {
	case CommandMigrate:
		return runMigrate(cfg)
	default:
		return runServe(cfg)
	}
}

// sources は設定に応じて選択されたファミリー別アダプタの集合を保持する。
type sources struct {
	auth    source.AuthSource
	mentors source.MentorSource
	blog    source.BlogSource
	stories source.StorySource
	db      *sql.DB // postgresqlファミリーが無い場合はnil
}

// close は保持するDB接続があれば閉じる。
func (s *sources) close() {
	if s.db != nil {
		s.db.Close()
	}
}

// buildSources はファミリー別のアダプタを設定に従って構築する。
// postgresqlファミリーがひとつでもあればDB接続を開き、全アダプタで共有する。
// restファミリーとwordpressファミリーの外部通信はSSRF防止付きクライアントを使う。
func buildSources(cfg *config.Config, sanitizer security.ContentSanitizerService) (*sources, error) {
	srcs := &sources{}

	needsDB := cfg.SourceAuth == config.SourcePostgreSQL ||
		cfg.SourceMentors == config.SourcePostgreSQL ||
		cfg.SourceBlog == config.SourcePostgreSQL ||
		cfg.SourceStories == config.SourcePostgreSQL

	if needsDB {
		db, err := database.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		srcs.db = db
		slog.Info("database connection established")
	}

	ssrfGuard := security.NewSSRFGuard()
	safeClient := ssrfGuard.NewSafeClient(10 * time.Second)

	var restClient *rest.Client
	if cfg.SourceAuth == config.SourceREST ||
		cfg.SourceMentors == config.SourceREST ||
		cfg.SourceBlog == config.SourceREST ||
		cfg.SourceStories == config.SourceREST {
		restClient = rest.NewClient(cfg.RESTBaseURL, safeClient)
	}

	switch cfg.SourceAuth {
	case config.SourceREST:
		srcs.auth = restClient
	case config.SourceWordPress:
		srcs.auth = wordpress.NewAuthSource(cfg.WPBaseURL, cfg.WPAdminToken, safeClient)
	case config.SourcePostgreSQL:
		srcs.auth = postgres.NewAuthSource(srcs.db)
	default:
		srcs.auth = static.NewAuthSource()
	}

	switch cfg.SourceMentors {
	case config.SourceREST:
		srcs.mentors = restClient
	case config.SourcePostgreSQL:
		srcs.mentors = postgres.NewMentorSource(srcs.db)
	default:
		srcs.mentors = static.NewMentorSource()
	}

	switch cfg.SourceBlog {
	case config.SourceREST:
		srcs.blog = restClient
	case config.SourceWordPress:
		srcs.blog = wordpress.NewBlogSource(cfg.WPFeedURL, safeClient, sanitizer)
	case config.SourcePostgreSQL:
		srcs.blog = postgres.NewBlogSource(srcs.db)
	default:
		srcs.blog = static.NewBlogSource()
	}

	switch cfg.SourceStories {
	case config.SourceREST:
		srcs.stories = restClient
	case config.SourcePostgreSQL:
		srcs.stories = postgres.NewStorySource(srcs.db)
	default:
		srcs.stories = static.NewStorySource()
	}

	return srcs, nil
}

// runServe はAPIサーバーモードで起動する。
// アダプタとストア、認証サービス、メトリクス、WebSocket配信、完了スイーパーを
// ワイヤリングし、HTTPサーバーを起動する。
// SIGINTまたはSIGTERMシグナルを受信するとグレースフルシャットダウンを行う。
func runServe(cfg *config.Config) error {
	sanitizer := security.NewContentSanitizer()

	srcs, err := buildSources(cfg, sanitizer)
	if err != nil {
		return err
	}
	defer srcs.close()

	// ストアとステータスイベントバス
	statusBus := bus.NewStatusBus(slog.Default())
	users := store.NewUserStore(fixture.DemoUsers(), statusBus)
	sessions := store.NewSessionStore(fixture.DemoSessions)

	// 認証サービス
	authService := auth.NewService(
		srcs.auth,
		auth.NewTokenStore(),
		auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL),
		users,
		statusBus,
	)
	defer authService.Close()

	// メトリクス
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	// レート制限（設定はreq/min単位、内部はreq/sec単位）
	rateLimiterCfg := middleware.DefaultRateLimiterConfig()
	rateLimiterCfg.GeneralRate = perMinute(cfg.RateLimitGeneral)
	rateLimiterCfg.GeneralBurst = cfg.RateLimitGeneral
	rateLimiterCfg.AuthRate = perMinute(cfg.RateLimitAuth)
	rateLimiterCfg.AuthBurst = cfg.RateLimitAuth
	rateLimiter := middleware.NewRateLimiter(rateLimiterCfg)
	defer rateLimiter.Stop()

	// ステータス変更のWebSocket配信
	liveFeed := live.NewStatusFeed(statusBus, cfg.CORSAllowedOrigin, slog.Default())

	// 完了スイーパーをバックグラウンドで起動
	sweepCtx, sweepCancel := context.WithCancel(context.Background())
	defer sweepCancel()
	sweeper := complete.NewSweeper(sessions, slog.Default())
	go sweeper.Start(sweepCtx, cfg.SweepInterval)

	deps := &handler.RouterDeps{
		TokenValidator:    authService,
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
		RateLimiter:       rateLimiter,
		Logger:            slog.Default(),

		AuthService: authService,
		Sessions:    sessions,
		Users:       users,

		Mentors:   srcs.mentors,
		Blog:      srcs.blog,
		Stories:   srcs.stories,
		Sanitizer: sanitizer,

		LiveHandler:    liveFeed,
		Metrics:        collector,
		HTTPMetrics:    collector,
		MetricsHandler: metrics.Handler(registry),
	}

	router := handler.NewRouter(deps)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// グレースフルシャットダウンのためのシグナルハンドリング
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("API server starting",
			slog.String("addr", server.Addr),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server listen error", slog.String("error", err.Error()))
		}
	}()

	<-stop
	slog.Info("shutting down API server...")
	sweepCancel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("API server stopped gracefully")
	return nil
}

// runMigrate はデータベースマイグレーションを実行する。
// すべての未適用マイグレーションを順番に適用する。
func runMigrate(cfg *config.Config) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required for migrate")
	}

	slog.Info("running database migrations",
		slog.String("database_url", maskDatabaseURL(cfg.DatabaseURL)),
	)

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	slog.Info("database migrations completed successfully")
	return nil
}

// runHealthcheck はヘルスチェックを実行する。
// distroless環境でのDockerヘルスチェック用サブコマンド。
// /health エンドポイントにHTTPリクエストを送り、結果を返す。
func runHealthcheck(port string) error {
	url := fmt.Sprintf("http://localhost:%s/health", port)
	client := &http.Client{Timeout: 5 * time.Second}

	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}

	return nil
}

// perMinute はreq/min値をrate.Limit（req/sec）へ変換する。
func perMinute(n int) rate.Limit {
	return rate.Limit(float64(n) / 60.0)
}

// maskDatabaseURL はデータベースURLの認証情報をマスクする。
func maskDatabaseURL(url string) string {
	if len(url) > 20 {
		return url[:12] + "***@..."
	}
	return "***"
}
