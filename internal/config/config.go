// Package config はアプリケーション設定の読み込みを提供する。
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// SourceMode はコンテンツファミリーのアダプタ選択を表す。
type SourceMode string

const (
	// SourceStatic は組み込みの静的データを使用する。
	SourceStatic SourceMode = "static"
	// SourceREST は汎用REST APIバックエンドを使用する。
	SourceREST SourceMode = "rest"
	// SourceWordPress はWordPressバックエンドを使用する（auth/blogのみ）。
	SourceWordPress SourceMode = "wordpress"
	// SourcePostgreSQL はPostgreSQLデータベースを使用する。
	SourcePostgreSQL SourceMode = "postgresql"
)

// Config はアプリケーション全体の設定を保持する。
// 環境変数から起動時に1回読み込み、イミュータブルとして扱う。
type Config struct {
	// Auth
	JWTSecret string
	TokenTTL  time.Duration

	// アダプタ選択（ファミリー別）
	SourceAuth    SourceMode
	SourceMentors SourceMode
	SourceBlog    SourceMode
	SourceStories SourceMode

	// PostgreSQL（いずれかのファミリーがpostgresqlの場合に必須）
	DatabaseURL string

	// REST（いずれかのファミリーがrestの場合に必須）
	RESTBaseURL string

	// WordPress
	WPBaseURL    string
	WPAdminToken string
	WPFeedURL    string

	// Rate Limit
	RateLimitGeneral int
	RateLimitAuth    int

	// Worker
	SweepInterval time.Duration

	// Server
	ServerPort string

	// CORS
	CORSAllowedOrigin string
}

// Load は環境変数からConfigを読み込む。
// カレントディレクトリに.envファイルがあれば先に読み込む（未存在は無視）。
// 必須環境変数が未設定の場合、またはアダプタ選択が不正な場合はエラーを返す。
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("required environment variable is not set: JWT_SECRET")
	}

	var err error
	if cfg.SourceAuth, err = sourceMode("SOURCE_AUTH"); err != nil {
		return nil, err
	}
	if cfg.SourceMentors, err = sourceMode("SOURCE_MENTORS"); err != nil {
		return nil, err
	}
	if cfg.SourceBlog, err = sourceMode("SOURCE_BLOG"); err != nil {
		return nil, err
	}
	if cfg.SourceStories, err = sourceMode("SOURCE_STORIES"); err != nil {
		return nil, err
	}

	// WordPressアダプタは認証とブログのみ実装している
	if cfg.SourceMentors == SourceWordPress {
		return nil, fmt.Errorf("SOURCE_MENTORS does not support wordpress")
	}
	if cfg.SourceStories == SourceWordPress {
		return nil, fmt.Errorf("SOURCE_STORIES does not support wordpress")
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.anyFamily(SourcePostgreSQL) && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required when a source family is postgresql")
	}

	cfg.RESTBaseURL = os.Getenv("REST_BASE_URL")
	if cfg.anyFamily(SourceREST) && cfg.RESTBaseURL == "" {
		return nil, fmt.Errorf("REST_BASE_URL is required when a source family is rest")
	}

	cfg.WPBaseURL = os.Getenv("WP_BASE_URL")
	cfg.WPAdminToken = os.Getenv("WP_ADMIN_TOKEN")
	cfg.WPFeedURL = os.Getenv("WP_FEED_URL")
	if cfg.SourceAuth == SourceWordPress {
		if cfg.WPBaseURL == "" {
			return nil, fmt.Errorf("WP_BASE_URL is required when SOURCE_AUTH is wordpress")
		}
		if cfg.WPAdminToken == "" {
			return nil, fmt.Errorf("WP_ADMIN_TOKEN is required when SOURCE_AUTH is wordpress")
		}
	}
	if cfg.SourceBlog == SourceWordPress && cfg.WPFeedURL == "" {
		return nil, fmt.Errorf("WP_FEED_URL is required when SOURCE_BLOG is wordpress")
	}

	cfg.TokenTTL = getEnvDuration("TOKEN_TTL", 24*time.Hour)
	cfg.RateLimitGeneral = getEnvInt("RATE_LIMIT_GENERAL", 120)
	cfg.RateLimitAuth = getEnvInt("RATE_LIMIT_AUTH", 10)
	cfg.SweepInterval = getEnvDuration("SWEEP_INTERVAL", time.Hour)
	cfg.ServerPort = getEnvString("SERVER_PORT", "8080")
	cfg.CORSAllowedOrigin = getEnvString("CORS_ALLOWED_ORIGIN", "http://localhost:3000")

	return cfg, nil
}

// anyFamily はいずれかのファミリーが指定モードを使用しているかを返す。
func (c *Config) anyFamily(mode SourceMode) bool {
	return c.SourceAuth == mode ||
		c.SourceMentors == mode ||
		c.SourceBlog == mode ||
		c.SourceStories == mode
}

// sourceMode は環境変数からアダプタ選択を読み取る。未設定はstatic。
func sourceMode(key string) (SourceMode, error) {
	v := os.Getenv(key)
	if v == "" {
		return SourceStatic, nil
	}
	mode := SourceMode(v)
	switch mode {
	case SourceStatic, SourceREST, SourceWordPress, SourcePostgreSQL:
		return mode, nil
	}
	return "", fmt.Errorf("%s has an unknown source mode: %q", key, v)
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
