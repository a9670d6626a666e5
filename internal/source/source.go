// Package source はコンテンツファミリーごとに差し替え可能な
// リモートアダプタ層のインターフェースを定義する。
// 実装は static / rest / wordpress / postgres の各サブパッケージが提供し、
// 選択は設定（SOURCE_AUTH等）で行われる。
//
// コアのサービス層はアダプタの成功/失敗の結果のみを消費し、
// トランスポートの詳細には依存しない。
package source

import (
	"context"
	"errors"

	"github.com/hitoshi/mentorhub/internal/model"
)

// ErrInvalidCredentials は認証情報の不一致を表す。
// デモアカウント不一致とリモート認証失敗を呼び出し側で区別させないため、
// どちらの経路でも同一のセンチネルを使用する。
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUserExists は登録時のメールアドレス重複を表す。
var ErrUserExists = errors.New("user already exists")

// RegisterRequest は登録経路へ渡す入力を表す。
// RoleとProfileの上書きはサービス層が行うため、アダプタは基本属性のみ受け取る。
type RegisterRequest struct {
	Email    string
	Password string
	Name     string
}

// AuthSource は認証ファミリーのアダプタを定義する。
// センチネルエラー（ErrInvalidCredentials / ErrUserExists）以外のエラーは
// すべてネットワーク/トランスポート障害として扱われる。
type AuthSource interface {
	// Login は認証情報を照合し、一致したユーザーを返す。
	Login(ctx context.Context, email, password string) (*model.User, error)

	// Register は新規ユーザーを作成して返す。
	Register(ctx context.Context, req RegisterRequest) (*model.User, error)

	// GetUserByEmail はトークン検証時のハイドレーションに使用する。
	// 見つからない場合は (nil, nil) を返す。
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

// MentorSource はメンターカタログのアダプタを定義する。
type MentorSource interface {
	ListMentors(ctx context.Context) ([]model.Mentor, error)

	// GetMentorBySlug は見つからない場合 (nil, nil) を返す。
	GetMentorBySlug(ctx context.Context, slug string) (*model.Mentor, error)
}

// BlogSource はブログ記事のアダプタを定義する。
type BlogSource interface {
	ListPosts(ctx context.Context) ([]model.BlogPost, error)

	// GetPostBySlug は見つからない場合 (nil, nil) を返す。
	GetPostBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
}

// StorySource はサクセスストーリーのアダプタを定義する。
type StorySource interface {
	// ListStories は公開承認済みのストーリーのみを返す。
	ListStories(ctx context.Context) ([]model.SuccessStory, error)

	// GetStoryBySlug は見つからない場合 (nil, nil) を返す。
	GetStoryBySlug(ctx context.Context, slug string) (*model.SuccessStory, error)

	// SubmitStory は投稿を審査待ち状態で受け付ける。
	SubmitStory(ctx context.Context, sub model.StorySubmission) (*model.SuccessStory, error)
}

// Sources はコンテンツファミリーごとに選択されたアダプタの束。
type Sources struct {
	Auth    AuthSource
	Mentors MentorSource
	Blog    BlogSource
	Stories StorySource
}
