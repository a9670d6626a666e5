package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/hitoshi/mentorhub/internal/bus"
	"github.com/hitoshi/mentorhub/internal/fixture"
	"github.com/hitoshi/mentorhub/internal/model"
	"github.com/hitoshi/mentorhub/internal/source"
	"github.com/hitoshi/mentorhub/internal/store"
)

// firstSocialID はソーシャルログインで作成するアイデンティティの開始ID。
// デモテーブル（1001〜9001）および登録経路（5001〜）と衝突しない帯を使う。
const firstSocialID = 7001

// RegisterInput は登録操作の入力。
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     model.UserRole
	Profile  *model.ProfilePatch
}

// SocialProfile はソーシャルプロバイダーから受け取るプロフィール。
type SocialProfile struct {
	Email  string
	Name   string
	Avatar string
}

// Service は認証に関するビジネスロジックを提供する。
// 「誰がログインしているか」の唯一の情報源であり、
// トークンとユーザースナップショットの永続・消去はここだけが行う。
type Service struct {
	authSource   source.AuthSource
	tokens       *TokenStore
	issuer       *TokenIssuer
	users        *store.UserStore
	nextSocialID atomic.Int64
	unsubscribe  func()
}

// NewService はServiceを生成し、StatusBusの購読を開始する。
// 管理者操作によるステータス変更は購読コールバック経由で
// ログイン中のスナップショットへ即時反映される。
func NewService(
	authSource source.AuthSource,
	tokens *TokenStore,
	issuer *TokenIssuer,
	users *store.UserStore,
	statusBus *bus.StatusBus,
) *Service {
	s := &Service{
		authSource: authSource,
		tokens:     tokens,
		issuer:     issuer,
		users:      users,
	}
	s.nextSocialID.Store(firstSocialID)
	s.unsubscribe = statusBus.Subscribe(s.onStatusUpdate)
	return s
}

// Close はStatusBusの購読を解除する。
func (s *Service) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}

// onStatusUpdate はステータス変更をログイン中のスナップショットへ適用し、
// ライブ側を正として名簿と照合する。
func (s *Service) onStatusUpdate(userID int64, update model.StatusUpdate) {
	patched := s.tokens.PatchByUserID(userID, update)
	if patched == nil {
		return
	}
	s.users.Reconcile(patched)
	slog.Info("live identity patched from status update",
		slog.Int64("user_id", userID),
		slog.String("approval_status", string(patched.ApprovalStatus)),
	)
}

// Login は認証情報を照合し、成功時にトークンとユーザーを返す。
// デモアカウントテーブルを先に照合し、一致しない場合のみリモート交換へ進む。
// デモ不一致とリモート不一致はどちらも同じ「invalid credentials」として返し、
// どちらの経路で失敗したかは漏らさない。
func (s *Service) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	var user *model.User

	if acct := fixture.ValidateDemoLogin(email, password); acct != nil {
		u := acct.User
		user = &u
	} else {
		remote, err := s.authSource.Login(ctx, email, password)
		if err != nil {
			if errors.Is(err, source.ErrInvalidCredentials) {
				return nil, "", model.NewInvalidCredentialsError()
			}
			slog.Error("login exchange failed", slog.String("error", err.Error()))
			return nil, "", model.NewNetworkError()
		}
		user = remote
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.tokens.Put(token, *user)
	s.users.AddUser(*user)

	slog.Info("user logged in",
		slog.Int64("user_id", user.ID),
		slog.String("role", string(user.Role)),
	)
	return user, token, nil
}

// Register は新規アイデンティティを作成し、ログイン済み状態にする。
// リモート登録の結果に関わらず、要求されたロールとプロフィールを上書きし、
// 審査ステータスは必ずpendingにする。
func (s *Service) Register(ctx context.Context, input RegisterInput) (*model.User, string, error) {
	role := input.Role
	if role == "" {
		role = model.RoleMentee
	}
	if !role.IsValid() {
		return nil, "", model.NewInvalidRoleError(string(input.Role))
	}

	created, err := s.authSource.Register(ctx, source.RegisterRequest{
		Email:    input.Email,
		Password: input.Password,
		Name:     input.Name,
	})
	if err != nil {
		if errors.Is(err, source.ErrUserExists) {
			return nil, "", model.NewRegistrationFailedError("An account with this email already exists.")
		}
		slog.Error("registration exchange failed", slog.String("error", err.Error()))
		return nil, "", model.NewNetworkError()
	}

	created.Role = role
	if input.Profile != nil {
		input.Profile.Apply(created)
	}
	created.ApprovalStatus = model.ApprovalPending

	token, err := s.issuer.Issue(created)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.tokens.Put(token, *created)
	s.users.AddUser(*created)

	slog.Info("user registered",
		slog.Int64("user_id", created.ID),
		slog.String("role", string(created.Role)),
	)
	return created, token, nil
}

// SocialLogin はソーシャルプロバイダー由来のアイデンティティでログインする。
// 初回はprofileComplete=false・審査ステータスpendingで作成される。
// 同一メールで既知のアイデンティティがあればそれを再利用する。
func (s *Service) SocialLogin(ctx context.Context, provider model.AuthProvider, profile SocialProfile, role model.UserRole) (*model.User, string, error) {
	if provider != model.ProviderGoogle && provider != model.ProviderLinkedIn {
		return nil, "", model.NewSocialLoginFailedError()
	}
	if profile.Email == "" {
		return nil, "", model.NewSocialLoginFailedError()
	}
	if role == "" {
		role = model.RoleMentee
	}
	if !role.IsValid() {
		return nil, "", model.NewInvalidRoleError(string(role))
	}

	user := s.users.GetUserByEmail(profile.Email)
	if user == nil {
		user = &model.User{
			ID:              s.nextSocialID.Add(1) - 1,
			Email:           profile.Email,
			Name:            profile.Name,
			Avatar:          profile.Avatar,
			Role:            role,
			ApprovalStatus:  model.ApprovalPending,
			Provider:        provider,
			ProfileComplete: false,
		}
		s.users.AddUser(*user)
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.tokens.Put(token, *user)

	slog.Info("social login",
		slog.Int64("user_id", user.ID),
		slog.String("provider", string(provider)),
	)
	return user, token, nil
}

// UpdateProfile は現在のアイデンティティへ部分更新をマージし、
// profileCompleteをtrueにして再保存する。
// ログイン中でない場合は何もせずnilを返す。
func (s *Service) UpdateProfile(ctx context.Context, token string, patch model.ProfilePatch) *model.User {
	user, ok := s.tokens.Get(token)
	if !ok {
		return nil
	}

	patch.Apply(user)
	user.ProfileComplete = true
	s.tokens.Put(token, *user)

	slog.Info("profile updated", slog.Int64("user_id", user.ID))
	return user
}

// Logout はトークンとスナップショットを消去する。
func (s *Service) Logout(token string) {
	if user, ok := s.tokens.Get(token); ok {
		slog.Info("user logged out", slog.Int64("user_id", user.ID))
	}
	s.tokens.Delete(token)
}

// ValidateToken はトークンを検証し、対応するユーザーを返す。
// 署名・有効期限の検証に失敗した場合、またはアイデンティティを
// 復元できない場合は、保存済みの認証状態を消去してnilを返す。
// 失敗は呼び出し側へエラーとしては伝搬せず、未認証として扱われる。
func (s *Service) ValidateToken(ctx context.Context, token string) *model.User {
	claims, err := s.issuer.Verify(token)
	if err != nil {
		s.tokens.Delete(token)
		return nil
	}

	if user, ok := s.tokens.Get(token); ok {
		return user
	}

	// スナップショットがない場合（プロセス再起動後など）はソースから復元する
	remote, err := s.authSource.GetUserByEmail(ctx, claims.Email)
	if err != nil || remote == nil {
		s.tokens.Delete(token)
		return nil
	}

	s.tokens.Put(token, *remote)
	s.users.AddUser(*remote)
	return remote
}

// CurrentUser はトークンに対応するログイン中ユーザーのスナップショットを返す。
func (s *Service) CurrentUser(token string) *model.User {
	user, ok := s.tokens.Get(token)
	if !ok {
		return nil
	}
	return user
}
