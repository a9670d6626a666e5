// Package guard は保護されたビューへのアクセス可否を判定する。
// 判定は順序付きのチェック列で行われ、最初に失敗したチェックの
// リダイレクト先が結果となる。ガード失敗はエラーではなく
// リダイレクト決定として扱われる。
package guard

import (
	"github.com/hitoshi/mentorhub/internal/model"
)

// リダイレクト先のルート。
const (
	RouteLogin             = "/auth"
	RouteCompleteProfile   = "/complete-profile"
	RouteApplicationStatus = "/application-status"
	RouteMenteeDashboard   = "/mentee/dashboard"
	RouteMentorDashboard   = "/mentor/dashboard"
	RouteAdminConsole      = "/admin"
)

// Result はガード判定の種別。
type Result int

const (
	// ResultRender は保護対象の表示を許可する。
	ResultRender Result = iota
	// ResultLoading はアイデンティティ解決待ち（リダイレクトしない）。
	ResultLoading
	// ResultRedirect はリダイレクトを指示する。
	ResultRedirect
)

// Decision はガード判定の結果。
// RedirectはResultRedirectの場合のみ設定される。
// FromはログインへのリダイレクトでのみRequestedPathを引き継ぐ
// （ログイン後の自動復帰はこのスコープでは行わない）。
type Decision struct {
	Result   Result
	Redirect string
	From     string
}

// State はガードへの入力。
type State struct {
	// Loading はアイデンティティの解決が完了していないことを示す。
	Loading bool
	// User は解決済みのアイデンティティ。未ログインの場合nil。
	User *model.User
	// RequestedPath は元々要求されたパス。
	RequestedPath string
}

// Config は保護ルートごとのガード設定。
// ゼロ値ではなくNewConfigを使うこと（承認・プロフィール完了チェックは
// デフォルトで有効）。
type Config struct {
	// AllowedRoles は許可するロールの集合。空の場合はロールを制限しない。
	AllowedRoles []model.UserRole
	// RequireApproval は審査ステータスapprovedを要求する。
	RequireApproval bool
	// RequireProfileComplete は非メールプロバイダー由来の
	// アイデンティティにプロフィール完了を要求する。
	RequireProfileComplete bool
}

// NewConfig はデフォルト設定（承認必須・プロフィール完了必須）の
// Configを生成する。
func NewConfig(allowedRoles ...model.UserRole) Config {
	return Config{
		AllowedRoles:           allowedRoles,
		RequireApproval:        true,
		RequireProfileComplete: true,
	}
}

// Evaluate は順序付きチェックを実行し、最初に失敗したチェックの
// 判定を返す。
//  1. 解決待ち → ResultLoading
//  2. 未ログイン → ログインへ（元のパスを保持）
//  3. プロフィール未完了（非メールプロバイダー由来） → プロフィール補完へ
//  4. 審査ステータスがapprovedでない → 申請状況ビューへ
//  5. 許可ロール外 → そのロールの標準ダッシュボードへ
//  6. それ以外 → 表示許可
func Evaluate(state State, cfg Config) Decision {
	if state.Loading {
		return Decision{Result: ResultLoading}
	}

	user := state.User
	if user == nil {
		return Decision{
			Result:   ResultRedirect,
			Redirect: RouteLogin,
			From:     state.RequestedPath,
		}
	}

	if cfg.RequireProfileComplete && !user.ProfileComplete && isSocialProvider(user.Provider) {
		return Decision{Result: ResultRedirect, Redirect: RouteCompleteProfile}
	}

	if cfg.RequireApproval && user.ApprovalStatus != model.ApprovalApproved {
		return Decision{Result: ResultRedirect, Redirect: RouteApplicationStatus}
	}

	if len(cfg.AllowedRoles) > 0 && !roleAllowed(user.Role, cfg.AllowedRoles) {
		return Decision{Result: ResultRedirect, Redirect: DashboardFor(user.Role)}
	}

	return Decision{Result: ResultRender}
}

// DashboardFor はロールの標準ダッシュボードのパスを返す。
func DashboardFor(role model.UserRole) string {
	switch role {
	case model.RoleMentor:
		return RouteMentorDashboard
	case model.RoleAdmin:
		return RouteAdminConsole
	default:
		return RouteMenteeDashboard
	}
}

func isSocialProvider(p model.AuthProvider) bool {
	return p != "" && p != model.ProviderEmail
}

func roleAllowed(role model.UserRole, allowed []model.UserRole) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
