// Package model はドメインモデルを定義する。
package model

// UserRole はユーザーがプラットフォームに参加する立場を表す。
type UserRole string

const (
	// RoleMentee はメンティー（指導を受ける側）。
	RoleMentee UserRole = "mentee"
	// RoleMentor はメンター（指導する側）。
	RoleMentor UserRole = "mentor"
	// RoleAdmin はプラットフォーム管理者。
	RoleAdmin UserRole = "admin"
)

// IsValid はロールが定義済みの値かどうかを返す。
func (r UserRole) IsValid() bool {
	switch r {
	case RoleMentee, RoleMentor, RoleAdmin:
		return true
	}
	return false
}

// ApprovalStatus はユーザー申請の審査ステージを表す。
type ApprovalStatus string

const (
	// ApprovalPending は申請直後の審査待ち状態。
	ApprovalPending ApprovalStatus = "pending"
	// ApprovalConsultationScheduled は面談日が設定された状態。
	ApprovalConsultationScheduled ApprovalStatus = "consultation_scheduled"
	// ApprovalApproved は承認済み状態。
	ApprovalApproved ApprovalStatus = "approved"
	// ApprovalRejected は却下された状態。
	ApprovalRejected ApprovalStatus = "rejected"
)

// IsValid は審査ステータスが定義済みの値かどうかを返す。
func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalPending, ApprovalConsultationScheduled, ApprovalApproved, ApprovalRejected:
		return true
	}
	return false
}

// AuthProvider はユーザーの登録経路を表す。
type AuthProvider string

const (
	// ProviderEmail はメール＋パスワードでの登録。
	ProviderEmail AuthProvider = "email"
	// ProviderGoogle はGoogleソーシャルログイン経由の登録。
	ProviderGoogle AuthProvider = "google"
	// ProviderLinkedIn はLinkedInソーシャルログイン経由の登録。
	ProviderLinkedIn AuthProvider = "linkedin"
)

// User はサービス利用ユーザーを表す。
// RoleとApprovalStatusはレコード生成時に必ず設定される
// （デフォルト: role=mentee, approval=pending。管理者アカウントは承認済みで作成）。
type User struct {
	ID              int64          `json:"id"`
	Email           string         `json:"email"`
	Name            string         `json:"name"`
	Avatar          string         `json:"avatar,omitempty"`
	Role            UserRole       `json:"userRole"`
	ApprovalStatus  ApprovalStatus `json:"approvalStatus"`
	Provider        AuthProvider   `json:"provider,omitempty"`
	ProfileComplete bool           `json:"profileComplete"`

	// ConsultationDate は面談予定日時（RFC 3339文字列、未設定の場合は空）。
	ConsultationDate string `json:"consultationDate,omitempty"`

	// プロフィール属性（任意項目）
	LinkedIn     string   `json:"linkedIn,omitempty"`
	CurrentRole  string   `json:"currentRole,omitempty"`
	TargetRole   string   `json:"targetRole,omitempty"`
	Industry     string   `json:"industry,omitempty"`
	Experience   string   `json:"experience,omitempty"`
	Goals        []string `json:"goals,omitempty"`
	Bio          string   `json:"bio,omitempty"`
	Company      string   `json:"company,omitempty"`
	Expertise    string   `json:"expertise,omitempty"`
	Motivation   string   `json:"motivation,omitempty"`
	Availability string   `json:"availability,omitempty"`
}

// ProfilePatch はプロフィール更新で差し替え可能なフィールドの部分集合を表す。
// nilのフィールドは変更しない。
type ProfilePatch struct {
	Name         *string   `json:"name,omitempty"`
	Avatar       *string   `json:"avatar,omitempty"`
	LinkedIn     *string   `json:"linkedIn,omitempty"`
	CurrentRole  *string   `json:"currentRole,omitempty"`
	TargetRole   *string   `json:"targetRole,omitempty"`
	Industry     *string   `json:"industry,omitempty"`
	Experience   *string   `json:"experience,omitempty"`
	Goals        *[]string `json:"goals,omitempty"`
	Bio          *string   `json:"bio,omitempty"`
	Company      *string   `json:"company,omitempty"`
	Expertise    *string   `json:"expertise,omitempty"`
	Motivation   *string   `json:"motivation,omitempty"`
	Availability *string   `json:"availability,omitempty"`
}

// Apply はパッチの非nilフィールドをユーザーへマージする。
func (p *ProfilePatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.LinkedIn != nil {
		u.LinkedIn = *p.LinkedIn
	}
	if p.CurrentRole != nil {
		u.CurrentRole = *p.CurrentRole
	}
	if p.TargetRole != nil {
		u.TargetRole = *p.TargetRole
	}
	if p.Industry != nil {
		u.Industry = *p.Industry
	}
	if p.Experience != nil {
		u.Experience = *p.Experience
	}
	if p.Goals != nil {
		u.Goals = *p.Goals
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Company != nil {
		u.Company = *p.Company
	}
	if p.Expertise != nil {
		u.Expertise = *p.Expertise
	}
	if p.Motivation != nil {
		u.Motivation = *p.Motivation
	}
	if p.Availability != nil {
		u.Availability = *p.Availability
	}
}

// StatusUpdate は管理者操作による審査ステータス変更の通知ペイロードを表す。
// nilのフィールドは変更なしを意味する。
type StatusUpdate struct {
	ApprovalStatus   *ApprovalStatus `json:"approvalStatus,omitempty"`
	ConsultationDate *string         `json:"consultationDate,omitempty"`
}
