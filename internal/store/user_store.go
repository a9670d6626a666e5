// Package store はユーザー名簿とセッション依頼のアプリケーション内ストアを提供する。
//
// 仕様上どちらもプロセス内メモリで保持するコレクションであり、
// 各ストアはアプリケーション生存期間あたり1インスタンスが所有する。
// 全ての読み書きはストアの操作を経由し、外部から直接変更されることはない。
package store

import (
	"strings"
	"sync"

	"github.com/hitoshi/mentorhub/internal/bus"
	"github.com/hitoshi/mentorhub/internal/model"
)

// UserStore は既知ユーザーの名簿を保持する。
// 管理者コンソールからのステータス変更の入口であり、
// 変更はStatusBusへ発行されてログイン中の本人へ伝搬する。
type UserStore struct {
	mu    sync.RWMutex
	users []model.User
	bus   *bus.StatusBus
}

// NewUserStore は初期名簿をシードしてUserStoreを生成する。
// seedはコピーされ、呼び出し側のスライスとは独立する。
func NewUserStore(seed []model.User, statusBus *bus.StatusBus) *UserStore {
	users := make([]model.User, len(seed))
	copy(users, seed)
	return &UserStore{users: users, bus: statusBus}
}

// UpdateUserStatus は指定ユーザーの審査ステータス（と任意の面談日）を更新し、
// 同じ変更をStatusBusへ発行する。該当IDがない場合は何もしない（発行もしない）。
// ステータス遷移の妥当性チェックは行わない（どの状態からどの状態へも遷移可能）。
func (s *UserStore) UpdateUserStatus(userID int64, status model.ApprovalStatus, consultationDate string) {
	s.mu.Lock()
	found := false
	for i := range s.users {
		if s.users[i].ID == userID {
			s.users[i].ApprovalStatus = status
			if consultationDate != "" {
				s.users[i].ConsultationDate = consultationDate
			}
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return
	}

	update := model.StatusUpdate{ApprovalStatus: &status}
	if consultationDate != "" {
		update.ConsultationDate = &consultationDate
	}
	s.bus.Emit(userID, update)
}

// GetUserByID は指定IDのユーザーのコピーを返す。見つからない場合はnilを返す。
func (s *UserStore) GetUserByID(userID int64) *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].ID == userID {
			u := s.users[i]
			return &u
		}
	}
	return nil
}

// GetUserByEmail は指定メールアドレスのユーザーのコピーを返す。
// 大文字小文字は区別しない。見つからない場合はnilを返す。
func (s *UserStore) GetUserByEmail(email string) *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			u := s.users[i]
			return &u
		}
	}
	return nil
}

// GetMentees はロールがmenteeのユーザー一覧を返す。
func (s *UserStore) GetMentees() []model.User {
	return s.filter(func(u *model.User) bool {
		return u.Role == model.RoleMentee
	})
}

// GetMentors はロールがmentorのユーザー一覧を返す。
func (s *UserStore) GetMentors() []model.User {
	return s.filter(func(u *model.User) bool {
		return u.Role == model.RoleMentor
	})
}

// GetPendingUsers は審査待ち（pendingまたはconsultation_scheduled）のユーザー一覧を返す。
func (s *UserStore) GetPendingUsers() []model.User {
	return s.filter(func(u *model.User) bool {
		return u.ApprovalStatus == model.ApprovalPending ||
			u.ApprovalStatus == model.ApprovalConsultationScheduled
	})
}

// All は名簿全体のコピーを返す。
func (s *UserStore) All() []model.User {
	return s.filter(func(*model.User) bool { return true })
}

// Reconcile はログイン中の本人のレコードを名簿へ反映する。
// ライブの認証済みアイデンティティの審査ステータスが名簿側と食い違った場合
// （イベントバス経由でアイデンティティが先に更新された場合など）、
// 本人のレコードについてはライブ側を正として名簿を一致させる。
func (s *UserStore) Reconcile(current *model.User) {
	if current == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == current.ID {
			if s.users[i].ApprovalStatus != current.ApprovalStatus {
				s.users[i] = *current
			}
			return
		}
	}
}

// AddUser は新規ユーザーを名簿へ追加する。同一IDが既に存在する場合は何もしない。
// 登録およびソーシャルログインで作成されたアイデンティティを
// 管理者コンソールの名簿へ載せるために使用する。
func (s *UserStore) AddUser(u model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == u.ID {
			return
		}
	}
	s.users = append(s.users, u)
}

func (s *UserStore) filter(keep func(*model.User) bool) []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.User, 0, len(s.users))
	for i := range s.users {
		if keep(&s.users[i]) {
			out = append(out, s.users[i])
		}
	}
	return out
}
