package auth

import (
	"sync"

	"github.com/hitoshi/mentorhub/internal/model"
)

// TokenStore はトークンと認証済みユーザースナップショットの組を保持する。
// トークンとスナップショットは常に同時に書き込み、同時に消去する。
// 書き込みはすべて認証サービスを経由する。
type TokenStore struct {
	mu       sync.RWMutex
	sessions map[string]model.User // トークン → スナップショット
}

// NewTokenStore はTokenStoreを生成する。
func NewTokenStore() *TokenStore {
	return &TokenStore{sessions: make(map[string]model.User)}
}

// Put はトークンとスナップショットを保存する。
func (s *TokenStore) Put(token string, user model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = user
}

// Get はトークンに対応するスナップショットのコピーを返す。
func (s *TokenStore) Get(token string) (*model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.sessions[token]
	if !ok {
		return nil, false
	}
	return &user, true
}

// Delete はトークンとスナップショットを消去する。存在しない場合は何もしない。
func (s *TokenStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// PatchByUserID は指定ユーザーの全スナップショットへステータス変更を適用し、
// 変更後のスナップショットを返す。該当がない場合はnilを返す。
func (s *TokenStore) PatchByUserID(userID int64, update model.StatusUpdate) *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	var patched *model.User
	for token, user := range s.sessions {
		if user.ID != userID {
			continue
		}
		if update.ApprovalStatus != nil {
			user.ApprovalStatus = *update.ApprovalStatus
		}
		if update.ConsultationDate != nil {
			user.ConsultationDate = *update.ConsultationDate
		}
		s.sessions[token] = user
		u := user
		patched = &u
	}
	return patched
}

// Len は保持しているセッション数を返す。
func (s *TokenStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
