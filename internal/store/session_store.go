package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/hitoshi/mentorhub/internal/model"
)

// SessionStore はセッション依頼のコレクションを保持する。
// コレクションは先頭追加（新しい順）のみで、既存レコードへの変更は
// ステータスのインプレース編集に限られる。削除操作は存在しない。
type SessionStore struct {
	mu       sync.RWMutex
	sessions []model.SessionRequest
	lastMs   int64
}

// NewSessionStore は初期データをシードしてSessionStoreを生成する。
func NewSessionStore(seed []model.SessionRequest) *SessionStore {
	sessions := make([]model.SessionRequest, len(seed))
	copy(sessions, seed)
	return &SessionStore{sessions: sessions}
}

// AddSession は新規セッション依頼を作成し先頭へ追加する。
// ID（時刻ベース、プロセス内で一意）とCreatedAtを採番し、
// ステータスは必ずpendingで開始する。作成されたレコードのコピーを返す。
// メンター・メンティーの表示用フィールドは呼び出し時点の値が
// スナップショットとして固定される。
func (s *SessionStore) AddSession(data model.SessionRequest) model.SessionRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	ms := time.Now().UnixMilli()
	// 同一ミリ秒内の連続作成でもIDが衝突しないよう単調増加を保証する
	if ms <= s.lastMs {
		ms = s.lastMs + 1
	}
	s.lastMs = ms

	session := data
	session.ID = fmt.Sprintf("session-%d", ms)
	session.Status = model.SessionPending
	session.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	s.sessions = append([]model.SessionRequest{session}, s.sessions...)
	return session
}

// UpdateSessionStatus は該当レコードのステータスのみを差し替える。
// IDが見つからない場合は何もしない。遷移の妥当性チェックは行わない
// （completed→pendingのような遷移もそのまま受理する）。
// 更新が行われた場合はtrueを返す。
func (s *SessionStore) UpdateSessionStatus(sessionID string, status model.SessionStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sessions {
		if s.sessions[i].ID == sessionID {
			s.sessions[i].Status = status
			return true
		}
	}
	return false
}

// GetMenteeSessions は指定メンティーIDのセッション一覧を返す（新しい順）。
func (s *SessionStore) GetMenteeSessions(menteeID string) []model.SessionRequest {
	return s.filter(func(sr *model.SessionRequest) bool {
		return sr.MenteeID == menteeID
	})
}

// GetMentorSessions は指定メンター表示名のセッション一覧を返す。
// メンター側の照合は数値IDではなく表示名で行う（カタログ由来の依頼は
// スラッグIDを持つため、IDでは突き合わせできない）。
func (s *SessionStore) GetMentorSessions(mentorName string) []model.SessionRequest {
	return s.filter(func(sr *model.SessionRequest) bool {
		return sr.MentorName == mentorName
	})
}

// GetPendingRequestsForMentor は指定メンター表示名のpendingな依頼のみを返す。
func (s *SessionStore) GetPendingRequestsForMentor(mentorName string) []model.SessionRequest {
	return s.filter(func(sr *model.SessionRequest) bool {
		return sr.MentorName == mentorName && sr.Status == model.SessionPending
	})
}

// All はコレクション全体のコピーを返す（新しい順）。
func (s *SessionStore) All() []model.SessionRequest {
	return s.filter(func(*model.SessionRequest) bool { return true })
}

func (s *SessionStore) filter(keep func(*model.SessionRequest) bool) []model.SessionRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.SessionRequest, 0, len(s.sessions))
	for i := range s.sessions {
		if keep(&s.sessions[i]) {
			out = append(out, s.sessions[i])
		}
	}
	return out
}
