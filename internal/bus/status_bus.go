// Package bus は審査ステータス変更の伝搬用イベントバスを提供する。
//
// ユーザー名簿ストア（管理者操作の発生源）と認証サービス（ログイン中の
// 本人へ変更を反映する消費者）を、共通の親を持たせずに疎結合にする。
// グローバル変数ではなく合成ルートが所有する明示的なオブジェクトとして
// 注入される。
package bus

import (
	"log/slog"
	"sync"

	"github.com/hitoshi/mentorhub/internal/model"
)

// StatusCallback はステータス変更イベントの購読コールバック。
type StatusCallback func(userID int64, update model.StatusUpdate)

// StatusBus はステータス変更イベントの同期配送を行う。
// 購読者リストは無制限で、重複排除は行わない。
type StatusBus struct {
	mu     sync.Mutex
	nextID int
	subs   []subscriber
	logger *slog.Logger
}

type subscriber struct {
	id int
	cb StatusCallback
}

// NewStatusBus はStatusBusを生成する。loggerがnilの場合はslog.Default()を使用する。
func NewStatusBus(logger *slog.Logger) *StatusBus {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatusBus{logger: logger}
}

// Subscribe はコールバックを登録し、解除用の関数を返す。
// 解除関数は複数回呼んでも安全で、2回目以降は何もしない。
func (b *StatusBus) Subscribe(cb StatusCallback) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscriber{id: id, cb: cb})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Emit は登録順に全コールバックを同期的に呼び出す。
// キューイングや集約は行わないため、同一ユーザーへの連続emitも個別に配送される。
// panicした購読者は回復してログに記録し、後続の購読者への配送は継続する。
func (b *StatusBus) Emit(userID int64, update model.StatusUpdate) {
	b.mu.Lock()
	subs := make([]subscriber, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, s := range subs {
		b.deliver(s, userID, update)
	}
}

// SubscriberCount は現在の購読者数を返す。
func (b *StatusBus) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

func (b *StatusBus) deliver(s subscriber, userID int64, update model.StatusUpdate) {
	defer func() {
		if rec := recover(); rec != nil {
			b.logger.Error("status subscriber panicked",
				slog.Int("subscriber_id", s.id),
				slog.Int64("user_id", userID),
				slog.Any("panic", rec),
			)
		}
	}()
	s.cb(userID, update)
}
