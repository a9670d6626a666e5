// Package complete はセッション依頼の自動完了ジョブを提供する。
// 承諾済みのまま希望日を過ぎたセッションを定期バッチでcompletedへ遷移させる。
package complete

import (
	"context"
	"log/slog"
	"time"

	"github.com/hitoshi/mentorhub/internal/model"
)

// SessionCollection は完了ジョブが必要とするストアインターフェース。
type SessionCollection interface {
	// All はセッション依頼全体のコピーを返す。
	All() []model.SessionRequest
	// UpdateSessionStatus は該当レコードのステータスを差し替える。
	UpdateSessionStatus(sessionID string, status model.SessionStatus) bool
}

// Sweeper は希望日を過ぎた承諾済みセッションをcompletedへ遷移させるジョブ。
// 冪等: すでにcompletedのレコードは対象外のため、繰り返し実行しても安全。
type Sweeper struct {
	sessions SessionCollection
	logger   *slog.Logger

	// now はテストで時刻を差し替えるためのフック。
	now func() time.Time
}

// NewSweeper はSweeperを生成する。loggerがnilの場合はslog.Default()を使用する。
func NewSweeper(sessions SessionCollection, logger *slog.Logger) *Sweeper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sweeper{
		sessions: sessions,
		logger:   logger,
		now:      time.Now,
	}
}

// Start は指定間隔のティッカーでジョブを起動する。
// コンテキストがキャンセルされるまで実行を継続する。
func (s *Sweeper) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info("session completion sweeper started",
		slog.Duration("interval", interval),
	)

	// 起動直後に1回実行
	s.RunOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("session completion sweeper stopped")
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce は承諾済みかつ希望日が過去のセッションを1回分完了させる。
// 完了させた件数を返す。
func (s *Sweeper) RunOnce(ctx context.Context) int {
	start := s.now()
	today := start.UTC().Format("2006-01-02")

	completed := 0
	for _, session := range s.sessions.All() {
		if session.Status != model.SessionAccepted {
			continue
		}
		// Dateは希望日（YYYY-MM-DD）。形式不正のレコードはスキップする。
		if _, err := time.Parse("2006-01-02", session.Date); err != nil {
			s.logger.Warn("session has an unparseable date, skipping",
				slog.String("session_id", session.ID),
				slog.String("date", session.Date),
			)
			continue
		}
		if session.Date >= today {
			continue
		}
		if s.sessions.UpdateSessionStatus(session.ID, model.SessionCompleted) {
			completed++
		}
	}

	if completed > 0 {
		s.logger.Info("session completion sweep finished",
			slog.Int("completed_count", completed),
			slog.Float64("duration_ms", float64(time.Since(start).Milliseconds())),
		)
	}

	return completed
}
