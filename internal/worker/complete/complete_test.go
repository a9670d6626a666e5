package complete

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/hitoshi/mentorhub/internal/model"
	"github.com/hitoshi/mentorhub/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// TestSweeper_RunOnce は希望日を過ぎた承諾済みセッションのみ完了することをテストする。
func TestSweeper_RunOnce(t *testing.T) {
	sessions := store.NewSessionStore([]model.SessionRequest{
		{ID: "session-1", Date: "2026-08-20", Status: model.SessionAccepted},
		{ID: "session-2", Date: "2026-08-20", Status: model.SessionPending},
		{ID: "session-3", Date: "2026-09-15", Status: model.SessionAccepted},
		{ID: "session-4", Date: "2026-08-25", Status: model.SessionDeclined},
		{ID: "session-5", Date: "not-a-date", Status: model.SessionAccepted},
	})

	sweeper := NewSweeper(sessions, testLogger())
	sweeper.now = func() time.Time {
		return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	}

	completed := sweeper.RunOnce(context.Background())

	if completed != 1 {
		t.Errorf("completed = %d, want 1", completed)
	}

	want := map[string]model.SessionStatus{
		"session-1": model.SessionCompleted, // 承諾済みかつ過去日
		"session-2": model.SessionPending,   // 承諾されていない
		"session-3": model.SessionAccepted,  // 未来日
		"session-4": model.SessionDeclined,  // 辞退済み
		"session-5": model.SessionAccepted,  // 日付不正はスキップ
	}
	for _, s := range sessions.All() {
		if s.Status != want[s.ID] {
			t.Errorf("%s status = %q, want %q", s.ID, s.Status, want[s.ID])
		}
	}
}

// TestSweeper_RunOnce_SameDayNotCompleted は当日のセッションは完了しないことをテストする。
func TestSweeper_RunOnce_SameDayNotCompleted(t *testing.T) {
	sessions := store.NewSessionStore([]model.SessionRequest{
		{ID: "session-1", Date: "2026-08-30", Status: model.SessionAccepted},
	})

	sweeper := NewSweeper(sessions, testLogger())
	sweeper.now = func() time.Time {
		return time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC)
	}

	if completed := sweeper.RunOnce(context.Background()); completed != 0 {
		t.Errorf("completed = %d, want 0", completed)
	}
}

// TestSweeper_RunOnce_Idempotent は繰り返し実行しても二重処理しないことをテストする。
func TestSweeper_RunOnce_Idempotent(t *testing.T) {
	sessions := store.NewSessionStore([]model.SessionRequest{
		{ID: "session-1", Date: "2026-08-20", Status: model.SessionAccepted},
	})

	sweeper := NewSweeper(sessions, testLogger())
	sweeper.now = func() time.Time {
		return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	}

	if completed := sweeper.RunOnce(context.Background()); completed != 1 {
		t.Fatalf("first run completed = %d, want 1", completed)
	}
	if completed := sweeper.RunOnce(context.Background()); completed != 0 {
		t.Errorf("second run completed = %d, want 0", completed)
	}
}

// TestSweeper_Start はコンテキストキャンセルで停止することをテストする。
func TestSweeper_Start(t *testing.T) {
	sessions := store.NewSessionStore(nil)
	sweeper := NewSweeper(sessions, testLogger())

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		sweeper.Start(ctx, time.Hour)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not stop after context cancellation")
	}
}
