package live

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/hitoshi/mentorhub/internal/bus"
	"github.com/hitoshi/mentorhub/internal/middleware"
	"github.com/hitoshi/mentorhub/internal/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// withTestUser はリクエストへ認証済みユーザーを注入するミドルウェアを返す。
func withTestUser(user *model.User, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user != nil {
			r = r.WithContext(middleware.ContextWithIdentity(r.Context(), user, "token"))
		}
		next.ServeHTTP(w, r)
	})
}

// TestStatusFeed_Unauthenticated は未認証接続が401で拒否されることをテストする。
func TestStatusFeed_Unauthenticated(t *testing.T) {
	statusBus := bus.NewStatusBus(testLogger())
	feed := NewStatusFeed(statusBus, "http://localhost:3000", testLogger())

	req := httptest.NewRequest(http.MethodGet, "/ws/status", nil)
	rec := httptest.NewRecorder()

	feed.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if statusBus.SubscriberCount() != 0 {
		t.Errorf("subscriber count = %d, want 0", statusBus.SubscriberCount())
	}
}

// TestStatusFeed_DeliversOwnEvents は自分宛のイベントのみ配信されることをテストする。
func TestStatusFeed_DeliversOwnEvents(t *testing.T) {
	statusBus := bus.NewStatusBus(testLogger())
	feed := NewStatusFeed(statusBus, "http://localhost:3000", testLogger())

	user := &model.User{ID: 1002, Role: model.RoleMentee, ApprovalStatus: model.ApprovalPending}
	server := httptest.NewServer(withTestUser(user, feed))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/status"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("failed to dial: %v", err)
	}
	defer conn.Close()

	// 購読が登録されるのを待つ
	deadline := time.Now().Add(time.Second)
	for statusBus.SubscriberCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if statusBus.SubscriberCount() != 1 {
		t.Fatalf("subscriber count = %d, want 1", statusBus.SubscriberCount())
	}

	// 他人宛イベントは届かない
	otherStatus := model.ApprovalApproved
	statusBus.Emit(9999, model.StatusUpdate{ApprovalStatus: &otherStatus})

	// 自分宛イベントが届く
	ownStatus := model.ApprovalApproved
	statusBus.Emit(1002, model.StatusUpdate{ApprovalStatus: &ownStatus})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, message, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("failed to read message: %v", err)
	}

	var event statusEvent
	if err := json.Unmarshal(message, &event); err != nil {
		t.Fatalf("failed to parse event: %v", err)
	}
	if event.Type != "status_update" {
		t.Errorf("type = %q, want status_update", event.Type)
	}
	if event.UserID != 1002 {
		t.Errorf("userId = %d, want 1002 (own events only)", event.UserID)
	}
	if event.ApprovalStatus == nil || *event.ApprovalStatus != model.ApprovalApproved {
		t.Errorf("approvalStatus = %v, want approved", event.ApprovalStatus)
	}
}

// TestStatusFeed_UnsubscribesOnClose は切断時に購読が解除されることをテストする。
func TestStatusFeed_UnsubscribesOnClose(t *testing.T) {
	statusBus := bus.NewStatusBus(testLogger())
	feed := NewStatusFeed(statusBus, "http://localhost:3000", testLogger())

	user := &model.User{ID: 1001, Role: model.RoleMentee}
	server := httptest.NewServer(withTestUser(user, feed))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/status"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("failed to dial: %v", err)
	}

	deadline := time.Now().Add(time.Second)
	for statusBus.SubscriberCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	conn.Close()

	deadline = time.Now().Add(2 * time.Second)
	for statusBus.SubscriberCount() != 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if got := statusBus.SubscriberCount(); got != 0 {
		t.Errorf("subscriber count after close = %d, want 0", got)
	}
}
