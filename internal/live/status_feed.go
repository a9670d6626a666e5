// Package live はステータスイベントのWebSocket配信を提供する。
package live

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/hitoshi/mentorhub/internal/bus"
	"github.com/hitoshi/mentorhub/internal/middleware"
	"github.com/hitoshi/mentorhub/internal/model"
)

const (
	// writeWait は1メッセージの書き込みタイムアウト。
	writeWait = 10 * time.Second
	// pongWait はクライアントからのpong応答の待ち時間。
	pongWait = 60 * time.Second
	// pingPeriod はping送信間隔。pongWaitより短くする必要がある。
	pingPeriod = (pongWait * 9) / 10
	// sendBufferSize は接続ごとの送信キューサイズ。
	sendBufferSize = 8
)

// statusEvent はWebSocketで配信するステータス変更イベント。
type statusEvent struct {
	Type             string                `json:"type"`
	UserID           int64                 `json:"userId"`
	ApprovalStatus   *model.ApprovalStatus `json:"approvalStatus,omitempty"`
	ConsultationDate *string               `json:"consultationDate,omitempty"`
}

// StatusFeed は認証済みユーザーへ自分宛のステータス変更を配信するハンドラー。
// 管理者操作によるUpdateUserStatusがStatusBus経由で届く。
type StatusFeed struct {
	statusBus *bus.StatusBus
	logger    *slog.Logger
	upgrader  websocket.Upgrader
}

// NewStatusFeed はStatusFeedを生成する。
// checkOriginには許可するフロントエンドのオリジンを渡す。
func NewStatusFeed(statusBus *bus.StatusBus, allowedOrigin string, logger *slog.Logger) *StatusFeed {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatusFeed{
		statusBus: statusBus,
		logger:    logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || origin == allowedOrigin
			},
		},
	}
}

// ServeHTTP はWebSocket接続を確立し、接続ユーザー宛の
// ステータスイベントを配信する。未認証の場合は401を返す。
// GET /ws/status
func (f *StatusFeed) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		middleware.WriteErrorResponse(w, http.StatusUnauthorized, model.NewUnauthorizedError())
		return
	}

	conn, err := f.upgrader.Upgrade(w, r, nil)
	if err != nil {
		f.logger.Warn("websocket upgrade failed",
			slog.Int64("user_id", user.ID),
			slog.Any("error", err),
		)
		return
	}

	connID := uuid.New().String()
	send := make(chan statusEvent, sendBufferSize)

	// 自分宛のイベントのみ送信キューへ積む。バス配信はハンドラー登録順の
	// 同期呼び出しなので、キューが詰まっても管理者操作をブロックしないよう
	// 溢れたイベントは落とす。
	unsubscribe := f.statusBus.Subscribe(func(userID int64, update model.StatusUpdate) {
		if userID != user.ID {
			return
		}
		select {
		case send <- statusEvent{
			Type:             "status_update",
			UserID:           userID,
			ApprovalStatus:   update.ApprovalStatus,
			ConsultationDate: update.ConsultationDate,
		}:
		default:
			f.logger.Warn("status feed send buffer full, dropping event",
				slog.String("conn_id", connID),
				slog.Int64("user_id", userID),
			)
		}
	})

	f.logger.Info("status feed connected",
		slog.String("conn_id", connID),
		slog.Int64("user_id", user.ID),
	)

	done := make(chan struct{})
	go f.readLoop(conn, done)
	f.writeLoop(conn, send, done)

	unsubscribe()
	conn.Close()

	f.logger.Info("status feed disconnected",
		slog.String("conn_id", connID),
		slog.Int64("user_id", user.ID),
	)
}

// readLoop はクライアントからの制御フレームを処理する。
// 受信メッセージ自体は使わない。切断検知のためだけに読み続ける。
func (f *StatusFeed) readLoop(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writeLoop はイベント送信とping送信を行う。readLoop終了か書き込み失敗で戻る。
func (f *StatusFeed) writeLoop(conn *websocket.Conn, send <-chan statusEvent, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case event := <-send:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(event); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}
