package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/hitoshi/mentorhub/internal/guard"
)

// GuardResponseBody はガード失敗時のレスポンス。
// エラーではなくリダイレクト決定として返す。
type GuardResponseBody struct {
	Redirect string `json:"redirect"`
	From     string `json:"from,omitempty"`
}

// NewGuardMiddleware は保護ルートのアクセスガードミドルウェアを返す。
// IdentityMiddlewareの後に配置すること。順序付きチェックの判定に従い、
// 未ログインは401、それ以外のガード失敗は403で、
// クライアントが従うべきリダイレクト先をJSONで返す。
func NewGuardMiddleware(cfg guard.Config) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := UserFromContext(r.Context())

			decision := guard.Evaluate(guard.State{
				User:          user,
				RequestedPath: r.URL.Path,
			}, cfg)

			if decision.Result == guard.ResultRender {
				next.ServeHTTP(w, r)
				return
			}

			status := http.StatusForbidden
			if user == nil {
				status = http.StatusUnauthorized
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(GuardResponseBody{
				Redirect: decision.Redirect,
				From:     decision.From,
			})
		})
	}
}
