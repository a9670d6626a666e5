// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector はメトリクス収集のインターフェース。
// ハンドラーやサービス層から利用する。
type MetricsCollector interface {
	RecordLoginSuccess()
	RecordLoginFailure()
	RecordRegistration(role string)
	RecordSocialLogin(provider string)
	RecordSessionCreated()
	RecordSessionStatusChange(status string)
	RecordUserStatusChange(status string)
	RecordHTTPStatus(statusCode int)
}

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	loginSuccess  prometheus.Counter
	loginFail     prometheus.Counter
	registrations *prometheus.CounterVec
	socialLogins  *prometheus.CounterVec
	sessionNew    prometheus.Counter
	sessionStatus *prometheus.CounterVec
	userStatus    *prometheus.CounterVec
	httpStatus    *prometheus.CounterVec
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		loginSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mentorhub_login_success_total",
			Help: "ログイン成功の合計数",
		}),
		loginFail: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mentorhub_login_fail_total",
			Help: "ログイン失敗の合計数",
		}),
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mentorhub_registrations_total",
			Help: "ロール別の新規登録数",
		}, []string{"role"}),
		socialLogins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mentorhub_social_logins_total",
			Help: "プロバイダー別のソーシャルログイン数",
		}, []string{"provider"}),
		sessionNew: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mentorhub_sessions_created_total",
			Help: "作成されたセッション依頼の合計数",
		}),
		sessionStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mentorhub_session_status_changes_total",
			Help: "遷移先ステータス別のセッション状態変更数",
		}, []string{"status"}),
		userStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mentorhub_user_status_changes_total",
			Help: "遷移先ステータス別のユーザー審査状態変更数",
		}, []string{"status"}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mentorhub_http_status_total",
			Help: "HTTPステータスコード別のレスポンス数",
		}, []string{"status_code"}),
	}

	reg.MustRegister(
		c.loginSuccess,
		c.loginFail,
		c.registrations,
		c.socialLogins,
		c.sessionNew,
		c.sessionStatus,
		c.userStatus,
		c.httpStatus,
	)

	return c
}

// RecordLoginSuccess はログイン成功を記録する。
func (c *Collector) RecordLoginSuccess() {
	c.loginSuccess.Inc()
}

// RecordLoginFailure はログイン失敗を記録する。
func (c *Collector) RecordLoginFailure() {
	c.loginFail.Inc()
}

// RecordRegistration は新規登録をロール別に記録する。
func (c *Collector) RecordRegistration(role string) {
	c.registrations.WithLabelValues(role).Inc()
}

// RecordSocialLogin はソーシャルログインをプロバイダー別に記録する。
func (c *Collector) RecordSocialLogin(provider string) {
	c.socialLogins.WithLabelValues(provider).Inc()
}

// RecordSessionCreated はセッション依頼の作成を記録する。
func (c *Collector) RecordSessionCreated() {
	c.sessionNew.Inc()
}

// RecordSessionStatusChange はセッション状態変更を遷移先ステータス別に記録する。
func (c *Collector) RecordSessionStatusChange(status string) {
	c.sessionStatus.WithLabelValues(status).Inc()
}

// RecordUserStatusChange はユーザー審査状態変更を遷移先ステータス別に記録する。
func (c *Collector) RecordUserStatusChange(status string) {
	c.userStatus.WithLabelValues(status).Inc()
}

// RecordHTTPStatus はHTTPステータスコードを記録する。
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
