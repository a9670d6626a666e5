package handler

// MetricsRecorder はハンドラーが記録するドメインメトリクスのインターフェース。
// metrics.Collectorの部分集合として定義する。
type MetricsRecorder interface {
	RecordLoginSuccess()
	RecordLoginFailure()
	RecordRegistration(role string)
	RecordSocialLogin(provider string)
	RecordSessionCreated()
	RecordSessionStatusChange(status string)
	RecordUserStatusChange(status string)
}

// noopMetrics はメトリクス未設定時に使用する何もしない実装。
type noopMetrics struct{}

func (noopMetrics) RecordLoginSuccess()              {}
func (noopMetrics) RecordLoginFailure()              {}
func (noopMetrics) RecordRegistration(string)        {}
func (noopMetrics) RecordSocialLogin(string)         {}
func (noopMetrics) RecordSessionCreated()            {}
func (noopMetrics) RecordSessionStatusChange(string) {}
func (noopMetrics) RecordUserStatusChange(string)    {}

// orNoopMetrics はnilのレコーダーを何もしない実装へ差し替える。
func orNoopMetrics(m MetricsRecorder) MetricsRecorder {
	if m == nil {
		return noopMetrics{}
	}
	return m
}
