// Package model はドメインモデルを定義する。
package model

// SessionStatus はメンタリングセッション依頼のステータスを表す。
type SessionStatus string

const (
	// SessionPending はメンターの返答待ち状態。
	SessionPending SessionStatus = "pending"
	// SessionAccepted はメンターが承諾した状態。
	SessionAccepted SessionStatus = "accepted"
	// SessionDeclined はメンターが辞退した状態。
	SessionDeclined SessionStatus = "declined"
	// SessionCompleted は実施済みの状態。
	SessionCompleted SessionStatus = "completed"
)

// IsValid はセッションステータスが定義済みの値かどうかを返す。
func (s SessionStatus) IsValid() bool {
	switch s {
	case SessionPending, SessionAccepted, SessionDeclined, SessionCompleted:
		return true
	}
	return false
}

// TimeSlots は予約可能な時間枠の固定リスト。
var TimeSlots = []string{
	"9:00 AM",
	"10:00 AM",
	"11:00 AM",
	"2:00 PM",
	"3:00 PM",
	"4:00 PM",
}

// IsValidTimeSlot は指定の時間枠が固定リストに含まれるかどうかを返す。
func IsValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// SessionRequest はメンティーとメンターを結ぶセッション依頼を表す。
// メンター・メンティーの表示用フィールドは作成時点のスナップショットであり、
// 元のユーザーレコードが後から変わっても再同期しない。
type SessionRequest struct {
	ID string `json:"id"`

	// メンター側スナップショット。MentorIDはカタログ由来のスラッグの場合と
	// 数値ID文字列の場合があり、メンター側の絞り込みはMentorNameで行う。
	MentorID        string `json:"mentorId"`
	MentorName      string `json:"mentorName"`
	MentorRole      string `json:"mentorRole"`
	MentorCompany   string `json:"mentorCompany"`
	MentorImage     string `json:"mentorImage"`
	MentorSpecialty string `json:"mentorSpecialty"`

	// メンティー側スナップショット。
	MenteeID    string `json:"menteeId"`
	MenteeName  string `json:"menteeName"`
	MenteeEmail string `json:"menteeEmail"`

	// Date は希望日（YYYY-MM-DD）、TimeはTimeSlotsのいずれか。
	Date    string `json:"date"`
	Time    string `json:"time"`
	Topic   string `json:"topic"`
	Message string `json:"message,omitempty"`

	Status    SessionStatus `json:"status"`
	CreatedAt string        `json:"createdAt"`
}
