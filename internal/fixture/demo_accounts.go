// Package fixture はデモ用の固定データセットを提供する。
// staticソースモードおよびストアの初期シードとして使用される。
package fixture

import (
	"strings"
	"time"

	"github.com/hitoshi/mentorhub/internal/model"
)

// DemoAccount はローカルテスト・製品デモ用の固定認証情報とユーザーレコードの組を表す。
type DemoAccount struct {
	Email       string
	Password    string
	User        model.User
	Description string
}

// DemoAccounts は各ユーザー状態を網羅するデモアカウントの一覧。
// 遠隔の認証交換より先に照合される。
var DemoAccounts = []DemoAccount{
	{
		Email:       "admin@demo.com",
		Password:    "demo123",
		Description: "Platform administrator with full access",
		User: model.User{
			ID:              9001,
			Email:           "admin@demo.com",
			Name:            "Admin User",
			Avatar:          "https://images.unsplash.com/photo-1560250097-0b93528c311a?w=150&h=150&fit=crop",
			Role:            model.RoleAdmin,
			ApprovalStatus:  model.ApprovalApproved,
			ProfileComplete: true,
		},
	},
	{
		Email:       "mentee@demo.com",
		Password:    "demo123",
		Description: "Approved mentee with full dashboard access",
		User: model.User{
			ID:              1001,
			Email:           "mentee@demo.com",
			Name:            "Sarah Johnson",
			Avatar:          "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=150&h=150&fit=crop",
			Role:            model.RoleMentee,
			ApprovalStatus:  model.ApprovalApproved,
			ProfileComplete: true,
			LinkedIn:        "https://linkedin.com/in/sarahjohnson",
			CurrentRole:     "Junior Software Engineer",
			TargetRole:      "Senior Software Engineer",
			Industry:        "Technology",
			Experience:      "1-3",
			Goals:           []string{"Skill development", "Career transition", "Networking"},
			Bio:             "Passionate about learning and growing in tech.",
		},
	},
	{
		Email:       "pending.mentee@demo.com",
		Password:    "demo123",
		Description: "New mentee awaiting consultation scheduling",
		User: model.User{
			ID:              1002,
			Email:           "pending.mentee@demo.com",
			Name:            "Alex Chen",
			Role:            model.RoleMentee,
			ApprovalStatus:  model.ApprovalPending,
			ProfileComplete: true,
			CurrentRole:     "Marketing Associate",
			TargetRole:      "Product Manager",
			Industry:        "Technology",
			Experience:      "3-5",
			Goals:           []string{"Career transition", "Interview preparation"},
		},
	},
	{
		Email:       "scheduled.mentee@demo.com",
		Password:    "demo123",
		Description: "Mentee with consultation scheduled",
		User: model.User{
			ID:               1003,
			Email:            "scheduled.mentee@demo.com",
			Name:             "Jordan Smith",
			Role:             model.RoleMentee,
			ApprovalStatus:   model.ApprovalConsultationScheduled,
			ProfileComplete:  true,
			ConsultationDate: time.Now().Add(3 * 24 * time.Hour).Format(time.RFC3339),
			CurrentRole:      "Data Analyst",
			TargetRole:       "Data Scientist",
			Industry:         "Finance",
			Experience:       "1-3",
			Goals:            []string{"Skill development", "Leadership growth"},
		},
	},
	{
		Email:       "mentor@demo.com",
		Password:    "demo123",
		Description: "Approved mentor with full dashboard access",
		User: model.User{
			ID:              2001,
			Email:           "mentor@demo.com",
			Name:            "Dr. Michael Roberts",
			Avatar:          "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop",
			Role:            model.RoleMentor,
			ApprovalStatus:  model.ApprovalApproved,
			ProfileComplete: true,
			LinkedIn:        "https://linkedin.com/in/michaelroberts",
			CurrentRole:     "VP of Engineering",
			Company:         "TechCorp Inc.",
			Industry:        "Software Engineering",
			Experience:      "15+",
			Expertise:       "System design, leadership, career transitions",
			Motivation:      "Helping the next generation of tech leaders",
			Availability:    "4-6 hours per month",
		},
	},
	{
		Email:       "pending.mentor@demo.com",
		Password:    "demo123",
		Description: "New mentor awaiting interview scheduling",
		User: model.User{
			ID:              2002,
			Email:           "pending.mentor@demo.com",
			Name:            "Emily Watson",
			Role:            model.RoleMentor,
			ApprovalStatus:  model.ApprovalPending,
			ProfileComplete: true,
			CurrentRole:     "Senior Product Manager",
			Company:         "StartupXYZ",
			Industry:        "Product Management",
			Experience:      "10-15",
			Expertise:       "Product strategy, user research, roadmap planning",
			Motivation:      "Giving back to the PM community",
			Availability:    "2-4 hours per month",
		},
	},
	{
		Email:       "scheduled.mentor@demo.com",
		Password:    "demo123",
		Description: "Mentor with interview scheduled",
		User: model.User{
			ID:               2003,
			Email:            "scheduled.mentor@demo.com",
			Name:             "David Kim",
			Role:             model.RoleMentor,
			ApprovalStatus:   model.ApprovalConsultationScheduled,
			ProfileComplete:  true,
			ConsultationDate: time.Now().Add(5 * 24 * time.Hour).Format(time.RFC3339),
			CurrentRole:      "Director of UX",
			Company:          "DesignStudio",
			Industry:         "UX/UI Design",
			Experience:       "10-15",
			Expertise:        "Design systems, user research, team building",
			Motivation:       "Mentoring designers to reach their potential",
			Availability:     "3-5 hours per month",
		},
	},
}

// GetDemoAccount はメールアドレスでデモアカウントを検索する。
// 大文字小文字は区別しない。見つからない場合はnilを返す。
func GetDemoAccount(email string) *DemoAccount {
	for i := range DemoAccounts {
		if strings.EqualFold(DemoAccounts[i].Email, email) {
			return &DemoAccounts[i]
		}
	}
	return nil
}

// ValidateDemoLogin はメールとパスワードの完全一致でデモログインを検証する。
// 一致しない場合はnilを返す。
func ValidateDemoLogin(email, password string) *DemoAccount {
	account := GetDemoAccount(email)
	if account != nil && account.Password == password {
		return account
	}
	return nil
}

// DemoUsers は全デモアカウントのユーザーレコードのコピーを返す。
// ユーザー名簿ストアの初期シードに使用する。
func DemoUsers() []model.User {
	users := make([]model.User, len(DemoAccounts))
	for i, account := range DemoAccounts {
		users[i] = account.User
	}
	return users
}
