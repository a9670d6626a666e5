package fixture

import "github.com/hitoshi/mentorhub/internal/model"

// DemoSessions はデモアカウントに紐付くセッション依頼の初期データ。
// メンティー側はID 1001（mentee@demo.com）、メンター側は
// Dr. Michael Roberts（mentor@demo.com）のダッシュボードに表示される。
var DemoSessions = []model.SessionRequest{
	{
		ID:              "1",
		MentorID:        "sarah-chen",
		MentorName:      "Sarah Chen",
		MentorRole:      "Product Lead",
		MentorCompany:   "Stripe",
		MentorImage:     "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=400&h=400&fit=crop",
		MentorSpecialty: "Product Management",
		MenteeID:        "1001",
		MenteeName:      "Sarah Johnson",
		MenteeEmail:     "mentee@demo.com",
		Date:            "2025-12-22",
		Time:            "10:00 AM",
		Topic:           "Career Strategy Session",
		Status:          model.SessionAccepted,
		CreatedAt:       "2025-12-15T10:00:00Z",
	},
	{
		ID:              "2",
		MentorID:        "marcus-johnson",
		MentorName:      "Marcus Johnson",
		MentorRole:      "Senior Engineer",
		MentorCompany:   "Google",
		MentorImage:     "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop",
		MentorSpecialty: "Software Engineering",
		MenteeID:        "1001",
		MenteeName:      "Sarah Johnson",
		MenteeEmail:     "mentee@demo.com",
		Date:            "2025-12-15",
		Time:            "2:00 PM",
		Topic:           "System Design Review",
		Status:          model.SessionCompleted,
		CreatedAt:       "2025-12-10T10:00:00Z",
	},
	{
		ID:              "3",
		MentorID:        "emma-wilson",
		MentorName:      "Emma Wilson",
		MentorRole:      "Engineering Manager",
		MentorCompany:   "Meta",
		MentorImage:     "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=400&h=400&fit=crop",
		MentorSpecialty: "Leadership",
		MenteeID:        "1001",
		MenteeName:      "Sarah Johnson",
		MenteeEmail:     "mentee@demo.com",
		Date:            "2025-12-28",
		Time:            "3:00 PM",
		Topic:           "Leadership Development",
		Message:         "Looking forward to discussing my career growth path",
		Status:          model.SessionPending,
		CreatedAt:       "2025-12-18T14:00:00Z",
	},
	{
		ID:              "4",
		MentorID:        "2001",
		MentorName:      "Dr. Michael Roberts",
		MentorRole:      "VP of Engineering",
		MentorCompany:   "TechCorp Inc.",
		MentorImage:     "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop",
		MentorSpecialty: "Engineering Leadership",
		MenteeID:        "1001",
		MenteeName:      "Sarah Johnson",
		MenteeEmail:     "mentee@demo.com",
		Date:            "2025-12-25",
		Time:            "11:00 AM",
		Topic:           "Technical Career Growth",
		Message:         "Want to learn about transitioning to senior roles",
		Status:          model.SessionPending,
		CreatedAt:       "2025-12-17T09:00:00Z",
	},
	{
		ID:              "5",
		MentorID:        "2001",
		MentorName:      "Dr. Michael Roberts",
		MentorRole:      "VP of Engineering",
		MentorCompany:   "TechCorp Inc.",
		MentorImage:     "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop",
		MentorSpecialty: "Engineering Leadership",
		MenteeID:        "another-mentee",
		MenteeName:      "Jake Miller",
		MenteeEmail:     "jake@example.com",
		Date:            "2025-12-20",
		Time:            "4:00 PM",
		Topic:           "Interview Preparation",
		Status:          model.SessionAccepted,
		CreatedAt:       "2025-12-12T11:00:00Z",
	},
	{
		ID:              "6",
		MentorID:        "2001",
		MentorName:      "Dr. Michael Roberts",
		MentorRole:      "VP of Engineering",
		MentorCompany:   "TechCorp Inc.",
		MentorImage:     "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop",
		MentorSpecialty: "Engineering Leadership",
		MenteeID:        "past-mentee",
		MenteeName:      "Emily Davis",
		MenteeEmail:     "emily@example.com",
		Date:            "2025-12-10",
		Time:            "2:00 PM",
		Topic:           "System Architecture Review",
		Status:          model.SessionCompleted,
		CreatedAt:       "2025-12-05T10:00:00Z",
	},
}
