package store

import (
	"testing"

	"github.com/hitoshi/mentorhub/internal/fixture"
	"github.com/hitoshi/mentorhub/internal/model"
)

func newBookingData() model.SessionRequest {
	return model.SessionRequest{
		MentorID:        "sarah-chen",
		MentorName:      "Sarah Chen",
		MentorRole:      "Product Lead",
		MentorCompany:   "Stripe",
		MentorImage:     "https://example.com/sarah.jpg",
		MentorSpecialty: "Product Management",
		MenteeID:        "1001",
		MenteeName:      "Sarah Johnson",
		MenteeEmail:     "mentee@demo.com",
		Date:            "2026-01-15",
		Time:            "10:00 AM",
		Topic:           "Roadmap review",
	}
}

func TestAddSession_ForcesPendingAndAssignsID(t *testing.T) {
	s := NewSessionStore(nil)

	data := newBookingData()
	data.Status = model.SessionCompleted // 呼び出し側の指定は無視される

	created := s.AddSession(data)

	if created.Status != model.SessionPending {
		t.Errorf("status = %q, want pending", created.Status)
	}
	if created.ID == "" {
		t.Error("expected non-empty ID")
	}
	if created.CreatedAt == "" {
		t.Error("expected non-empty CreatedAt")
	}
}

func TestAddSession_PrependsNewestFirst(t *testing.T) {
	s := NewSessionStore(fixture.DemoSessions)

	created := s.AddSession(newBookingData())

	got := s.GetMenteeSessions("1001")
	if len(got) == 0 {
		t.Fatal("expected sessions for mentee 1001")
	}
	if got[0].ID != created.ID {
		t.Errorf("first session ID = %q, want newly created %q", got[0].ID, created.ID)
	}
}

func TestAddSession_IDsUniqueUnderRapidCreation(t *testing.T) {
	s := NewSessionStore(nil)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		created := s.AddSession(newBookingData())
		if seen[created.ID] {
			t.Fatalf("duplicate session ID %q at iteration %d", created.ID, i)
		}
		seen[created.ID] = true
	}
}

func TestUpdateSessionStatus_ChangesOnlyTargetStatus(t *testing.T) {
	s := NewSessionStore(fixture.DemoSessions)

	before := s.All()

	if !s.UpdateSessionStatus("4", model.SessionAccepted) {
		t.Fatal("expected update of session 4 to succeed")
	}

	after := s.All()
	if len(after) != len(before) {
		t.Fatalf("collection length changed: %d -> %d", len(before), len(after))
	}
	for i := range after {
		if after[i].ID == "4" {
			if after[i].Status != model.SessionAccepted {
				t.Errorf("session 4 status = %q, want accepted", after[i].Status)
			}
			// ステータス以外のフィールドは不変
			expected := before[i]
			expected.Status = model.SessionAccepted
			if after[i] != expected {
				t.Errorf("session 4 fields changed beyond status: %+v", after[i])
			}
			continue
		}
		if after[i] != before[i] {
			t.Errorf("unrelated session %q changed: %+v", after[i].ID, after[i])
		}
	}
}

func TestUpdateSessionStatus_UnknownIDIsNoOp(t *testing.T) {
	s := NewSessionStore(fixture.DemoSessions)

	if s.UpdateSessionStatus("no-such-session", model.SessionAccepted) {
		t.Error("expected no-op for unknown session ID")
	}
	if len(s.All()) != len(fixture.DemoSessions) {
		t.Error("collection should be unchanged")
	}
}

func TestUpdateSessionStatus_AllowsAnyTransition(t *testing.T) {
	// 遷移の妥当性チェックは行わない: completed→pendingも受理される
	s := NewSessionStore(fixture.DemoSessions)

	if !s.UpdateSessionStatus("2", model.SessionPending) {
		t.Fatal("expected completed->pending to be accepted")
	}
}

func TestGetMentorSessions_MatchesByDisplayName(t *testing.T) {
	s := NewSessionStore(fixture.DemoSessions)

	got := s.GetMentorSessions("Dr. Michael Roberts")
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for _, sr := range got {
		if sr.MentorName != "Dr. Michael Roberts" {
			t.Errorf("unexpected mentor %q", sr.MentorName)
		}
	}
}

func TestGetPendingRequestsForMentor_FiltersStatus(t *testing.T) {
	s := NewSessionStore(fixture.DemoSessions)

	got := s.GetPendingRequestsForMentor("Dr. Michael Roberts")
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].ID != "4" {
		t.Errorf("pending request ID = %q, want 4", got[0].ID)
	}
}

func TestGetMenteeSessions_UnknownMenteeReturnsEmpty(t *testing.T) {
	s := NewSessionStore(fixture.DemoSessions)

	if got := s.GetMenteeSessions("nobody"); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}
