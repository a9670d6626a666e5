package store

import (
	"io"
	"log/slog"
	"testing"

	"github.com/hitoshi/mentorhub/internal/bus"
	"github.com/hitoshi/mentorhub/internal/fixture"
	"github.com/hitoshi/mentorhub/internal/model"
)

func newTestBus() *bus.StatusBus {
	return bus.NewStatusBus(slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

func TestUpdateUserStatus_PatchesRecordAndEmits(t *testing.T) {
	b := newTestBus()
	s := NewUserStore(fixture.DemoUsers(), b)

	var emittedID int64
	var emitted model.StatusUpdate
	b.Subscribe(func(userID int64, update model.StatusUpdate) {
		emittedID = userID
		emitted = update
	})

	s.UpdateUserStatus(1002, model.ApprovalConsultationScheduled, "2025-03-10T09:00:00Z")

	u := s.GetUserByID(1002)
	if u == nil {
		t.Fatal("user 1002 should exist")
	}
	if u.ApprovalStatus != model.ApprovalConsultationScheduled {
		t.Errorf("approvalStatus = %q, want consultation_scheduled", u.ApprovalStatus)
	}
	if u.ConsultationDate != "2025-03-10T09:00:00Z" {
		t.Errorf("consultationDate = %q", u.ConsultationDate)
	}

	if emittedID != 1002 {
		t.Errorf("emitted userID = %d, want 1002", emittedID)
	}
	if emitted.ApprovalStatus == nil || *emitted.ApprovalStatus != model.ApprovalConsultationScheduled {
		t.Errorf("emitted approvalStatus = %v", emitted.ApprovalStatus)
	}
	if emitted.ConsultationDate == nil || *emitted.ConsultationDate != "2025-03-10T09:00:00Z" {
		t.Errorf("emitted consultationDate = %v", emitted.ConsultationDate)
	}
}

func TestUpdateUserStatus_WithoutDateKeepsExisting(t *testing.T) {
	b := newTestBus()
	s := NewUserStore(fixture.DemoUsers(), b)

	before := s.GetUserByID(1003)
	s.UpdateUserStatus(1003, model.ApprovalApproved, "")

	after := s.GetUserByID(1003)
	if after.ApprovalStatus != model.ApprovalApproved {
		t.Errorf("approvalStatus = %q, want approved", after.ApprovalStatus)
	}
	if after.ConsultationDate != before.ConsultationDate {
		t.Errorf("consultationDate changed: %q -> %q", before.ConsultationDate, after.ConsultationDate)
	}
}

func TestUpdateUserStatus_UnknownUserDoesNotEmit(t *testing.T) {
	b := newTestBus()
	s := NewUserStore(fixture.DemoUsers(), b)

	emitted := false
	b.Subscribe(func(int64, model.StatusUpdate) {
		emitted = true
	})

	s.UpdateUserStatus(42, model.ApprovalApproved, "")

	if emitted {
		t.Error("no event should be emitted for an unknown user")
	}
}

func TestGetMentees_And_GetMentors(t *testing.T) {
	s := NewUserStore(fixture.DemoUsers(), newTestBus())

	for _, u := range s.GetMentees() {
		if u.Role != model.RoleMentee {
			t.Errorf("GetMentees returned role %q", u.Role)
		}
	}
	for _, u := range s.GetMentors() {
		if u.Role != model.RoleMentor {
			t.Errorf("GetMentors returned role %q", u.Role)
		}
	}
	if len(s.GetMentees()) != 3 || len(s.GetMentors()) != 3 {
		t.Errorf("mentees = %d, mentors = %d, want 3 and 3",
			len(s.GetMentees()), len(s.GetMentors()))
	}
}

func TestGetPendingUsers_IncludesScheduled(t *testing.T) {
	s := NewUserStore(fixture.DemoUsers(), newTestBus())

	pending := s.GetPendingUsers()
	if len(pending) != 4 {
		t.Fatalf("len = %d, want 4 (2 pending + 2 consultation_scheduled)", len(pending))
	}
	for _, u := range pending {
		if u.ApprovalStatus != model.ApprovalPending && u.ApprovalStatus != model.ApprovalConsultationScheduled {
			t.Errorf("unexpected status %q in pending list", u.ApprovalStatus)
		}
	}
}

func TestReconcile_LiveIdentityWinsForOwnRecord(t *testing.T) {
	s := NewUserStore(fixture.DemoUsers(), newTestBus())

	// ライブ側が先に更新されたアイデンティティ
	live := s.GetUserByID(1002)
	live.ApprovalStatus = model.ApprovalApproved

	s.Reconcile(live)

	if got := s.GetUserByID(1002).ApprovalStatus; got != model.ApprovalApproved {
		t.Errorf("roster status = %q, want approved", got)
	}
}

func TestReconcile_NoDivergenceIsNoOp(t *testing.T) {
	s := NewUserStore(fixture.DemoUsers(), newTestBus())

	live := s.GetUserByID(1001)
	live.Bio = "changed only locally"

	s.Reconcile(live)

	// ステータスが一致している場合は名簿へ書き戻さない
	if got := s.GetUserByID(1001).Bio; got == "changed only locally" {
		t.Error("roster should not be rewritten when statuses already match")
	}
}

func TestAddUser_SkipsDuplicateID(t *testing.T) {
	s := NewUserStore(fixture.DemoUsers(), newTestBus())

	total := len(s.All())
	s.AddUser(model.User{ID: 1001, Email: "other@example.com", Role: model.RoleMentee, ApprovalStatus: model.ApprovalPending})
	if len(s.All()) != total {
		t.Error("duplicate ID should not be added")
	}

	s.AddUser(model.User{ID: 7777, Email: "new@example.com", Role: model.RoleMentee, ApprovalStatus: model.ApprovalPending})
	if len(s.All()) != total+1 {
		t.Error("new user should be added")
	}
}

func TestGetUserByID_ReturnsCopy(t *testing.T) {
	s := NewUserStore(fixture.DemoUsers(), newTestBus())

	u := s.GetUserByID(1001)
	u.Name = "mutated"

	if s.GetUserByID(1001).Name == "mutated" {
		t.Error("mutating the returned user must not affect the store")
	}
}
