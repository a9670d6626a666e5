package static

import (
	"context"
	"errors"
	"testing"

	"github.com/hitoshi/mentorhub/internal/model"
	"github.com/hitoshi/mentorhub/internal/source"
)

// 各アダプタがsourceインターフェースを満たすことを検証
func TestStaticAdapters_ImplementInterfaces(t *testing.T) {
	var _ source.AuthSource = (*AuthSource)(nil)
	var _ source.MentorSource = (*MentorSource)(nil)
	var _ source.BlogSource = (*BlogSource)(nil)
	var _ source.StorySource = (*StorySource)(nil)
}

// 登録したユーザーで即座にログインできることを検証
func TestAuthSource_RegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	auth := NewAuthSource()

	created, err := auth.Register(ctx, source.RegisterRequest{
		Email:    "newuser@example.com",
		Password: "secret-pass",
		Name:     "New User",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if created.ApprovalStatus != model.ApprovalPending {
		t.Errorf("ApprovalStatus = %v, want pending", created.ApprovalStatus)
	}
	if created.Provider != model.ProviderEmail {
		t.Errorf("Provider = %v, want email", created.Provider)
	}

	got, err := auth.Login(ctx, "newuser@example.com", "secret-pass")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("Login() ID = %d, want %d", got.ID, created.ID)
	}
}

// パスワード不一致はErrInvalidCredentialsを返すことを検証
func TestAuthSource_LoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	auth := NewAuthSource()

	_, err := auth.Register(ctx, source.RegisterRequest{
		Email:    "user@example.com",
		Password: "correct",
		Name:     "User",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	_, err = auth.Login(ctx, "user@example.com", "wrong")
	if !errors.Is(err, source.ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

// 未登録メールのログインはErrInvalidCredentialsを返すことを検証
func TestAuthSource_LoginUnknownEmail(t *testing.T) {
	auth := NewAuthSource()

	_, err := auth.Login(context.Background(), "nobody@example.com", "anything")
	if !errors.Is(err, source.ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

// メールアドレス重複の登録はErrUserExistsを返すことを検証
func TestAuthSource_RegisterDuplicate(t *testing.T) {
	ctx := context.Background()
	auth := NewAuthSource()

	req := source.RegisterRequest{Email: "dup@example.com", Password: "pw", Name: "Dup"}
	if _, err := auth.Register(ctx, req); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}
	if _, err := auth.Register(ctx, req); !errors.Is(err, source.ErrUserExists) {
		t.Errorf("second Register() error = %v, want ErrUserExists", err)
	}
}

// デモアカウントのメールは登録できないことを検証
func TestAuthSource_RegisterDemoEmailRejected(t *testing.T) {
	auth := NewAuthSource()

	_, err := auth.Register(context.Background(), source.RegisterRequest{
		Email: "mentee@demo.com", Password: "pw", Name: "Imposter",
	})
	if !errors.Is(err, source.ErrUserExists) {
		t.Errorf("Register() error = %v, want ErrUserExists", err)
	}
}

// GetUserByEmailがデモテーブルと登録テーブルの両方を検索することを検証
func TestAuthSource_GetUserByEmail(t *testing.T) {
	ctx := context.Background()
	auth := NewAuthSource()

	demo, err := auth.GetUserByEmail(ctx, "mentee@demo.com")
	if err != nil || demo == nil {
		t.Fatalf("GetUserByEmail(demo) = %v, %v; want user", demo, err)
	}
	if demo.ID != 1001 {
		t.Errorf("demo user ID = %d, want 1001", demo.ID)
	}

	if _, err := auth.Register(ctx, source.RegisterRequest{Email: "reg@example.com", Password: "pw", Name: "Reg"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	reg, err := auth.GetUserByEmail(ctx, "reg@example.com")
	if err != nil || reg == nil {
		t.Fatalf("GetUserByEmail(registered) = %v, %v; want user", reg, err)
	}

	missing, err := auth.GetUserByEmail(ctx, "nobody@example.com")
	if err != nil || missing != nil {
		t.Errorf("GetUserByEmail(unknown) = %v, %v; want nil, nil", missing, err)
	}
}

// メンターカタログのスラッグ検索を検証
func TestMentorSource_GetBySlug(t *testing.T) {
	ctx := context.Background()
	mentors := NewMentorSource()

	list, err := mentors.ListMentors(ctx)
	if err != nil {
		t.Fatalf("ListMentors() error = %v", err)
	}
	if len(list) == 0 {
		t.Fatal("ListMentors() returned empty catalog")
	}

	got, err := mentors.GetMentorBySlug(ctx, list[0].Slug)
	if err != nil || got == nil {
		t.Fatalf("GetMentorBySlug(%q) = %v, %v", list[0].Slug, got, err)
	}

	missing, err := mentors.GetMentorBySlug(ctx, "no-such-mentor")
	if err != nil || missing != nil {
		t.Errorf("GetMentorBySlug(unknown) = %v, %v; want nil, nil", missing, err)
	}
}

// ストーリー一覧は承認済みのみを返し、投稿は審査待ちで受理されることを検証
func TestStorySource_SubmitIsPendingAndHidden(t *testing.T) {
	ctx := context.Background()
	stories := NewStorySource()

	before, err := stories.ListStories(ctx)
	if err != nil {
		t.Fatalf("ListStories() error = %v", err)
	}
	for _, st := range before {
		if st.Status != model.StoryApproved {
			t.Errorf("ListStories() contains non-approved story %q", st.Slug)
		}
	}

	created, err := stories.SubmitStory(ctx, model.StorySubmission{
		Name:       "Taylor Reed",
		Role:       "Product Manager at Canva",
		MentorName: "Dr. Michael Roberts",
		Quote:      "Changed my career.",
	})
	if err != nil {
		t.Fatalf("SubmitStory() error = %v", err)
	}
	if created.Status != model.StoryPending {
		t.Errorf("submitted story Status = %v, want pending", created.Status)
	}
	if created.Slug != "taylor-reed" {
		t.Errorf("submitted story Slug = %q, want %q", created.Slug, "taylor-reed")
	}

	after, err := stories.ListStories(ctx)
	if err != nil {
		t.Fatalf("ListStories() error = %v", err)
	}
	if len(after) != len(before) {
		t.Errorf("pending submission leaked into public list: %d != %d", len(after), len(before))
	}
}
