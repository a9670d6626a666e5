// Package static はフィクスチャ解決のアダプタ実装を提供する。
// 外部交換を一切行わず、すべての呼び出しが即時に解決する。
package static

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/hitoshi/mentorhub/internal/fixture"
	"github.com/hitoshi/mentorhub/internal/model"
	"github.com/hitoshi/mentorhub/internal/source"
)

// registeredUser は実行時に登録されたユーザーと認証情報の組。
type registeredUser struct {
	user         model.User
	passwordHash []byte
}

// AuthSource はフィクスチャ＋実行時登録テーブルによる認証アダプタ。
// デモアカウントの照合はサービス層が先に行うため、ここでは
// 実行時に登録されたユーザーのみを扱う。
type AuthSource struct {
	mu     sync.RWMutex
	users  map[string]*registeredUser // キーは小文字化したメールアドレス
	nextID int64
}

// NewAuthSource はAuthSourceを生成する。
func NewAuthSource() *AuthSource {
	return &AuthSource{
		users:  make(map[string]*registeredUser),
		nextID: 5001,
	}
}

// Login は実行時登録テーブルの認証情報を照合する。
func (s *AuthSource) Login(ctx context.Context, email, password string) (*model.User, error) {
	s.mu.RLock()
	reg, ok := s.users[strings.ToLower(email)]
	s.mu.RUnlock()

	if !ok {
		return nil, source.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(reg.passwordHash, []byte(password)); err != nil {
		return nil, source.ErrInvalidCredentials
	}

	u := reg.user
	return &u, nil
}

// Register は新規ユーザーを登録テーブルへ追加する。
// パスワードはbcryptでハッシュ化して保持する。
func (s *AuthSource) Register(ctx context.Context, req source.RegisterRequest) (*model.User, error) {
	key := strings.ToLower(req.Email)

	if fixture.GetDemoAccount(req.Email) != nil {
		return nil, source.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[key]; ok {
		return nil, source.ErrUserExists
	}

	u := model.User{
		ID:              s.nextID,
		Email:           req.Email,
		Name:            req.Name,
		Role:            model.RoleMentee,
		ApprovalStatus:  model.ApprovalPending,
		Provider:        model.ProviderEmail,
		ProfileComplete: false,
	}
	s.nextID++
	s.users[key] = &registeredUser{user: u, passwordHash: hash}

	return &u, nil
}

// GetUserByEmail はデモテーブルと実行時登録テーブルの両方から検索する。
func (s *AuthSource) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	if acct := fixture.GetDemoAccount(email); acct != nil {
		u := acct.User
		return &u, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if reg, ok := s.users[strings.ToLower(email)]; ok {
		u := reg.user
		return &u, nil
	}
	return nil, nil
}

// MentorSource はフィクスチャのメンターカタログを返すアダプタ。
type MentorSource struct{}

// NewMentorSource はMentorSourceを生成する。
func NewMentorSource() *MentorSource {
	return &MentorSource{}
}

func (s *MentorSource) ListMentors(ctx context.Context) ([]model.Mentor, error) {
	mentors := make([]model.Mentor, len(fixture.Mentors))
	copy(mentors, fixture.Mentors)
	return mentors, nil
}

func (s *MentorSource) GetMentorBySlug(ctx context.Context, slug string) (*model.Mentor, error) {
	return fixture.GetMentorBySlug(slug), nil
}

// BlogSource はフィクスチャのブログ記事を返すアダプタ。
type BlogSource struct{}

// NewBlogSource はBlogSourceを生成する。
func NewBlogSource() *BlogSource {
	return &BlogSource{}
}

func (s *BlogSource) ListPosts(ctx context.Context) ([]model.BlogPost, error) {
	posts := make([]model.BlogPost, len(fixture.BlogPosts))
	copy(posts, fixture.BlogPosts)
	return posts, nil
}

func (s *BlogSource) GetPostBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	return fixture.GetBlogPostBySlug(slug), nil
}

// StorySource はフィクスチャ＋実行時投稿によるサクセスストーリーアダプタ。
type StorySource struct {
	mu        sync.RWMutex
	submitted []model.SuccessStory
	nextID    int64
}

// NewStorySource はStorySourceを生成する。
func NewStorySource() *StorySource {
	return &StorySource{nextID: int64(len(fixture.SuccessStories)) + 1}
}

// ListStories は承認済みストーリーのみを返す。実行時投稿は審査待ちのため含まれない。
func (s *StorySource) ListStories(ctx context.Context) ([]model.SuccessStory, error) {
	stories := fixture.GetApprovedStories()

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.submitted {
		if st.Status == model.StoryApproved {
			stories = append(stories, st)
		}
	}
	return stories, nil
}

func (s *StorySource) GetStoryBySlug(ctx context.Context, slug string) (*model.SuccessStory, error) {
	if st := fixture.GetStoryBySlug(slug); st != nil {
		return st, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.submitted {
		if s.submitted[i].Slug == slug {
			st := s.submitted[i]
			return &st, nil
		}
	}
	return nil, nil
}

// SubmitStory は投稿を審査待ち状態で受け付ける。
func (s *StorySource) SubmitStory(ctx context.Context, sub model.StorySubmission) (*model.SuccessStory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	story := model.SuccessStory{
		ID:           s.nextID,
		Slug:         source.Slugify(sub.Name),
		Name:         sub.Name,
		Role:         sub.Role,
		PreviousRole: sub.PreviousRole,
		MentorName:   sub.MentorName,
		Quote:        sub.Quote,
		Highlight:    sub.Highlight,
		Duration:     sub.Duration,
		Status:       model.StoryPending,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	s.nextID++
	s.submitted = append(s.submitted, story)

	result := story
	return &result, nil
}
