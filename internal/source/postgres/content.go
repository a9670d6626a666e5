package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/hitoshi/mentorhub/internal/model"
	"github.com/hitoshi/mentorhub/internal/source"
)

// MentorSource はmentorsテーブルによるメンターカタログアダプタ。
type MentorSource struct {
	db *sql.DB
}

// NewMentorSource はMentorSourceを生成する。
func NewMentorSource(db *sql.DB) *MentorSource {
	return &MentorSource{db: db}
}

const mentorColumns = `id, name, slug, role, company, specialty, industries,
	image, cover_image, rating, sessions, bio, full_bio, linkedin,
	experience, availability, languages, expertise`

func scanMentor(row interface{ Scan(...any) error }) (*model.Mentor, error) {
	var m model.Mentor
	err := row.Scan(
		&m.ID, &m.Name, &m.Slug, &m.Role, &m.Company, &m.Specialty,
		pq.Array(&m.Industries), &m.Image, &m.CoverImage, &m.Rating,
		&m.Sessions, &m.Bio, &m.FullBio, &m.LinkedIn, &m.Experience,
		&m.Availability, pq.Array(&m.Languages), pq.Array(&m.Expertise),
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListMentors はメンター一覧を評価の高い順で返す。
func (s *MentorSource) ListMentors(ctx context.Context) ([]model.Mentor, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+mentorColumns+` FROM mentors ORDER BY rating DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list mentors: %w", err)
	}
	defer rows.Close()

	var mentors []model.Mentor
	for rows.Next() {
		m, err := scanMentor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mentor: %w", err)
		}
		mentors = append(mentors, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate mentors: %w", err)
	}

	for i := range mentors {
		testimonials, err := s.listTestimonials(ctx, mentors[i].ID)
		if err != nil {
			return nil, err
		}
		mentors[i].Testimonials = testimonials
	}
	return mentors, nil
}

// GetMentorBySlug は指定スラッグのメンターを取得する。見つからない場合はnilを返す。
func (s *MentorSource) GetMentorBySlug(ctx context.Context, slug string) (*model.Mentor, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+mentorColumns+` FROM mentors WHERE slug = $1`, slug)

	m, err := scanMentor(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find mentor by slug: %w", err)
	}

	testimonials, err := s.listTestimonials(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	m.Testimonials = testimonials
	return m, nil
}

func (s *MentorSource) listTestimonials(ctx context.Context, mentorID int64) ([]model.Testimonial, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, role, image, content, rating, date
		 FROM mentor_testimonials WHERE mentor_id = $1 ORDER BY id`, mentorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	defer rows.Close()

	var testimonials []model.Testimonial
	for rows.Next() {
		var t model.Testimonial
		if err := rows.Scan(&t.ID, &t.Name, &t.Role, &t.Image, &t.Content, &t.Rating, &t.Date); err != nil {
			return nil, fmt.Errorf("failed to scan testimonial: %w", err)
		}
		testimonials = append(testimonials, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate testimonials: %w", err)
	}
	return testimonials, nil
}

// BlogSource はblog_postsテーブルによるブログアダプタ。
type BlogSource struct {
	db *sql.DB
}

// NewBlogSource はBlogSourceを生成する。
func NewBlogSource(db *sql.DB) *BlogSource {
	return &BlogSource{db: db}
}

const postColumns = `id, slug, title, excerpt, content, author, author_role,
	author_image, date, read_time, category, image, tags`

func scanPost(row interface{ Scan(...any) error }) (*model.BlogPost, error) {
	var p model.BlogPost
	err := row.Scan(
		&p.ID, &p.Slug, &p.Title, &p.Excerpt, &p.Content, &p.Author,
		&p.AuthorRole, &p.AuthorImage, &p.Date, &p.ReadTime, &p.Category,
		&p.Image, pq.Array(&p.Tags),
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPosts は記事一覧を新しい順で返す。
func (s *BlogSource) ListPosts(ctx context.Context) ([]model.BlogPost, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+postColumns+` FROM blog_posts ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []model.BlogPost
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}
	return posts, nil
}

// GetPostBySlug は指定スラッグの記事を取得する。見つからない場合はnilを返す。
func (s *BlogSource) GetPostBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+postColumns+` FROM blog_posts WHERE slug = $1`, slug)

	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find post by slug: %w", err)
	}
	return p, nil
}

// StorySource はsuccess_storiesテーブルによるサクセスストーリーアダプタ。
type StorySource struct {
	db *sql.DB
}

// NewStorySource はStorySourceを生成する。
func NewStorySource(db *sql.DB) *StorySource {
	return &StorySource{db: db}
}

const storyColumns = `id, slug, name, role, previous_role, image, mentor_name,
	mentor_role, mentor_image, quote, highlight, duration, featured, status, created_at`

func scanStory(row interface{ Scan(...any) error }) (*model.SuccessStory, error) {
	var st model.SuccessStory
	err := row.Scan(
		&st.ID, &st.Slug, &st.Name, &st.Role, &st.PreviousRole, &st.Image,
		&st.MentorName, &st.MentorRole, &st.MentorImage, &st.Quote,
		&st.Highlight, &st.Duration, &st.Featured, &st.Status, &st.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// ListStories は承認済みストーリーのみを新しい順で返す。
func (s *StorySource) ListStories(ctx context.Context) ([]model.SuccessStory, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+storyColumns+` FROM success_stories
		 WHERE status = $1 ORDER BY featured DESC, id DESC`,
		model.StoryApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to list stories: %w", err)
	}
	defer rows.Close()

	var stories []model.SuccessStory
	for rows.Next() {
		st, err := scanStory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan story: %w", err)
		}
		stories = append(stories, *st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stories: %w", err)
	}
	return stories, nil
}

// GetStoryBySlug は指定スラッグのストーリーを取得する。見つからない場合はnilを返す。
func (s *StorySource) GetStoryBySlug(ctx context.Context, slug string) (*model.SuccessStory, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+storyColumns+` FROM success_stories WHERE slug = $1`, slug)

	st, err := scanStory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find story by slug: %w", err)
	}
	return st, nil
}

// SubmitStory は投稿を審査待ち状態で保存する。
func (s *StorySource) SubmitStory(ctx context.Context, sub model.StorySubmission) (*model.SuccessStory, error) {
	createdAt := time.Now().UTC().Format(time.RFC3339)

	row := s.db.QueryRowContext(ctx,
		`INSERT INTO success_stories
		   (slug, name, role, previous_role, mentor_name, quote, highlight, duration, featured, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, false, $9, $10)
		 RETURNING `+storyColumns,
		source.Slugify(sub.Name), sub.Name, sub.Role, sub.PreviousRole, sub.MentorName,
		sub.Quote, sub.Highlight, sub.Duration, model.StoryPending, createdAt,
	)

	st, err := scanStory(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert story: %w", err)
	}
	return st, nil
}
