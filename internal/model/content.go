// Package model はドメインモデルを定義する。
package model

// Testimonial はメンタープロフィールに表示される推薦コメントを表す。
type Testimonial struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Image   string `json:"image"`
	Content string `json:"content"`
	Rating  float64 `json:"rating"`
	Date    string `json:"date"`
}

// Mentor はメンターカタログの公開プロフィールを表す。
type Mentor struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	Slug         string        `json:"slug"`
	Role         string        `json:"role"`
	Company      string        `json:"company"`
	Specialty    string        `json:"specialty"`
	Industries   []string      `json:"industries"`
	Image        string        `json:"image"`
	CoverImage   string        `json:"coverImage"`
	Rating       float64       `json:"rating"`
	Sessions     int           `json:"sessions"`
	Bio          string        `json:"bio"`
	FullBio      string        `json:"fullBio"`
	LinkedIn     string        `json:"linkedin"`
	Experience   int           `json:"experience"`
	Availability string        `json:"availability"`
	Languages    []string      `json:"languages"`
	Expertise    []string      `json:"expertise"`
	Testimonials []Testimonial `json:"testimonials"`
}

// BlogPost はブログ記事を表す。ContentはサニタイズされたHTML。
type BlogPost struct {
	ID          int64    `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"`
	Author      string   `json:"author"`
	AuthorRole  string   `json:"authorRole"`
	AuthorImage string   `json:"authorImage"`
	Date        string   `json:"date"`
	ReadTime    string   `json:"readTime"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
}

// StoryStatus はサクセスストーリー投稿の公開ステータスを表す。
type StoryStatus string

const (
	// StoryPending は投稿直後の審査待ち状態。
	StoryPending StoryStatus = "pending"
	// StoryApproved は公開承認済み状態。
	StoryApproved StoryStatus = "approved"
	// StoryRejected は非公開とした状態。
	StoryRejected StoryStatus = "rejected"
)

// SuccessStory はメンティーの成功事例を表す。
type SuccessStory struct {
	ID           int64       `json:"id"`
	Slug         string      `json:"slug"`
	Name         string      `json:"name"`
	Role         string      `json:"role"`
	PreviousRole string      `json:"previousRole"`
	Image        string      `json:"image"`
	MentorName   string      `json:"mentorName"`
	MentorRole   string      `json:"mentorRole,omitempty"`
	MentorImage  string      `json:"mentorImage,omitempty"`
	Quote        string      `json:"quote"`
	Highlight    string      `json:"highlight"`
	Duration     string      `json:"duration"`
	Featured     bool        `json:"featured,omitempty"`
	Status       StoryStatus `json:"status"`
	CreatedAt    string      `json:"createdAt"`
}

// StorySubmission はサクセスストーリーの投稿フォーム内容を表す。
type StorySubmission struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	PreviousRole string `json:"previousRole"`
	MentorName   string `json:"mentorName"`
	Quote        string `json:"quote"`
	Highlight    string `json:"highlight"`
	Duration     string `json:"duration"`
	LinkedInURL  string `json:"linkedinUrl,omitempty"`
}
