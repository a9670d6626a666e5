package fixture

import "github.com/hitoshi/mentorhub/internal/model"

// SuccessStories はサクセスストーリーの固定データ。
// staticソースの一覧APIは承認済み（approved）のもののみを返す。
var SuccessStories = []model.SuccessStory{
	{
		ID:           1,
		Slug:         "amanda-chen-meta",
		Name:         "Amanda Chen",
		Role:         "Product Manager at Meta",
		PreviousRole: "Junior Business Analyst",
		Image:        "https://images.unsplash.com/photo-1580489944761-15a19d654956?w=400&h=400&fit=crop",
		MentorName:   "Sarah Chen",
		MentorRole:   "Product Lead at Stripe",
		MentorImage:  "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=400&h=400&fit=crop",
		Quote: "Before MentorHub, I felt stuck in my career with no clear path forward. Sarah helped me " +
			"realize I had transferable skills for product management. Within 8 months of starting our " +
			"mentorship, I landed my dream job at Meta.",
		Highlight: "Salary increased by 85%",
		Duration:  "8 months",
		Featured:  true,
		Status:    model.StoryApproved,
		CreatedAt: "2024-01-15",
	},
	{
		ID:           2,
		Slug:         "james-wilson-amazon",
		Name:         "James Wilson",
		Role:         "Senior Software Engineer at Amazon",
		PreviousRole: "Bootcamp Graduate",
		Image:        "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop",
		MentorName:   "Marcus Johnson",
		Quote: "Marcus taught me how to think like a senior engineer. His system design sessions " +
			"completely changed how I approach problems. I went from struggling with interviews to " +
			"getting offers from 3 FAANG companies.",
		Highlight: "3 FAANG offers",
		Duration:  "6 months",
		Status:    model.StoryApproved,
		CreatedAt: "2024-02-10",
	},
	{
		ID:           3,
		Slug:         "priya-patel-manager",
		Name:         "Priya Patel",
		Role:         "Engineering Manager at Shopify",
		PreviousRole: "Senior Developer",
		Image:        "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?w=400&h=400&fit=crop",
		MentorName:   "Emma Wilson",
		Quote: "Emma coached me through my first year of management. Every hard conversation I dreaded, " +
			"she had already had a dozen times. I kept my best engineers and my sanity.",
		Highlight: "Promoted to EM in 10 months",
		Duration:  "12 months",
		Status:    model.StoryApproved,
		CreatedAt: "2024-04-22",
	},
	{
		ID:           4,
		Slug:         "pending-submission-example",
		Name:         "Taylor Brooks",
		Role:         "Data Scientist at Airbnb",
		PreviousRole: "Research Assistant",
		Image:        "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=400&h=400&fit=crop",
		MentorName:   "David Kim",
		Quote:        "Still being reviewed by the editorial team.",
		Highlight:    "First industry role",
		Duration:     "5 months",
		Status:       model.StoryPending,
		CreatedAt:    "2025-01-05",
	},
}

// GetApprovedStories は承認済みストーリーのみを返す。
func GetApprovedStories() []model.SuccessStory {
	approved := make([]model.SuccessStory, 0, len(SuccessStories))
	for _, story := range SuccessStories {
		if story.Status == model.StoryApproved {
			approved = append(approved, story)
		}
	}
	return approved
}

// GetFeaturedStory は承認済みの特集ストーリーを返す。存在しない場合はnilを返す。
func GetFeaturedStory() *model.SuccessStory {
	for i := range SuccessStories {
		if SuccessStories[i].Featured && SuccessStories[i].Status == model.StoryApproved {
			return &SuccessStories[i]
		}
	}
	return nil
}

// GetStoryBySlug はスラッグでストーリーを検索する。見つからない場合はnilを返す。
func GetStoryBySlug(slug string) *model.SuccessStory {
	for i := range SuccessStories {
		if SuccessStories[i].Slug == slug {
			return &SuccessStories[i]
		}
	}
	return nil
}
