package fixture

import "github.com/hitoshi/mentorhub/internal/model"

// BlogPosts はブログ記事の固定データ。ContentはサニタイズポリシーでそのままUIへ出せるHTML。
var BlogPosts = []model.BlogPost{
	{
		ID:      1,
		Slug:    "how-to-get-the-most-out-of-mentorship-sessions",
		Title:   "How to Get the Most Out of Your Mentorship Sessions",
		Excerpt: "Preparation is key to maximizing the value of your mentor meetings. Here are 7 strategies that our most successful mentees use.",
		Content: "<p>Mentorship is one of the most valuable resources for career growth, but the value you " +
			"extract depends largely on how you approach each session.</p>" +
			"<p><strong>Come with specific questions.</strong> Generic questions get generic answers. " +
			"Instead of asking how to advance your career, ask which skills to develop first for a " +
			"specific transition.</p>" +
			"<p><strong>Share context ahead of time.</strong> Send your mentor a brief agenda before the " +
			"meeting: what you accomplished, current challenges, and the topics you want to discuss.</p>" +
			"<p><strong>Take notes and follow up.</strong> After the session, send a quick summary with " +
			"key takeaways and the action items you committed to.</p>",
		Author:      "Rachel Torres",
		AuthorRole:  "Head of Community",
		AuthorImage: "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=100&h=100&fit=crop",
		Date:        "2025-01-20",
		ReadTime:    "6 min read",
		Category:    "Mentorship",
		Image:       "https://images.unsplash.com/photo-1521737711867-e3b97375f902?w=1200&h=600&fit=crop",
		Tags:        []string{"mentorship", "career-growth", "productivity"},
	},
	{
		ID:      2,
		Slug:    "transitioning-from-ic-to-management",
		Title:   "Transitioning from IC to Management: What Nobody Tells You",
		Excerpt: "The skills that made you a great engineer will not make you a great manager. Here is what our mentors wish they had known.",
		Content: "<p>The move from individual contributor to manager is the most disorienting transition in " +
			"a technical career. Your calendar changes, your feedback loops stretch from hours to months, " +
			"and your output becomes other people's output.</p>" +
			"<p>The mentors on our platform who made this transition successfully share one habit: they " +
			"treated management as a new discipline to learn, not a promotion to enjoy.</p>" +
			"<ul><li>Find a manager-mentor before you need one.</li>" +
			"<li>Keep a decision journal for your first year.</li>" +
			"<li>Protect one block of deep-work time per week.</li></ul>",
		Author:      "Emma Wilson",
		AuthorRole:  "Engineering Manager at Meta",
		AuthorImage: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=100&h=100&fit=crop",
		Date:        "2025-02-03",
		ReadTime:    "8 min read",
		Category:    "Leadership",
		Image:       "https://images.unsplash.com/photo-1542744173-8e7e53415bb0?w=1200&h=600&fit=crop",
		Tags:        []string{"leadership", "management", "career-transition"},
	},
	{
		ID:      3,
		Slug:    "preparing-for-system-design-interviews",
		Title:   "Preparing for System Design Interviews: A Mentor's Playbook",
		Excerpt: "System design interviews reward structured thinking over memorized architectures. A senior Google engineer explains how to practice.",
		Content: "<p>Most candidates prepare for system design interviews by memorizing reference " +
			"architectures. Interviewers can tell, and it rarely helps.</p>" +
			"<p>What works is practicing the conversation: clarify requirements out loud, state your " +
			"assumptions, and narrate trade-offs as you make them. A mentor who has sat on the other side " +
			"of the table can compress months of blind practice into a handful of sessions.</p>",
		Author:      "Marcus Johnson",
		AuthorRole:  "Senior Engineer at Google",
		AuthorImage: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100&h=100&fit=crop",
		Date:        "2025-02-17",
		ReadTime:    "7 min read",
		Category:    "Interviews",
		Image:       "https://images.unsplash.com/photo-1504384308090-c894fdcc538d?w=1200&h=600&fit=crop",
		Tags:        []string{"interviews", "system-design", "engineering"},
	},
}

// BlogCategories はブログのカテゴリ一覧。
var BlogCategories = []string{"All", "Mentorship", "Leadership", "Interviews", "Career Growth"}

// GetBlogPostBySlug はスラッグでブログ記事を検索する。見つからない場合はnilを返す。
func GetBlogPostBySlug(slug string) *model.BlogPost {
	for i := range BlogPosts {
		if BlogPosts[i].Slug == slug {
			return &BlogPosts[i]
		}
	}
	return nil
}
