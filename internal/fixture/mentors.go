package fixture

import "github.com/hitoshi/mentorhub/internal/model"

// Mentors はメンターカタログの固定データ。
var Mentors = []model.Mentor{
	{
		ID:         1,
		Name:       "Sarah Chen",
		Slug:       "sarah-chen",
		Role:       "Product Lead",
		Company:    "Stripe",
		Specialty:  "Product Management",
		Industries: []string{"Fintech", "SaaS"},
		Image:      "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=400&h=400&fit=crop",
		CoverImage: "https://images.unsplash.com/photo-1522071820081-009f0129c71c?w=1200&h=400&fit=crop",
		Rating:     4.9,
		Sessions:   127,
		Bio:        "10+ years in product, passionate about helping PMs level up their strategic thinking.",
		FullBio: "I've spent over a decade building products that millions of people use every day. " +
			"At Stripe, I lead a team focused on making payments accessible to businesses of all sizes. " +
			"My approach to mentorship is deeply practical: we work through real scenarios, whether that's " +
			"interview preparation, stakeholder relationships, or complex product decisions.",
		LinkedIn:     "https://linkedin.com/in/sarahchen",
		Experience:   12,
		Availability: "2-4 sessions/month",
		Languages:    []string{"English", "Mandarin"},
		Expertise:    []string{"Product Strategy", "Stakeholder Management", "Roadmapping", "User Research", "Go-to-Market"},
		Testimonials: []model.Testimonial{
			{
				ID:      1,
				Name:    "Amanda Chen",
				Role:    "Product Manager at Meta",
				Image:   "https://images.unsplash.com/photo-1580489944761-15a19d654956?w=100&h=100&fit=crop",
				Content: "Sarah completely transformed how I think about product strategy. Her frameworks for prioritization and stakeholder management helped me land my dream job at Meta.",
				Rating:  5,
				Date:    "2024-03-02",
			},
		},
	},
	{
		ID:         2,
		Name:       "Marcus Johnson",
		Slug:       "marcus-johnson",
		Role:       "Senior Engineer",
		Company:    "Google",
		Specialty:  "Software Engineering",
		Industries: []string{"Big Tech", "Cloud"},
		Image:      "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop",
		CoverImage: "https://images.unsplash.com/photo-1573164713988-8665fc963095?w=1200&h=400&fit=crop",
		Rating:     4.8,
		Sessions:   98,
		Bio:        "Systems engineer helping developers master system design and grow into senior roles.",
		FullBio: "I joined Google as a mid-level engineer and worked my way up through some of the hardest " +
			"distributed-systems problems in search infrastructure. I mentor engineers who want to deepen " +
			"their design skills, pass senior-level interviews, and build the judgment that separates " +
			"senior engineers from everyone else.",
		LinkedIn:     "https://linkedin.com/in/marcusjohnson",
		Experience:   10,
		Availability: "3-5 sessions/month",
		Languages:    []string{"English"},
		Expertise:    []string{"System Design", "Distributed Systems", "Interview Preparation", "Code Review"},
	},
	{
		ID:         3,
		Name:       "Emma Wilson",
		Slug:       "emma-wilson",
		Role:       "Engineering Manager",
		Company:    "Meta",
		Specialty:  "Leadership",
		Industries: []string{"Big Tech", "Social"},
		Image:      "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=400&h=400&fit=crop",
		CoverImage: "https://images.unsplash.com/photo-1552664730-d307ca884978?w=1200&h=400&fit=crop",
		Rating:     4.9,
		Sessions:   143,
		Bio:        "Engineering leader coaching ICs through the transition into management.",
		FullBio: "After eight years as an IC I moved into management and discovered how little of the job " +
			"the engineering ladder prepares you for. I now lead three teams at Meta and mentor engineers " +
			"navigating the same transition: having hard conversations, running healthy teams, and keeping " +
			"your technical edge while leading.",
		LinkedIn:     "https://linkedin.com/in/emmawilson",
		Experience:   14,
		Availability: "2-3 sessions/month",
		Languages:    []string{"English", "French"},
		Expertise:    []string{"Engineering Management", "Team Building", "Career Coaching", "Communication"},
	},
}

// GetMentorBySlug はスラッグでメンターを検索する。見つからない場合はnilを返す。
func GetMentorBySlug(slug string) *model.Mentor {
	for i := range Mentors {
		if Mentors[i].Slug == slug {
			return &Mentors[i]
		}
	}
	return nil
}
