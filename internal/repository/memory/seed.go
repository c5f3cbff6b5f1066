package memory

import (
	"time"

	"expert-session-be/internal/entity"
)

const DemoClientId = "c1"

// SeedExperts is the demo marketplace catalog.
func SeedExperts() []*entity.Expert {
	return []*entity.Expert{
		{
			Id:          "e1",
			Name:        "Dr. Sarah Chen",
			Title:       "Senior Data Scientist",
			AvatarURL:   "https://picsum.photos/100/100?random=1",
			HourlyRate:  150,
			Skills:      []string{"Python", "Machine Learning", "Data Visualization", "SQL"},
			Rating:      4.9,
			ReviewCount: 124,
			Bio:         "Former Google data scientist helping students and professionals master ML concepts. I specialize in practical applications and career mentorship.",
			Tags:        []string{"Tech", "Coding", "Career"},
		},
		{
			Id:          "e2",
			Name:        "Marcus Thorne",
			Title:       "Elite Fitness Coach",
			AvatarURL:   "https://picsum.photos/100/100?random=2",
			HourlyRate:  85,
			Skills:      []string{"HIIT", "Nutrition Planning", "Strength Training", "Recovery"},
			Rating:      4.8,
			ReviewCount: 89,
			Bio:         "Certified NASM trainer with 10 years of experience. I build custom plans that fit your busy lifestyle, focusing on sustainable results.",
			Tags:        []string{"Health", "Fitness", "Lifestyle"},
		},
		{
			Id:          "e3",
			Name:        "Elena Rodriguez",
			Title:       "Business Strategy Consultant",
			AvatarURL:   "https://picsum.photos/100/100?random=3",
			HourlyRate:  200,
			Skills:      []string{"Startup Strategy", "Fundraising", "Go-to-Market", "Pitch Deck"},
			Rating:      5.0,
			ReviewCount: 45,
			Bio:         "I help early-stage founders refine their pitch and strategy. Successfully helped clients raise over $10M in seed funding.",
			Tags:        []string{"Business", "Startup", "Finance"},
		},
		{
			Id:          "e4",
			Name:        "James Wilson",
			Title:       "Calculus & Physics Tutor",
			AvatarURL:   "https://picsum.photos/100/100?random=4",
			HourlyRate:  60,
			Skills:      []string{"Calculus", "Physics", "SAT Math", "Algebra"},
			Rating:      4.7,
			ReviewCount: 210,
			Bio:         "Patient and clear explanations for complex math and physics problems. Great for high school and college students.",
			Tags:        []string{"Education", "Math", "Science"},
		},
		{
			Id:          "e5",
			Name:        "Yuki Tanaka",
			Title:       "Digital Marketing Specialist",
			AvatarURL:   "https://picsum.photos/100/100?random=5",
			HourlyRate:  110,
			Skills:      []string{"SEO", "Google Ads", "Content Strategy", "Social Media"},
			Rating:      4.9,
			ReviewCount: 76,
			Bio:         "Data-driven marketer helping brands grow their online presence. Expert in SEO and paid acquisition.",
			Tags:        []string{"Marketing", "Business", "Growth"},
		},
	}
}

// SeedSessions returns one upcoming and one past session relative to now.
func SeedSessions(now time.Time) []*entity.Session {
	return []*entity.Session{
		{
			Id:              "s1",
			ExpertId:        "e1",
			ExpertName:      "Dr. Sarah Chen",
			ClientId:        DemoClientId,
			ClientName:      "You",
			Date:            now.Add(24 * time.Hour),
			DurationMinutes: 60,
			Status:          entity.SessionStatusScheduled,
			Topic:           "Machine Learning Basics",
			Subtotal:        150,
			ServiceFee:      5,
			Price:           155,
		},
		{
			Id:              "s2",
			ExpertId:        "e2",
			ExpertName:      "Marcus Thorne",
			ClientId:        DemoClientId,
			ClientName:      "You",
			Date:            now.Add(-24 * time.Hour),
			DurationMinutes: 45,
			Status:          entity.SessionStatusCompleted,
			Topic:           "Weekly Check-in & Form Review",
			Notes:           "Focus on keeping the back straight during deadlifts. Increase protein intake.",
			Subtotal:        63.75,
			ServiceFee:      5,
			Price:           68.75,
		},
	}
}

// SeedMessages opens the chat of the upcoming seeded session.
func SeedMessages(now time.Time) []*entity.SessionMessage {
	return []*entity.SessionMessage{
		{
			Id:         "m1",
			SessionId:  "s1",
			SenderId:   "e1",
			SenderRole: entity.UserRoleExpert,
			Type:       entity.MessageTypeText,
			Text:       "Hi! Ready to start?",
			SentAt:     now.Add(-2 * time.Minute),
		},
		{
			Id:         "m2",
			SessionId:  "s1",
			SenderId:   DemoClientId,
			SenderRole: entity.UserRoleClient,
			Type:       entity.MessageTypeText,
			Text:       "Yes, let's go.",
			SentAt:     now.Add(-time.Minute),
		},
	}
}

// SampleTranscript stands in for a live transcription buffer.
const SampleTranscript = `Expert: Hi there! Ready to get started with our session on React performance?
Client: Yes, I'm really struggling with unnecessary re-renders.
Expert: Okay, first let's look at your useEffect dependencies. I see you're passing a new object every render.
Client: Oh, I didn't notice that. Should I use useMemo?
Expert: Exactly. Wrap that config object in useMemo. Also, for the callback, use useCallback so the child component doesn't re-render.
Client: That makes sense. What about the heavy calculation in the list?
Expert: For that, definitely use useMemo. And make sure your list items have stable keys, not just indices.
Client: Got it. I'll implement those changes. Any other tips?
Expert: Yes, verify you aren't defining components inside other components. That kills performance.
Client: Thanks! This is super helpful.`
