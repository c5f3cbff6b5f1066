package dto

type ExpertResponse struct {
	Id          string   `json:"id"`
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	AvatarURL   string   `json:"avatar"`
	HourlyRate  float64  `json:"hourly_rate"`
	Skills      []string `json:"skills"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"review_count"`
	Bio         string   `json:"bio"`
	Tags        []string `json:"tags"`
}

type ListExpertsRequest struct {
	Query string `query:"q" validate:"max=200"`
	Tag   string `query:"tag" validate:"max=50"`
}

type MatchExpertsRequest struct {
	Query string `json:"query" validate:"max=500"`
}

type MatchExpertsResponse struct {
	// Mode is "ai_matched" when the matcher ran, "all" for a blank query.
	Mode       string            `json:"mode"`
	Source     string            `json:"source"`
	MatchedIds []string          `json:"matched_ids"`
	Experts    []*ExpertResponse `json:"experts"`
}
