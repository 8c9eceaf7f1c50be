package models

// CommunityStats is the aggregate snapshot shown in the feed sidebar.
type CommunityStats struct {
	Questions   int     `json:"questions"`
	Answers     int     `json:"answers"`
	Members     int     `json:"members"`
	AnsweredPct float64 `json:"answered_pct"`
}

// TemplateStats is the aggregate snapshot for the template library.
type TemplateStats struct {
	Total          int     `json:"total"`
	TotalDownloads int     `json:"total_downloads"`
	TopRating      float64 `json:"top_rating"`
}
