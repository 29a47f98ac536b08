package usecase

type EngageProspectInput struct {
	ProspectID string `json:"-"`
	Type       string `json:"type"`
	Note       string `json:"note"`
}

type ImportURLsInput struct {
	URLs        []string `json:"urls"`
	Segment     string   `json:"segment"`
	Tier        int      `json:"tier"`
	Tags        []string `json:"tags"`
	CheckInDays int      `json:"check_in_days"`
}

type ImportURLsOutput struct {
	Added       int      `json:"added"`
	Skipped     int      `json:"skipped"`
	SkippedURLs []string `json:"skippedUrls"`
}

type ImportRowsInput struct {
	Rows []map[string]string `json:"rows"`
}

type ImportRowsOutput struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
}

// UpdateProspectInput is the typed partial patch: nil means "leave alone".
// Identity, creation date and the engagement log are not patchable.
type UpdateProspectInput struct {
	Name               *string   `json:"name"`
	LinkedInURL        *string   `json:"linkedin_url"`
	Company            *string   `json:"company"`
	Title              *string   `json:"title"`
	Segment            *string   `json:"segment"`
	Tier               *int      `json:"tier"`
	ICPScore           *float64  `json:"icp_score"`
	Tags               *[]string `json:"tags"`
	Status             *string   `json:"status"`
	Connected          *bool     `json:"connected"`
	CheckInDays        *int      `json:"check_in_days"`
	WarmthScore        *int      `json:"warmth_score"`
	NextCheckIn        *string   `json:"next_check_in"`
	LastEngagementDate *string   `json:"last_engagement_date"`
	LastAction         *string   `json:"last_action"`
	LastActionDate     *string   `json:"last_action_date"`
	Notes              *string   `json:"notes"`
	Source             *string   `json:"source"`
	Batch              *string   `json:"batch"`
}

type StatsSummary struct {
	Total              int            `json:"total"`
	ByStatus           map[string]int `json:"byStatus"`
	BySegment          map[string]int `json:"bySegment"`
	ByTier             map[string]int `json:"byTier"`
	CommentsToday      int            `json:"commentsToday"`
	CommentsThisWeek   int            `json:"commentsThisWeek"`
	DMsToday           int            `json:"dmsToday"`
	DueToday           int            `json:"dueToday"`
	ReadyForSnapshot   int            `json:"readyForSnapshot"`
	WarmthDistribution map[string]int `json:"warmthDistribution"`
}
