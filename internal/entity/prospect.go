package entity

import (
	"time"

	"github.com/google/uuid"
)

// Status values enforced by the lifecycle engine. The set is closed:
// the update boundary rejects anything outside it.
const (
	StatusNew          = "new"
	StatusWarming      = "warming"
	StatusOutreachSent = "outreach_sent"
	StatusWarm         = "warm"
)

// Engagement types with a warmth-score effect. Other types are accepted
// and recorded with no score change.
const (
	EngagementComment = "comment"
	EngagementDM      = "dm"
)

const DateLayout = "2006-01-02"

func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusWarming, StatusOutreachSent, StatusWarm:
		return true
	}
	return false
}

// Engagement is owned by exactly one Prospect and immutable once appended.
type Engagement struct {
	Type string `json:"type"`
	Date string `json:"date"`
	Note string `json:"note"`
}

// Prospect is the sole persisted entity. All dates are YYYY-MM-DD strings;
// lexicographic comparison on them is part of the persisted contract.
type Prospect struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	LinkedInURL      string `json:"linkedin_url"`
	LinkedInUsername string `json:"linkedin_username"`
	Company          string `json:"company"`
	Title            string `json:"title"`

	Segment  string   `json:"segment"`
	Tier     int      `json:"tier"`
	ICPScore float64  `json:"icp_score"`
	Tags     []string `json:"tags"`

	Status             string       `json:"status"`
	Connected          bool         `json:"connected"`
	CheckInDays        int          `json:"check_in_days"`
	WarmthScore        int          `json:"warmth_score"`
	Engagements        []Engagement `json:"engagements"`
	NextCheckIn        string       `json:"next_check_in"`
	LastEngagementDate string       `json:"last_engagement_date,omitempty"`
	LastAction         string       `json:"last_action,omitempty"`
	LastActionDate     string       `json:"last_action_date,omitempty"`

	Notes     string `json:"notes"`
	Source    string `json:"source"`
	Batch     string `json:"batch"`
	CreatedAt string `json:"created_at"`
}

// Factory: a freshly imported prospect starts warming with zero warmth and a
// check-in due today.
func NewProspect(today string) *Prospect {
	return &Prospect{
		ID:          uuid.New().String(),
		Segment:     "cyber",
		Tier:        1,
		Tags:        []string{},
		Status:      StatusWarming,
		CheckInDays: 3,
		Engagements: []Engagement{},
		NextCheckIn: today,
		CreatedAt:   today,
	}
}

// Document is the persisted state layout: the whole collection under one key.
type Document struct {
	Prospects []*Prospect `json:"prospects"`
}

func (d *Document) FindByID(id string) *Prospect {
	for _, p := range d.Prospects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// RemoveByID deletes the prospect if present and reports whether it was.
func (d *Document) RemoveByID(id string) bool {
	for i, p := range d.Prospects {
		if p.ID == id {
			d.Prospects = append(d.Prospects[:i], d.Prospects[i+1:]...)
			return true
		}
	}
	return false
}

func Today() string {
	return time.Now().Format(DateLayout)
}

// WeekStart returns the most recent Monday on or before t.
func WeekStart(t time.Time) string {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset).Format(DateLayout)
}

// NextCheckIn computes an event-anchored due date: from + interval days.
// Invalid or empty from falls back to today, matching the original behavior.
func NextCheckIn(from string, intervalDays int) string {
	d, err := time.Parse(DateLayout, from)
	if err != nil {
		d = time.Now()
	}
	return d.AddDate(0, 0, intervalDays).Format(DateLayout)
}
