package usecase

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/daware/warmtrack/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validationFailed(errors []ValidationError) *DomainError {
	msg := "validation failed: "
	for _, e := range errors {
		msg += e.Field + " (" + e.Message + "), "
	}
	return &DomainError{Code: CodeValidation, Message: msg}
}

func ValidateUpdateProspectInput(input UpdateProspectInput) []ValidationError {
	var errors []ValidationError

	if input.Status != nil && !entity.ValidStatus(*input.Status) {
		errors = append(errors, ValidationError{"status", "must be one of new, warming, outreach_sent, warm"})
	}
	if input.Tier != nil && *input.Tier < 1 {
		errors = append(errors, ValidationError{"tier", "must be a positive integer"})
	}
	if input.ICPScore != nil && *input.ICPScore < 0 {
		errors = append(errors, ValidationError{"icp_score", "must not be negative"})
	}
	if input.CheckInDays != nil && *input.CheckInDays < 1 {
		errors = append(errors, ValidationError{"check_in_days", "must be a positive integer"})
	}
	if input.WarmthScore != nil && *input.WarmthScore < 0 {
		errors = append(errors, ValidationError{"warmth_score", "must not be negative"})
	}
	if input.NextCheckIn != nil {
		if _, err := time.Parse(entity.DateLayout, *input.NextCheckIn); err != nil {
			errors = append(errors, ValidationError{"next_check_in", "must be a YYYY-MM-DD date"})
		}
	}

	return errors
}

// Numeric row fields fall back instead of failing: a bad tier should not
// discard an otherwise usable row.
func intOr(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return n
}

func floatOr(s string, fallback float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fallback
	}
	return f
}

func splitTags(s string) []string {
	tags := []string{}
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func isAffirmative(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true":
		return true
	}
	return false
}

var (
	tier1Title = regexp.MustCompile(`(?i)\b(cmo|cto|ceo|coo|cio|ciso|chief|vp\b|vice president|president|founder|co-founder|cofounder|board member|partner)\b`)
	tier2Title = regexp.MustCompile(`(?i)\b(director|head of|head,|sr\. dir|senior dir)\b`)
)

// tierForTitle auto-assigns priority when a row carries a title but no tier:
// C-suite/VP/founder outrank directors and heads, everyone else gets the
// fallback.
func tierForTitle(title string, fallback int) int {
	if tier1Title.MatchString(title) {
		return 1
	}
	if tier2Title.MatchString(title) {
		return 2
	}
	return fallback
}
