package usecase

import (
	"context"
	"strings"

	"github.com/daware/warmtrack/internal/entity"
	"github.com/daware/warmtrack/internal/linkedin"
)

// ImportProspectsUseCase merges externally sourced batches into the store.
// Both entry points are append-only: dedup runs before anything is written,
// and unusable inputs are counted as skipped instead of failing the batch.
type ImportProspectsUseCase struct {
	Store ProspectStoreInterface
}

func NewImportProspectsUseCase(store ProspectStoreInterface) *ImportProspectsUseCase {
	return &ImportProspectsUseCase{Store: store}
}

// ImportURLs creates a warming prospect per profile URL, deduplicating on the
// extracted handle. Non-profile URLs and duplicates are reported back with
// the raw input (duplicates annotated).
func (uc *ImportProspectsUseCase) ImportURLs(ctx context.Context, input ImportURLsInput) (*ImportURLsOutput, error) {
	segment := input.Segment
	if segment == "" {
		segment = "cyber"
	}
	tier := input.Tier
	if tier < 1 {
		tier = 1
	}
	checkIn := input.CheckInDays
	if checkIn < 1 {
		checkIn = 3
	}
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	out := &ImportURLsOutput{SkippedURLs: []string{}}
	today := entity.Today()

	err := uc.Store.Mutate(ctx, func(doc *entity.Document) error {
		for _, raw := range input.URLs {
			url := strings.TrimSpace(raw)
			if url == "" {
				continue
			}
			if !linkedin.IsProfileURL(url) {
				out.Skipped++
				out.SkippedURLs = append(out.SkippedURLs, url)
				continue
			}

			username := linkedin.ExtractUsername(url)
			if hasHandle(doc, username) {
				out.Skipped++
				out.SkippedURLs = append(out.SkippedURLs, url+" (duplicate)")
				continue
			}

			p := entity.NewProspect(today)
			p.LinkedInURL = linkedin.CanonicalURL(username)
			p.LinkedInUsername = username
			p.Segment = segment
			p.Tier = tier
			p.Tags = tags
			p.CheckInDays = checkIn
			p.Source = "sales_nav"
			doc.Prospects = append(doc.Prospects, p)
			out.Added++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ImportRows merges tabular records. Dedup prefers the handle; rows without
// one fall back to case-insensitive name+company equality. Rows with neither
// a handle nor a name are skipped.
func (uc *ImportProspectsUseCase) ImportRows(ctx context.Context, input ImportRowsInput) (*ImportRowsOutput, error) {
	out := &ImportRowsOutput{}
	today := entity.Today()

	err := uc.Store.Mutate(ctx, func(doc *entity.Document) error {
		for _, row := range input.Rows {
			username := linkedin.ExtractUsername(row["linkedin_url"])
			name := strings.TrimSpace(row["name"])
			if username == "" && name == "" {
				out.Skipped++
				continue
			}

			if username != "" {
				if hasHandle(doc, username) {
					out.Skipped++
					continue
				}
			} else {
				company := strings.TrimSpace(row["company"])
				if hasNameCompany(doc, name, company) {
					out.Skipped++
					continue
				}
			}

			p := entity.NewProspect(today)
			p.Name = name
			p.LinkedInURL = row["linkedin_url"]
			p.LinkedInUsername = username
			p.Company = row["company"]
			p.Title = row["title"]
			if seg := row["segment"]; seg != "" {
				p.Segment = seg
			}
			if row["tier"] == "" {
				p.Tier = tierForTitle(row["title"], 2)
			} else {
				p.Tier = intOr(row["tier"], 2)
			}
			p.ICPScore = floatOr(row["icp_score"], 0)
			if row["tags"] != "" {
				p.Tags = splitTags(row["tags"])
			}
			if status := row["status"]; entity.ValidStatus(status) {
				p.Status = status
			}
			p.Connected = isAffirmative(row["connected"])
			p.CheckInDays = intOr(row["check_in_days"], 3)
			if p.CheckInDays < 1 {
				p.CheckInDays = 3
			}
			p.WarmthScore = intOr(row["warmth_score"], 0)
			if p.WarmthScore < 0 {
				p.WarmthScore = 0
			}
			p.Notes = row["notes"]
			p.Source = row["source"]
			if p.Source == "" {
				p.Source = "csv_import"
			}
			p.Batch = row["batch"]
			doc.Prospects = append(doc.Prospects, p)
			out.Added++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Handle comparison re-extracts from the stored URL as well, so records whose
// linkedin_username predates normalization still deduplicate.
func hasHandle(doc *entity.Document, username string) bool {
	for _, p := range doc.Prospects {
		if p.LinkedInUsername == username {
			return true
		}
		if linkedin.ExtractUsername(p.LinkedInURL) == username {
			return true
		}
	}
	return false
}

func hasNameCompany(doc *entity.Document, name, company string) bool {
	for _, p := range doc.Prospects {
		if strings.EqualFold(p.Name, name) && strings.EqualFold(p.Company, company) {
			return true
		}
	}
	return false
}
