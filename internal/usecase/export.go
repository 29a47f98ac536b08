package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/daware/warmtrack/internal/entity"
)

// ExportColumns is a compatibility contract: column order is fixed and every
// cell is quoted unconditionally with internal quotes doubled.
var ExportColumns = []string{
	"name", "linkedin_url", "company", "title", "segment", "tier",
	"icp_score", "status", "connected", "warmth_score", "check_in_days",
	"next_check_in", "last_engagement_date", "engagements_count", "notes",
	"source", "tags", "batch", "created_at",
}

type ExportProspectsUseCase struct {
	Store ProspectStoreInterface
}

func NewExportProspectsUseCase(store ProspectStoreInterface) *ExportProspectsUseCase {
	return &ExportProspectsUseCase{Store: store}
}

// Rows flattens every prospect into the fixed column set, header excluded.
func (uc *ExportProspectsUseCase) Rows(ctx context.Context) ([][]string, error) {
	var rows [][]string
	err := uc.Store.View(ctx, func(doc *entity.Document) error {
		for _, p := range doc.Prospects {
			rows = append(rows, flattenProspect(p))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CSV renders header plus rows, newline-joined with no trailing newline.
func (uc *ExportProspectsUseCase) CSV(ctx context.Context) (string, error) {
	rows, err := uc.Rows(ctx)
	if err != nil {
		return "", err
	}

	lines := []string{strings.Join(ExportColumns, ",")}
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = quoteCell(cell)
		}
		lines = append(lines, strings.Join(cells, ","))
	}
	return strings.Join(lines, "\n"), nil
}

func flattenProspect(p *entity.Prospect) []string {
	connected := "no"
	if p.Connected {
		connected = "yes"
	}
	return []string{
		p.Name,
		p.LinkedInURL,
		p.Company,
		p.Title,
		p.Segment,
		strconv.Itoa(p.Tier),
		formatFloat(p.ICPScore),
		p.Status,
		connected,
		strconv.Itoa(p.WarmthScore),
		strconv.Itoa(p.CheckInDays),
		p.NextCheckIn,
		p.LastEngagementDate,
		strconv.Itoa(len(p.Engagements)),
		p.Notes,
		p.Source,
		strings.Join(p.Tags, ";"),
		p.Batch,
		p.CreatedAt,
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func quoteCell(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
