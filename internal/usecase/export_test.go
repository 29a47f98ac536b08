package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daware/warmtrack/internal/entity"
)

func exportFixture() []*entity.Prospect {
	full := &entity.Prospect{
		ID:          "p1",
		Name:        `Ada "Countess" Lovelace`,
		LinkedInURL: "https://www.linkedin.com/in/ada",
		Company:     "Analytical Engines",
		Title:       "CTO",
		Segment:     "cyber",
		Tier:        1,
		ICPScore:    4.5,
		Tags:        []string{"ai", "founder"},
		Status:      entity.StatusWarming,
		Connected:   true,
		CheckInDays: 3,
		WarmthScore: 2,
		Engagements: []entity.Engagement{
			{Type: "comment", Date: "2026-01-02", Note: "on her post"},
			{Type: "dm", Date: "2026-01-02"},
		},
		NextCheckIn:        "2026-01-05",
		LastEngagementDate: "2026-01-02",
		Notes:              "met at conf, likes chess",
		Source:             "sales_nav",
		Batch:              "b1",
		CreatedAt:          "2026-01-01",
	}
	empty := &entity.Prospect{
		ID:          "p2",
		Tier:        2,
		Tags:        []string{},
		Status:      entity.StatusNew,
		CheckInDays: 3,
		NextCheckIn: "2026-01-03",
		Engagements: []entity.Engagement{},
		CreatedAt:   "2026-01-03",
	}
	return []*entity.Prospect{full, empty}
}

func TestExportCSVGolden(t *testing.T) {
	uc := NewExportProspectsUseCase(newFakeStore(exportFixture()...))

	csv, err := uc.CSV(context.Background())
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "export_csv", []byte(csv))
}

func TestExportCSVShape(t *testing.T) {
	uc := NewExportProspectsUseCase(newFakeStore(exportFixture()...))

	csv, err := uc.CSV(context.Background())
	require.NoError(t, err)

	lines := strings.Split(csv, "\n")
	require.Len(t, lines, 3) // header + two rows, no trailing newline
	assert.Equal(t, strings.Join(ExportColumns, ","), lines[0])

	// Every cell quoted, internal quotes doubled.
	assert.Contains(t, lines[1], `"Ada ""Countess"" Lovelace"`)
	assert.Contains(t, lines[1], `"yes"`)
	assert.Contains(t, lines[1], `"ai;founder"`)
	assert.Contains(t, lines[1], `"2"`) // engagement count
	assert.True(t, strings.HasPrefix(lines[2], `"",""`))
	assert.Contains(t, lines[2], `"no"`)
}

func TestExportCSVEmptyCollection(t *testing.T) {
	uc := NewExportProspectsUseCase(newFakeStore())

	csv, err := uc.CSV(context.Background())
	require.NoError(t, err)
	assert.Equal(t, strings.Join(ExportColumns, ","), csv)
}

func TestExportRowsColumnCount(t *testing.T) {
	uc := NewExportProspectsUseCase(newFakeStore(exportFixture()...))

	rows, err := uc.Rows(context.Background())
	require.NoError(t, err)
	for _, row := range rows {
		assert.Len(t, row, len(ExportColumns))
	}
}
