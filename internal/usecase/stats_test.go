package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daware/warmtrack/internal/entity"
)

func TestDueQueueFiltersAndSorts(t *testing.T) {
	overdue := warmingProspect("p1")
	overdue.NextCheckIn = daysFromToday(-1)
	overdue.WarmthScore = 1

	dueToday := warmingProspect("p2")
	dueToday.NextCheckIn = entity.Today()
	dueToday.WarmthScore = 4

	notYet := warmingProspect("p3")
	notYet.NextCheckIn = daysFromToday(1)

	warmOverdue := warmingProspect("p4")
	warmOverdue.Status = entity.StatusWarm
	warmOverdue.NextCheckIn = daysFromToday(-1)

	uc := NewProspectStatsUseCase(newFakeStore(overdue, dueToday, notYet, warmOverdue))

	queue, err := uc.DueQueue(context.Background())
	require.NoError(t, err)

	require.Len(t, queue, 2)
	assert.Equal(t, "p2", queue[0].ID) // warmest first
	assert.Equal(t, "p1", queue[1].ID)
}

func TestDueQueueOnlyWarming(t *testing.T) {
	a := warmingProspect("a")
	a.NextCheckIn = daysFromToday(-1)
	b := warmingProspect("b")
	b.NextCheckIn = daysFromToday(1)
	c := warmingProspect("c")
	c.Status = entity.StatusWarm
	c.NextCheckIn = daysFromToday(-1)

	uc := NewProspectStatsUseCase(newFakeStore(a, b, c))
	queue, err := uc.DueQueue(context.Background())
	require.NoError(t, err)

	require.Len(t, queue, 1)
	assert.Equal(t, "a", queue[0].ID)
}

func TestSummaryCounts(t *testing.T) {
	today := entity.Today()
	weekStart := entity.WeekStart(time.Now())
	ws, err := time.Parse(entity.DateLayout, weekStart)
	require.NoError(t, err)
	beforeWeek := ws.AddDate(0, 0, -1).Format(entity.DateLayout)

	p1 := warmingProspect("p1")
	p1.Segment = "cyber"
	p1.Tier = 1
	p1.WarmthScore = 0
	p1.NextCheckIn = today
	p1.Engagements = []entity.Engagement{
		{Type: "comment", Date: today},
		{Type: "comment", Date: weekStart},
		{Type: "comment", Date: beforeWeek}, // outside the rolling window
		{Type: "dm", Date: today},
	}

	p2 := warmingProspect("p2")
	p2.Segment = "fintech"
	p2.Tier = 2
	p2.WarmthScore = 2
	p2.NextCheckIn = daysFromToday(2)

	p3 := warmingProspect("p3")
	p3.Status = entity.StatusWarm
	p3.Segment = "cyber"
	p3.Tier = 1
	p3.WarmthScore = 4

	p4 := warmingProspect("p4")
	p4.Status = entity.StatusOutreachSent
	p4.Segment = "cyber"
	p4.Tier = 3
	p4.WarmthScore = 7

	uc := NewProspectStatsUseCase(newFakeStore(p1, p2, p3, p4))
	stats, err := uc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, map[string]int{"warming": 2, "warm": 1, "outreach_sent": 1}, stats.ByStatus)
	assert.Equal(t, map[string]int{"cyber": 3, "fintech": 1}, stats.BySegment)
	assert.Equal(t, map[string]int{"1": 2, "2": 1, "3": 1}, stats.ByTier)

	expectedToday := 1
	if weekStart == today { // Mondays: the week-start comment is also today's
		expectedToday = 2
	}
	assert.Equal(t, expectedToday, stats.CommentsToday)
	assert.Equal(t, 2, stats.CommentsThisWeek)
	assert.Equal(t, 1, stats.DMsToday)

	assert.Equal(t, 1, stats.DueToday) // only p1 is warming and due
	assert.Equal(t, 1, stats.ReadyForSnapshot)

	assert.Equal(t, map[string]int{"cold": 1, "warming": 1, "warm": 1, "hot": 1}, stats.WarmthDistribution)
}

func TestSummaryDistributionSumsToTotal(t *testing.T) {
	var prospects []*entity.Prospect
	for i, score := range []int{0, 1, 2, 3, 4, 5, 6, 10} {
		p := warmingProspect(string(rune('a' + i)))
		p.WarmthScore = score
		prospects = append(prospects, p)
	}

	uc := NewProspectStatsUseCase(newFakeStore(prospects...))
	stats, err := uc.Summary(context.Background())
	require.NoError(t, err)

	sum := 0
	for _, n := range stats.WarmthDistribution {
		sum += n
	}
	assert.Equal(t, stats.Total, sum)
	assert.Equal(t, 1, stats.WarmthDistribution["cold"])
	assert.Equal(t, 2, stats.WarmthDistribution["warming"])
	assert.Equal(t, 2, stats.WarmthDistribution["warm"])
	assert.Equal(t, 3, stats.WarmthDistribution["hot"])
}

func TestSummaryEmptyStatusCountsAsNew(t *testing.T) {
	p := warmingProspect("p1")
	p.Status = ""

	uc := NewProspectStatsUseCase(newFakeStore(p))
	stats, err := uc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.ByStatus["new"])
}

func TestWeekStartIsMonday(t *testing.T) {
	// Wed 2026-08-26 -> Mon 2026-08-24; Monday maps to itself; Sunday goes
	// back six days.
	wed := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-08-24", entity.WeekStart(wed))

	mon := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-08-24", entity.WeekStart(mon))

	sun := time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-08-24", entity.WeekStart(sun))
}
