package usecase

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/daware/warmtrack/internal/entity"
)

// ProspectStatsUseCase computes the two read-only views over the collection:
// the due-today queue and the statistics summary.
type ProspectStatsUseCase struct {
	Store ProspectStoreInterface
}

func NewProspectStatsUseCase(store ProspectStoreInterface) *ProspectStatsUseCase {
	return &ProspectStatsUseCase{Store: store}
}

func dueToday(p *entity.Prospect, today string) bool {
	return p.Status == entity.StatusWarming && p.NextCheckIn <= today
}

// DueQueue returns warming prospects whose check-in is due, warmest first.
// Ties keep input order.
func (uc *ProspectStatsUseCase) DueQueue(ctx context.Context) ([]*entity.Prospect, error) {
	today := entity.Today()
	queue := []*entity.Prospect{}

	err := uc.Store.View(ctx, func(doc *entity.Document) error {
		for _, p := range doc.Prospects {
			if dueToday(p, today) {
				cp := *p
				queue = append(queue, &cp)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].WarmthScore > queue[j].WarmthScore
	})
	return queue, nil
}

// Summary produces the whole stats block in one pass over the collection.
// The comments-this-week window starts on the most recent Monday, inclusive.
func (uc *ProspectStatsUseCase) Summary(ctx context.Context) (*StatsSummary, error) {
	today := entity.Today()
	weekStart := entity.WeekStart(time.Now())

	stats := &StatsSummary{
		ByStatus:  map[string]int{},
		BySegment: map[string]int{},
		ByTier:    map[string]int{},
		WarmthDistribution: map[string]int{
			"cold": 0, "warming": 0, "warm": 0, "hot": 0,
		},
	}

	err := uc.Store.View(ctx, func(doc *entity.Document) error {
		stats.Total = len(doc.Prospects)
		for _, p := range doc.Prospects {
			status := p.Status
			if status == "" {
				status = entity.StatusNew
			}
			stats.ByStatus[status]++
			stats.BySegment[p.Segment]++
			stats.ByTier[strconv.Itoa(p.Tier)]++

			if dueToday(p, today) {
				stats.DueToday++
			}
			if p.WarmthScore >= warmThreshold {
				stats.ReadyForSnapshot++
			}

			switch {
			case p.WarmthScore == 0:
				stats.WarmthDistribution["cold"]++
			case p.WarmthScore < 3:
				stats.WarmthDistribution["warming"]++
			case p.WarmthScore < warmThreshold:
				stats.WarmthDistribution["warm"]++
			default:
				stats.WarmthDistribution["hot"]++
			}

			for _, e := range p.Engagements {
				if e.Type == entity.EngagementComment {
					if e.Date == today {
						stats.CommentsToday++
					}
					if e.Date >= weekStart {
						stats.CommentsThisWeek++
					}
				}
				if e.Type == entity.EngagementDM && e.Date == today {
					stats.DMsToday++
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}
