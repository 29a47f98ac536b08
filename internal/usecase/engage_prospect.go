package usecase

import (
	"context"
	"log"

	"github.com/daware/warmtrack/internal/entity"
	"github.com/daware/warmtrack/internal/infra/queue"
)

// Warmth promotion threshold: at this score a warming prospect becomes warm
// and counts as ready for a snapshot DM.
const warmThreshold = 5

// EngageProspectUseCase is the lifecycle engine: it records engagements and
// skips, and owns the only two status transitions the system performs.
type EngageProspectUseCase struct {
	Store ProspectStoreInterface
	Queue QueueProducerInterface // optional
}

func NewEngageProspectUseCase(store ProspectStoreInterface, producer QueueProducerInterface) *EngageProspectUseCase {
	return &EngageProspectUseCase{Store: store, Queue: producer}
}

// Execute appends an engagement dated today and applies the warmth rules:
// comment +1, dm +2 (dm also forces outreach_sent and stamps the last
// action), any other type scores nothing but is still recorded. The next
// check-in is re-anchored to today rather than the previous due date, so
// late processing never accumulates backlog. Promotion to warm happens last,
// and only from warming.
func (uc *EngageProspectUseCase) Execute(ctx context.Context, input EngageProspectInput) (*entity.Prospect, error) {
	etype := input.Type
	if etype == "" {
		etype = entity.EngagementComment
	}
	today := entity.Today()

	var updated entity.Prospect
	err := uc.Store.Mutate(ctx, func(doc *entity.Document) error {
		p := doc.FindByID(input.ProspectID)
		if p == nil {
			return notFound(input.ProspectID)
		}

		p.Engagements = append(p.Engagements, entity.Engagement{
			Type: etype,
			Date: today,
			Note: input.Note,
		})

		switch etype {
		case entity.EngagementComment:
			p.WarmthScore++
		case entity.EngagementDM:
			p.WarmthScore += 2
			p.Status = entity.StatusOutreachSent
			p.LastAction = input.Note
			if p.LastAction == "" {
				p.LastAction = "Sent DM"
			}
			p.LastActionDate = today
		}

		p.NextCheckIn = entity.NextCheckIn(today, p.CheckInDays)
		p.LastEngagementDate = today

		// A dm in the same call already moved the status off warming, so it
		// is never overridden back to warm here.
		if p.WarmthScore >= warmThreshold && p.Status == entity.StatusWarming {
			p.Status = entity.StatusWarm
		}

		updated = *p
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.Queue != nil {
		go func() {
			payload := queue.EngagementPayload{
				ProspectID:  updated.ID,
				Type:        etype,
				Date:        today,
				Note:        input.Note,
				Status:      updated.Status,
				WarmthScore: updated.WarmthScore,
			}
			if err := uc.Queue.PublishEngagement(context.Background(), payload); err != nil {
				log.Printf("engagement event publish failed: %v", err)
			}
		}()
	}

	return &updated, nil
}

// Skip pushes the next check-in out by the prospect's interval without
// recording an engagement or touching score and status.
func (uc *EngageProspectUseCase) Skip(ctx context.Context, id string) (*entity.Prospect, error) {
	var updated entity.Prospect
	err := uc.Store.Mutate(ctx, func(doc *entity.Document) error {
		p := doc.FindByID(id)
		if p == nil {
			return notFound(id)
		}
		p.NextCheckIn = entity.NextCheckIn(entity.Today(), p.CheckInDays)
		updated = *p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
