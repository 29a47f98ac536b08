package usecase

import (
	"context"
	"log"

	"github.com/daware/warmtrack/internal/entity"
	"github.com/daware/warmtrack/internal/linkedin"
)

// UpdateProspectUseCase handles the unrestricted merge edit and deletion.
// The merge is the correction backdoor: it may set values the lifecycle
// engine never would, including lowering warmth, which is logged.
type UpdateProspectUseCase struct {
	Store ProspectStoreInterface
}

func NewUpdateProspectUseCase(store ProspectStoreInterface) *UpdateProspectUseCase {
	return &UpdateProspectUseCase{Store: store}
}

func (uc *UpdateProspectUseCase) Execute(ctx context.Context, id string, input UpdateProspectInput) (*entity.Prospect, error) {
	if errs := ValidateUpdateProspectInput(input); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	var updated entity.Prospect
	err := uc.Store.Mutate(ctx, func(doc *entity.Document) error {
		p := doc.FindByID(id)
		if p == nil {
			return notFound(id)
		}

		if input.Name != nil {
			p.Name = *input.Name
		}
		if input.LinkedInURL != nil {
			p.LinkedInURL = *input.LinkedInURL
			p.LinkedInUsername = linkedin.ExtractUsername(*input.LinkedInURL)
		}
		if input.Company != nil {
			p.Company = *input.Company
		}
		if input.Title != nil {
			p.Title = *input.Title
		}
		if input.Segment != nil {
			p.Segment = *input.Segment
		}
		if input.Tier != nil {
			p.Tier = *input.Tier
		}
		if input.ICPScore != nil {
			p.ICPScore = *input.ICPScore
		}
		if input.Tags != nil {
			p.Tags = *input.Tags
		}
		if input.Status != nil {
			p.Status = *input.Status
		}
		if input.Connected != nil {
			p.Connected = *input.Connected
		}
		if input.CheckInDays != nil {
			p.CheckInDays = *input.CheckInDays
		}
		if input.WarmthScore != nil {
			if *input.WarmthScore < p.WarmthScore {
				log.Printf("prospect %s warmth lowered by edit: %d -> %d", p.ID, p.WarmthScore, *input.WarmthScore)
			}
			p.WarmthScore = *input.WarmthScore
		}
		if input.NextCheckIn != nil {
			p.NextCheckIn = *input.NextCheckIn
		}
		if input.LastEngagementDate != nil {
			p.LastEngagementDate = *input.LastEngagementDate
		}
		if input.LastAction != nil {
			p.LastAction = *input.LastAction
		}
		if input.LastActionDate != nil {
			p.LastActionDate = *input.LastActionDate
		}
		if input.Notes != nil {
			p.Notes = *input.Notes
		}
		if input.Source != nil {
			p.Source = *input.Source
		}
		if input.Batch != nil {
			p.Batch = *input.Batch
		}

		updated = *p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete is idempotent: removing an absent id is not an error.
func (uc *UpdateProspectUseCase) Delete(ctx context.Context, id string) error {
	return uc.Store.Mutate(ctx, func(doc *entity.Document) error {
		doc.RemoveByID(id)
		return nil
	})
}
