package usecase

import (
	"context"

	"github.com/daware/warmtrack/internal/entity"
)

type ListProspectsUseCase struct {
	Store ProspectStoreInterface
}

func NewListProspectsUseCase(store ProspectStoreInterface) *ListProspectsUseCase {
	return &ListProspectsUseCase{Store: store}
}

// Execute returns a snapshot copy of the whole collection.
func (uc *ListProspectsUseCase) Execute(ctx context.Context) ([]*entity.Prospect, error) {
	var out []*entity.Prospect
	err := uc.Store.View(ctx, func(doc *entity.Document) error {
		out = make([]*entity.Prospect, 0, len(doc.Prospects))
		for _, p := range doc.Prospects {
			cp := *p
			out = append(out, &cp)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
