package usecase

import (
	"context"

	"github.com/daware/warmtrack/internal/entity"
	"github.com/daware/warmtrack/internal/infra/queue"
)

// ProspectStoreInterface is the single-writer document store. Mutate flushes
// the whole document only when fn succeeds; View is read-only.
type ProspectStoreInterface interface {
	View(ctx context.Context, fn func(doc *entity.Document) error) error
	Mutate(ctx context.Context, fn func(doc *entity.Document) error) error
}

type QueueProducerInterface interface {
	PublishEngagement(ctx context.Context, payload queue.EngagementPayload) error
}

type EmailService interface {
	SendDueDigest(to string, prospects []*entity.Prospect) error
}
