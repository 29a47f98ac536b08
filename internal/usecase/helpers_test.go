package usecase

import (
	"context"
	"time"

	"github.com/daware/warmtrack/internal/entity"
	"github.com/daware/warmtrack/internal/infra/queue"
)

// fakeStore is an in-memory stand-in for the JSON document store.
type fakeStore struct {
	doc entity.Document
}

func newFakeStore(prospects ...*entity.Prospect) *fakeStore {
	return &fakeStore{doc: entity.Document{Prospects: prospects}}
}

func (s *fakeStore) View(ctx context.Context, fn func(doc *entity.Document) error) error {
	return fn(&s.doc)
}

func (s *fakeStore) Mutate(ctx context.Context, fn func(doc *entity.Document) error) error {
	return fn(&s.doc)
}

// fakeProducer records published engagement events.
type fakeProducer struct {
	published chan queue.EngagementPayload
}

func newFakeProducer() *fakeProducer {
	return &fakeProducer{published: make(chan queue.EngagementPayload, 16)}
}

func (p *fakeProducer) PublishEngagement(ctx context.Context, payload queue.EngagementPayload) error {
	p.published <- payload
	return nil
}

func warmingProspect(id string) *entity.Prospect {
	p := entity.NewProspect(entity.Today())
	p.ID = id
	return p
}

func daysFromToday(n int) string {
	return time.Now().AddDate(0, 0, n).Format(entity.DateLayout)
}
