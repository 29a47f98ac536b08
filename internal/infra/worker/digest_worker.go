package worker

import (
	"context"
	"log"
	"time"

	"github.com/daware/warmtrack/internal/entity"
	custommw "github.com/daware/warmtrack/internal/infra/http/middleware"
	"github.com/daware/warmtrack/internal/usecase"
)

// DigestWorker periodically emails the due-today queue so check-ins are not
// missed when nobody has the dashboard open.
type DigestWorker struct {
	stats        *usecase.ProspectStatsUseCase
	sender       usecase.EmailService
	to           string
	tickInterval time.Duration

	lastSent string // date of the last digest, one per day
}

func NewDigestWorker(stats *usecase.ProspectStatsUseCase, sender usecase.EmailService, to string) *DigestWorker {
	return &DigestWorker{
		stats:        stats,
		sender:       sender,
		to:           to,
		tickInterval: 1 * time.Hour,
	}
}

func (w *DigestWorker) Start(ctx context.Context) {
	log.Printf("digest worker started (to=%s)", w.to)

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.sendDigest(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("digest worker stopped")
			return
		case <-ticker.C:
			w.sendDigest(ctx)
		}
	}
}

func (w *DigestWorker) sendDigest(ctx context.Context) {
	today := entity.Today()
	if w.lastSent == today {
		return
	}

	queue, err := w.stats.DueQueue(ctx)
	if err != nil {
		log.Printf("digest worker: due queue failed: %v", err)
		return
	}
	if len(queue) == 0 {
		w.lastSent = today
		return
	}

	if err := w.sender.SendDueDigest(w.to, queue); err != nil {
		log.Printf("digest worker: send failed: %v", err)
		return
	}
	custommw.RecordDigestSent()
	log.Printf("digest sent: %d prospect(s) due", len(queue))
	w.lastSent = today
}
