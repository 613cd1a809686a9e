// Package scheduler drives recurring-transaction processing with a
// pull-based poll: every tick it asks the recurring service to process
// whatever is due. There is no cron; the loop is the only trigger besides
// an explicit Notify.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/walletapp/wallet/internal/recurring"
)

// Notifier receives the summary of each non-empty batch run.
type Notifier interface {
	BatchProcessed(result recurring.BatchResult) error
}

type Scheduler struct {
	recurring     *recurring.Service
	notifier      Notifier // nil disables notifications
	checkInterval time.Duration
	notifyCh      chan struct{}
}

func New(recurringSvc *recurring.Service, notifier Notifier, checkInterval time.Duration) *Scheduler {
	return &Scheduler{
		recurring:     recurringSvc,
		notifier:      notifier,
		checkInterval: checkInterval,
		notifyCh:      make(chan struct{}, 1),
	}
}

// Notify triggers an immediate check. Non-blocking if a check is already pending.
func (s *Scheduler) Notify() {
	select {
	case s.notifyCh <- struct{}{}:
	default:
		// Channel already has a pending notification, skip
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	log.Println("Scheduler started")
	ticker := time.NewTicker(s.checkInterval)
	defer ticker.Stop()

	// Wait a bit for migrations to complete before first check
	select {
	case <-ctx.Done():
		return
	case <-time.After(2 * time.Second):
	}

	s.check(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("Scheduler stopped")
			return
		case <-ticker.C:
			s.check(ctx)
		case <-s.notifyCh:
			log.Println("Scheduler triggered by notification")
			s.check(ctx)
		}
	}
}

func (s *Scheduler) check(ctx context.Context) {
	result, err := s.recurring.ProcessBatch(ctx, time.Now())
	if err != nil {
		log.Printf("Failed to process due recurring transactions: %v", err)
		return
	}
	if result.TotalDue == 0 {
		return
	}

	log.Printf("Processed %d/%d due recurring transactions", result.Processed, result.TotalDue)

	if s.notifier != nil {
		if err := s.notifier.BatchProcessed(result); err != nil {
			log.Printf("Failed to send batch summary: %v", err)
		}
	}
}
