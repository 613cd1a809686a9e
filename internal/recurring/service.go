// Package recurring manages recurring transaction schedules: creating them,
// finding the ones that are due, and materializing each due schedule into a
// concrete transaction while advancing or terminating the schedule.
package recurring

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/walletapp/wallet/internal/models"
	"github.com/walletapp/wallet/internal/recurrence"
)

// ErrInactive means a deactivated schedule was asked to process. Deactivated
// schedules are terminal.
var ErrInactive = errors.New("recurring transaction is not active")

// Store is the persistence the service needs. Materialize must insert the
// generated transaction and write the schedule's NextDueDate/IsActive as one
// atomic unit, and must fail without side effects when another run has
// already advanced the schedule past prevDue.
type Store interface {
	Create(ctx context.Context, rt *models.RecurringTransaction) error
	GetByID(ctx context.Context, recurringTransactionID, userID int) (*models.RecurringTransaction, error)
	Update(ctx context.Context, rt *models.RecurringTransaction) error
	ListDue(ctx context.Context, now time.Time) ([]*models.RecurringTransaction, error)
	Materialize(ctx context.Context, rt *models.RecurringTransaction, prevDue time.Time, txn *models.Transaction) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create persists a new schedule. The first due date is one full interval
// after the start date, and new schedules always begin active.
func (s *Service) Create(ctx context.Context, rt *models.RecurringTransaction) error {
	rt.NextDueDate = recurrence.Next(rt.StartDate, rt.Frequency)
	rt.IsActive = true
	if err := s.store.Create(ctx, rt); err != nil {
		return fmt.Errorf("creating recurring transaction: %w", err)
	}
	return nil
}

// Update applies a partial update. Changing the start date or frequency
// recomputes the next due date from the new values.
func (s *Service) Update(ctx context.Context, recurringTransactionID, userID int, patch models.RecurringTransactionPatch) (*models.RecurringTransaction, error) {
	rt, err := s.store.GetByID(ctx, recurringTransactionID, userID)
	if err != nil {
		return nil, fmt.Errorf("loading recurring transaction %d: %w", recurringTransactionID, err)
	}

	patch.Apply(rt)
	if patch.StartDate != nil || patch.Frequency != nil {
		rt.NextDueDate = recurrence.Next(rt.StartDate, rt.Frequency)
	}

	if err := s.store.Update(ctx, rt); err != nil {
		return nil, fmt.Errorf("updating recurring transaction %d: %w", recurringTransactionID, err)
	}
	return rt, nil
}

// ListDue returns every active schedule whose next due date has arrived,
// ordered by next due date ascending.
func (s *Service) ListDue(ctx context.Context, now time.Time) ([]*models.RecurringTransaction, error) {
	return s.store.ListDue(ctx, now)
}

// Process materializes one due schedule: it builds the transaction the
// schedule describes, then either advances the schedule to its next
// occurrence or, when that occurrence would pass the end date, deactivates
// it with the due date left untouched. Insert and advance commit together;
// on failure the schedule is unchanged both in storage and in memory.
func (s *Service) Process(ctx context.Context, rt *models.RecurringTransaction) (*models.Transaction, error) {
	if !rt.IsActive {
		return nil, fmt.Errorf("recurring transaction %d: %w", rt.RecurringTransactionID, ErrInactive)
	}

	txn := &models.Transaction{
		UserID:                 rt.UserID,
		AccountID:              rt.AccountID,
		CategoryID:             rt.CategoryID,
		RecurringTransactionID: &rt.RecurringTransactionID,
		Type:                   rt.Type,
		Amount:                 rt.Amount,
		Currency:               rt.Currency,
		Description:            rt.Description,
	}

	prevDue := rt.NextDueDate
	candidate := recurrence.Next(rt.NextDueDate, rt.Frequency)
	if rt.EndDate != nil && candidate.After(*rt.EndDate) {
		rt.IsActive = false
	} else {
		rt.NextDueDate = candidate
	}

	if err := s.store.Materialize(ctx, rt, prevDue, txn); err != nil {
		rt.NextDueDate = prevDue
		rt.IsActive = true
		return nil, fmt.Errorf("materializing recurring transaction %d: %w", rt.RecurringTransactionID, err)
	}
	return txn, nil
}

// BatchFailure records one schedule that could not be processed.
type BatchFailure struct {
	RecurringTransactionID int
	Err                    error
}

// BatchResult summarizes a batch run: how many schedules were due, how many
// processed, and why the rest failed.
type BatchResult struct {
	Processed int
	TotalDue  int
	Failures  []BatchFailure
}

// ProcessBatch processes every due schedule in due-date order. A failing
// item is logged and recorded but never aborts the batch; the caller always
// gets the full summary.
func (s *Service) ProcessBatch(ctx context.Context, now time.Time) (BatchResult, error) {
	due, err := s.store.ListDue(ctx, now)
	if err != nil {
		return BatchResult{}, fmt.Errorf("listing due recurring transactions: %w", err)
	}

	result := BatchResult{TotalDue: len(due)}
	for _, rt := range due {
		if _, err := s.Process(ctx, rt); err != nil {
			log.Printf("Failed to process recurring transaction %d: %v", rt.RecurringTransactionID, err)
			result.Failures = append(result.Failures, BatchFailure{
				RecurringTransactionID: rt.RecurringTransactionID,
				Err:                    err,
			})
			continue
		}
		result.Processed++
	}
	return result, nil
}
