package services

import (
	"strings"
	"sync"
	"time"

	"github.com/0pain01/Financial-Foresight/src/logger"
	"github.com/0pain01/Financial-Foresight/src/models"
)

// RecurringBillService rolls recurring bills forward one cycle. It runs as a
// side effect of every dashboard read and must be safe to invoke repeatedly:
// within one month, at most one next-cycle bill is materialized per source.
type RecurringBillService struct {
	billRepo BillRepository

	// mu serializes rollover per user within this process; the duplicate-key
	// check alone does not hold up under concurrent dashboard reads.
	mu sync.Map // userID -> *sync.Mutex
}

func NewRecurringBillService(billRepo BillRepository) *RecurringBillService {
	return &RecurringBillService{billRepo: billRepo}
}

// AutoPopulateNextCycleBills advances every recurring bill of the user by one
// month, inserting the next cycle's instance unless an identical one (same
// name, category, amount and next due date) already exists. Bills without a
// parsable due date are skipped silently.
func (s *RecurringBillService) AutoPopulateNextCycleBills(userID int64) error {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.billRepo.FindByUserID(userID)
	if err != nil {
		return err
	}

	for _, source := range existing {
		if !source.IsRecurring {
			continue
		}

		dueDate, ok := parseDueDate(source.DueDate)
		if !ok {
			logger.L.Warn("Skipping recurring bill with unparsable due date", "billID", source.ID, "dueDate", source.DueDate)
			continue
		}

		nextDueDate := nextMonthClamped(dueDate).Format("2006-01-02")
		if hasNextCycle(existing, source, nextDueDate) {
			continue
		}

		status := models.BillStatusPending
		if source.AutoPayEnabled {
			status = models.BillStatusPaid
		}

		nextCycle := models.Bill{
			UserID:         userID,
			Name:           source.Name,
			Amount:         source.Amount,
			Category:       source.Category,
			DueDate:        nextDueDate,
			Status:         status,
			IsRecurring:    true,
			AutoPayEnabled: source.AutoPayEnabled,
			Icon:           source.Icon,
			Color:          source.Color,
		}
		if err := s.billRepo.Save(&nextCycle); err != nil {
			return err
		}
		existing = append(existing, nextCycle)
	}
	return nil
}

func (s *RecurringBillService) userLock(userID int64) *sync.Mutex {
	lock, _ := s.mu.LoadOrStore(userID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// hasNextCycle checks the duplicate-prevention key: name, category, amount
// and the computed next due date.
func hasNextCycle(bills []models.Bill, source models.Bill, nextDueDate string) bool {
	for _, b := range bills {
		if b.Name == source.Name && b.Category == source.Category && b.Amount == source.Amount && b.DueDate == nextDueDate {
			return true
		}
	}
	return false
}

func parseDueDate(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, false
	}
	d, err := time.Parse("2006-01-02", trimmed)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// nextMonthClamped adds one calendar month, clamping to the shorter target
// month (Jan 31 rolls to Feb 28/29, not Mar 2).
func nextMonthClamped(d time.Time) time.Time {
	firstOfNext := time.Date(d.Year(), d.Month()+1, 1, 0, 0, 0, 0, d.Location())
	lastDay := time.Date(firstOfNext.Year(), firstOfNext.Month()+1, 0, 0, 0, 0, 0, d.Location()).Day()
	day := d.Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfNext.Year(), firstOfNext.Month(), day, 0, 0, 0, 0, d.Location())
}
