package processors

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/0pain01/Financial-Foresight/src/models"
)

// DefaultRecurrenceHorizon is how many future instances a recurring
// transaction expands into.
const DefaultRecurrenceHorizon = 6

// recurrenceKeywords gate expansion: only descriptions that look like a known
// recurring obligation generate future instances.
var recurrenceKeywords = []string{"salary", "emi", "loan", "mobile", "rent", "subscription"}

// Expander materializes future instances of recurring transactions.
type Expander struct {
	horizon  int
	now      func() time.Time
	newGroup func() string
}

func NewExpander(horizon int) *Expander {
	if horizon <= 0 {
		horizon = DefaultRecurrenceHorizon
	}
	return &Expander{
		horizon:  horizon,
		now:      time.Now,
		newGroup: func() string { return uuid.New().String() },
	}
}

// ShouldExpand reports whether source qualifies for recurrence expansion: a
// real repeat pattern plus a description matching a known recurring-expense
// keyword.
func (x *Expander) ShouldExpand(source *models.Transaction) bool {
	pattern := strings.TrimSpace(source.RepeatPattern)
	if pattern == "" || strings.EqualFold(pattern, "none") {
		return false
	}
	desc := strings.ToLower(source.Description)
	for _, kw := range recurrenceKeywords {
		if strings.Contains(desc, kw) {
			return true
		}
	}
	return false
}

// Expand generates the future instances for source. Each instance copies the
// source's fields, is dated one period further out, and carries the source's
// id as parent plus a shared recurring group key. The same key is written
// back onto source so the whole series can be found later.
//
// Expansion does not check for previously generated instances; re-creating
// the same recurring source duplicates the series. Callers must guard
// against duplicate submission upstream.
func (x *Expander) Expand(source *models.Transaction) []models.Transaction {
	if !x.ShouldExpand(source) {
		return nil
	}

	start, err := time.Parse("2006-01-02", strings.TrimSpace(source.Date))
	if err != nil {
		start = x.now()
	}

	if source.RecurringGroupID == "" {
		source.RecurringGroupID = x.newGroup()
	}

	instances := make([]models.Transaction, 0, x.horizon)
	for i := 1; i <= x.horizon; i++ {
		next := advance(start, source.RepeatPattern, i)
		instances = append(instances, models.Transaction{
			UserID:           source.UserID,
			Amount:           source.Amount,
			Description:      source.Description,
			Category:         source.Category,
			Type:             source.Type,
			Date:             next.Format("2006-01-02"),
			PaymentMethod:    source.PaymentMethod,
			ContextTag:       source.ContextTag,
			IntentTag:        source.IntentTag,
			ConfidenceTag:    source.ConfidenceTag,
			GoalImpact:       source.GoalImpact,
			IsPlanned:        source.IsPlanned,
			RepeatPattern:    source.RepeatPattern,
			ParentID:         source.ID,
			RecurringGroupID: source.RecurringGroupID,
			CreatedAt:        x.now(),
		})
	}
	return instances
}

// advance steps a date forward by n periods of the given repeat pattern.
// Unknown patterns are treated as monthly.
func advance(start time.Time, pattern string, n int) time.Time {
	switch strings.ToLower(strings.TrimSpace(pattern)) {
	case "weekly":
		return start.AddDate(0, 0, 7*n)
	case "yearly":
		return start.AddDate(n, 0, 0)
	default:
		return addMonthsClamped(start, n)
	}
}

// addMonthsClamped adds n calendar months, clamping to the last day of the
// target month instead of letting Go's AddDate roll Jan 31 over into March.
func addMonthsClamped(d time.Time, n int) time.Time {
	firstOfTarget := time.Date(d.Year(), d.Month()+time.Month(n), 1, 0, 0, 0, 0, d.Location())
	lastDay := time.Date(firstOfTarget.Year(), firstOfTarget.Month()+1, 0, 0, 0, 0, 0, d.Location()).Day()
	day := d.Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, d.Location())
}
