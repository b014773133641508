package processors

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/0pain01/Financial-Foresight/src/models"
	"github.com/0pain01/Financial-Foresight/src/utils"
)

// Category names assigned by keyword inference.
const (
	CategoryHealthcare    = "Healthcare"
	CategoryShopping      = "Shopping"
	CategoryFoodAndDining = "Food & Dining"
	CategoryEntertainment = "Entertainment"
	CategoryHousing       = "Housing"
	CategoryIncome        = "Income"
	CategoryBills         = "Bills & Utilities"
	CategoryOther         = "Other"
)

// Context tags describing the spending pattern of a transaction.
const (
	ContextPlannedIncome    = "Planned Income"
	ContextHighImpactSpend  = "High Impact Spend"
	ContextWeekendSpend     = "Weekend Spend"
	ContextMonthEndSpend    = "Month-end Spend"
	ContextPlannedEssential = "Planned Essential"
	ContextImpulseSpend     = "Impulse Spend"
)

// Intent tags describing how necessary a transaction was.
const (
	IntentInvestmentInSelf = "Investment in self"
	IntentNecessary        = "Necessary"
	IntentConvenienceTax   = "Convenience tax"
	IntentOptional         = "Optional"
)

// Confidence indicators for a transaction's effect on financial health.
const (
	ConfidenceHealthy = "Healthy"
	ConfidenceNeutral = "Neutral"
	ConfidenceRisky   = "Risky"
)

// tagInput is the full input of every tag rule. Enrichment is a pure function
// of these fields; identical inputs always produce identical tags.
type tagInput struct {
	Description string
	Amount      float64
	Date        time.Time
	Type        string
	Category    string
}

// categoryRule maps description keywords to a category. Rules are evaluated
// in order; the first rule with a matching keyword wins.
type categoryRule struct {
	keywords []string
	resolve  func(amount float64) string
}

func fixedCategory(name string) func(float64) string {
	return func(float64) string { return name }
}

var categoryRules = []categoryRule{
	{
		keywords: []string{"hospital", "pharmacy", "clinic", "doctor", "medical", "medicine", "dental"},
		resolve:  fixedCategory(CategoryHealthcare),
	},
	{
		keywords: []string{"amazon", "flipkart", "myntra", "mall", "store", "shopping"},
		resolve:  fixedCategory(CategoryShopping),
	},
	{
		keywords: []string{"restaurant", "cafe", "coffee", "food", "dining", "swiggy", "zomato", "pizza", "burger"},
		resolve: func(amount float64) string {
			// Small food spends are meals; big ones read as an outing.
			if amount <= 150 {
				return CategoryFoodAndDining
			}
			return CategoryEntertainment
		},
	},
	{
		keywords: []string{"rent", "home"},
		resolve:  fixedCategory(CategoryHousing),
	},
	{
		keywords: []string{"salary", "bonus"},
		resolve:  fixedCategory(CategoryIncome),
	},
}

// contextRule assigns a context tag. Rules are evaluated in priority order;
// the first match wins and the last rule always matches.
type contextRule struct {
	tag     string
	applies func(in tagInput) bool
}

var contextRules = []contextRule{
	{ContextPlannedIncome, func(in tagInput) bool { return in.Type == models.TypeIncome }},
	{ContextHighImpactSpend, func(in tagInput) bool { return in.Amount >= 3000 }},
	{ContextWeekendSpend, func(in tagInput) bool {
		wd := in.Date.Weekday()
		return wd == time.Saturday || wd == time.Sunday
	}},
	{ContextMonthEndSpend, func(in tagInput) bool { return in.Date.Day() > 25 }},
	{ContextPlannedEssential, func(in tagInput) bool { return in.Amount > 500 }},
	{ContextImpulseSpend, func(tagInput) bool { return true }},
}

var intentRules = []contextRule{
	{IntentInvestmentInSelf, func(in tagInput) bool { return in.Type == models.TypeIncome }},
	{IntentNecessary, func(in tagInput) bool {
		switch in.Category {
		case CategoryHealthcare, CategoryHousing, CategoryBills:
			return true
		}
		return false
	}},
	{IntentConvenienceTax, func(in tagInput) bool { return in.Amount > 2000 }},
	{IntentOptional, func(tagInput) bool { return true }},
}

var confidenceRules = []contextRule{
	{ConfidenceHealthy, func(in tagInput) bool { return in.Type == models.TypeIncome }},
	{ConfidenceRisky, func(in tagInput) bool { return isMonthEndWindow(in.Date) && in.Amount > 1500 }},
	{ConfidenceRisky, func(in tagInput) bool { return in.Amount > 3000 }},
	{ConfidenceNeutral, func(in tagInput) bool { return in.Amount > 1000 }},
	{ConfidenceHealthy, func(tagInput) bool { return true }},
}

// isMonthEndWindow reports whether d falls within the last 3 days of its month.
func isMonthEndWindow(d time.Time) bool {
	lastDay := time.Date(d.Year(), d.Month()+1, 0, 0, 0, 0, 0, d.Location()).Day()
	return d.Day() >= lastDay-2
}

func firstMatch(rules []contextRule, in tagInput) string {
	for _, r := range rules {
		if r.applies(in) {
			return r.tag
		}
	}
	return ""
}

// Enricher derives semantic tags for transactions at write time. Derivations
// are deterministic and fill only fields the caller left empty.
type Enricher struct {
	now func() time.Time // injectable clock for the malformed-date fallback
}

func NewEnricher() *Enricher {
	return &Enricher{now: time.Now}
}

// Enrich fills the category, context tag, intent tag, confidence indicator,
// goal-impact narrative and is-planned flag of tx in place.
func (e *Enricher) Enrich(tx *models.Transaction) {
	in := tagInput{
		Description: tx.Description,
		Amount:      utils.ParseAmount(tx.Amount),
		Date:        e.parseDate(tx.Date),
		Type:        tx.Type,
		Category:    tx.Category,
	}

	if tx.Category == "" || tx.Category == CategoryOther {
		tx.Category = inferCategory(in.Description, in.Amount)
	}
	in.Category = tx.Category

	if tx.ContextTag == "" {
		tx.ContextTag = firstMatch(contextRules, in)
	}
	if tx.IntentTag == "" {
		tx.IntentTag = firstMatch(intentRules, in)
	}
	if tx.ConfidenceTag == "" {
		tx.ConfidenceTag = firstMatch(confidenceRules, in)
	}
	if tx.GoalImpact == "" {
		tx.GoalImpact = describeGoalImpact(in.Type, in.Amount)
	}
	tx.IsPlanned = tx.ContextTag != ContextImpulseSpend
}

// parseDate parses a YYYY-MM-DD transaction date, falling back to the current
// date when the value is missing or malformed.
func (e *Enricher) parseDate(value string) time.Time {
	d, err := time.Parse("2006-01-02", strings.TrimSpace(value))
	if err != nil {
		return e.now()
	}
	return d
}

// inferCategory runs the keyword rule table over a lower-cased description.
func inferCategory(description string, amount float64) string {
	desc := strings.ToLower(description)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(desc, kw) {
				return rule.resolve(amount)
			}
		}
	}
	return CategoryOther
}

// describeGoalImpact renders the savings-goal narrative. Expenses are framed
// as emergency-fund delay days (amount/1000, at least 1) and burn-rate
// percentage points (amount/50000 of a month, at least 1).
func describeGoalImpact(txType string, amount float64) string {
	if txType == models.TypeIncome {
		return "Adds to your savings capacity and keeps every goal on track."
	}
	delayDays := int(math.Round(amount / 1000))
	if delayDays < 1 {
		delayDays = 1
	}
	burnPct := int(math.Round(amount / 50000 * 100))
	if burnPct < 1 {
		burnPct = 1
	}
	return fmt.Sprintf("Delays your emergency fund goal by %d day(s) and increases monthly burn rate by %d%%.", delayDays, burnPct)
}
