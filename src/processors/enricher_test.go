package processors

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/0pain01/Financial-Foresight/src/models"
)

func fixedClock(date string) func() time.Time {
	d, _ := time.Parse("2006-01-02", date)
	return func() time.Time { return d }
}

func TestEnrichCategoryInference(t *testing.T) {
	tests := []struct {
		name        string
		description string
		amount      string
		expect      string
	}{
		{"hospital", "Hospital Visit", "200", CategoryHealthcare},
		{"pharmacy", "City Pharmacy", "85", CategoryHealthcare},
		{"amazon", "Amazon Order", "450", CategoryShopping},
		{"small food spend", "Cafe Mocha", "120", CategoryFoodAndDining},
		{"large food spend", "Cafe Mocha", "300", CategoryEntertainment},
		{"food boundary", "Swiggy Dinner", "150", CategoryFoodAndDining},
		{"rent", "Monthly Rent", "15000", CategoryHousing},
		{"salary", "Salary Credit", "50000", CategoryIncome},
		{"no keyword", "Misc Purchase", "75", CategoryOther},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEnricher()
			tx := &models.Transaction{
				Description: tc.description,
				Amount:      tc.amount,
				Type:        models.TypeExpense,
				Date:        "2024-06-12",
			}
			e.Enrich(tx)
			assert.Equal(t, tc.expect, tx.Category)
		})
	}
}

func TestEnrichContextTag(t *testing.T) {
	tests := []struct {
		name   string
		txType string
		amount string
		date   string // 2024-06-12 Wed, 2024-06-15 Sat, 2024-06-27 Thu
		expect string
	}{
		{"income always planned income", models.TypeIncome, "100", "2024-06-15", ContextPlannedIncome},
		{"high impact beats weekend", models.TypeExpense, "3000", "2024-06-15", ContextHighImpactSpend},
		{"weekend", models.TypeExpense, "100", "2024-06-15", ContextWeekendSpend},
		{"month end", models.TypeExpense, "100", "2024-06-27", ContextMonthEndSpend},
		{"planned essential", models.TypeExpense, "600", "2024-06-12", ContextPlannedEssential},
		{"impulse fallback", models.TypeExpense, "100", "2024-06-12", ContextImpulseSpend},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEnricher()
			tx := &models.Transaction{
				Description: "Misc Purchase",
				Amount:      tc.amount,
				Type:        tc.txType,
				Date:        tc.date,
			}
			e.Enrich(tx)
			assert.Equal(t, tc.expect, tx.ContextTag)
			assert.Equal(t, tc.expect != ContextImpulseSpend, tx.IsPlanned)
		})
	}
}

func TestEnrichIntentAndConfidence(t *testing.T) {
	tests := []struct {
		name             string
		txType           string
		description      string
		amount           string
		date             string
		expectIntent     string
		expectConfidence string
	}{
		{"income", models.TypeIncome, "Salary Credit", "50000", "2024-06-12", IntentInvestmentInSelf, ConfidenceHealthy},
		{"essential category", models.TypeExpense, "Hospital Visit", "200", "2024-06-12", IntentNecessary, ConfidenceHealthy},
		{"convenience tax", models.TypeExpense, "Misc Purchase", "2500", "2024-06-12", IntentConvenienceTax, ConfidenceNeutral},
		{"optional", models.TypeExpense, "Misc Purchase", "100", "2024-06-12", IntentOptional, ConfidenceHealthy},
		{"risky big spend", models.TypeExpense, "Misc Purchase", "3500", "2024-06-12", IntentConvenienceTax, ConfidenceRisky},
		{"risky month end window", models.TypeExpense, "Misc Purchase", "1600", "2024-06-29", IntentOptional, ConfidenceRisky},
		{"neutral mid band", models.TypeExpense, "Misc Purchase", "1200", "2024-06-12", IntentOptional, ConfidenceNeutral},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEnricher()
			tx := &models.Transaction{
				Description: tc.description,
				Amount:      tc.amount,
				Type:        tc.txType,
				Date:        tc.date,
			}
			e.Enrich(tx)
			assert.Equal(t, tc.expectIntent, tx.IntentTag)
			assert.Equal(t, tc.expectConfidence, tx.ConfidenceTag)
		})
	}
}

func TestEnrichGoalImpact(t *testing.T) {
	e := NewEnricher()

	income := &models.Transaction{Description: "Salary Credit", Amount: "50000", Type: models.TypeIncome, Date: "2024-06-01"}
	e.Enrich(income)
	assert.Equal(t, "Adds to your savings capacity and keeps every goal on track.", income.GoalImpact)

	expense := &models.Transaction{Description: "Misc Purchase", Amount: "2000", Type: models.TypeExpense, Date: "2024-06-12"}
	e.Enrich(expense)
	assert.Equal(t, "Delays your emergency fund goal by 2 day(s) and increases monthly burn rate by 4%.", expense.GoalImpact)

	small := &models.Transaction{Description: "Misc Purchase", Amount: "100", Type: models.TypeExpense, Date: "2024-06-12"}
	e.Enrich(small)
	assert.Equal(t, "Delays your emergency fund goal by 1 day(s) and increases monthly burn rate by 1%.", small.GoalImpact)
}

func TestEnrichPreservesCallerValues(t *testing.T) {
	e := NewEnricher()
	tx := &models.Transaction{
		Description:   "Hospital Visit",
		Amount:        "200",
		Type:          models.TypeExpense,
		Date:          "2024-06-12",
		Category:      "Custom Category",
		ContextTag:    "Custom Context",
		IntentTag:     "Custom Intent",
		ConfidenceTag: "Custom Confidence",
		GoalImpact:    "Custom Impact",
	}
	e.Enrich(tx)

	assert.Equal(t, "Custom Category", tx.Category)
	assert.Equal(t, "Custom Context", tx.ContextTag)
	assert.Equal(t, "Custom Intent", tx.IntentTag)
	assert.Equal(t, "Custom Confidence", tx.ConfidenceTag)
	assert.Equal(t, "Custom Impact", tx.GoalImpact)
}

func TestEnrichIsDeterministic(t *testing.T) {
	build := func() *models.Transaction {
		return &models.Transaction{
			Description: "Swiggy Dinner",
			Amount:      "320",
			Type:        models.TypeExpense,
			Date:        "2024-06-15",
		}
	}

	e := NewEnricher()
	first, second := build(), build()
	e.Enrich(first)
	e.Enrich(second)
	assert.Equal(t, first, second)
}

func TestEnrichMalformedDateUsesClock(t *testing.T) {
	e := NewEnricher()
	e.now = fixedClock("2024-06-15") // Saturday

	tx := &models.Transaction{Description: "Misc Purchase", Amount: "100", Type: models.TypeExpense, Date: "not-a-date"}
	e.Enrich(tx)
	assert.Equal(t, ContextWeekendSpend, tx.ContextTag)
}
