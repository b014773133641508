package processors

import (
	"strings"

	"github.com/0pain01/Financial-Foresight/src/models"
	"github.com/0pain01/Financial-Foresight/src/utils"
)

// Totals holds the shared income/expense sums every insight payload reports.
// Field names are part of the API contract and must not change.
type Totals struct {
	TotalIncome            float64 `json:"totalIncome"`
	IncomeFromRecords      float64 `json:"incomeFromRecords"`
	IncomeFromTransactions float64 `json:"incomeFromTransactions"`
	TotalExpenses          float64 `json:"totalExpenses"`
	TransactionExpenses    float64 `json:"transactionExpenses"`
	BillExpenses           float64 `json:"billExpenses"`
}

// DashboardSummary is the aggregate payload behind the dashboard endpoint.
type DashboardSummary struct {
	TotalBalance           float64              `json:"totalBalance"`
	MonthlyIncome          float64              `json:"monthlyIncome"`
	MonthlyExpenses        float64              `json:"monthlyExpenses"`
	IncomeFromRecords      float64              `json:"incomeFromRecords"`
	IncomeFromTransactions float64              `json:"incomeFromTransactions"`
	TransactionExpenses    float64              `json:"transactionExpenses"`
	BillExpenses           float64              `json:"billExpenses"`
	SavingsRate            float64              `json:"savingsRate"`
	CategoryBreakdown      map[string]float64   `json:"categoryBreakdown"`
	TotalInvestments       float64              `json:"totalInvestments"`
	RecentTransactions     []models.Transaction `json:"recentTransactions"`
	RecentBills            []models.Bill        `json:"recentBills"`
}

// SumTotals computes the income and expense sums over a user's records.
// Only active incomes count; bills always count as expenses regardless of
// status. All parsing goes through utils.ParseAmount, so malformed amounts
// contribute zero instead of failing the pass.
func SumTotals(transactions []models.Transaction, bills []models.Bill, incomes []models.Income) Totals {
	var t Totals
	for _, in := range incomes {
		if in.IsActive {
			t.IncomeFromRecords += utils.ParseAmount(in.Amount)
		}
	}
	for _, tx := range transactions {
		switch tx.Type {
		case models.TypeIncome:
			t.IncomeFromTransactions += utils.ParseAmount(tx.Amount)
		case models.TypeExpense:
			t.TransactionExpenses += utils.ParseAmount(tx.Amount)
		}
	}
	for _, b := range bills {
		t.BillExpenses += utils.ParseAmount(b.Amount)
	}
	t.TotalIncome = t.IncomeFromRecords + t.IncomeFromTransactions
	t.TotalExpenses = t.TransactionExpenses + t.BillExpenses
	return t
}

// SumInvestments totals the current value of all holdings.
func SumInvestments(investments []models.Investment) float64 {
	var total float64
	for _, inv := range investments {
		total += utils.ParseAmount(inv.CurrentValue)
	}
	return total
}

// SavingsRate is (income - expenses) / income as a percentage, guarded
// against division by zero.
func SavingsRate(totalIncome, totalExpenses float64) float64 {
	if totalIncome <= 0 {
		return 0
	}
	return (totalIncome - totalExpenses) / totalIncome * 100
}

// CategoryBreakdown sums expense amounts by category, combining expense-type
// transactions with bills. Uncategorized bills land under "Bills & Utilities".
func CategoryBreakdown(transactions []models.Transaction, bills []models.Bill) map[string]float64 {
	breakdown := make(map[string]float64)
	for _, tx := range transactions {
		if tx.Type == models.TypeExpense {
			breakdown[tx.Category] += utils.ParseAmount(tx.Amount)
		}
	}
	for _, b := range bills {
		category := strings.TrimSpace(b.Category)
		if category == "" {
			category = CategoryBills
		}
		breakdown[category] += utils.ParseAmount(b.Amount)
	}
	return breakdown
}

// Summarize computes the full dashboard aggregate. It is a pure function of
// its inputs: running it twice on the same records yields identical output.
func Summarize(transactions []models.Transaction, bills []models.Bill, incomes []models.Income, investments []models.Investment) DashboardSummary {
	totals := SumTotals(transactions, bills, incomes)
	totalInvestments := SumInvestments(investments)

	return DashboardSummary{
		TotalBalance:           totals.TotalIncome - totals.TotalExpenses + totalInvestments,
		MonthlyIncome:          totals.TotalIncome,
		MonthlyExpenses:        totals.TotalExpenses,
		IncomeFromRecords:      totals.IncomeFromRecords,
		IncomeFromTransactions: totals.IncomeFromTransactions,
		TransactionExpenses:    totals.TransactionExpenses,
		BillExpenses:           totals.BillExpenses,
		SavingsRate:            SavingsRate(totals.TotalIncome, totals.TotalExpenses),
		CategoryBreakdown:      CategoryBreakdown(transactions, bills),
		TotalInvestments:       totalInvestments,
		RecentTransactions:     lastReversed(transactions, 5),
		RecentBills:            lastReversed(bills, 5),
	}
}

// lastReversed returns the last n elements of list in reverse order, so the
// most recently inserted record comes first.
func lastReversed[T any](list []T, n int) []T {
	start := len(list) - n
	if start < 0 {
		start = 0
	}
	out := make([]T, 0, len(list)-start)
	for i := len(list) - 1; i >= start; i-- {
		out = append(out, list[i])
	}
	return out
}
