package processors

import (
	"math"
	"strings"

	"github.com/0pain01/Financial-Foresight/src/models"
	"github.com/0pain01/Financial-Foresight/src/utils"
)

// PFInterestRate is the fixed statutory annual rate applied to provident-fund
// balances, in percent.
const PFInterestRate = 8.25

// DefaultAnnualReturn applies to asset types missing from the return table.
const DefaultAnnualReturn = 8.0

// assetReturns maps an investment's asset-class tag (lower-cased) to its
// expected annual return in percent.
var assetReturns = map[string]float64{
	"pf":          PFInterestRate,
	"fd":          6.8,
	"bond":        6.8,
	"mutual-fund": 11,
	"etf":         11,
	"stock":       12,
	"real-estate": 9,
	"crypto":      15,
}

// ProjectionHorizons are the forward horizons, in years, every projection
// payload reports.
var ProjectionHorizons = [3]int{1, 5, 10}

// RetirementAges are the target ages of the PF retirement projection.
var RetirementAges = [3]int{50, 55, 60}

// HorizonSet carries one projected value per standard horizon.
type HorizonSet struct {
	OneYear   float64 `json:"oneYear"`
	FiveYears float64 `json:"fiveYears"`
	TenYears  float64 `json:"tenYears"`
}

// RetirementSet carries the PF projection per target retirement age.
type RetirementSet struct {
	Age50 float64 `json:"age50"`
	Age55 float64 `json:"age55"`
	Age60 float64 `json:"age60"`
}

// PFSummary is the provident-fund principal breakdown behind the retirement
// projection.
type PFSummary struct {
	Principal            float64 `json:"pfPrincipal"`
	CurrentCompanyTotal  float64 `json:"pfCurrentCompanyTotal"`
	PreviousCompanyTotal float64 `json:"pfPreviousCompanyTotal"`
	InferredCurrentAge   float64 `json:"pfInferredCurrentAge"`
}

// ProjectionEngine computes forward-looking wealth, net worth and retirement
// values from current holdings using per-asset-class growth assumptions.
type ProjectionEngine struct{}

func NewProjectionEngine() *ProjectionEngine { return &ProjectionEngine{} }

// AnnualReturn looks up the expected annual return for an asset type,
// case-insensitively, in percent.
func (e *ProjectionEngine) AnnualReturn(assetType string) float64 {
	if rate, ok := assetReturns[strings.ToLower(strings.TrimSpace(assetType))]; ok {
		return rate
	}
	return DefaultAnnualReturn
}

// FutureWealth projects total wealth after years: each holding compounds at
// its asset-class rate, while monthly savings accumulate linearly without
// compounding.
func (e *ProjectionEngine) FutureWealth(investments []models.Investment, monthlySavings float64, years int) float64 {
	var wealth float64
	for _, inv := range investments {
		rate := e.AnnualReturn(inv.Type) / 100
		wealth += utils.ParseAmount(inv.CurrentValue) * math.Pow(1+rate, float64(years))
	}
	return wealth + monthlySavings*12*float64(years)
}

// FutureNetWorth is FutureWealth minus the accumulated monthly debt
// obligation over the same horizon.
func (e *ProjectionEngine) FutureNetWorth(investments []models.Investment, monthlySavings, monthlyDebt float64, years int) float64 {
	return e.FutureWealth(investments, monthlySavings, years) - monthlyDebt*12*float64(years)
}

// WealthHorizons runs FutureWealth over the standard horizons.
func (e *ProjectionEngine) WealthHorizons(investments []models.Investment, monthlySavings float64) HorizonSet {
	return HorizonSet{
		OneYear:   e.FutureWealth(investments, monthlySavings, ProjectionHorizons[0]),
		FiveYears: e.FutureWealth(investments, monthlySavings, ProjectionHorizons[1]),
		TenYears:  e.FutureWealth(investments, monthlySavings, ProjectionHorizons[2]),
	}
}

// NetWorthHorizons runs FutureNetWorth over the standard horizons.
func (e *ProjectionEngine) NetWorthHorizons(investments []models.Investment, monthlySavings, monthlyDebt float64) HorizonSet {
	return HorizonSet{
		OneYear:   e.FutureNetWorth(investments, monthlySavings, monthlyDebt, ProjectionHorizons[0]),
		FiveYears: e.FutureNetWorth(investments, monthlySavings, monthlyDebt, ProjectionHorizons[1]),
		TenYears:  e.FutureNetWorth(investments, monthlySavings, monthlyDebt, ProjectionHorizons[2]),
	}
}

// MonthlyDebtObligation sums the amounts of bills not yet paid,
// case-insensitively on status.
func MonthlyDebtObligation(bills []models.Bill) float64 {
	var total float64
	for _, b := range bills {
		if !strings.EqualFold(b.Status, models.BillStatusPaid) {
			total += utils.ParseAmount(b.Amount)
		}
	}
	return total
}

// SummarizePF totals provident-fund balances across all "pf"-typed holdings
// and infers the holder's current age as the value-weighted average of each
// PF record's age, defaulting to 30 when no PF value exists.
func SummarizePF(investments []models.Investment) PFSummary {
	var s PFSummary
	var currentPFValue, weightedAgeSum float64
	for _, inv := range investments {
		if !strings.EqualFold(inv.Type, models.InvestmentTypePF) {
			continue
		}
		value := utils.ParseAmount(inv.CurrentValue)
		currentPFValue += value
		s.CurrentCompanyTotal += utils.ParseAmount(inv.PFCurrentCompany)
		s.PreviousCompanyTotal += utils.ParseAmount(inv.PFPreviousCompany)
		weightedAgeSum += value * utils.ParseAmount(inv.PFCurrentAge)
	}
	s.Principal = currentPFValue + s.CurrentCompanyTotal + s.PreviousCompanyTotal
	if currentPFValue > 0 {
		s.InferredCurrentAge = weightedAgeSum / currentPFValue
	} else {
		s.InferredCurrentAge = 30
	}
	return s
}

// RetirementProjection compounds the PF principal at the fixed PF rate up to
// each target retirement age.
func (e *ProjectionEngine) RetirementProjection(pf PFSummary) RetirementSet {
	project := func(targetAge int) float64 {
		years := math.Max(0, float64(targetAge)-pf.InferredCurrentAge)
		return pf.Principal * math.Pow(1+PFInterestRate/100, years)
	}
	return RetirementSet{
		Age50: project(RetirementAges[0]),
		Age55: project(RetirementAges[1]),
		Age60: project(RetirementAges[2]),
	}
}
