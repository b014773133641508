package processors

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/0pain01/Financial-Foresight/src/models"
)

func TestAnnualReturn(t *testing.T) {
	e := NewProjectionEngine()

	tests := []struct {
		assetType string
		expect    float64
	}{
		{"pf", 8.25},
		{"fd", 6.8},
		{"bond", 6.8},
		{"mutual-fund", 11},
		{"etf", 11},
		{"stock", 12},
		{"Stock", 12}, // case-insensitive
		{" stock ", 12},
		{"real-estate", 9},
		{"crypto", 15},
		{"collectibles", 8}, // unknown falls back to default
		{"", 8},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expect, e.AnnualReturn(tc.assetType), "asset type %q", tc.assetType)
	}
}

func TestFutureWealth(t *testing.T) {
	e := NewProjectionEngine()
	investments := []models.Investment{{Type: "stock", CurrentValue: "1000"}}

	// 1000 compounding at 12% for one year plus a year of flat savings.
	got := e.FutureWealth(investments, 100, 1)
	assert.InDelta(t, 1120+1200, got, 0.001)

	// Ten years: compounding on the holding, linear on savings.
	got = e.FutureWealth(investments, 100, 10)
	assert.InDelta(t, 1000*math.Pow(1.12, 10)+100*12*10, got, 0.001)
}

func TestFutureWealthMixedPortfolio(t *testing.T) {
	e := NewProjectionEngine()
	investments := []models.Investment{
		{Type: "stock", CurrentValue: "1000"},
		{Type: "fd", CurrentValue: "2000"},
		{Type: "crypto", CurrentValue: "500"},
	}

	want := 1000*math.Pow(1.12, 5) + 2000*math.Pow(1.068, 5) + 500*math.Pow(1.15, 5) + 250*12*5
	assert.InDelta(t, want, e.FutureWealth(investments, 250, 5), 0.001)
}

func TestFutureNetWorth(t *testing.T) {
	e := NewProjectionEngine()
	investments := []models.Investment{{Type: "stock", CurrentValue: "1000"}}

	wealth := e.FutureWealth(investments, 100, 5)
	assert.InDelta(t, wealth-200*12*5, e.FutureNetWorth(investments, 100, 200, 5), 0.001)
}

func TestHorizonSets(t *testing.T) {
	e := NewProjectionEngine()
	investments := []models.Investment{{Type: "etf", CurrentValue: "5000"}}

	wealth := e.WealthHorizons(investments, 300)
	assert.InDelta(t, e.FutureWealth(investments, 300, 1), wealth.OneYear, 0.001)
	assert.InDelta(t, e.FutureWealth(investments, 300, 5), wealth.FiveYears, 0.001)
	assert.InDelta(t, e.FutureWealth(investments, 300, 10), wealth.TenYears, 0.001)

	net := e.NetWorthHorizons(investments, 300, 150)
	assert.InDelta(t, wealth.OneYear-150*12, net.OneYear, 0.001)
	assert.InDelta(t, wealth.FiveYears-150*12*5, net.FiveYears, 0.001)
	assert.InDelta(t, wealth.TenYears-150*12*10, net.TenYears, 0.001)
}

func TestMonthlyDebtObligation(t *testing.T) {
	bills := []models.Bill{
		{Amount: "500", Status: models.BillStatusPending},
		{Amount: "300", Status: "Paid"}, // excluded, case-insensitive
		{Amount: "200", Status: ""},
		{Amount: "100", Status: models.BillStatusPaid},
	}
	assert.InDelta(t, 700, MonthlyDebtObligation(bills), 0.001)
}

func TestSummarizePF(t *testing.T) {
	investments := []models.Investment{
		{Type: "pf", CurrentValue: "100000", PFCurrentCompany: "20000", PFPreviousCompany: "10000", PFCurrentAge: "35"},
		{Type: "stock", CurrentValue: "50000"}, // ignored
	}

	s := SummarizePF(investments)
	assert.InDelta(t, 130000, s.Principal, 0.001)
	assert.InDelta(t, 20000, s.CurrentCompanyTotal, 0.001)
	assert.InDelta(t, 10000, s.PreviousCompanyTotal, 0.001)
	assert.InDelta(t, 35, s.InferredCurrentAge, 0.001)
}

func TestSummarizePFWeightedAge(t *testing.T) {
	investments := []models.Investment{
		{Type: "pf", CurrentValue: "100000", PFCurrentAge: "30"},
		{Type: "PF", CurrentValue: "50000", PFCurrentAge: "36"},
	}

	s := SummarizePF(investments)
	assert.InDelta(t, 32, s.InferredCurrentAge, 0.001)
	assert.InDelta(t, 150000, s.Principal, 0.001)
}

func TestSummarizePFNoHoldingsDefaultsAge(t *testing.T) {
	s := SummarizePF([]models.Investment{{Type: "stock", CurrentValue: "5000"}})
	assert.Zero(t, s.Principal)
	assert.InDelta(t, 30, s.InferredCurrentAge, 0.001)
}

func TestRetirementProjection(t *testing.T) {
	e := NewProjectionEngine()
	pf := PFSummary{Principal: 100000, InferredCurrentAge: 30}

	ret := e.RetirementProjection(pf)
	assert.InDelta(t, 100000*math.Pow(1.0825, 20), ret.Age50, 0.01)
	assert.InDelta(t, 100000*math.Pow(1.0825, 25), ret.Age55, 0.01)
	assert.InDelta(t, 100000*math.Pow(1.0825, 30), ret.Age60, 0.01)
}

func TestRetirementProjectionPastTargetAge(t *testing.T) {
	e := NewProjectionEngine()
	pf := PFSummary{Principal: 100000, InferredCurrentAge: 58}

	ret := e.RetirementProjection(pf)
	// Already past 50 and 55: no compounding, principal as-is.
	assert.InDelta(t, 100000, ret.Age50, 0.001)
	assert.InDelta(t, 100000, ret.Age55, 0.001)
	assert.InDelta(t, 100000*math.Pow(1.0825, 2), ret.Age60, 0.01)
}
