package services

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/0pain01/Financial-Foresight/src/models"
	"github.com/0pain01/Financial-Foresight/src/processors"
)

const (
	ckInsights           = "insights_user_%d"
	ckSavingsProjection  = "savings_projection_user_%d"
	ckNetWorthProjection = "networth_projection_user_%d"

	DefaultCacheExpiration = 15 * time.Minute
	CacheCleanupInterval   = 30 * time.Minute
)

// InsightsResult is the payload of the insights endpoint. Field names are
// part of the API contract.
type InsightsResult struct {
	CurrentSavingsRate          float64  `json:"currentSavingsRate"`
	ProjectedMonthlySavings     float64  `json:"projectedMonthlySavings"`
	ProjectedAnnualSavings      float64  `json:"projectedAnnualSavings"`
	RecommendedInvestmentAmount float64  `json:"recommendedInvestmentAmount"`
	processors.Totals
	Insights                  []string `json:"insights"`
	InvestmentRecommendations []string `json:"investmentRecommendations"`
}

// SavingsProjectionResult is the payload of the savings-projection endpoint.
type SavingsProjectionResult struct {
	CurrentSavings          float64 `json:"currentSavings"`
	ProjectedMonthlySavings float64 `json:"projectedMonthlySavings"`
	ProjectedAnnualSavings  float64 `json:"projectedAnnualSavings"`
	TotalInvestments        float64 `json:"totalInvestments"`
	processors.Totals
	FutureNetWorth         processors.HorizonSet    `json:"futureNetWorth"`
	PFInterestRate         float64                  `json:"pfInterestRate"`
	processors.PFSummary
	PFRetirementProjection processors.RetirementSet `json:"pfRetirementProjection"`
}

// NetWorthProjectionResult is the payload of the net-worth-projection
// endpoint.
type NetWorthProjectionResult struct {
	CurrentAssets      float64 `json:"currentAssets"`
	CurrentDebts       float64 `json:"currentDebts"`
	CurrentSavingsRate float64 `json:"currentSavingsRate"`
	processors.Totals
	CurrentSavings    float64               `json:"currentSavings"`
	ProjectedNetWorth processors.HorizonSet `json:"projectedNetWorth"`
	FutureNetWorth    processors.HorizonSet `json:"futureNetWorth"`
}

type insightServiceImpl struct {
	txRepo         TransactionRepository
	billRepo       BillRepository
	incomeRepo     IncomeRepository
	investmentRepo InvestmentRepository
	roller         *RecurringBillService
	engine         *processors.ProjectionEngine
	reportCache    *cache.Cache
}

// NewInsightService wires the read-side pipeline: bill rollover, aggregation
// and projection over the four record repositories.
func NewInsightService(
	txRepo TransactionRepository,
	billRepo BillRepository,
	incomeRepo IncomeRepository,
	investmentRepo InvestmentRepository,
	roller *RecurringBillService,
	reportCache *cache.Cache,
) InsightService {
	return &insightServiceImpl{
		txRepo:         txRepo,
		billRepo:       billRepo,
		incomeRepo:     incomeRepo,
		investmentRepo: investmentRepo,
		roller:         roller,
		engine:         processors.NewProjectionEngine(),
		reportCache:    reportCache,
	}
}

type userRecords struct {
	transactions []models.Transaction
	bills        []models.Bill
	incomes      []models.Income
	investments  []models.Investment
}

func (s *insightServiceImpl) loadRecords(userID int64) (*userRecords, error) {
	transactions, err := s.txRepo.FindByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("loading transactions for user %d: %w", userID, err)
	}
	bills, err := s.billRepo.FindByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("loading bills for user %d: %w", userID, err)
	}
	incomes, err := s.incomeRepo.FindByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("loading incomes for user %d: %w", userID, err)
	}
	investments, err := s.investmentRepo.FindByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("loading investments for user %d: %w", userID, err)
	}
	return &userRecords{transactions, bills, incomes, investments}, nil
}

// Dashboard rolls recurring bills forward, then aggregates. The rollover side
// effect means the dashboard is always recomputed rather than cached.
func (s *insightServiceImpl) Dashboard(userID int64) (*processors.DashboardSummary, error) {
	if err := s.roller.AutoPopulateNextCycleBills(userID); err != nil {
		return nil, fmt.Errorf("rolling recurring bills for user %d: %w", userID, err)
	}
	s.InvalidateUserCache(userID)

	rec, err := s.loadRecords(userID)
	if err != nil {
		return nil, err
	}
	summary := processors.Summarize(rec.transactions, rec.bills, rec.incomes, rec.investments)
	return &summary, nil
}

func (s *insightServiceImpl) Insights(userID int64) (*InsightsResult, error) {
	cacheKey := fmt.Sprintf(ckInsights, userID)
	if cached, found := s.reportCache.Get(cacheKey); found {
		return cached.(*InsightsResult), nil
	}

	rec, err := s.loadRecords(userID)
	if err != nil {
		return nil, err
	}

	totals := processors.SumTotals(rec.transactions, rec.bills, rec.incomes)
	currentSavings := totals.TotalIncome - totals.TotalExpenses

	result := &InsightsResult{
		CurrentSavingsRate:          processors.SavingsRate(totals.TotalIncome, totals.TotalExpenses),
		ProjectedMonthlySavings:     currentSavings,
		ProjectedAnnualSavings:      currentSavings * 12,
		RecommendedInvestmentAmount: currentSavings * 0.3,
		Totals:                      totals,
		Insights: []string{
			"Your spending on Food & Dining is 15% above average",
			"Consider setting up automatic savings transfers",
			"Your emergency fund should cover 3-6 months of expenses",
		},
		InvestmentRecommendations: []string{
			"Consider increasing your 401(k) contribution",
			"Diversify your investment portfolio",
			"Look into index funds for long-term growth",
		},
	}

	s.reportCache.Set(cacheKey, result, cache.DefaultExpiration)
	return result, nil
}

func (s *insightServiceImpl) SavingsProjection(userID int64) (*SavingsProjectionResult, error) {
	cacheKey := fmt.Sprintf(ckSavingsProjection, userID)
	if cached, found := s.reportCache.Get(cacheKey); found {
		return cached.(*SavingsProjectionResult), nil
	}

	rec, err := s.loadRecords(userID)
	if err != nil {
		return nil, err
	}

	totals := processors.SumTotals(rec.transactions, rec.bills, rec.incomes)
	currentSavings := totals.TotalIncome - totals.TotalExpenses
	pf := processors.SummarizePF(rec.investments)

	result := &SavingsProjectionResult{
		CurrentSavings:          currentSavings,
		ProjectedMonthlySavings: currentSavings,
		ProjectedAnnualSavings:  currentSavings * 12,
		TotalInvestments:        processors.SumInvestments(rec.investments),
		Totals:                  totals,
		FutureNetWorth:          s.engine.WealthHorizons(rec.investments, currentSavings),
		PFInterestRate:          processors.PFInterestRate,
		PFSummary:               pf,
		PFRetirementProjection:  s.engine.RetirementProjection(pf),
	}

	s.reportCache.Set(cacheKey, result, cache.DefaultExpiration)
	return result, nil
}

func (s *insightServiceImpl) NetWorthProjection(userID int64) (*NetWorthProjectionResult, error) {
	cacheKey := fmt.Sprintf(ckNetWorthProjection, userID)
	if cached, found := s.reportCache.Get(cacheKey); found {
		return cached.(*NetWorthProjectionResult), nil
	}

	rec, err := s.loadRecords(userID)
	if err != nil {
		return nil, err
	}

	totals := processors.SumTotals(rec.transactions, rec.bills, rec.incomes)
	currentSavings := totals.TotalIncome - totals.TotalExpenses
	totalInvestments := processors.SumInvestments(rec.investments)
	monthlyDebt := processors.MonthlyDebtObligation(rec.bills)
	projected := s.engine.NetWorthHorizons(rec.investments, currentSavings, monthlyDebt)

	result := &NetWorthProjectionResult{
		CurrentAssets:      currentSavings + totalInvestments,
		CurrentDebts:       monthlyDebt,
		CurrentSavingsRate: processors.SavingsRate(totals.TotalIncome, totals.TotalExpenses),
		Totals:             totals,
		CurrentSavings:     currentSavings,
		ProjectedNetWorth:  projected,
		FutureNetWorth:     projected,
	}

	s.reportCache.Set(cacheKey, result, cache.DefaultExpiration)
	return result, nil
}

// InvalidateUserCache drops every cached insight payload for the user. Called
// after any write to the user's records.
func (s *insightServiceImpl) InvalidateUserCache(userID int64) {
	s.reportCache.Delete(fmt.Sprintf(ckInsights, userID))
	s.reportCache.Delete(fmt.Sprintf(ckSavingsProjection, userID))
	s.reportCache.Delete(fmt.Sprintf(ckNetWorthProjection, userID))
}
