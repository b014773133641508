package services

import (
	"errors"

	"github.com/0pain01/Financial-Foresight/src/models"
	"github.com/0pain01/Financial-Foresight/src/processors"
)

// Common service errors surfaced to the handler layer.
var (
	ErrNotFound  = errors.New("record not found")
	ErrForbidden = errors.New("record does not belong to the requesting user")
)

// Repositories give the pipeline simple keyed access to stored records. All
// queries are scoped to one owner; ownership checks on single records happen
// in the services.

type TransactionRepository interface {
	FindByUserID(userID int64) ([]models.Transaction, error)
	FindByID(id int64) (*models.Transaction, error)
	Save(tx *models.Transaction) error
	Update(tx *models.Transaction) error
	DeleteByID(id int64) error
}

type BillRepository interface {
	FindByUserID(userID int64) ([]models.Bill, error)
	FindByID(id int64) (*models.Bill, error)
	Save(bill *models.Bill) error
	Update(bill *models.Bill) error
	DeleteByID(id int64) error
}

type IncomeRepository interface {
	FindByUserID(userID int64) ([]models.Income, error)
	FindByID(id int64) (*models.Income, error)
	Save(income *models.Income) error
	Update(income *models.Income) error
	DeleteByID(id int64) error
}

type InvestmentRepository interface {
	FindByUserID(userID int64) ([]models.Investment, error)
	FindByID(id int64) (*models.Investment, error)
	Save(inv *models.Investment) error
	Update(inv *models.Investment) error
	DeleteByID(id int64) error
}

type BudgetRepository interface {
	FindByUserID(userID int64) ([]models.Budget, error)
	FindByID(id int64) (*models.Budget, error)
	Save(budget *models.Budget) error
	Update(budget *models.Budget) error
	DeleteByID(id int64) error
}

// TransactionService is the write-side pipeline entry point: creation runs
// enrichment and recurrence expansion, updates apply explicit patches.
type TransactionService interface {
	List(userID int64) ([]models.Transaction, error)
	Create(userID int64, tx *models.Transaction) (*models.Transaction, error)
	Update(userID, id int64, patch models.TransactionPatch) (*models.Transaction, error)
	Delete(userID, id int64) error
	ImportRows(userID int64, rows []models.Transaction) (imported int, err error)
}

// InsightService is the read-side pipeline entry point producing the
// dashboard and projection payloads.
type InsightService interface {
	Dashboard(userID int64) (*processors.DashboardSummary, error)
	Insights(userID int64) (*InsightsResult, error)
	SavingsProjection(userID int64) (*SavingsProjectionResult, error)
	NetWorthProjection(userID int64) (*NetWorthProjectionResult, error)
	InvalidateUserCache(userID int64)
}
