package database

import (
	"database/sql"
	"fmt"

	"github.com/0pain01/Financial-Foresight/src/models"
)

// BudgetRepository persists per-category budgets in SQLite.
type BudgetRepository struct {
	db *sql.DB
}

func NewBudgetRepository(db *sql.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

func (r *BudgetRepository) FindByUserID(userID int64) ([]models.Budget, error) {
	rows, err := r.db.Query(`SELECT id, user_id, category, amount, period, spent FROM budgets WHERE user_id = ? ORDER BY id ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying budgets for user %d: %w", userID, err)
	}
	defer rows.Close()

	budgets := []models.Budget{}
	for rows.Next() {
		var b models.Budget
		if err := rows.Scan(&b.ID, &b.UserID, &b.Category, &b.Amount, &b.Period, &b.Spent); err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

func (r *BudgetRepository) FindByID(id int64) (*models.Budget, error) {
	var b models.Budget
	err := r.db.QueryRow(`SELECT id, user_id, category, amount, period, spent FROM budgets WHERE id = ?`, id).Scan(
		&b.ID, &b.UserID, &b.Category, &b.Amount, &b.Period, &b.Spent)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BudgetRepository) Save(budget *models.Budget) error {
	result, err := r.db.Exec(`
		INSERT INTO budgets (user_id, category, amount, period, spent)
		VALUES (?, ?, ?, ?, ?)`,
		budget.UserID, budget.Category, budget.Amount, budget.Period, budget.Spent)
	if err != nil {
		return fmt.Errorf("inserting budget for user %d: %w", budget.UserID, err)
	}
	budget.ID, err = result.LastInsertId()
	return err
}

func (r *BudgetRepository) Update(budget *models.Budget) error {
	_, err := r.db.Exec(`
		UPDATE budgets SET category = ?, amount = ?, period = ?, spent = ?
		WHERE id = ?`,
		budget.Category, budget.Amount, budget.Period, budget.Spent, budget.ID)
	if err != nil {
		return fmt.Errorf("updating budget %d: %w", budget.ID, err)
	}
	return nil
}

func (r *BudgetRepository) DeleteByID(id int64) error {
	if _, err := r.db.Exec(`DELETE FROM budgets WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting budget %d: %w", id, err)
	}
	return nil
}
