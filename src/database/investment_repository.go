package database

import (
	"database/sql"
	"fmt"

	"github.com/0pain01/Financial-Foresight/src/models"
)

// InvestmentRepository persists investment holdings in SQLite.
type InvestmentRepository struct {
	db *sql.DB
}

func NewInvestmentRepository(db *sql.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

const investmentColumns = `id, user_id, symbol, name, type, shares, avg_cost, current_value,
	pf_current_company, pf_previous_company, pf_current_age`

func (r *InvestmentRepository) FindByUserID(userID int64) ([]models.Investment, error) {
	rows, err := r.db.Query(`SELECT `+investmentColumns+` FROM investments WHERE user_id = ? ORDER BY id ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying investments for user %d: %w", userID, err)
	}
	defer rows.Close()

	investments := []models.Investment{}
	for rows.Next() {
		var inv models.Investment
		if err := rows.Scan(&inv.ID, &inv.UserID, &inv.Symbol, &inv.Name, &inv.Type,
			&inv.Shares, &inv.AvgCost, &inv.CurrentValue,
			&inv.PFCurrentCompany, &inv.PFPreviousCompany, &inv.PFCurrentAge); err != nil {
			return nil, err
		}
		investments = append(investments, inv)
	}
	return investments, rows.Err()
}

func (r *InvestmentRepository) FindByID(id int64) (*models.Investment, error) {
	var inv models.Investment
	err := r.db.QueryRow(`SELECT `+investmentColumns+` FROM investments WHERE id = ?`, id).Scan(
		&inv.ID, &inv.UserID, &inv.Symbol, &inv.Name, &inv.Type,
		&inv.Shares, &inv.AvgCost, &inv.CurrentValue,
		&inv.PFCurrentCompany, &inv.PFPreviousCompany, &inv.PFCurrentAge)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InvestmentRepository) Save(inv *models.Investment) error {
	result, err := r.db.Exec(`
		INSERT INTO investments (user_id, symbol, name, type, shares, avg_cost, current_value,
			pf_current_company, pf_previous_company, pf_current_age)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.UserID, inv.Symbol, inv.Name, inv.Type, inv.Shares, inv.AvgCost, inv.CurrentValue,
		inv.PFCurrentCompany, inv.PFPreviousCompany, inv.PFCurrentAge)
	if err != nil {
		return fmt.Errorf("inserting investment for user %d: %w", inv.UserID, err)
	}
	inv.ID, err = result.LastInsertId()
	return err
}

func (r *InvestmentRepository) Update(inv *models.Investment) error {
	_, err := r.db.Exec(`
		UPDATE investments SET symbol = ?, name = ?, type = ?, shares = ?, avg_cost = ?,
			current_value = ?, pf_current_company = ?, pf_previous_company = ?, pf_current_age = ?
		WHERE id = ?`,
		inv.Symbol, inv.Name, inv.Type, inv.Shares, inv.AvgCost,
		inv.CurrentValue, inv.PFCurrentCompany, inv.PFPreviousCompany, inv.PFCurrentAge,
		inv.ID)
	if err != nil {
		return fmt.Errorf("updating investment %d: %w", inv.ID, err)
	}
	return nil
}

func (r *InvestmentRepository) DeleteByID(id int64) error {
	if _, err := r.db.Exec(`DELETE FROM investments WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting investment %d: %w", id, err)
	}
	return nil
}
