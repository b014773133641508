package database

import (
	"database/sql"
	"fmt"

	"github.com/0pain01/Financial-Foresight/src/models"
)

// IncomeRepository persists income sources in SQLite.
type IncomeRepository struct {
	db *sql.DB
}

func NewIncomeRepository(db *sql.DB) *IncomeRepository {
	return &IncomeRepository{db: db}
}

func (r *IncomeRepository) FindByUserID(userID int64) ([]models.Income, error) {
	rows, err := r.db.Query(`SELECT id, user_id, source, amount, frequency, is_active FROM incomes WHERE user_id = ? ORDER BY id ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying incomes for user %d: %w", userID, err)
	}
	defer rows.Close()

	incomes := []models.Income{}
	for rows.Next() {
		var in models.Income
		if err := rows.Scan(&in.ID, &in.UserID, &in.Source, &in.Amount, &in.Frequency, &in.IsActive); err != nil {
			return nil, err
		}
		incomes = append(incomes, in)
	}
	return incomes, rows.Err()
}

func (r *IncomeRepository) FindByID(id int64) (*models.Income, error) {
	var in models.Income
	err := r.db.QueryRow(`SELECT id, user_id, source, amount, frequency, is_active FROM incomes WHERE id = ?`, id).Scan(
		&in.ID, &in.UserID, &in.Source, &in.Amount, &in.Frequency, &in.IsActive)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &in, nil
}

func (r *IncomeRepository) Save(income *models.Income) error {
	result, err := r.db.Exec(`
		INSERT INTO incomes (user_id, source, amount, frequency, is_active)
		VALUES (?, ?, ?, ?, ?)`,
		income.UserID, income.Source, income.Amount, income.Frequency, income.IsActive)
	if err != nil {
		return fmt.Errorf("inserting income for user %d: %w", income.UserID, err)
	}
	income.ID, err = result.LastInsertId()
	return err
}

func (r *IncomeRepository) Update(income *models.Income) error {
	_, err := r.db.Exec(`
		UPDATE incomes SET source = ?, amount = ?, frequency = ?, is_active = ?
		WHERE id = ?`,
		income.Source, income.Amount, income.Frequency, income.IsActive, income.ID)
	if err != nil {
		return fmt.Errorf("updating income %d: %w", income.ID, err)
	}
	return nil
}

func (r *IncomeRepository) DeleteByID(id int64) error {
	if _, err := r.db.Exec(`DELETE FROM incomes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting income %d: %w", id, err)
	}
	return nil
}
