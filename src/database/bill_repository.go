package database

import (
	"database/sql"
	"fmt"

	"github.com/0pain01/Financial-Foresight/src/models"
)

// BillRepository persists bills in SQLite.
type BillRepository struct {
	db *sql.DB
}

func NewBillRepository(db *sql.DB) *BillRepository {
	return &BillRepository{db: db}
}

const billColumns = `id, user_id, name, amount, category, due_date, status, is_recurring, auto_pay_enabled, icon, color`

func (r *BillRepository) FindByUserID(userID int64) ([]models.Bill, error) {
	rows, err := r.db.Query(`SELECT `+billColumns+` FROM bills WHERE user_id = ? ORDER BY id ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying bills for user %d: %w", userID, err)
	}
	defer rows.Close()

	bills := []models.Bill{}
	for rows.Next() {
		var b models.Bill
		if err := rows.Scan(&b.ID, &b.UserID, &b.Name, &b.Amount, &b.Category, &b.DueDate,
			&b.Status, &b.IsRecurring, &b.AutoPayEnabled, &b.Icon, &b.Color); err != nil {
			return nil, err
		}
		bills = append(bills, b)
	}
	return bills, rows.Err()
}

func (r *BillRepository) FindByID(id int64) (*models.Bill, error) {
	var b models.Bill
	err := r.db.QueryRow(`SELECT `+billColumns+` FROM bills WHERE id = ?`, id).Scan(
		&b.ID, &b.UserID, &b.Name, &b.Amount, &b.Category, &b.DueDate,
		&b.Status, &b.IsRecurring, &b.AutoPayEnabled, &b.Icon, &b.Color)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BillRepository) Save(bill *models.Bill) error {
	result, err := r.db.Exec(`
		INSERT INTO bills (user_id, name, amount, category, due_date, status, is_recurring, auto_pay_enabled, icon, color)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		bill.UserID, bill.Name, bill.Amount, bill.Category, bill.DueDate,
		bill.Status, bill.IsRecurring, bill.AutoPayEnabled, bill.Icon, bill.Color)
	if err != nil {
		return fmt.Errorf("inserting bill for user %d: %w", bill.UserID, err)
	}
	bill.ID, err = result.LastInsertId()
	return err
}

func (r *BillRepository) Update(bill *models.Bill) error {
	_, err := r.db.Exec(`
		UPDATE bills SET name = ?, amount = ?, category = ?, due_date = ?, status = ?,
			is_recurring = ?, auto_pay_enabled = ?, icon = ?, color = ?
		WHERE id = ?`,
		bill.Name, bill.Amount, bill.Category, bill.DueDate, bill.Status,
		bill.IsRecurring, bill.AutoPayEnabled, bill.Icon, bill.Color,
		bill.ID)
	if err != nil {
		return fmt.Errorf("updating bill %d: %w", bill.ID, err)
	}
	return nil
}

func (r *BillRepository) DeleteByID(id int64) error {
	if _, err := r.db.Exec(`DELETE FROM bills WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting bill %d: %w", id, err)
	}
	return nil
}
