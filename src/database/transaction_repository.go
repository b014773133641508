package database

import (
	"database/sql"
	"fmt"

	"github.com/0pain01/Financial-Foresight/src/models"
)

// TransactionRepository persists transactions in SQLite.
type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const transactionColumns = `id, user_id, amount, description, category, type, date, payment_method,
	context_tag, intent_tag, confidence_tag, goal_impact, is_planned,
	repeat_pattern, parent_id, recurring_group_id, created_at`

func (r *TransactionRepository) FindByUserID(userID int64) ([]models.Transaction, error) {
	rows, err := r.db.Query(`SELECT `+transactionColumns+` FROM transactions WHERE user_id = ? ORDER BY id ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying transactions for user %d: %w", userID, err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *tx)
	}
	return transactions, rows.Err()
}

func (r *TransactionRepository) FindByID(id int64) (*models.Transaction, error) {
	row := r.db.QueryRow(`SELECT `+transactionColumns+` FROM transactions WHERE id = ?`, id)
	tx, err := scanTransaction(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return tx, err
}

func (r *TransactionRepository) Save(tx *models.Transaction) error {
	result, err := r.db.Exec(`
		INSERT INTO transactions (user_id, amount, description, category, type, date, payment_method,
			context_tag, intent_tag, confidence_tag, goal_impact, is_planned,
			repeat_pattern, parent_id, recurring_group_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		tx.UserID, tx.Amount, tx.Description, tx.Category, tx.Type, tx.Date, tx.PaymentMethod,
		tx.ContextTag, tx.IntentTag, tx.ConfidenceTag, tx.GoalImpact, tx.IsPlanned,
		tx.RepeatPattern, tx.ParentID, tx.RecurringGroupID, tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting transaction for user %d: %w", tx.UserID, err)
	}
	tx.ID, err = result.LastInsertId()
	return err
}

func (r *TransactionRepository) Update(tx *models.Transaction) error {
	_, err := r.db.Exec(`
		UPDATE transactions SET amount = ?, description = ?, category = ?, type = ?, date = ?,
			payment_method = ?, context_tag = ?, intent_tag = ?, confidence_tag = ?, goal_impact = ?,
			is_planned = ?, repeat_pattern = ?, parent_id = ?, recurring_group_id = ?
		WHERE id = ?`,
		tx.Amount, tx.Description, tx.Category, tx.Type, tx.Date,
		tx.PaymentMethod, tx.ContextTag, tx.IntentTag, tx.ConfidenceTag, tx.GoalImpact,
		tx.IsPlanned, tx.RepeatPattern, tx.ParentID, tx.RecurringGroupID,
		tx.ID)
	if err != nil {
		return fmt.Errorf("updating transaction %d: %w", tx.ID, err)
	}
	return nil
}

func (r *TransactionRepository) DeleteByID(id int64) error {
	if _, err := r.db.Exec(`DELETE FROM transactions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting transaction %d: %w", id, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*models.Transaction, error) {
	var tx models.Transaction
	err := row.Scan(
		&tx.ID, &tx.UserID, &tx.Amount, &tx.Description, &tx.Category, &tx.Type, &tx.Date, &tx.PaymentMethod,
		&tx.ContextTag, &tx.IntentTag, &tx.ConfidenceTag, &tx.GoalImpact, &tx.IsPlanned,
		&tx.RepeatPattern, &tx.ParentID, &tx.RecurringGroupID, &tx.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}
