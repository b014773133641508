package models

import "time"

// Transaction types. Every stored transaction is one of these.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Transaction is a single financial movement for one user. Monetary amounts
// are stored as decimal-formatted text and parsed on read; the stored string
// is never rewritten by the pipeline.
type Transaction struct {
	ID            int64  `json:"id,omitempty"`
	UserID        int64  `json:"userId"`
	Amount        string `json:"amount"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	Type          string `json:"type"` // "income" or "expense"
	Date          string `json:"date"` // YYYY-MM-DD
	PaymentMethod string `json:"paymentMethod,omitempty"`

	// Derived tags, filled by the enricher when the caller leaves them empty.
	ContextTag    string `json:"contextTag,omitempty"`
	IntentTag     string `json:"intentTag,omitempty"`
	ConfidenceTag string `json:"confidenceTag,omitempty"`
	GoalImpact    string `json:"goalImpact,omitempty"`
	IsPlanned     bool   `json:"isPlanned"`

	// Recurrence fields. RecurringGroupID links a source transaction to the
	// future instances generated from it.
	RepeatPattern    string `json:"repeatPattern,omitempty"` // "none", "weekly", "monthly", "yearly"
	ParentID         int64  `json:"parentTransactionId,omitempty"`
	RecurringGroupID string `json:"recurringGroupId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// TransactionPatch carries a partial update. A nil field means "leave
// unchanged"; a pointer to the zero value means "set to empty". This keeps
// clearing a field distinguishable from omitting it.
type TransactionPatch struct {
	Amount        *string `json:"amount"`
	Description   *string `json:"description"`
	Category      *string `json:"category"`
	Type          *string `json:"type"`
	Date          *string `json:"date"`
	PaymentMethod *string `json:"paymentMethod"`
	ContextTag    *string `json:"contextTag"`
	IntentTag     *string `json:"intentTag"`
	ConfidenceTag *string `json:"confidenceTag"`
	IsPlanned     *bool   `json:"isPlanned"`
	RepeatPattern *string `json:"repeatPattern"`
}

// Apply overwrites only the fields present in the patch.
func (p TransactionPatch) Apply(tx *Transaction) {
	if p.Amount != nil {
		tx.Amount = *p.Amount
	}
	if p.Description != nil {
		tx.Description = *p.Description
	}
	if p.Category != nil {
		tx.Category = *p.Category
	}
	if p.Type != nil {
		tx.Type = *p.Type
	}
	if p.Date != nil {
		tx.Date = *p.Date
	}
	if p.PaymentMethod != nil {
		tx.PaymentMethod = *p.PaymentMethod
	}
	if p.ContextTag != nil {
		tx.ContextTag = *p.ContextTag
	}
	if p.IntentTag != nil {
		tx.IntentTag = *p.IntentTag
	}
	if p.ConfidenceTag != nil {
		tx.ConfidenceTag = *p.ConfidenceTag
	}
	if p.IsPlanned != nil {
		tx.IsPlanned = *p.IsPlanned
	}
	if p.RepeatPattern != nil {
		tx.RepeatPattern = *p.RepeatPattern
	}
}
