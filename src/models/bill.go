package models

// Bill statuses used by the rollover and debt calculations.
const (
	BillStatusPending = "pending"
	BillStatusPaid    = "paid"
)

// Bill is a (possibly recurring) payment obligation. Bills always count as
// expenses in aggregation, regardless of status.
type Bill struct {
	ID             int64  `json:"id,omitempty"`
	UserID         int64  `json:"userId"`
	Name           string `json:"name"`
	Amount         string `json:"amount"`
	Category       string `json:"category"`
	DueDate        string `json:"dueDate"` // YYYY-MM-DD
	Status         string `json:"status"`
	IsRecurring    bool   `json:"isRecurring"`
	AutoPayEnabled bool   `json:"autoPayEnabled"`
	Icon           string `json:"icon,omitempty"`
	Color          string `json:"color,omitempty"`
}

// BillPatch carries a partial bill update; nil fields are left unchanged.
type BillPatch struct {
	Name           *string `json:"name"`
	Amount         *string `json:"amount"`
	Category       *string `json:"category"`
	DueDate        *string `json:"dueDate"`
	Status         *string `json:"status"`
	IsRecurring    *bool   `json:"isRecurring"`
	AutoPayEnabled *bool   `json:"autoPayEnabled"`
	Icon           *string `json:"icon"`
	Color          *string `json:"color"`
}

// Apply overwrites only the fields present in the patch.
func (p BillPatch) Apply(b *Bill) {
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.Amount != nil {
		b.Amount = *p.Amount
	}
	if p.Category != nil {
		b.Category = *p.Category
	}
	if p.DueDate != nil {
		b.DueDate = *p.DueDate
	}
	if p.Status != nil {
		b.Status = *p.Status
	}
	if p.IsRecurring != nil {
		b.IsRecurring = *p.IsRecurring
	}
	if p.AutoPayEnabled != nil {
		b.AutoPayEnabled = *p.AutoPayEnabled
	}
	if p.Icon != nil {
		b.Icon = *p.Icon
	}
	if p.Color != nil {
		b.Color = *p.Color
	}
}
