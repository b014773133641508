package models

// Budget is a per-category spending target. It is managed by the CRUD layer
// only; the derivation pipeline does not consume it.
type Budget struct {
	ID       int64  `json:"id,omitempty"`
	UserID   int64  `json:"userId"`
	Category string `json:"category"`
	Amount   string `json:"amount"`
	Period   string `json:"period"`
	Spent    string `json:"spent"`
}

// BudgetPatch carries a partial budget update; nil fields are left unchanged.
type BudgetPatch struct {
	Category *string `json:"category"`
	Amount   *string `json:"amount"`
	Period   *string `json:"period"`
	Spent    *string `json:"spent"`
}

// Apply overwrites only the fields present in the patch.
func (p BudgetPatch) Apply(b *Budget) {
	if p.Category != nil {
		b.Category = *p.Category
	}
	if p.Amount != nil {
		b.Amount = *p.Amount
	}
	if p.Period != nil {
		b.Period = *p.Period
	}
	if p.Spent != nil {
		b.Spent = *p.Spent
	}
}
