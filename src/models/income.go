package models

// Income is a recurring income source. Only active incomes count toward
// aggregate income.
type Income struct {
	ID        int64  `json:"id,omitempty"`
	UserID    int64  `json:"userId"`
	Source    string `json:"source"`
	Amount    string `json:"amount"`
	Frequency string `json:"frequency"`
	IsActive  bool   `json:"isActive"`
}

// IncomePatch carries a partial income update; nil fields are left unchanged.
type IncomePatch struct {
	Source    *string `json:"source"`
	Amount    *string `json:"amount"`
	Frequency *string `json:"frequency"`
	IsActive  *bool   `json:"isActive"`
}

// Apply overwrites only the fields present in the patch.
func (p IncomePatch) Apply(in *Income) {
	if p.Source != nil {
		in.Source = *p.Source
	}
	if p.Amount != nil {
		in.Amount = *p.Amount
	}
	if p.Frequency != nil {
		in.Frequency = *p.Frequency
	}
	if p.IsActive != nil {
		in.IsActive = *p.IsActive
	}
}
