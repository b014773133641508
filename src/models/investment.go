package models

// InvestmentTypePF tags provident-fund investments, which carry the extra
// employer balance fields below and are projected at a fixed statutory rate.
const InvestmentTypePF = "pf"

// Investment is a holding in one asset class. The Type tag (e.g. "stock",
// "etf", "fd", "bond", "crypto", "real-estate", "pf") selects the expected
// annual return used by projections.
type Investment struct {
	ID           int64  `json:"id,omitempty"`
	UserID       int64  `json:"userId"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Shares       string `json:"shares,omitempty"`
	AvgCost      string `json:"avgCost,omitempty"`
	CurrentValue string `json:"currentValue,omitempty"`

	// Provident-fund specific fields, only meaningful for Type "pf".
	PFCurrentCompany  string `json:"pfCurrentCompany,omitempty"`
	PFPreviousCompany string `json:"pfPreviousCompany,omitempty"`
	PFCurrentAge      string `json:"pfCurrentAge,omitempty"`
}

// InvestmentPatch carries a partial investment update; nil fields are left
// unchanged.
type InvestmentPatch struct {
	Symbol            *string `json:"symbol"`
	Name              *string `json:"name"`
	Type              *string `json:"type"`
	Shares            *string `json:"shares"`
	AvgCost           *string `json:"avgCost"`
	CurrentValue      *string `json:"currentValue"`
	PFCurrentCompany  *string `json:"pfCurrentCompany"`
	PFPreviousCompany *string `json:"pfPreviousCompany"`
	PFCurrentAge      *string `json:"pfCurrentAge"`
}

// Apply overwrites only the fields present in the patch.
func (p InvestmentPatch) Apply(inv *Investment) {
	if p.Symbol != nil {
		inv.Symbol = *p.Symbol
	}
	if p.Name != nil {
		inv.Name = *p.Name
	}
	if p.Type != nil {
		inv.Type = *p.Type
	}
	if p.Shares != nil {
		inv.Shares = *p.Shares
	}
	if p.AvgCost != nil {
		inv.AvgCost = *p.AvgCost
	}
	if p.CurrentValue != nil {
		inv.CurrentValue = *p.CurrentValue
	}
	if p.PFCurrentCompany != nil {
		inv.PFCurrentCompany = *p.PFCurrentCompany
	}
	if p.PFPreviousCompany != nil {
		inv.PFPreviousCompany = *p.PFPreviousCompany
	}
	if p.PFCurrentAge != nil {
		inv.PFCurrentAge = *p.PFCurrentAge
	}
}
