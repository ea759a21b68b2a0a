package views

import (
	"rwrd/core"
)

// Loan loan view with outstanding computed at read time
type Loan struct {
	core.Loan
	StatusText  string `json:"status_text"`
	Outstanding uint64 `json:"outstanding"`
}

// NewLoan build the loan view
func NewLoan(loan *core.Loan, outstanding uint64) *Loan {
	return &Loan{
		Loan:        *loan,
		StatusText:  loan.Status.String(),
		Outstanding: outstanding,
	}
}
