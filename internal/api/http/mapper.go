package http

import (
	"library-backend/internal/domain"
)

type loanView struct {
	LoanID     int32  `json:"loanID"`
	LoanDate   string `json:"loanDate"`
	ReturnDate string `json:"returnDate"`
	BookID     int32  `json:"bookID"`
	CustomerID string `json:"customerID"`
}

func mapDomainLoanToView(l domain.Loan) loanView {
	return loanView{
		LoanID:     l.ID,
		LoanDate:   l.LoanDate.Format(domain.DateLayout),
		ReturnDate: l.ReturnDate.Format(domain.DateLayout),
		BookID:     l.BookID,
		CustomerID: l.CustomerID,
	}
}

func mapDomainLoansToView(loans []domain.Loan) []loanView {
	views := make([]loanView, 0, len(loans))
	for _, l := range loans {
		views = append(views, mapDomainLoanToView(l))
	}
	return views
}

// nonNil keeps empty lists rendering as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
