package domain

import (
	"strings"
	"time"
)

// DateLayout is the calendar date format used on the wire and in queries.
const DateLayout = "2006-01-02"

// loanDurationDays maps a book type to the number of days a loan lasts.
var loanDurationDays = map[int32]int{
	BookTypeStandard: 10,
	BookTypeShort:    5,
	BookTypeExpress:  2,
}

type Loan struct {
	ID         int32     `db:"loan_id"`
	LoanDate   time.Time `db:"loan_date"`
	ReturnDate time.Time `db:"return_date"`
	BookID     int32     `db:"book_id"`
	CustomerID string    `db:"customer_id"`
}

func ValidBookType(bookType int32) bool {
	_, ok := loanDurationDays[bookType]
	return ok
}

// LoanDuration returns the loan length in days for a book type.
func LoanDuration(bookType int32) (int, error) {
	days, ok := loanDurationDays[bookType]
	if !ok {
		return 0, Validationf("invalid bookType %d, it must be 1, 2, or 3", bookType)
	}
	return days, nil
}

// ParseLoanDate parses a YYYY-MM-DD string into a UTC midnight date.
func ParseLoanDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, Validationf("loanDate is required")
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, Validationf("invalid date format %q, please use the format YYYY-MM-DD", s)
	}
	return d, nil
}

// DateOf truncates t to its calendar date in t's location, expressed as UTC midnight.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NewLoan builds a loan for book, deriving the return date from the book type.
func NewLoan(loanDate time.Time, book *Book, customerID string) (*Loan, error) {
	days, err := LoanDuration(book.BookType)
	if err != nil {
		return nil, err
	}
	start := DateOf(loanDate)
	return &Loan{
		LoanDate:   start,
		ReturnDate: start.AddDate(0, 0, days),
		BookID:     book.ID,
		CustomerID: customerID,
	}, nil
}

// IsLate reports whether the return date is strictly before today.
func (l *Loan) IsLate(today time.Time) bool {
	return DateOf(l.ReturnDate).Before(DateOf(today))
}

// DaysOverdue is zero for loans that are not late.
func (l *Loan) DaysOverdue(today time.Time) int {
	if !l.IsLate(today) {
		return 0
	}
	return int(DateOf(today).Sub(DateOf(l.ReturnDate)).Hours() / 24)
}
