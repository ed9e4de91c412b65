package service

import (
	"context"
	"strings"
	"time"

	"library-backend/internal/domain"
	"library-backend/internal/logger"
	"library-backend/internal/repository"
)

type loanService struct {
	store repository.Store
	now   func() time.Time
}

// NewLoanService creates the loan rules. now supplies the current time in the
// library's time zone; nil means time.Now.
func NewLoanService(store repository.Store, now func() time.Time) LoanService {
	if now == nil {
		now = time.Now
	}
	return &loanService{store: store, now: now}
}

func (s *loanService) Today() time.Time {
	return domain.DateOf(s.now())
}

// CreateLoan lends a book to a customer. The book row is locked, flipped to
// unavailable and the loan inserted in one transaction.
func (s *loanService) CreateLoan(ctx context.Context, loanDate string, bookID int32, customerID string) (*domain.Loan, error) {
	logger.EnterMethod("loanService.CreateLoan", "bookID", bookID, "customerID", customerID, "loanDate", loanDate)

	date, err := domain.ParseLoanDate(loanDate)
	if err != nil {
		exitWithError("loanService.CreateLoan", err)
		return nil, err
	}
	if strings.TrimSpace(customerID) == "" {
		err := domain.Validationf("required fields are missing in the request data (must be: loanDate, bookID, and customerID)")
		exitWithError("loanService.CreateLoan", err)
		return nil, err
	}

	var loan *domain.Loan
	err = s.store.WithinTx(ctx, func(tx repository.Store) error {
		if _, err := tx.Customers().GetByID(ctx, customerID); err != nil {
			return err
		}
		book, err := tx.Books().GetByIDForUpdate(ctx, bookID)
		if err != nil {
			return err
		}
		if !book.IsAvailable() {
			return domain.Conflictf("book already loaned")
		}

		loan, err = domain.NewLoan(date, book, customerID)
		if err != nil {
			return err
		}
		if err := tx.Books().UpdateStatus(ctx, book.ID, domain.BookStatusUnavailable); err != nil {
			return err
		}
		return tx.Loans().Create(ctx, loan)
	})
	if err != nil {
		exitWithError("loanService.CreateLoan", err, "bookID", bookID, "customerID", customerID)
		return nil, err
	}

	logger.ExitMethod("loanService.CreateLoan", "loanID", loan.ID, "returnDate", loan.ReturnDate.Format(domain.DateLayout))
	return loan, nil
}

// EndLoan returns the book whose title matches case-insensitively, deleting
// its loan and making the book available again.
func (s *loanService) EndLoan(ctx context.Context, title string) (*domain.Loan, error) {
	logger.EnterMethod("loanService.EndLoan", "title", title)

	if title == "" {
		err := domain.Validationf("search query is missing (parameter: q)")
		exitWithError("loanService.EndLoan", err)
		return nil, err
	}

	var ended *domain.Loan
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		book, err := tx.Books().FindByTitleFold(ctx, title)
		if err != nil {
			return err
		}
		loans, err := tx.Loans().ListByBook(ctx, book.ID)
		if err != nil {
			return err
		}
		switch len(loans) {
		case 0:
			return domain.Conflictf("no loan found for this book")
		case 1:
		default:
			logger.Error("Book has more than one active loan",
				"bookID", book.ID, "title", book.Title, "loans", len(loans))
			return domain.InvariantViolationf("book %d has %d active loans", book.ID, len(loans))
		}

		if err := tx.Books().UpdateStatus(ctx, book.ID, domain.BookStatusAvailable); err != nil {
			return err
		}
		if err := tx.Loans().Delete(ctx, loans[0].ID); err != nil {
			return err
		}
		ended = &loans[0]
		return nil
	})
	if err != nil {
		exitWithError("loanService.EndLoan", err, "title", title)
		return nil, err
	}

	logger.ExitMethod("loanService.EndLoan", "loanID", ended.ID, "bookID", ended.BookID)
	return ended, nil
}

// ListLoans reports an empty loan set as domain.ErrNotFound.
func (s *loanService) ListLoans(ctx context.Context) ([]domain.Loan, error) {
	loans, err := s.store.Loans().List(ctx)
	if err != nil {
		return nil, err
	}
	if len(loans) == 0 {
		return nil, domain.NotFoundf("there are no active loans")
	}
	return loans, nil
}

// ListLateLoans returns loans whose return date is before today. An empty
// result is not an error.
func (s *loanService) ListLateLoans(ctx context.Context) ([]domain.Loan, error) {
	return s.store.Loans().ListDueBefore(ctx, s.Today())
}
