package service

import (
	"context"
	"errors"
	"time"

	"library-backend/internal/domain"
	"library-backend/internal/logger"
)

type BookService interface {
	CreateBook(ctx context.Context, book *domain.Book) error
	GetBook(ctx context.Context, id int32) (*domain.Book, error)
	ListBooks(ctx context.Context) ([]domain.Book, error)
	SearchBooks(ctx context.Context, query string) ([]domain.Book, error)
	UpdateBook(ctx context.Context, id int32, update domain.BookUpdate) (*domain.Book, error)
	DeleteBook(ctx context.Context, id int32) error
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, customer *domain.Customer) error
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	SearchCustomers(ctx context.Context, query string) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, id string, update domain.CustomerUpdate) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

type LoanService interface {
	CreateLoan(ctx context.Context, loanDate string, bookID int32, customerID string) (*domain.Loan, error)
	EndLoan(ctx context.Context, title string) (*domain.Loan, error)
	ListLoans(ctx context.Context) ([]domain.Loan, error)
	ListLateLoans(ctx context.Context) ([]domain.Loan, error)
	// Today is the calendar date late loans are measured against.
	Today() time.Time
}

// exitWithError logs a failed call. Validation, conflict and not-found
// outcomes are answers to the caller, not failures, and stay at debug level.
func exitWithError(method string, err error, args ...any) {
	if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrNotFound) {
		allArgs := append([]any{"method", method, "event", "exit", "reason", err.Error()}, args...)
		logger.Debug("← Method rejected request", allArgs...)
		return
	}
	logger.ExitMethodWithError(method, err, args...)
}
