package repository

import (
	"context"
	"time"

	"library-backend/internal/domain"
)

// Lookups that miss return an error wrapping domain.ErrNotFound.
// Unique-key violations return an error wrapping domain.ErrConflict.

type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) error
	GetByID(ctx context.Context, id int32) (*domain.Book, error)
	// GetByIDForUpdate locks the book row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id int32) (*domain.Book, error)
	// GetByTitle matches the title exactly, as the unique constraint does.
	GetByTitle(ctx context.Context, title string) (*domain.Book, error)
	// FindByTitleFold matches the title case-insensitively and locks the row.
	FindByTitleFold(ctx context.Context, title string) (*domain.Book, error)
	List(ctx context.Context) ([]domain.Book, error)
	Search(ctx context.Context, query string) ([]domain.Book, error)
	Update(ctx context.Context, book *domain.Book) error
	UpdateStatus(ctx context.Context, id int32, status domain.BookStatus) error
	Delete(ctx context.Context, id int32) error
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	// GetByIDForUpdate locks the customer row until the surrounding transaction
	// ends. Loan inserts referencing the customer wait on it.
	GetByIDForUpdate(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Search(ctx context.Context, query string) ([]domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id string) error
}

type LoanRepository interface {
	Create(ctx context.Context, loan *domain.Loan) error
	List(ctx context.Context) ([]domain.Loan, error)
	ListByBook(ctx context.Context, bookID int32) ([]domain.Loan, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Loan, error)
	// ListDueBefore returns loans whose return date is strictly before date.
	ListDueBefore(ctx context.Context, date time.Time) ([]domain.Loan, error)
	Delete(ctx context.Context, id int32) error
}

// Store hands out repositories bound to one database handle or transaction.
type Store interface {
	Books() BookRepository
	Customers() CustomerRepository
	Loans() LoanRepository
	// WithinTx runs fn with a Store bound to a single transaction. The
	// transaction commits when fn returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(tx Store) error) error
	Ping(ctx context.Context) error
}
