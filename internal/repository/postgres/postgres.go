package postgres

import (
	"context"
	"fmt"

	"library-backend/internal/logger"
	"library-backend/internal/repository"

	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const dialect = "postgres"

// Store implements repository.Store. A Store created by NewStore runs
// statements directly on the pool; the Store passed to a WithinTx callback
// runs them on the transaction.
type Store struct {
	db        *sqlx.DB
	tx        *sqlx.Tx
	books     repository.BookRepository
	customers repository.CustomerRepository
	loans     repository.LoanRepository
}

func NewStore(db *sqlx.DB) *Store {
	return newStore(db, nil, db)
}

func newStore(db *sqlx.DB, tx *sqlx.Tx, q sqlx.ExtContext) *Store {
	return &Store{
		db:        db,
		tx:        tx,
		books:     NewBookRepository(q),
		customers: NewCustomerRepository(q),
		loans:     NewLoanRepository(q),
	}
}

func (s *Store) Books() repository.BookRepository {
	return s.books
}

func (s *Store) Customers() repository.CustomerRepository {
	return s.customers
}

func (s *Store) Loans() repository.LoanRepository {
	return s.loans
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) WithinTx(ctx context.Context, fn func(tx repository.Store) error) (err error) {
	// Already inside a transaction: join it.
	if s.tx != nil {
		return fn(s)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(newStore(s.db, tx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Error("Failed to roll back transaction", "error", rbErr, "cause", err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
