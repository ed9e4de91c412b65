package postgres

import (
	"context"
	"time"

	"library-backend/internal/domain"
	"library-backend/internal/logger"
	"library-backend/internal/repository"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"
)

const loanColumns = `loan_id, loan_date, return_date, book_id, customer_id`

type loanRepository struct {
	db sqlx.ExtContext
}

func NewLoanRepository(db sqlx.ExtContext) repository.LoanRepository {
	return &loanRepository{db: db}
}

// Dates are sent as YYYY-MM-DD text so the session time zone cannot shift them.
func (r *loanRepository) Create(ctx context.Context, l *domain.Loan) error {
	query := `INSERT INTO loans (loan_date, return_date, book_id, customer_id)
	          VALUES ($1::date, $2::date, $3, $4) RETURNING loan_id`
	logger.DatabaseCall("loans.Create", query, "book_id", l.BookID, "customer_id", l.CustomerID)
	err := r.db.QueryRowxContext(ctx, query,
		l.LoanDate.Format(domain.DateLayout),
		l.ReturnDate.Format(domain.DateLayout),
		l.BookID,
		l.CustomerID,
	).Scan(&l.ID)
	logger.DatabaseResult("loans.Create", 1, err, "loan_id", l.ID)
	return translateError(err, "loan")
}

func (r *loanRepository) List(ctx context.Context) ([]domain.Loan, error) {
	loans := []domain.Loan{}
	query := `SELECT ` + loanColumns + ` FROM loans ORDER BY loan_id`
	if err := sqlx.SelectContext(ctx, r.db, &loans, query); err != nil {
		return nil, translateError(err, "loan")
	}
	return loans, nil
}

func (r *loanRepository) ListByBook(ctx context.Context, bookID int32) ([]domain.Loan, error) {
	loans := []domain.Loan{}
	query := `SELECT ` + loanColumns + ` FROM loans WHERE book_id = $1 ORDER BY loan_id`
	if err := sqlx.SelectContext(ctx, r.db, &loans, query, bookID); err != nil {
		return nil, translateError(err, "loan")
	}
	return loans, nil
}

func (r *loanRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.Loan, error) {
	loans := []domain.Loan{}
	query := `SELECT ` + loanColumns + ` FROM loans WHERE customer_id = $1 ORDER BY loan_id`
	if err := sqlx.SelectContext(ctx, r.db, &loans, query, customerID); err != nil {
		return nil, translateError(err, "loan")
	}
	return loans, nil
}

func (r *loanRepository) ListDueBefore(ctx context.Context, date time.Time) ([]domain.Loan, error) {
	sql, args, err := goqu.Dialect(dialect).
		From("loans").
		Select("loan_id", "loan_date", "return_date", "book_id", "customer_id").
		Where(goqu.C("return_date").Lt(goqu.Cast(goqu.V(date.Format(domain.DateLayout)), "DATE"))).
		Order(goqu.C("return_date").Asc(), goqu.C("loan_id").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, err
	}

	loans := []domain.Loan{}
	if err := sqlx.SelectContext(ctx, r.db, &loans, sql, args...); err != nil {
		return nil, translateError(err, "loan")
	}
	return loans, nil
}

func (r *loanRepository) Delete(ctx context.Context, id int32) error {
	query := `DELETE FROM loans WHERE loan_id = $1`
	logger.DatabaseCall("loans.Delete", query, "loan_id", id)
	res, err := r.db.ExecContext(ctx, query, id)
	return checkAffected("loans.Delete", "loan", res, err)
}
