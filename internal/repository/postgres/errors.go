package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"library-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
)

// sqlState extracts the SQLSTATE code from either supported driver.
func sqlState(err error) (string, string) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Constraint
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}

// translateError maps driver errors onto domain error kinds. entity names the
// row being read or written, e.g. "book".
func translateError(err error, entity string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundf("%s not found", entity)
	}

	code, constraint := sqlState(err)
	switch code {
	case sqlStateUniqueViolation:
		switch constraint {
		case "books_title_key":
			return domain.Conflictf("a book with this title already exists")
		case "customers_pkey":
			return domain.Conflictf("customerID is already in use")
		case "loans_book_id_key":
			return domain.Conflictf("book already loaned")
		}
		return domain.Conflictf("%s already exists", entity)
	case sqlStateForeignKeyViolation:
		return domain.NotFoundf("%s references a missing row", entity)
	}
	return fmt.Errorf("%s query failed: %w", entity, err)
}
