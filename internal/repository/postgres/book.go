package postgres

import (
	"context"

	"library-backend/internal/domain"
	"library-backend/internal/logger"
	"library-backend/internal/repository"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"
)

const bookColumns = `book_id, title, author, published_year, status, book_type`

var bookSelectColumns = []any{"book_id", "title", "author", "published_year", "status", "book_type"}

type bookRepository struct {
	db sqlx.ExtContext
}

func NewBookRepository(db sqlx.ExtContext) repository.BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, b *domain.Book) error {
	query := `INSERT INTO books (title, author, published_year, status, book_type)
	          VALUES ($1, $2, $3, $4, $5) RETURNING book_id`
	logger.DatabaseCall("books.Create", query, "title", b.Title)
	err := r.db.QueryRowxContext(ctx, query, b.Title, b.Author, b.PublishedYear, b.Status, b.BookType).Scan(&b.ID)
	logger.DatabaseResult("books.Create", 1, err, "book_id", b.ID)
	return translateError(err, "book")
}

func (r *bookRepository) GetByID(ctx context.Context, id int32) (*domain.Book, error) {
	b := &domain.Book{}
	query := `SELECT ` + bookColumns + ` FROM books WHERE book_id = $1`
	if err := sqlx.GetContext(ctx, r.db, b, query, id); err != nil {
		return nil, translateError(err, "book")
	}
	return b, nil
}

func (r *bookRepository) GetByIDForUpdate(ctx context.Context, id int32) (*domain.Book, error) {
	b := &domain.Book{}
	query := `SELECT ` + bookColumns + ` FROM books WHERE book_id = $1 FOR UPDATE`
	if err := sqlx.GetContext(ctx, r.db, b, query, id); err != nil {
		return nil, translateError(err, "book")
	}
	return b, nil
}

func (r *bookRepository) GetByTitle(ctx context.Context, title string) (*domain.Book, error) {
	b := &domain.Book{}
	query := `SELECT ` + bookColumns + ` FROM books WHERE title = $1`
	if err := sqlx.GetContext(ctx, r.db, b, query, title); err != nil {
		return nil, translateError(err, "book")
	}
	return b, nil
}

func (r *bookRepository) FindByTitleFold(ctx context.Context, title string) (*domain.Book, error) {
	// Titles are unique case-sensitively, so several rows may fold to the
	// same title; the oldest book wins.
	b := &domain.Book{}
	query := `SELECT ` + bookColumns + ` FROM books WHERE lower(title) = lower($1)
	          ORDER BY book_id LIMIT 1 FOR UPDATE`
	if err := sqlx.GetContext(ctx, r.db, b, query, title); err != nil {
		return nil, translateError(err, "book")
	}
	return b, nil
}

func (r *bookRepository) List(ctx context.Context) ([]domain.Book, error) {
	books := []domain.Book{}
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY book_id`
	if err := sqlx.SelectContext(ctx, r.db, &books, query); err != nil {
		return nil, translateError(err, "book")
	}
	return books, nil
}

func (r *bookRepository) Search(ctx context.Context, query string) ([]domain.Book, error) {
	sql, args, err := goqu.Dialect(dialect).
		From("books").
		Select(bookSelectColumns...).
		Where(goqu.C("title").ILike(containsPattern(query))).
		Order(goqu.C("book_id").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, err
	}

	books := []domain.Book{}
	if err := sqlx.SelectContext(ctx, r.db, &books, sql, args...); err != nil {
		return nil, translateError(err, "book")
	}
	return books, nil
}

func (r *bookRepository) Update(ctx context.Context, b *domain.Book) error {
	query := `UPDATE books SET title = $1, author = $2, published_year = $3, book_type = $4 WHERE book_id = $5`
	logger.DatabaseCall("books.Update", query, "book_id", b.ID)
	res, err := r.db.ExecContext(ctx, query, b.Title, b.Author, b.PublishedYear, b.BookType, b.ID)
	return checkAffected("books.Update", "book", res, err)
}

func (r *bookRepository) UpdateStatus(ctx context.Context, id int32, status domain.BookStatus) error {
	query := `UPDATE books SET status = $1 WHERE book_id = $2`
	logger.DatabaseCall("books.UpdateStatus", query, "book_id", id, "status", status)
	res, err := r.db.ExecContext(ctx, query, status, id)
	return checkAffected("books.UpdateStatus", "book", res, err)
}

func (r *bookRepository) Delete(ctx context.Context, id int32) error {
	query := `DELETE FROM books WHERE book_id = $1`
	logger.DatabaseCall("books.Delete", query, "book_id", id)
	res, err := r.db.ExecContext(ctx, query, id)
	return checkAffected("books.Delete", "book", res, err)
}
