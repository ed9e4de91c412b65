package service

import (
	"context"
	"errors"

	"library-backend/internal/domain"
	"library-backend/internal/logger"
	"library-backend/internal/repository"
)

type bookService struct {
	store repository.Store
}

func NewBookService(store repository.Store) BookService {
	return &bookService{store: store}
}

func (s *bookService) CreateBook(ctx context.Context, book *domain.Book) error {
	logger.EnterMethod("bookService.CreateBook", "title", book.Title)

	if err := book.Validate(); err != nil {
		exitWithError("bookService.CreateBook", err)
		return err
	}
	if err := ensureTitleFree(ctx, s.store.Books(), book.Title); err != nil {
		exitWithError("bookService.CreateBook", err, "title", book.Title)
		return err
	}

	book.Status = domain.BookStatusAvailable
	if err := s.store.Books().Create(ctx, book); err != nil {
		exitWithError("bookService.CreateBook", err, "title", book.Title)
		return err
	}

	logger.ExitMethod("bookService.CreateBook", "bookID", book.ID)
	return nil
}

func (s *bookService) GetBook(ctx context.Context, id int32) (*domain.Book, error) {
	return s.store.Books().GetByID(ctx, id)
}

func (s *bookService) ListBooks(ctx context.Context) ([]domain.Book, error) {
	return s.store.Books().List(ctx)
}

func (s *bookService) SearchBooks(ctx context.Context, query string) ([]domain.Book, error) {
	if query == "" {
		return nil, domain.Validationf("search query is missing")
	}
	return s.store.Books().Search(ctx, query)
}

func (s *bookService) UpdateBook(ctx context.Context, id int32, update domain.BookUpdate) (*domain.Book, error) {
	logger.EnterMethod("bookService.UpdateBook", "bookID", id)

	var updated *domain.Book
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		book, err := tx.Books().GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		titleChanged := book.Apply(update)
		if err := book.Validate(); err != nil {
			return err
		}
		if titleChanged {
			if err := ensureTitleFree(ctx, tx.Books(), book.Title); err != nil {
				return err
			}
		}

		if err := tx.Books().Update(ctx, book); err != nil {
			return err
		}
		updated = book
		return nil
	})
	if err != nil {
		exitWithError("bookService.UpdateBook", err, "bookID", id)
		return nil, err
	}

	logger.ExitMethod("bookService.UpdateBook", "bookID", id)
	return updated, nil
}

// DeleteBook removes the book. A loan on the book is removed with it.
func (s *bookService) DeleteBook(ctx context.Context, id int32) error {
	logger.EnterMethod("bookService.DeleteBook", "bookID", id)
	if err := s.store.Books().Delete(ctx, id); err != nil {
		exitWithError("bookService.DeleteBook", err, "bookID", id)
		return err
	}
	logger.ExitMethod("bookService.DeleteBook", "bookID", id)
	return nil
}

func ensureTitleFree(ctx context.Context, books repository.BookRepository, title string) error {
	_, err := books.GetByTitle(ctx, title)
	switch {
	case err == nil:
		return domain.Conflictf("a book with this title already exists")
	case errors.Is(err, domain.ErrNotFound):
		return nil
	default:
		return err
	}
}
