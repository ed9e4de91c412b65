package service_test

import (
	"context"
	"errors"
	"testing"

	"library-backend/internal/domain"
	"library-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func dune() *domain.Book {
	return &domain.Book{ID: 1, Title: "Dune", Author: "Herbert", PublishedYear: "1965", Status: domain.BookStatusAvailable, BookType: 1}
}

func TestBookService_CreateBook(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		store := newFakeStore()
		svc := service.NewBookService(store)

		book := &domain.Book{Title: "Dune", Author: "Herbert", PublishedYear: "1965", BookType: 1, Status: domain.BookStatusUnavailable}
		store.books.On("GetByTitle", ctx, "Dune").Return(nil, domain.NotFoundf("book not found"))
		store.books.On("Create", ctx, book).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Book).ID = 42
		}).Return(nil)

		err := svc.CreateBook(ctx, book)
		assert.NoError(t, err)
		assert.Equal(t, int32(42), book.ID)
		assert.Equal(t, domain.BookStatusAvailable, book.Status, "new books always start available")
	})

	t.Run("Duplicate title", func(t *testing.T) {
		store := newFakeStore()
		svc := service.NewBookService(store)

		store.books.On("GetByTitle", ctx, "Dune").Return(dune(), nil)

		err := svc.CreateBook(ctx, &domain.Book{Title: "Dune", Author: "Someone Else", PublishedYear: "2020", BookType: 3})
		assert.ErrorIs(t, err, domain.ErrConflict)
		store.books.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Invalid book type", func(t *testing.T) {
		store := newFakeStore()
		svc := service.NewBookService(store)

		err := svc.CreateBook(ctx, &domain.Book{Title: "Dune", Author: "Herbert", PublishedYear: "1965", BookType: 4})
		assert.ErrorIs(t, err, domain.ErrValidation)
		store.books.AssertNotCalled(t, "GetByTitle", mock.Anything, mock.Anything)
	})

	t.Run("Repository failure", func(t *testing.T) {
		store := newFakeStore()
		svc := service.NewBookService(store)

		store.books.On("GetByTitle", ctx, "Dune").Return(nil, errors.New("connection refused"))

		err := svc.CreateBook(ctx, &domain.Book{Title: "Dune", Author: "Herbert", PublishedYear: "1965", BookType: 1})
		assert.EqualError(t, err, "connection refused")
	})
}

func TestBookService_UpdateBook(t *testing.T) {
	ctx := context.Background()

	t.Run("Partial update leaves other fields", func(t *testing.T) {
		store := newFakeStore()
		svc := service.NewBookService(store)

		store.books.On("GetByIDForUpdate", ctx, int32(1)).Return(dune(), nil)
		store.books.On("Update", ctx, mock.Anything).Return(nil)

		author := "Frank Herbert"
		book, err := svc.UpdateBook(ctx, 1, domain.BookUpdate{Author: &author})
		require.NoError(t, err)

		expected := dune()
		expected.Author = "Frank Herbert"
		assert.Equal(t, expected, book)
		store.books.AssertCalled(t, "Update", ctx, expected)
		store.books.AssertNotCalled(t, "GetByTitle", mock.Anything, mock.Anything)
		assert.Equal(t, 1, store.txCalls)
	})

	t.Run("Not found", func(t *testing.T) {
		store := newFakeStore()
		svc := service.NewBookService(store)

		store.books.On("GetByIDForUpdate", ctx, int32(9)).Return(nil, domain.NotFoundf("book not found"))

		_, err := svc.UpdateBook(ctx, 9, domain.BookUpdate{})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Rename onto existing title", func(t *testing.T) {
		store := newFakeStore()
		svc := service.NewBookService(store)

		store.books.On("GetByIDForUpdate", ctx, int32(1)).Return(dune(), nil)
		store.books.On("GetByTitle", ctx, "Emma").Return(&domain.Book{ID: 2, Title: "Emma"}, nil)

		title := "Emma"
		_, err := svc.UpdateBook(ctx, 1, domain.BookUpdate{Title: &title})
		assert.ErrorIs(t, err, domain.ErrConflict)
		store.books.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Invalid book type", func(t *testing.T) {
		store := newFakeStore()
		svc := service.NewBookService(store)

		store.books.On("GetByIDForUpdate", ctx, int32(1)).Return(dune(), nil)

		bookType := int32(7)
		_, err := svc.UpdateBook(ctx, 1, domain.BookUpdate{BookType: &bookType})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestBookService_SearchBooks(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := service.NewBookService(store)

	t.Run("Missing query", func(t *testing.T) {
		_, err := svc.SearchBooks(ctx, "")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Whitespace is a search term", func(t *testing.T) {
		store.books.On("Search", ctx, "   ").Return([]domain.Book{*dune()}, nil)
		books, err := svc.SearchBooks(ctx, "   ")
		assert.NoError(t, err)
		assert.Len(t, books, 1)
	})

	t.Run("No match is an empty result", func(t *testing.T) {
		store.books.On("Search", ctx, "zzz").Return([]domain.Book{}, nil)
		books, err := svc.SearchBooks(ctx, "zzz")
		assert.NoError(t, err)
		assert.Empty(t, books)
	})
}

func TestBookService_DeleteBook(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := service.NewBookService(store)

	store.books.On("Delete", ctx, int32(1)).Return(nil)
	store.books.On("Delete", ctx, int32(2)).Return(domain.NotFoundf("book not found"))

	assert.NoError(t, svc.DeleteBook(ctx, 1))
	assert.ErrorIs(t, svc.DeleteBook(ctx, 2), domain.ErrNotFound)
}
