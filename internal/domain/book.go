package domain

import "strings"

type BookStatus string

const (
	BookStatusAvailable   BookStatus = "available"
	BookStatusUnavailable BookStatus = "unavailable"
)

// Book types select the loan duration policy, see LoanDuration.
const (
	BookTypeStandard int32 = 1
	BookTypeShort    int32 = 2
	BookTypeExpress  int32 = 3
)

type Book struct {
	ID            int32      `db:"book_id" json:"bookID"`
	Title         string     `db:"title" json:"title"`
	Author        string     `db:"author" json:"author"`
	PublishedYear string     `db:"published_year" json:"publishedYear"`
	Status        BookStatus `db:"status" json:"status"`
	BookType      int32      `db:"book_type" json:"bookType"`
}

// BookUpdate carries the fields of a partial update. Nil fields are left untouched.
type BookUpdate struct {
	Title         *string
	Author        *string
	PublishedYear *string
	BookType      *int32
}

func (b *Book) IsAvailable() bool {
	return b.Status == BookStatusAvailable
}

// Validate checks the fields required to persist a book.
func (b *Book) Validate() error {
	switch {
	case strings.TrimSpace(b.Title) == "":
		return Validationf("title is required")
	case strings.TrimSpace(b.Author) == "":
		return Validationf("author is required")
	case strings.TrimSpace(b.PublishedYear) == "":
		return Validationf("publishedYear is required")
	case !ValidBookType(b.BookType):
		return Validationf("invalid bookType %d, it must be 1, 2, or 3", b.BookType)
	}
	return nil
}

// Apply overwrites the fields present in u and reports whether the title changed.
func (b *Book) Apply(u BookUpdate) (titleChanged bool) {
	if u.Title != nil && *u.Title != b.Title {
		b.Title = *u.Title
		titleChanged = true
	}
	if u.Author != nil {
		b.Author = *u.Author
	}
	if u.PublishedYear != nil {
		b.PublishedYear = *u.PublishedYear
	}
	if u.BookType != nil {
		b.BookType = *u.BookType
	}
	return titleChanged
}
