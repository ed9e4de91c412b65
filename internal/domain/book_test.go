package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBook_Apply(t *testing.T) {
	book := Book{ID: 1, Title: "Dune", Author: "Herbert", PublishedYear: "1965", Status: BookStatusAvailable, BookType: 1}

	t.Run("Only present fields change", func(t *testing.T) {
		b := book
		author := "Frank Herbert"
		changed := b.Apply(BookUpdate{Author: &author})
		assert.False(t, changed)
		assert.Equal(t, "Frank Herbert", b.Author)
		assert.Equal(t, "Dune", b.Title)
		assert.Equal(t, "1965", b.PublishedYear)
		assert.Equal(t, int32(1), b.BookType)
		assert.Equal(t, BookStatusAvailable, b.Status)
	})

	t.Run("Title change reported", func(t *testing.T) {
		b := book
		title := "Dune Messiah"
		assert.True(t, b.Apply(BookUpdate{Title: &title}))
		same := "Dune Messiah"
		assert.False(t, b.Apply(BookUpdate{Title: &same}))
	})
}

func TestBook_Validate(t *testing.T) {
	valid := Book{Title: "Dune", Author: "Herbert", PublishedYear: "1965", BookType: 1}
	assert.NoError(t, valid.Validate())

	b := valid
	b.Title = " "
	assert.ErrorIs(t, b.Validate(), ErrValidation)

	b = valid
	b.BookType = 4
	err := b.Validate()
	assert.ErrorIs(t, err, ErrValidation)
	msg, ok := PublicMessage(err)
	assert.True(t, ok)
	assert.Contains(t, msg, "bookType")
}
