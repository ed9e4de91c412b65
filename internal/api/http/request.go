package http

import (
	"reflect"
	"strings"

	"library-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Pointer fields tell an absent field apart from a zero value.

type createBookRequest struct {
	Title         *string `json:"title" validate:"required"`
	Author        *string `json:"author" validate:"required"`
	PublishedYear *string `json:"publishedYear" validate:"required"`
	BookType      *int32  `json:"bookType" validate:"required,oneof=1 2 3"`
}

func (createBookRequest) requiredMessage() string {
	return "required fields are missing in the request data (must be: title, author, publishedYear, and bookType)"
}

func (req createBookRequest) toDomain() *domain.Book {
	return &domain.Book{
		Title:         *req.Title,
		Author:        *req.Author,
		PublishedYear: *req.PublishedYear,
		BookType:      *req.BookType,
	}
}

type updateBookRequest struct {
	Title         *string `json:"title" validate:"omitempty,min=1"`
	Author        *string `json:"author" validate:"omitempty,min=1"`
	PublishedYear *string `json:"publishedYear" validate:"omitempty,min=1"`
	BookType      *int32  `json:"bookType" validate:"omitempty,oneof=1 2 3"`
}

func (req updateBookRequest) toDomain() domain.BookUpdate {
	return domain.BookUpdate{
		Title:         req.Title,
		Author:        req.Author,
		PublishedYear: req.PublishedYear,
		BookType:      req.BookType,
	}
}

type createCustomerRequest struct {
	CustomerID *string `json:"customerID" validate:"required"`
	Name       *string `json:"name" validate:"required"`
	Age        *int32  `json:"age" validate:"required,gte=0"`
	City       *string `json:"city" validate:"required"`
}

func (createCustomerRequest) requiredMessage() string {
	return "required fields are missing in the request data (must be: customerID, name, age, city)"
}

func (req createCustomerRequest) toDomain() *domain.Customer {
	return &domain.Customer{
		ID:   *req.CustomerID,
		Name: *req.Name,
		Age:  *req.Age,
		City: *req.City,
	}
}

type updateCustomerRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1"`
	Age  *int32  `json:"age" validate:"omitempty,gte=0"`
	City *string `json:"city" validate:"omitempty,min=1"`
}

func (req updateCustomerRequest) toDomain() domain.CustomerUpdate {
	return domain.CustomerUpdate{Name: req.Name, Age: req.Age, City: req.City}
}

type createLoanRequest struct {
	LoanDate   *string `json:"loanDate" validate:"required"`
	BookID     *int32  `json:"bookID" validate:"required"`
	CustomerID *string `json:"customerID" validate:"required"`
}

func (createLoanRequest) requiredMessage() string {
	return "required fields are missing in the request data (must be: loanDate, bookID, and customerID)"
}
