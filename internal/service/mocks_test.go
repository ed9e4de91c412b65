package service_test

import (
	"context"
	"time"

	"library-backend/internal/domain"
	"library-backend/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockBookRepo
type MockBookRepo struct {
	mock.Mock
}

func (m *MockBookRepo) Create(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}
func (m *MockBookRepo) GetByID(ctx context.Context, id int32) (*domain.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockBookRepo) GetByIDForUpdate(ctx context.Context, id int32) (*domain.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockBookRepo) GetByTitle(ctx context.Context, title string) (*domain.Book, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockBookRepo) FindByTitleFold(ctx context.Context, title string) (*domain.Book, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockBookRepo) List(ctx context.Context) ([]domain.Book, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Book), args.Error(1)
}
func (m *MockBookRepo) Search(ctx context.Context, query string) ([]domain.Book, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]domain.Book), args.Error(1)
}
func (m *MockBookRepo) Update(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}
func (m *MockBookRepo) UpdateStatus(ctx context.Context, id int32, status domain.BookStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockBookRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) GetByIDForUpdate(ctx context.Context, id string) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Search(ctx context.Context, query string) ([]domain.Customer, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLoanRepo
type MockLoanRepo struct {
	mock.Mock
}

func (m *MockLoanRepo) Create(ctx context.Context, loan *domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}
func (m *MockLoanRepo) List(ctx context.Context) ([]domain.Loan, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) ListByBook(ctx context.Context, bookID int32) ([]domain.Loan, error) {
	args := m.Called(ctx, bookID)
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) ListByCustomer(ctx context.Context, customerID string) ([]domain.Loan, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) ListDueBefore(ctx context.Context, date time.Time) ([]domain.Loan, error) {
	args := m.Called(ctx, date)
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// fakeStore runs WithinTx callbacks inline against the same mocks.
type fakeStore struct {
	books     *MockBookRepo
	customers *MockCustomerRepo
	loans     *MockLoanRepo
	txCalls   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		books:     new(MockBookRepo),
		customers: new(MockCustomerRepo),
		loans:     new(MockLoanRepo),
	}
}

func (f *fakeStore) Books() repository.BookRepository         { return f.books }
func (f *fakeStore) Customers() repository.CustomerRepository { return f.customers }
func (f *fakeStore) Loans() repository.LoanRepository         { return f.loans }
func (f *fakeStore) Ping(ctx context.Context) error           { return nil }

func (f *fakeStore) WithinTx(ctx context.Context, fn func(tx repository.Store) error) error {
	f.txCalls++
	return fn(f)
}
