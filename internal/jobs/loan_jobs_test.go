package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"library-backend/internal/config"
	"library-backend/internal/domain"
	"library-backend/internal/jobs"
	"library-backend/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLoanService struct {
	mock.Mock
}

func (m *MockLoanService) CreateLoan(ctx context.Context, loanDate string, bookID int32, customerID string) (*domain.Loan, error) {
	args := m.Called(ctx, loanDate, bookID, customerID)
	return nil, args.Error(1)
}
func (m *MockLoanService) EndLoan(ctx context.Context, title string) (*domain.Loan, error) {
	args := m.Called(ctx, title)
	return nil, args.Error(1)
}
func (m *MockLoanService) ListLoans(ctx context.Context) ([]domain.Loan, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanService) ListLateLoans(ctx context.Context) ([]domain.Loan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanService) Today() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildLateLoanReport(t *testing.T) {
	svc := new(MockLoanService)
	runner := jobs.NewJobRunner(svc, &config.Config{})

	svc.On("Today").Return(day(2024, 1, 15))
	svc.On("ListLateLoans", mock.Anything).Return([]domain.Loan{
		{ID: 1, ReturnDate: day(2024, 1, 11), BookID: 10, CustomerID: "c1"},
		{ID: 2, ReturnDate: day(2024, 1, 14), BookID: 11, CustomerID: "c2"},
	}, nil)

	report, err := runner.BuildLateLoanReport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, day(2024, 1, 15), report.Today)
	require.Len(t, report.Loans, 2)
	assert.Equal(t, 4, report.Loans[0].DaysOverdue)
	assert.Equal(t, 1, report.Loans[1].DaysOverdue)
}

func TestReportLateLoans(t *testing.T) {
	var buf bytes.Buffer
	logger.InitializeWithWriter("info", "text", &buf)
	t.Cleanup(func() { logger.Initialize("info", "text") })

	t.Run("Logs each late loan", func(t *testing.T) {
		buf.Reset()
		svc := new(MockLoanService)
		runner := jobs.NewJobRunner(svc, &config.Config{})

		svc.On("Today").Return(day(2024, 1, 15))
		svc.On("ListLateLoans", mock.Anything).Return([]domain.Loan{
			{ID: 7, ReturnDate: day(2024, 1, 11), BookID: 10, CustomerID: "c1"},
		}, nil)

		runner.ReportLateLoans()
		out := buf.String()
		assert.Contains(t, out, "count=1")
		assert.Contains(t, out, "loan_id=7")
		assert.Contains(t, out, "days_overdue=4")
		assert.Contains(t, out, "Job completed")
	})

	t.Run("Failure is logged", func(t *testing.T) {
		buf.Reset()
		svc := new(MockLoanService)
		runner := jobs.NewJobRunner(svc, &config.Config{})

		svc.On("Today").Return(day(2024, 1, 15))
		svc.On("ListLateLoans", mock.Anything).Return(nil, errors.New("connection refused"))

		runner.ReportLateLoans()
		assert.Contains(t, buf.String(), "Failed to list late loans")
	})

	t.Run("Panic is recovered", func(t *testing.T) {
		buf.Reset()
		svc := new(MockLoanService)
		runner := jobs.NewJobRunner(svc, &config.Config{})

		svc.On("Today").Panic("clock broken")

		assert.NotPanics(t, runner.ReportLateLoans)
		assert.Contains(t, buf.String(), "Job panicked")
	})
}
