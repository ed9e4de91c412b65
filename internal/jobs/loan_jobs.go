package jobs

import (
	"context"
	"time"

	"library-backend/internal/domain"
	"library-backend/internal/logger"
)

const lateLoanReportTimeout = time.Minute

// OverdueLoan is a late loan with how long it is overdue.
type OverdueLoan struct {
	domain.Loan
	DaysOverdue int
}

// LateLoanReport lists the loans that were late on Today.
type LateLoanReport struct {
	Today time.Time
	Loans []OverdueLoan
}

// BuildLateLoanReport collects the late loans as of the loan service's today.
func (jr *JobRunner) BuildLateLoanReport(ctx context.Context) (*LateLoanReport, error) {
	today := jr.loans.Today()
	loans, err := jr.loans.ListLateLoans(ctx)
	if err != nil {
		return nil, err
	}

	report := &LateLoanReport{Today: today, Loans: make([]OverdueLoan, 0, len(loans))}
	for _, l := range loans {
		report.Loans = append(report.Loans, OverdueLoan{Loan: l, DaysOverdue: l.DaysOverdue(today)})
	}
	return report, nil
}

// ReportLateLoans logs every loan whose return date has passed
func (jr *JobRunner) ReportLateLoans() {
	jr.runWithRecovery("ReportLateLoans", func() {
		ctx, cancel := context.WithTimeout(context.Background(), lateLoanReportTimeout)
		defer cancel()

		report, err := jr.BuildLateLoanReport(ctx)
		if err != nil {
			logger.Error("Failed to list late loans", "error", err)
			return
		}

		logger.Info("Late loans", "count", len(report.Loans), "today", report.Today.Format(domain.DateLayout))
		for _, l := range report.Loans {
			logger.Info("Late loan",
				"loan_id", l.ID,
				"book_id", l.BookID,
				"customer_id", l.CustomerID,
				"return_date", l.ReturnDate.Format(domain.DateLayout),
				"days_overdue", l.DaysOverdue)
		}
	})
}
