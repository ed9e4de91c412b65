package jobs

import (
	"library-backend/internal/config"
	"library-backend/internal/logger"
	"library-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	loans  service.LoanService
	config *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(loans service.LoanService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		loans:  loans,
		config: cfg,
	}
}

// Config returns the configuration the jobs were built with
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllDailyJobs runs all daily jobs (for manual execution)
func (jr *JobRunner) RunAllDailyJobs() {
	jr.ReportLateLoans()
}
