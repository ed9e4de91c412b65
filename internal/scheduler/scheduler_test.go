package scheduler_test

import (
	"testing"

	"library-backend/internal/config"
	"library-backend/internal/jobs"
	"library-backend/internal/scheduler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScheduler(t *testing.T) {
	t.Run("Registers the late loan report", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Scheduler.LateLoanReport = "0 0 6 * * *"
		cfg.Loans.Timezone = "UTC"

		s, err := scheduler.NewScheduler(jobs.NewJobRunner(nil, cfg))
		require.NoError(t, err)
		assert.True(t, s.IsRunning())

		s.Start()
		s.Stop()
	})

	t.Run("Rejects an invalid schedule", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Scheduler.LateLoanReport = "every morning"

		_, err := scheduler.NewScheduler(jobs.NewJobRunner(nil, cfg))
		assert.ErrorContains(t, err, "invalid late loan report schedule")
	})
}
