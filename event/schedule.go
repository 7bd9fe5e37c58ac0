package event

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// MonthlySchedule invokes a job at midnight on the first of every month in
// a fixed timezone.
type MonthlySchedule struct {
	loc *time.Location
	job func(ctx context.Context) error
}

// NewMonthlySchedule constructs the schedule for one job.
func NewMonthlySchedule(loc *time.Location, job func(ctx context.Context) error) *MonthlySchedule {
	return &MonthlySchedule{loc: loc, job: job}
}

// Run blocks until ctx is done, firing the job at every month boundary.
// Job errors are logged only, the next month retries the work.
func (s *MonthlySchedule) Run(ctx context.Context) {
	for {
		next := nextMonthStart(time.Now().In(s.loc))
		timer := time.NewTimer(time.Until(next))

		select {
		case <-timer.C:
			if err := s.job(ctx); err != nil {
				log.Errorf("monthly job failed: %s", err)
			}
		case <-ctx.Done():
			timer.Stop()
			return
		}
	}
}

// nextMonthStart returns 00:00 on the first day of the month after t.
func nextMonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, t.Location())
}
