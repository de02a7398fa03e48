package season

import (
	"context"

	"github.com/osse101/FarmEconomy_Go/internal/logger"
)

// AdvanceJob is the scheduled day tick
type AdvanceJob struct {
	service Service
}

// NewAdvanceJob creates a job that advances the calendar one day per run
func NewAdvanceJob(service Service) *AdvanceJob {
	return &AdvanceJob{service: service}
}

// Process executes one day advance
func (j *AdvanceJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgAdvanceJobStarted)

	clock, err := j.service.AdvanceDay(ctx)
	if err != nil {
		log.Error(LogMsgAdvanceJobFailed, LogFieldError, err)
		return err
	}

	log.Debug(LogMsgDayAdvanced, LogFieldDaysPassed, clock.DaysPassed, LogFieldSeason, clock.CurrentSeason.String())
	return nil
}
