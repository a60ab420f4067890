package e2e

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Result struct {
	Scenario string
	Group    string
	Passed   bool
	Duration time.Duration
	Err      error
}

// Report collects the outcome of one run. Results keep the order the
// scenarios were given in.
type Report struct {
	RunID     uuid.UUID
	StartedAt time.Time
	Duration  time.Duration
	Results   []Result
	Passed    int
	Failed    int
}

func (r *Report) finish() {
	r.Duration = time.Since(r.StartedAt)
	r.Passed, r.Failed = 0, 0
	for _, res := range r.Results {
		if res.Passed {
			r.Passed++
		} else {
			r.Failed++
		}
	}
}

func (r *Report) OK() bool {
	return r.Failed == 0
}

func (r *Report) Failures() []Result {
	var failed []Result
	for _, res := range r.Results {
		if !res.Passed {
			failed = append(failed, res)
		}
	}
	return failed
}

// Err joins every scenario failure, nil when the run passed.
func (r *Report) Err() error {
	var errs []error
	for _, res := range r.Failures() {
		errs = append(errs, res.Err)
	}
	return errors.Join(errs...)
}

func (r *Report) Log(logger *zap.Logger) {
	fields := []zap.Field{
		zap.String("run_id", r.RunID.String()),
		zap.Int("passed", r.Passed),
		zap.Int("failed", r.Failed),
		zap.Duration("duration", r.Duration),
	}
	if r.OK() {
		logger.Info("Scenario run passed", fields...)
		return
	}
	for _, res := range r.Failures() {
		logger.Error("Scenario failure", zap.String("group", res.Group), zap.String("scenario", res.Scenario), zap.Error(res.Err))
	}
	logger.Error("Scenario run failed", fields...)
}
