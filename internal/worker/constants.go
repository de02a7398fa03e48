package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Daily Worker
// ============================================================================

// Log messages for daily worker operations
const (
	LogMsgDailyStarting        = "Daily job starting"
	LogMsgDailyCompleted       = "Daily job completed"
	LogMsgDailyFailed          = "Daily job failed"
	LogMsgDailyScheduled       = "Daily job scheduled"
	LogMsgDailyStandby         = "Daily job standing by"
	LogMsgDailyManualRun       = "Daily job manually triggered"
	LogMsgDailyShutdown        = "Daily worker shutdown complete"
	LogMsgDailyShutdownTimeout = "Daily worker shutdown timeout, a run may still be in flight"
)

// Log fields
const (
	LogFieldWorker      = "worker"
	LogFieldWorkerID    = "worker_id"
	LogFieldError       = "error"
	LogFieldDuration    = "duration"
	LogFieldNextRunAt   = "next_run_at"
	LogFieldNextCheckAt = "next_check_at"
)

const (
	approachWindow     = 45 * time.Minute
	earlyFireTolerance = 10 * time.Second
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
