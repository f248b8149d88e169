package metrics

import "time"

// PageResult enumerates per-page outcomes for counters.
type PageResult string

const (
	PageWritten   PageResult = "written"
	PageUnchanged PageResult = "unchanged"
	PageFailed    PageResult = "failed"
)

// RunOutcome enumerates the final status of a run.
type RunOutcome string

const (
	RunSuccess  RunOutcome = "success"
	RunPartial  RunOutcome = "partial"
	RunFailed   RunOutcome = "failed"
	RunCanceled RunOutcome = "canceled"
)

// Recorder defines observability hooks for a generation run.
type Recorder interface {
	IncPageResult(section string, result PageResult)
	ObservePageDuration(section string, d time.Duration)
	ObserveRunDuration(d time.Duration)
	SetPagesPlanned(n int)
	IncRunOutcome(outcome RunOutcome)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncPageResult(string, PageResult)          {}
func (NoopRecorder) ObservePageDuration(string, time.Duration) {}
func (NoopRecorder) ObserveRunDuration(time.Duration)          {}
func (NoopRecorder) SetPagesPlanned(int)                       {}
func (NoopRecorder) IncRunOutcome(RunOutcome)                  {}
