// Package ports defines the contracts between the application core and the
// outside world. Inbound work arrives through the job source, bookings go out
// through the booking client, and outcomes leave through the outcome sink.
// Adapters implement these interfaces; the core never imports an adapter.
package ports

import (
	"context"

	"shiftbooker/internal/core/domain/model/job"
)

// JobSource fetches the currently available shift listings from the external
// hiring platform.
type JobSource interface {
	// FetchAvailableJobs returns every listing the source reports right now.
	// One listing is returned per (job, schedule) pair. An error means the
	// whole fetch failed; the caller treats the cycle as empty and polls
	// again on the next tick.
	FetchAvailableJobs(ctx context.Context) ([]*job.Job, error)
}
