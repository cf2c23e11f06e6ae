// Package job provides the Job entity representing a bookable shift
// discovered at the external job source.
//
// Jobs are immutable once fetched. The shift payload (schedule, start/end,
// pay) is opaque to the core and passed through to outcome records exactly
// as the source reported it. Location data may be partial; consumers treat
// missing data as non-matching rather than erroring.
package job
