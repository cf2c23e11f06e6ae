package job_test

import (
	"testing"
	"time"

	"shiftbooker/internal/core/domain/model/job"
	"shiftbooker/internal/core/domain/model/kernel"
	"shiftbooker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJob(t *testing.T) {
	t.Run("creates_job_with_valid_data", func(t *testing.T) {
		// Given
		coords, _ := kernel.NewGeoPoint(43.7952, -79.2670)
		loc := job.NewLocation("Toronto", &coords)
		shift := job.ShiftDetail{
			ScheduleID:     "SCH-CA-0000412345",
			ScheduleName:   "Day Shift",
			StartTime:      "07:00",
			EndTime:        "15:30",
			PayRate:        "21.50 CAD",
			AvailableSlots: 3,
		}
		discovered := time.Now()

		// When
		j, err := job.NewJob("JOB-CA-0000010894-SCH-CA-0000412345", "Warehouse Associate", loc, shift, discovered)

		// Then
		require.NoError(t, err)
		require.NoError(t, j.Validate())
		assert.Equal(t, "JOB-CA-0000010894-SCH-CA-0000412345", j.ID())
		assert.Equal(t, "Warehouse Associate", j.Title())
		assert.Equal(t, "Toronto", j.Location().City())
		assert.Equal(t, shift, j.Shift())
		assert.Equal(t, discovered, j.DiscoveredAt())
	})

	t.Run("rejects_empty_id", func(t *testing.T) {
		_, err := job.NewJob("  ", "Warehouse Associate", job.Location{}, job.ShiftDetail{}, time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("defaults_discovery_timestamp", func(t *testing.T) {
		j, err := job.NewJob("JOB-1-SCH-1", "", job.Location{}, job.ShiftDetail{}, time.Time{})

		require.NoError(t, err)
		assert.False(t, j.DiscoveredAt().IsZero())
	})
}

func TestJob_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var j job.Job
		assert.Equal(t, job.ErrJobIsNotConstructed, j.Validate())
	})

	t.Run("nil_is_invalid", func(t *testing.T) {
		var j *job.Job
		assert.Equal(t, job.ErrJobIsNotConstructed, j.Validate())
	})
}

func TestJob_IsEqual(t *testing.T) {
	j1, _ := job.NewJob("JOB-1-SCH-1", "a", job.Location{}, job.ShiftDetail{}, time.Now())
	j2, _ := job.NewJob("JOB-1-SCH-1", "b", job.Location{}, job.ShiftDetail{}, time.Now())
	j3, _ := job.NewJob("JOB-2-SCH-1", "a", job.Location{}, job.ShiftDetail{}, time.Now())

	assert.True(t, j1.IsEqual(j2))
	assert.False(t, j1.IsEqual(j3))
	assert.False(t, j1.IsEqual(nil))
}

func TestComposeID(t *testing.T) {
	assert.Equal(t, "JOB-CA-1-SCH-CA-2", job.ComposeID("JOB-CA-1", "SCH-CA-2"))
}

func TestLocation(t *testing.T) {
	t.Run("coordinates_present", func(t *testing.T) {
		coords, _ := kernel.NewGeoPoint(43.7952, -79.2670)
		loc := job.NewLocation("Toronto", &coords)

		got, ok := loc.Coordinates()
		require.True(t, ok)
		equal, err := got.IsEqual(coords)
		require.NoError(t, err)
		assert.True(t, equal)
		assert.Equal(t, "Toronto GeoPoint(43.7952,-79.2670)", loc.String())
	})

	t.Run("coordinates_absent", func(t *testing.T) {
		loc := job.NewLocation("Toronto", nil)

		_, ok := loc.Coordinates()
		assert.False(t, ok)
		assert.Equal(t, "Toronto", loc.String())
	})

	t.Run("empty_location", func(t *testing.T) {
		var loc job.Location

		_, ok := loc.Coordinates()
		assert.False(t, ok)
		assert.Equal(t, "unknown", loc.String())
	})
}
