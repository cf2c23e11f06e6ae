package services_test

import (
	"testing"
	"time"

	"shiftbooker/internal/core/domain/model/job"
	"shiftbooker/internal/core/domain/model/kernel"
	"shiftbooker/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jobInCity(t *testing.T, city string) *job.Job {
	t.Helper()
	j, err := job.NewJob("JOB-1-SCH-"+city, "Warehouse Associate", job.NewLocation(city, nil), job.ShiftDetail{}, time.Now())
	require.NoError(t, err)
	return j
}

func jobAt(t *testing.T, city string, lat, lng float64) *job.Job {
	t.Helper()
	coords, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	j, err := job.NewJob("JOB-1-SCH-"+city, "Warehouse Associate", job.NewLocation(city, &coords), job.ShiftDetail{}, time.Now())
	require.NoError(t, err)
	return j
}

func TestNewLocationFilter(t *testing.T) {
	t.Run("accepts_name_list_config", func(t *testing.T) {
		_, err := services.NewLocationFilter(services.LocationFilterConfig{
			Enabled:      true,
			AllowedNames: []string{"Toronto", "Scarborough"},
		})
		require.NoError(t, err)
	})

	t.Run("accepts_geo_radius_config", func(t *testing.T) {
		center, _ := kernel.NewGeoPoint(43.7952, -79.2670)
		_, err := services.NewLocationFilter(services.LocationFilterConfig{
			Enabled:   true,
			GeoCenter: &center,
			RadiusKm:  100,
		})
		require.NoError(t, err)
	})

	t.Run("rejects_center_without_positive_radius", func(t *testing.T) {
		center, _ := kernel.NewGeoPoint(43.7952, -79.2670)
		_, err := services.NewLocationFilter(services.LocationFilterConfig{
			Enabled:   true,
			GeoCenter: &center,
		})
		require.Error(t, err)
	})

	t.Run("rejects_radius_without_center", func(t *testing.T) {
		_, err := services.NewLocationFilter(services.LocationFilterConfig{
			Enabled:  true,
			RadiusKm: 100,
		})
		require.Error(t, err)
	})

	t.Run("rejects_unconstructed_center", func(t *testing.T) {
		var center kernel.GeoPoint
		_, err := services.NewLocationFilter(services.LocationFilterConfig{
			Enabled:   true,
			GeoCenter: &center,
			RadiusKm:  100,
		})
		require.Error(t, err)
	})
}

func TestLocationFilter_Matches(t *testing.T) {
	t.Run("disabled_filter_matches_everything", func(t *testing.T) {
		f, err := services.NewLocationFilter(services.LocationFilterConfig{Enabled: false})
		require.NoError(t, err)

		assert.True(t, f.Matches(jobInCity(t, "Toronto")))
		assert.True(t, f.Matches(jobInCity(t, "Anywhere")))
	})

	t.Run("name_match_is_case_insensitive_equality", func(t *testing.T) {
		f, err := services.NewLocationFilter(services.LocationFilterConfig{
			Enabled:      true,
			AllowedNames: []string{"Toronto"},
		})
		require.NoError(t, err)

		assert.True(t, f.Matches(jobInCity(t, "Toronto")))
		assert.True(t, f.Matches(jobInCity(t, "TORONTO")))
		assert.False(t, f.Matches(jobInCity(t, "Mississauga")))
		assert.False(t, f.Matches(jobInCity(t, "Toronto East"))) // equality, not substring
	})

	t.Run("geo_radius_match", func(t *testing.T) {
		center, _ := kernel.NewGeoPoint(43.7952, -79.2670) // Scarborough
		f, err := services.NewLocationFilter(services.LocationFilterConfig{
			Enabled:   true,
			GeoCenter: &center,
			RadiusKm:  30,
		})
		require.NoError(t, err)

		// Downtown Toronto, ~13 km from the center.
		assert.True(t, f.Matches(jobAt(t, "", 43.6532, -79.3832)))
		// Ottawa, ~350 km away.
		assert.False(t, f.Matches(jobAt(t, "", 45.4215, -75.6972)))
	})

	t.Run("name_or_radius_is_sufficient", func(t *testing.T) {
		center, _ := kernel.NewGeoPoint(43.7952, -79.2670)
		f, err := services.NewLocationFilter(services.LocationFilterConfig{
			Enabled:      true,
			AllowedNames: []string{"Ottawa"},
			GeoCenter:    &center,
			RadiusKm:     30,
		})
		require.NoError(t, err)

		// Matches by name even though it is far outside the radius.
		assert.True(t, f.Matches(jobAt(t, "Ottawa", 45.4215, -75.6972)))
		// Matches by radius even though the name is not allowed.
		assert.True(t, f.Matches(jobAt(t, "Toronto", 43.6532, -79.3832)))
	})

	t.Run("enabled_with_nothing_configured_rejects_all", func(t *testing.T) {
		f, err := services.NewLocationFilter(services.LocationFilterConfig{Enabled: true})
		require.NoError(t, err)

		assert.False(t, f.Matches(jobInCity(t, "Toronto")))
	})

	t.Run("missing_location_data_never_matches", func(t *testing.T) {
		center, _ := kernel.NewGeoPoint(43.7952, -79.2670)
		f, err := services.NewLocationFilter(services.LocationFilterConfig{
			Enabled:      true,
			AllowedNames: []string{"Toronto"},
			GeoCenter:    &center,
			RadiusKm:     100,
		})
		require.NoError(t, err)

		noLocation, jobErr := job.NewJob("JOB-1-SCH-X", "Warehouse Associate", job.Location{}, job.ShiftDetail{}, time.Now())
		require.NoError(t, jobErr)
		assert.False(t, f.Matches(noLocation))
	})

	t.Run("unconstructed_job_never_matches", func(t *testing.T) {
		f, err := services.NewLocationFilter(services.LocationFilterConfig{
			Enabled:      true,
			AllowedNames: []string{"Toronto"},
		})
		require.NoError(t, err)

		assert.False(t, f.Matches(nil))
	})

	t.Run("deterministic_and_order_independent", func(t *testing.T) {
		f, err := services.NewLocationFilter(services.LocationFilterConfig{
			Enabled:      true,
			AllowedNames: []string{"Toronto"},
		})
		require.NoError(t, err)

		toronto := jobInCity(t, "Toronto")
		mississauga := jobInCity(t, "Mississauga")
		for range 3 {
			assert.True(t, f.Matches(toronto))
			assert.False(t, f.Matches(mississauga))
		}
	})
}
