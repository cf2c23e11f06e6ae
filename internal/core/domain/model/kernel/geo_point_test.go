package kernel_test

import (
	"testing"

	"shiftbooker/internal/core/domain/model/kernel"
	"shiftbooker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("creates_point_with_valid_coordinates", func(t *testing.T) {
		// When
		p, err := kernel.NewGeoPoint(43.7952, -79.2670)

		// Then
		require.NoError(t, err)
		assert.InDelta(t, 43.7952, p.Latitude(), 1e-9)
		assert.InDelta(t, -79.2670, p.Longitude(), 1e-9)
		require.NoError(t, p.Validate())
	})

	t.Run("accepts_boundary_coordinates", func(t *testing.T) {
		tests := []struct {
			name     string
			lat, lng float64
		}{
			{"north_pole", 90, 0},
			{"south_pole", -90, 0},
			{"antimeridian_east", 0, 180},
			{"antimeridian_west", 0, -180},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := kernel.NewGeoPoint(tt.lat, tt.lng)
				require.NoError(t, err)
			})
		}
	})

	t.Run("rejects_out_of_range_coordinates", func(t *testing.T) {
		tests := []struct {
			name     string
			lat, lng float64
		}{
			{"latitude_too_high", 90.1, 0},
			{"latitude_too_low", -90.1, 0},
			{"longitude_too_high", 0, 180.1},
			{"longitude_too_low", 0, -180.1},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := kernel.NewGeoPoint(tt.lat, tt.lng)
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			})
		}
	})
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		// Given
		var p kernel.GeoPoint

		// When
		err := p.Validate()

		// Then
		require.Error(t, err)
		assert.Equal(t, kernel.ErrGeoPointIsNotConstructed, err)
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	t.Run("equal_points", func(t *testing.T) {
		p1, _ := kernel.NewGeoPoint(43.7952, -79.2670)
		p2, _ := kernel.NewGeoPoint(43.7952, -79.2670)

		equal, err := p1.IsEqual(p2)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("different_points", func(t *testing.T) {
		p1, _ := kernel.NewGeoPoint(43.7952, -79.2670)
		p2, _ := kernel.NewGeoPoint(45.4215, -75.6972)

		equal, err := p1.IsEqual(p2)
		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("unconstructed_point_fails", func(t *testing.T) {
		p1, _ := kernel.NewGeoPoint(43.7952, -79.2670)
		var p2 kernel.GeoPoint

		_, err := p1.IsEqual(p2)
		require.Error(t, err)
	})
}

func TestGeoPoint_DistanceKm(t *testing.T) {
	t.Run("toronto_to_ottawa", func(t *testing.T) {
		// Given
		toronto, _ := kernel.NewGeoPoint(43.6532, -79.3832)
		ottawa, _ := kernel.NewGeoPoint(45.4215, -75.6972)

		// When
		km, err := toronto.DistanceKm(ottawa)

		// Then
		require.NoError(t, err)
		assert.InDelta(t, 353.5, km, 3.0)
	})

	t.Run("distance_is_symmetric", func(t *testing.T) {
		toronto, _ := kernel.NewGeoPoint(43.6532, -79.3832)
		mississauga, _ := kernel.NewGeoPoint(43.5890, -79.6441)

		d1, err := toronto.DistanceKm(mississauga)
		require.NoError(t, err)
		d2, err := mississauga.DistanceKm(toronto)
		require.NoError(t, err)

		assert.InDelta(t, d1, d2, 1e-9)
	})

	t.Run("distance_to_self_is_zero", func(t *testing.T) {
		p, _ := kernel.NewGeoPoint(43.7952, -79.2670)

		km, err := p.DistanceKm(p)
		require.NoError(t, err)
		assert.InDelta(t, 0, km, 1e-9)
	})

	t.Run("unconstructed_point_fails", func(t *testing.T) {
		p, _ := kernel.NewGeoPoint(43.7952, -79.2670)
		var zero kernel.GeoPoint

		_, err := p.DistanceKm(zero)
		require.Error(t, err)
	})
}

func TestGeoPoint_String(t *testing.T) {
	t.Run("formats_with_four_decimals", func(t *testing.T) {
		p, _ := kernel.NewGeoPoint(43.7952, -79.267)
		assert.Equal(t, "GeoPoint(43.7952,-79.2670)", p.String())
	})
}
