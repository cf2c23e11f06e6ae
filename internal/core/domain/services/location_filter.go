package services

import (
	"strings"

	"shiftbooker/internal/core/domain/model/job"
	"shiftbooker/internal/core/domain/model/kernel"
	"shiftbooker/internal/pkg/errs"
)

// LocationFilterConfig describes the geographic criteria a job must satisfy
// before it is considered for booking. The configuration is validated once
// at startup and immutable afterwards.
type LocationFilterConfig struct {
	// Enabled turns filtering on. When false every job matches.
	Enabled bool

	// AllowedNames is the set of acceptable location names, matched
	// case-insensitively against the job's city.
	AllowedNames []string

	// GeoCenter is the optional center for radius matching.
	GeoCenter *kernel.GeoPoint

	// RadiusKm is the acceptance radius around GeoCenter in kilometers.
	// Required (and must be positive) when GeoCenter is set.
	RadiusKm float64
}

// LocationFilter is a pure predicate over a job's location. It is a domain
// service with no state beyond its immutable configuration, so calls are
// deterministic and independent of order.
//
// Matching rules:
//   - Disabled filter: every job matches.
//   - Enabled: a job matches when its city equals one of the allowed names
//     (case-insensitive), or when its coordinates fall within RadiusKm of
//     GeoCenter.
//   - Missing or malformed location data never matches (fail closed).
//   - Enabled with neither names nor a geo-radius configured rejects every
//     job (fail closed, not open).
type LocationFilter struct {
	enabled  bool
	allowed  map[string]struct{}
	center   *kernel.GeoPoint
	radiusKm float64
}

// NewLocationFilter validates the configuration and builds a filter.
// A configured GeoCenter must be a constructed GeoPoint and must come with a
// positive radius; a radius without a center is rejected. Invalid filter
// configuration is a startup error that prevents the poll loop from running.
func NewLocationFilter(cfg LocationFilterConfig) (LocationFilter, error) {
	if cfg.GeoCenter != nil {
		if err := cfg.GeoCenter.Validate(); err != nil {
			return LocationFilter{}, err
		}
		if cfg.RadiusKm <= 0 {
			return LocationFilter{}, errs.NewValueIsInvalidError("radiusKm must be positive when a geo center is configured")
		}
	} else if cfg.RadiusKm != 0 {
		return LocationFilter{}, errs.NewValueIsRequiredError("geoCenter is required when radiusKm is configured")
	}

	allowed := make(map[string]struct{}, len(cfg.AllowedNames))
	for _, name := range cfg.AllowedNames {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		allowed[name] = struct{}{}
	}

	return LocationFilter{
		enabled:  cfg.Enabled,
		allowed:  allowed,
		center:   cfg.GeoCenter,
		radiusKm: cfg.RadiusKm,
	}, nil
}

// Matches reports whether the job's location satisfies the configured
// criteria. It has no side effects.
func (f LocationFilter) Matches(j *job.Job) bool {
	if !f.enabled {
		return true
	}
	if j.Validate() != nil {
		return false
	}

	loc := j.Location()

	if city := strings.ToLower(strings.TrimSpace(loc.City())); city != "" {
		if _, ok := f.allowed[city]; ok {
			return true
		}
	}

	if f.center != nil {
		if coords, ok := loc.Coordinates(); ok {
			km, err := f.center.DistanceKm(coords)
			if err == nil && km <= f.radiusKm {
				return true
			}
		}
	}

	return false
}

// Enabled reports whether filtering is active.
func (f LocationFilter) Enabled() bool {
	return f.enabled
}
