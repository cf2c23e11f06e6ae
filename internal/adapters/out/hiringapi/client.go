// Package hiringapi adapts the external hiring platform's API to the core
// ports. Listings come from a GraphQL search endpoint in two steps, job cards
// then schedule cards per job, and bookings go to a separate application
// endpoint. One client implements both the job source and the booking client
// since they share the session.
package hiringapi

import (
	"net/http"
	"time"

	"shiftbooker/internal/core/domain/model/kernel"
	"shiftbooker/internal/pkg/errs"
)

const defaultTimeout = 15 * time.Second

// Config carries everything the client needs to talk to the platform.
type Config struct {
	// SearchURL is the GraphQL endpoint for job and schedule card searches.
	SearchURL string

	// ApplicationURL is the endpoint that creates candidate applications.
	ApplicationURL string

	// AuthToken is sent on application requests.
	AuthToken string

	// CandidateID identifies the applying candidate.
	CandidateID string

	// SearchCenter narrows the search geographically when set. Filtering
	// still happens locally; the server-side clause only trims the result
	// set early.
	SearchCenter *kernel.GeoPoint

	// SearchRadiusKm is the server-side search radius. Only used when
	// SearchCenter is set.
	SearchRadiusKm int

	// Timeout bounds each HTTP request. Zero means defaultTimeout.
	Timeout time.Duration
}

// Client talks to the hiring platform. Safe for concurrent use; the embedded
// http.Client is shared across requests.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a client from the given configuration.
func NewClient(cfg Config) (*Client, error) {
	if cfg.SearchURL == "" {
		return nil, errs.NewValueIsRequiredError("searchURL")
	}
	if cfg.ApplicationURL == "" {
		return nil, errs.NewValueIsRequiredError("applicationURL")
	}
	if cfg.SearchCenter != nil {
		if err := cfg.SearchCenter.Validate(); err != nil {
			return nil, err
		}
		if cfg.SearchRadiusKm <= 0 {
			return nil, errs.NewValueIsInvalidError("searchRadiusKm must be positive when searchCenter is set")
		}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}
