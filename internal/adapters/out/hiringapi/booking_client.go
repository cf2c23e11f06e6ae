package hiringapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"shiftbooker/internal/core/domain/model/booking"
	"shiftbooker/internal/core/domain/model/job"
)

type createApplicationRequest struct {
	JobID                         string `json:"jobId"`
	ScheduleID                    string `json:"scheduleId"`
	CandidateID                   string `json:"candidateId"`
	DspEnabled                    bool   `json:"dspEnabled"`
	ActiveApplicationCheckEnabled bool   `json:"activeApplicationCheckEnabled"`
}

type createApplicationResponse struct {
	ApplicationID string `json:"applicationId"`
}

// AttemptBook submits one application for the listing's (job, schedule) pair.
// Failures come back as *booking.Error: transport trouble and timeouts are
// retryable, explicit rejections and authorization failures are terminal.
func (c *Client) AttemptBook(ctx context.Context, j *job.Job) (booking.Confirmation, error) {
	if err := j.Validate(); err != nil {
		return booking.Confirmation{}, err
	}

	payload, err := json.Marshal(createApplicationRequest{
		JobID:                         jobIDOf(j),
		ScheduleID:                    j.Shift().ScheduleID,
		CandidateID:                   c.cfg.CandidateID,
		DspEnabled:                    true,
		ActiveApplicationCheckEnabled: true,
	})
	if err != nil {
		return booking.Confirmation{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.ApplicationURL, bytes.NewReader(payload))
	if err != nil {
		return booking.Confirmation{}, err
	}
	req.Header.Set("Content-Type", "application/json;charset=UTF-8")
	req.Header.Set("Accept", "application/json")
	if c.cfg.AuthToken != "" {
		req.Header.Set("Authorization", c.cfg.AuthToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return booking.Confirmation{}, classifyRequestError(ctx, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return booking.Confirmation{}, classifyStatus(resp)
	}

	var response createApplicationResponse
	if err = json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return booking.Confirmation{}, booking.NewTransportError(fmt.Errorf("decode response: %w", err))
	}

	applicationID := response.ApplicationID
	if applicationID == "" {
		applicationID = j.ID()
	}

	return booking.Confirmation{
		ApplicationID: applicationID,
		BookedAt:      time.Now(),
	}, nil
}

// jobIDOf recovers the platform's job identifier from the composite listing
// identifier.
func jobIDOf(j *job.Job) string {
	id := j.ID()
	scheduleID := j.Shift().ScheduleID
	if scheduleID != "" && len(id) > len(scheduleID)+1 {
		return id[:len(id)-len(scheduleID)-1]
	}
	return id
}

func classifyRequestError(ctx context.Context, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
		return booking.NewShutdownError()
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return booking.NewTimeoutError(err)
	}

	return booking.NewTransportError(err)
}

func classifyStatus(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return booking.NewUnauthorizedError(fmt.Sprintf("status %d: %s", resp.StatusCode, body))
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return booking.NewRejectedError(fmt.Sprintf("status %d: %s", resp.StatusCode, body))
	default:
		return booking.NewTransportError(fmt.Errorf("status %d: %s", resp.StatusCode, body))
	}
}
