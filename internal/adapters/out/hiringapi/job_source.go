package hiringapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"shiftbooker/internal/core/domain/model/job"
)

const searchJobCardsQuery = `query searchJobCardsByLocation($searchJobRequest: SearchJobRequest!) {
  searchJobCardsByLocation(searchJobRequest: $searchJobRequest) {
    nextToken
    jobCards {
      jobId
      jobTitle
      jobType
      employmentType
      city
      state
      postalCode
      locationName
    }
  }
}`

const searchScheduleCardsQuery = `query searchScheduleCards($searchScheduleRequest: SearchScheduleRequest!) {
  searchScheduleCards(searchScheduleRequest: $searchScheduleRequest) {
    nextToken
    scheduleCards {
      scheduleId
      scheduleName
      laborDemandAvailableCount
      hireStartDate
      basePay
      city
      currencyCode
      employmentType
      externalJobTitle
      firstDayOnSite
      hoursPerWeek
      jobId
    }
  }
}`

type graphQLRequest struct {
	OperationName string `json:"operationName"`
	Variables     any    `json:"variables"`
	Query         string `json:"query"`
}

type jobCard struct {
	JobID      string `json:"jobId"`
	JobTitle   string `json:"jobTitle"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

type scheduleCard struct {
	ScheduleID     string  `json:"scheduleId"`
	ScheduleName   string  `json:"scheduleName"`
	AvailableCount int     `json:"laborDemandAvailableCount"`
	BasePay        float64 `json:"basePay"`
	City           string  `json:"city"`
	CurrencyCode   string  `json:"currencyCode"`
	FirstDayOnSite string  `json:"firstDayOnSite"`
	HoursPerWeek   float64 `json:"hoursPerWeek"`
	JobID          string  `json:"jobId"`
}

type searchJobCardsResponse struct {
	Data struct {
		SearchJobCardsByLocation struct {
			JobCards []jobCard `json:"jobCards"`
		} `json:"searchJobCardsByLocation"`
	} `json:"data"`
}

type searchScheduleCardsResponse struct {
	Data struct {
		SearchScheduleCards struct {
			ScheduleCards []scheduleCard `json:"scheduleCards"`
		} `json:"searchScheduleCards"`
	} `json:"data"`
}

// FetchAvailableJobs returns one listing per (job, schedule) pair. Job cards
// are fetched first, then every card's schedules; a schedule fetch failure
// fails the whole cycle so a partial view is never dispatched against.
func (c *Client) FetchAvailableJobs(ctx context.Context) ([]*job.Job, error) {
	cards, err := c.fetchJobCards(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch job cards: %w", err)
	}

	discoveredAt := time.Now()
	jobs := make([]*job.Job, 0, len(cards))
	for _, card := range cards {
		if card.JobID == "" {
			continue
		}

		schedules, schedErr := c.fetchScheduleCards(ctx, card.JobID)
		if schedErr != nil {
			return nil, fmt.Errorf("fetch schedules for %s: %w", card.JobID, schedErr)
		}

		for _, schedule := range schedules {
			if schedule.ScheduleID == "" {
				continue
			}

			listing, jobErr := job.NewJob(
				job.ComposeID(card.JobID, schedule.ScheduleID),
				card.JobTitle,
				job.NewLocation(pickCity(card, schedule), nil),
				shiftDetail(schedule),
				discoveredAt,
			)
			if jobErr != nil {
				return nil, jobErr
			}
			jobs = append(jobs, listing)
		}
	}

	return jobs, nil
}

// pickCity prefers the schedule's city since it names the actual site.
func pickCity(card jobCard, schedule scheduleCard) string {
	if schedule.City != "" {
		return schedule.City
	}
	return card.City
}

func shiftDetail(schedule scheduleCard) job.ShiftDetail {
	payRate := ""
	if schedule.BasePay > 0 {
		payRate = fmt.Sprintf("%.2f %s", schedule.BasePay, schedule.CurrencyCode)
	}

	// The API reports the first day on site rather than shift start and end
	// times; both bounds carry it so records always show the shift date.
	return job.ShiftDetail{
		ScheduleID:     schedule.ScheduleID,
		ScheduleName:   schedule.ScheduleName,
		StartTime:      schedule.FirstDayOnSite,
		EndTime:        schedule.FirstDayOnSite,
		PayRate:        payRate,
		AvailableSlots: schedule.AvailableCount,
	}
}

func (c *Client) fetchJobCards(ctx context.Context) ([]jobCard, error) {
	searchRequest := map[string]any{
		"locale":   "en-CA",
		"country":  "Canada",
		"pageSize": 100,
		"dateFilters": []map[string]any{
			{
				"key":   "firstDayOnSite",
				"range": map[string]string{"startDate": time.Now().Format("2006-01-02")},
			},
		},
	}
	if c.cfg.SearchCenter != nil {
		searchRequest["geoQueryClause"] = map[string]any{
			"lat":      c.cfg.SearchCenter.Latitude(),
			"lng":      c.cfg.SearchCenter.Longitude(),
			"unit":     "km",
			"distance": c.cfg.SearchRadiusKm,
		}
	}

	var response searchJobCardsResponse
	err := c.postGraphQL(ctx, graphQLRequest{
		OperationName: "searchJobCardsByLocation",
		Variables:     map[string]any{"searchJobRequest": searchRequest},
		Query:         searchJobCardsQuery,
	}, &response)
	if err != nil {
		return nil, err
	}

	return response.Data.SearchJobCardsByLocation.JobCards, nil
}

func (c *Client) fetchScheduleCards(ctx context.Context, jobID string) ([]scheduleCard, error) {
	searchRequest := map[string]any{
		"locale":   "en-CA",
		"country":  "Canada",
		"jobId":    jobID,
		"pageSize": 1000,
		"containFilters": []map[string]any{
			{"key": "isPrivateSchedule", "val": []string{"false"}},
		},
		"dateFilters": []map[string]any{
			{
				"key":   "firstDayOnSite",
				"range": map[string]string{"startDate": time.Now().Format("2006-01-02")},
			},
		},
	}

	var response searchScheduleCardsResponse
	err := c.postGraphQL(ctx, graphQLRequest{
		OperationName: "searchScheduleCards",
		Variables:     map[string]any{"searchScheduleRequest": searchRequest},
		Query:         searchScheduleCardsQuery,
	}, &response)
	if err != nil {
		return nil, err
	}

	return response.Data.SearchScheduleCards.ScheduleCards, nil
}

func (c *Client) postGraphQL(ctx context.Context, request graphQLRequest, response any) error {
	payload, err := json.Marshal(request)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.SearchURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("search request failed with status %d: %s", resp.StatusCode, body)
	}

	return json.NewDecoder(resp.Body).Decode(response)
}
