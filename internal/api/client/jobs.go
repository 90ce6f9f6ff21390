package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/dataset-pricer/pkg/types"
)

// ListJobs returns the most recent run for each distinct scheduled job.
func (c *Client) ListJobs(ctx context.Context) ([]domain.JobRun, error) {
	var runs []domain.JobRun
	if err := c.get(ctx, "/api/v1/jobs", &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// JobHistoryQuery narrows GetJobHistory. Zero values use server defaults.
type JobHistoryQuery struct {
	Limit  int
	Status string
}

// GetJobHistory returns runs of a scheduled job, newest first.
func (c *Client) GetJobHistory(ctx context.Context, jobName string, q JobHistoryQuery) ([]domain.JobRun, error) {
	params := url.Values{}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Status != "" {
		params.Set("status", q.Status)
	}

	path := "/api/v1/jobs/" + url.PathEscape(jobName)
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var runs []domain.JobRun
	if err := c.get(ctx, path, &runs); err != nil {
		return nil, err
	}
	return runs, nil
}
