package handlers

import (
	"cmp"
	"context"
	"net/http"
	"slices"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/dataset-pricer/pkg/types"
)

// JobsProvider is the slice of the store that reads job_runs.
type JobsProvider interface {
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
}

// JobsHandler serves scheduler run history so operators can see whether
// the auto-reprice job ran and how many prices it applied.
type JobsHandler struct {
	store JobsProvider
}

// NewJobsHandler creates a JobsHandler.
func NewJobsHandler(s JobsProvider) *JobsHandler {
	return &JobsHandler{store: s}
}

// JobRunsOutput is the response for both job endpoints.
type JobRunsOutput struct {
	Body []domain.JobRun
}

// JobHistoryInput selects one job's runs.
type JobHistoryInput struct {
	JobName string `path:"job_name" doc:"Scheduled job name, e.g. auto_reprice"`
	Limit   int    `query:"limit" default:"20" minimum:"1" maximum:"200" doc:"Maximum runs to return"`
	Status  string `query:"status" enum:"running,succeeded,failed,crashed" doc:"Only return runs in this status"`
}

// ListJobs returns the newest run of every job, ordered by job name.
func (h *JobsHandler) ListJobs(ctx context.Context, _ *struct{}) (*JobRunsOutput, error) {
	runs, err := h.store.ListLatestJobRuns(ctx)
	if err != nil {
		return nil, internalError("listing jobs", err)
	}

	slices.SortStableFunc(runs, func(a, b domain.JobRun) int {
		return cmp.Compare(a.JobName, b.JobName)
	})
	return &JobRunsOutput{Body: nonNil(runs)}, nil
}

// GetJobHistory returns up to Limit runs of one job, newest first. The
// status filter applies to the fetched window, so a filtered page may hold
// fewer than Limit rows.
func (h *JobsHandler) GetJobHistory(ctx context.Context, in *JobHistoryInput) (*JobRunsOutput, error) {
	runs, err := h.store.ListJobRuns(ctx, in.JobName, in.Limit)
	if err != nil {
		return nil, internalError("fetching job history", err)
	}

	if in.Status != "" {
		runs = slices.DeleteFunc(runs, func(r domain.JobRun) bool {
			return r.Status != in.Status
		})
	}
	return &JobRunsOutput{Body: nonNil(runs)}, nil
}

func nonNil(runs []domain.JobRun) []domain.JobRun {
	if runs == nil {
		return []domain.JobRun{}
	}
	return runs
}

// RegisterJobRoutes registers the scheduler endpoints.
func RegisterJobRoutes(api huma.API, h *JobsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-jobs",
		Method:      http.MethodGet,
		Path:        "/api/v1/jobs",
		Summary:     "Latest run per scheduled job",
		Tags:        []string{"scheduler"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListJobs)

	huma.Register(api, huma.Operation{
		OperationID: "get-job-history",
		Method:      http.MethodGet,
		Path:        "/api/v1/jobs/{job_name}",
		Summary:     "Run history for one scheduled job",
		Description: "Newest first. rows_affected on an auto_reprice run is the number of prices it applied.",
		Tags:        []string{"scheduler"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.GetJobHistory)
}
