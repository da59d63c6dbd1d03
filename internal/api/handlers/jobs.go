package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/cart-abandonment-notifier/pkg/types"
)

// JobsProvider defines the store methods required by the jobs handler.
type JobsProvider interface {
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
}

// JobsHandler handles scheduler job history requests.
type JobsHandler struct {
	store JobsProvider
}

// NewJobsHandler creates a new JobsHandler.
func NewJobsHandler(s JobsProvider) *JobsHandler {
	return &JobsHandler{store: s}
}

// JobRunBody is a job_runs row as served by the API.
type JobRunBody struct {
	domain.JobRun

	// NotifiedCarts is set for the abandonment job only. The scheduler stores
	// the run's success total in rows_affected: carts whose event got a 201.
	NotifiedCarts *int `json:"notified_carts,omitempty" doc:"Carts notified in this abandonment run"`
	// DurationSeconds is unset while the run is in progress.
	DurationSeconds *float64 `json:"duration_seconds,omitempty" doc:"Wall time of a finished run"`
}

func newJobRunBody(r domain.JobRun) JobRunBody {
	b := JobRunBody{JobRun: r}
	if r.JobName == domain.AbandonmentJobName && r.RowsAffected != nil {
		n := *r.RowsAffected
		b.NotifiedCarts = &n
	}
	if r.CompletedAt != nil {
		d := r.CompletedAt.Sub(r.StartedAt).Seconds()
		b.DurationSeconds = &d
	}
	return b
}

func newJobRunBodies(runs []domain.JobRun) []JobRunBody {
	out := make([]JobRunBody, 0, len(runs))
	for _, r := range runs {
		out = append(out, newJobRunBody(r))
	}
	return out
}

// ListJobsOutput is the response body for listing the latest job runs.
type ListJobsOutput struct {
	Body []JobRunBody
}

// GetJobHistoryInput is the request path for job history.
type GetJobHistoryInput struct {
	JobName string `path:"job_name" doc:"Scheduled job name (e.g. cart_abandonment)"`
	Limit   int    `query:"limit" default:"20" minimum:"1" maximum:"200" doc:"Maximum runs to return"`
}

// GetJobHistoryOutput is the response body for a single job's history.
type GetJobHistoryOutput struct {
	Body []JobRunBody
}

// ListJobs returns the most recent run for each distinct scheduler job.
func (h *JobsHandler) ListJobs(
	ctx context.Context,
	_ *struct{},
) (*ListJobsOutput, error) {
	runs, err := h.store.ListLatestJobRuns(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing jobs failed: " + err.Error())
	}

	return &ListJobsOutput{Body: newJobRunBodies(runs)}, nil
}

// GetJobHistory returns the run history for a specific scheduler job.
func (h *JobsHandler) GetJobHistory(
	ctx context.Context,
	input *GetJobHistoryInput,
) (*GetJobHistoryOutput, error) {
	runs, err := h.store.ListJobRuns(ctx, input.JobName, input.Limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("fetching job history failed: " + err.Error())
	}

	return &GetJobHistoryOutput{Body: newJobRunBodies(runs)}, nil
}

// RegisterJobRoutes registers scheduler job endpoints with the Huma API.
func RegisterJobRoutes(api huma.API, h *JobsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-jobs",
		Method:      http.MethodGet,
		Path:        "/api/v1/jobs",
		Summary:     "List latest scheduler job runs",
		Description: "Returns the most recent run record for each distinct scheduled job. " +
			"For cart_abandonment, rows_affected and notified_carts are the number of carts " +
			"whose event was accepted (HTTP 201) during the run.",
		Tags:        []string{"scheduler"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListJobs)

	huma.Register(api, huma.Operation{
		OperationID: "get-job-history",
		Method:      http.MethodGet,
		Path:        "/api/v1/jobs/{job_name}",
		Summary:     "Get scheduler job history",
		Description: "Returns the run history for a specific scheduled job (newest first). " +
			"A failed cart_abandonment run still reports the carts notified before it stopped.",
		Tags:        []string{"scheduler"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.GetJobHistory)
}
