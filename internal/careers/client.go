package careers

import (
	"context"
	"fmt"

	"github.com/jimezsa/askmcp/internal/models"
	"github.com/jimezsa/askmcp/internal/network"
)

const (
	DefaultApplicationsURL = "https://careers.gaffis.com/public/api/jobApplicationList"
	DefaultSchedulesURL    = "https://careers.gaffis.com/public/api/schedules"
)

type Client struct {
	doer            network.Doer
	applicationsURL string
	schedulesURL    string
}

func NewClient(doer network.Doer, applicationsURL, schedulesURL string) *Client {
	if applicationsURL == "" {
		applicationsURL = DefaultApplicationsURL
	}
	if schedulesURL == "" {
		schedulesURL = DefaultSchedulesURL
	}
	return &Client{
		doer:            doer,
		applicationsURL: applicationsURL,
		schedulesURL:    schedulesURL,
	}
}

// Applications fetches the full job application list. Failures are
// returned as-is; there is no fallback list.
func (c *Client) Applications(ctx context.Context) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	if err := network.GetJSON(ctx, c.doer, c.applicationsURL, &apps); err != nil {
		return nil, fmt.Errorf("fetch job applications: %w", err)
	}
	return apps, nil
}

// Schedules fetches the full interview schedule list.
func (c *Client) Schedules(ctx context.Context) ([]models.InterviewSchedule, error) {
	var schedules []models.InterviewSchedule
	if err := network.GetJSON(ctx, c.doer, c.schedulesURL, &schedules); err != nil {
		return nil, fmt.Errorf("fetch interview schedules: %w", err)
	}
	return schedules, nil
}
