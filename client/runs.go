package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// RunService handles pipeline runs.
type RunService struct {
	c *Client
}

type runListResponse struct {
	Runs    []RunSummary `json:"runs"`
	HasMore bool         `json:"has_more"`
}

type networksResponse struct {
	Networks []Network `json:"networks"`
}

// List returns run summaries, newest first.
func (s *RunService) List(ctx context.Context, opts *ListOptions) ([]RunSummary, bool, error) {
	params := url.Values{}
	if opts != nil {
		if opts.Limit > 0 {
			params.Set("limit", strconv.Itoa(opts.Limit))
		}
		if opts.Offset > 0 {
			params.Set("offset", strconv.Itoa(opts.Offset))
		}
	}
	var resp runListResponse
	if err := s.c.get(ctx, "/api/v1/runs", params, &resp); err != nil {
		return nil, false, err
	}
	return resp.Runs, resp.HasMore, nil
}

// Create runs the pipeline for the given genes and returns the completed run.
func (s *RunService) Create(ctx context.Context, req *CreateRunRequest) (*Run, error) {
	var run Run
	if err := s.c.post(ctx, "/api/v1/runs", req, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

// Get returns a run by ID.
func (s *RunService) Get(ctx context.Context, id string) (*Run, error) {
	var run Run
	if err := s.c.get(ctx, "/api/v1/runs/"+url.PathEscape(id), nil, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

// Networks returns only the annotated networks of a run.
func (s *RunService) Networks(ctx context.Context, id string) ([]Network, error) {
	var resp networksResponse
	if err := s.c.get(ctx, "/api/v1/runs/"+url.PathEscape(id)+"/networks", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Networks, nil
}

// Report returns the plain-text network report of a run.
func (s *RunService) Report(ctx context.Context, id string) (string, error) {
	body, err := s.c.send(ctx, http.MethodGet, "/api/v1/runs/"+url.PathEscape(id)+"/report", nil)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Delete removes a run.
func (s *RunService) Delete(ctx context.Context, id string) error {
	return s.c.del(ctx, "/api/v1/runs/"+url.PathEscape(id))
}
