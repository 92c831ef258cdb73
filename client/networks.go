package client

import "context"

// NetworkService builds networks without running the fetch pipeline.
type NetworkService struct {
	c *Client
}

// Build groups the given interactions into networks. Nothing is stored.
func (s *NetworkService) Build(ctx context.Context, interactions []Interaction) ([]Network, error) {
	body := struct {
		Interactions []Interaction `json:"interactions"`
	}{Interactions: interactions}

	var resp networksResponse
	if err := s.c.post(ctx, "/api/v1/networks", body, &resp); err != nil {
		return nil, err
	}
	return resp.Networks, nil
}
