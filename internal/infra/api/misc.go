package api

import (
	"context"

	"agrodoctor/internal/domain/entity"
	"agrodoctor/internal/domain/service"
)

// Hotspots lists geo-tagged disease hotspots for the outbreak map.
func (c *Client) Hotspots(ctx context.Context) ([]entity.Hotspot, error) {
	var hotspots []entity.Hotspot
	if err := c.getJSON(ctx, "/get-hotspots/", nil, &hotspots); err != nil {
		return nil, err
	}

	return hotspots, nil
}

// SubmitFeedback sends free-text feedback tied to the sender's identity.
func (c *Client) SubmitFeedback(ctx context.Context, input *service.FeedbackInput) error {
	return c.postJSON(ctx, "/submit-feedback/", input, nil)
}
