// ABOUTME: Promotional stories endpoints
// ABOUTME: Story and slide management plus image upload

package api

import (
	"context"
	"encoding/json"
	"io"
)

// Stories lists the published stories.
func (c *Client) Stories(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/stories", nil)
}

// CreateStory creates a story.
func (c *Client) CreateStory(ctx context.Context, data any) (json.RawMessage, error) {
	return c.post(ctx, "/admin/stories", data)
}

// UpdateStory applies a partial update to a story.
func (c *Client) UpdateStory(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return c.patch(ctx, "/admin/stories/"+id, data)
}

// DeleteStory removes a story and its slides.
func (c *Client) DeleteStory(ctx context.Context, id string) (json.RawMessage, error) {
	return c.delete(ctx, "/admin/stories/"+id)
}

// AddSlide appends a slide to a story.
func (c *Client) AddSlide(ctx context.Context, storyID string, data any) (json.RawMessage, error) {
	return c.post(ctx, "/admin/stories/"+storyID+"/slides", data)
}

// DeleteSlide removes a single slide by its own id.
func (c *Client) DeleteSlide(ctx context.Context, slideID string) (json.RawMessage, error) {
	return c.delete(ctx, "/admin/stories/slides/"+slideID)
}

// UploadStoryImage uploads a slide image and returns its public URL.
func (c *Client) UploadStoryImage(ctx context.Context, filename string, file io.Reader) (json.RawMessage, error) {
	return c.postMultipart(ctx, "/admin/stories/upload", nil, filename, file)
}
