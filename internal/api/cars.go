// ABOUTME: Car inventory endpoints
// ABOUTME: List, fetch, create, update and delete cars

package api

import (
	"context"
	"encoding/json"
	"net/url"
)

// Cars lists cars, passing filter parameters through to the backend.
func (c *Client) Cars(ctx context.Context, query url.Values) (json.RawMessage, error) {
	return c.get(ctx, "/cars", query)
}

// Car fetches a single car by id.
func (c *Client) Car(ctx context.Context, id string) (json.RawMessage, error) {
	return c.get(ctx, "/cars/"+id, nil)
}

// CreateCar creates a car from an arbitrary payload.
func (c *Client) CreateCar(ctx context.Context, data any) (json.RawMessage, error) {
	return c.post(ctx, "/cars", data)
}

// UpdateCar applies a partial update to a car.
func (c *Client) UpdateCar(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return c.patch(ctx, "/cars/"+id, data)
}

// DeleteCar removes a car.
func (c *Client) DeleteCar(ctx context.Context, id string) (json.RawMessage, error) {
	return c.delete(ctx, "/cars/"+id)
}
