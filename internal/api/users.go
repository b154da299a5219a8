// ABOUTME: User and staff management endpoints
// ABOUTME: Listing, staff creation, activation toggles and deletion

package api

import (
	"context"
	"encoding/json"
	"net/url"
)

type userStatusUpdate struct {
	IsActive bool `json:"is_active"`
}

// Users lists users with pass-through filter parameters.
func (c *Client) Users(ctx context.Context, query url.Values) (json.RawMessage, error) {
	return c.get(ctx, "/users", query)
}

// DeleteUser removes a user account.
func (c *Client) DeleteUser(ctx context.Context, id string) (json.RawMessage, error) {
	return c.delete(ctx, "/users/"+id)
}

// CreateStaffUser creates an operator/manager/admin account.
func (c *Client) CreateStaffUser(ctx context.Context, data any) (json.RawMessage, error) {
	return c.post(ctx, "/users/staff", data)
}

// UpdateUserStatus activates or deactivates a user account.
func (c *Client) UpdateUserStatus(ctx context.Context, id string, active bool) (json.RawMessage, error) {
	return c.patch(ctx, "/users/"+id+"/status", userStatusUpdate{IsActive: active})
}
