// ABOUTME: Admin endpoints: stats, audit logs, settings and overrides
// ABOUTME: Settings updates send the new value wrapped in a {value} body

package api

import (
	"context"
	"encoding/json"
	"net/url"
)

type settingUpdate struct {
	Value any `json:"value"`
}

// Stats fetches the admin dashboard statistics.
func (c *Client) Stats(ctx context.Context, query url.Values) (json.RawMessage, error) {
	return c.get(ctx, "/admin/stats", query)
}

// AuditLogs lists audit log entries with pass-through paging parameters.
func (c *Client) AuditLogs(ctx context.Context, query url.Values) (json.RawMessage, error) {
	return c.get(ctx, "/admin/audit-logs", query)
}

// Settings lists the backend settings.
func (c *Client) Settings(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/admin/settings", nil)
}

// UpdateSetting sets a single setting by key.
func (c *Client) UpdateSetting(ctx context.Context, key string, value any) (json.RawMessage, error) {
	return c.patch(ctx, "/admin/settings/"+key, settingUpdate{Value: value})
}

// OverridePrice overrides the agreed price on an application.
func (c *Client) OverridePrice(ctx context.Context, appID string, data any) (json.RawMessage, error) {
	return c.patch(ctx, "/admin/applications/"+appID+"/price", data)
}

// OverrideStatus force-sets an application status, bypassing the
// normal transition rules.
func (c *Client) OverrideStatus(ctx context.Context, appID string, data any) (json.RawMessage, error) {
	return c.patch(ctx, "/admin/applications/"+appID+"/status", data)
}
