// ABOUTME: Blacklist endpoints
// ABOUTME: Blocked-phone management including removal by raw phone number

package api

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
)

// Blacklist lists blacklist entries with pass-through filter parameters.
func (c *Client) Blacklist(ctx context.Context, query url.Values) (json.RawMessage, error) {
	return c.get(ctx, "/blacklist", query)
}

// AddToBlacklist blocks a phone number.
func (c *Client) AddToBlacklist(ctx context.Context, data any) (json.RawMessage, error) {
	return c.post(ctx, "/blacklist", data)
}

// RemoveFromBlacklist removes an entry by id.
func (c *Client) RemoveFromBlacklist(ctx context.Context, id string) (json.RawMessage, error) {
	return c.delete(ctx, "/blacklist/"+id)
}

// RemoveFromBlacklistByPhone removes an entry by phone number. Phones
// contain "+" and spaces, so the value is percent-encoded into the
// path segment ("+998 90" becomes "%2B998%2090").
func (c *Client) RemoveFromBlacklistByPhone(ctx context.Context, phone string) (json.RawMessage, error) {
	return c.delete(ctx, "/blacklist/by-phone/"+encodePathValue(phone))
}

// encodePathValue percent-encodes a value for use as a path segment,
// escaping "+" and encoding spaces as %20 rather than "+".
func encodePathValue(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}
