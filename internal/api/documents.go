// ABOUTME: Document and video endpoints for application files
// ABOUTME: Uploads carry metadata in the query string and the binary in the body

package api

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
)

// UploadDocument uploads an application document. The application id
// and document type travel as query parameters while the file goes in
// the multipart body; the backend depends on this split.
func (c *Client) UploadDocument(ctx context.Context, appID, documentType, filename string, file io.Reader) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("app_id", appID)
	query.Set("type", documentType)
	return c.postMultipart(ctx, "/documents/upload", query, filename, file)
}

// Documents lists the documents attached to an application.
func (c *Client) Documents(ctx context.Context, appID string) (json.RawMessage, error) {
	return c.get(ctx, "/documents/applications/"+appID+"/documents", nil)
}

// Videos lists the videos attached to an application.
func (c *Client) Videos(ctx context.Context, appID string) (json.RawMessage, error) {
	return c.get(ctx, "/documents/applications/"+appID+"/videos", nil)
}
