// ABOUTME: Payment endpoints
// ABOUTME: Global payment listing and stats plus per-application invoice lifecycle

package api

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
)

// Payments lists all payments with pass-through filter parameters.
func (c *Client) Payments(ctx context.Context, query url.Values) (json.RawMessage, error) {
	return c.get(ctx, "/payments", query)
}

// PaymentStats fetches aggregate payment counts and volume.
func (c *Client) PaymentStats(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/payments/stats", nil)
}

// CreateInvoice opens a payment invoice on an application.
func (c *Client) CreateInvoice(ctx context.Context, appID string, data any) (json.RawMessage, error) {
	return c.post(ctx, "/applications/"+appID+"/payments", data)
}

// UploadReceipt attaches a receipt image to a payment.
func (c *Client) UploadReceipt(ctx context.Context, appID, paymentID, filename string, file io.Reader) (json.RawMessage, error) {
	return c.postMultipart(ctx, "/applications/"+appID+"/payments/"+paymentID+"/receipt", nil, filename, file)
}

// ConfirmPayment marks a payment as received.
func (c *Client) ConfirmPayment(ctx context.Context, appID, paymentID string) (json.RawMessage, error) {
	return c.patch(ctx, "/applications/"+appID+"/payments/"+paymentID+"/confirm", nil)
}

// RejectPayment rejects a pending payment.
func (c *Client) RejectPayment(ctx context.Context, appID, paymentID string, data any) (json.RawMessage, error) {
	return c.patch(ctx, "/applications/"+appID+"/payments/"+paymentID+"/reject", data)
}
