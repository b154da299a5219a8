// ABOUTME: Loan and lease application endpoints
// ABOUTME: Listing, status transitions, checklist, comments and staff assignment

package api

import (
	"context"
	"encoding/json"
	"net/url"
)

type statusUpdate struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

type contactStatusUpdate struct {
	ContactStatus string `json:"contact_status"`
	Note          string `json:"note,omitempty"`
}

type checklistUpdate struct {
	Checklist any `json:"checklist"`
}

type commentCreate struct {
	Text       string `json:"text"`
	IsInternal bool   `json:"is_internal"`
}

type operatorAssignment struct {
	OperatorID string `json:"operator_id"`
}

type managerAssignment struct {
	ManagerID string `json:"manager_id"`
}

// Applications lists applications with pass-through filter parameters.
func (c *Client) Applications(ctx context.Context, query url.Values) (json.RawMessage, error) {
	return c.get(ctx, "/applications", query)
}

// Application fetches a single application.
func (c *Client) Application(ctx context.Context, id string) (json.RawMessage, error) {
	return c.get(ctx, "/applications/"+id, nil)
}

// CreateApplication creates an application on behalf of a client
// (back-office entry path).
func (c *Client) CreateApplication(ctx context.Context, data any) (json.RawMessage, error) {
	return c.post(ctx, "/applications/admin", data)
}

// UpdateApplicationStatus moves an application to a new status with a reason.
func (c *Client) UpdateApplicationStatus(ctx context.Context, id, status, reason string) (json.RawMessage, error) {
	return c.patch(ctx, "/applications/"+id+"/status", statusUpdate{Status: status, Reason: reason})
}

// UpdateContactStatus records the outcome of a contact attempt.
func (c *Client) UpdateContactStatus(ctx context.Context, id, contactStatus, note string) (json.RawMessage, error) {
	return c.patch(ctx, "/applications/"+id+"/contact-status", contactStatusUpdate{ContactStatus: contactStatus, Note: note})
}

// UpdateChecklist replaces the application's document checklist.
func (c *Client) UpdateChecklist(ctx context.Context, id string, checklist any) (json.RawMessage, error) {
	return c.patch(ctx, "/applications/"+id+"/checklist", checklistUpdate{Checklist: checklist})
}

// Comments lists the comments on an application.
func (c *Client) Comments(ctx context.Context, id string) (json.RawMessage, error) {
	return c.get(ctx, "/applications/"+id+"/comments", nil)
}

// AddComment attaches a comment to an application.
func (c *Client) AddComment(ctx context.Context, id, text string, internal bool) (json.RawMessage, error) {
	return c.post(ctx, "/applications/"+id+"/comments", commentCreate{Text: text, IsInternal: internal})
}

// AssignOperator assigns an operator to an application.
func (c *Client) AssignOperator(ctx context.Context, appID, operatorID string) (json.RawMessage, error) {
	return c.patch(ctx, "/applications/"+appID+"/assign", operatorAssignment{OperatorID: operatorID})
}

// AssignManager assigns a manager to an application.
func (c *Client) AssignManager(ctx context.Context, appID, managerID string) (json.RawMessage, error) {
	return c.patch(ctx, "/applications/"+appID+"/assign-manager", managerAssignment{ManagerID: managerID})
}
