package upstream

import (
	"context"
	"net/http"
	"net/url"
)

type CreateLeaveRequest struct {
	LeaveType           string   `json:"leaveType"`
	StartDate           string   `json:"startDate"`
	EndDate             string   `json:"endDate"`
	IsHalfDay           bool     `json:"isHalfDay"`
	IsMorning           bool     `json:"isMorning"`
	Reason              string   `json:"reason"`
	SupportingDocuments []string `json:"supportingDocuments,omitempty"`
}

// LeaveFilter narrows the self-history listing. Zero values are omitted
// from the query string.
type LeaveFilter struct {
	Status    string
	LeaveType string
	StartDate string
	EndDate   string
	Search    string
	PageQuery
}

func (f LeaveFilter) query() url.Values {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.LeaveType != "" {
		q.Set("leaveType", f.LeaveType)
	}
	if f.StartDate != "" {
		q.Set("startDate", f.StartDate)
	}
	if f.EndDate != "" {
		q.Set("endDate", f.EndDate)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	f.PageQuery.apply(q)
	return q
}

// LeaveAPI covers the leave-application resource group.
type LeaveAPI interface {
	CreateLeave(ctx context.Context, req CreateLeaveRequest) (LeaveApplication, error)
	EmployeeLeaves(ctx context.Context, filter LeaveFilter) (Page[LeaveApplication], error)
	LeavesByStatus(ctx context.Context, status string) ([]LeaveApplication, error)
	UpdateLeaveStatus(ctx context.Context, id, status, comment string) (LeaveApplication, error)
	CancelLeave(ctx context.Context, id string) (LeaveApplication, error)
	LeavesOnDate(ctx context.Context, selectedDate, department string) ([]LeaveApplication, error)
	ExportLeavesCSV(ctx context.Context, status string, filter LeaveFilter) ([]byte, string, error)
}

func (c *Client) CreateLeave(ctx context.Context, req CreateLeaveRequest) (LeaveApplication, error) {
	var out LeaveApplication
	err := c.do(ctx, http.MethodPost, "/leave-applications", nil, req, &out)
	return out, err
}

func (c *Client) EmployeeLeaves(ctx context.Context, filter LeaveFilter) (Page[LeaveApplication], error) {
	var out Page[LeaveApplication]
	err := c.do(ctx, http.MethodGet, "/leave-applications/employee", filter.query(), nil, &out)
	return out, err
}

func (c *Client) LeavesByStatus(ctx context.Context, status string) ([]LeaveApplication, error) {
	var out []LeaveApplication
	err := c.do(ctx, http.MethodGet, "/leave-applications/status/"+status, nil, nil, &out)
	return out, err
}

func (c *Client) UpdateLeaveStatus(ctx context.Context, id, status, comment string) (LeaveApplication, error) {
	q := url.Values{}
	q.Set("status", status)
	if comment != "" {
		q.Set("comment", comment)
	}
	var out LeaveApplication
	err := c.do(ctx, http.MethodPut, "/leave-applications/"+id+"/status", q, nil, &out)
	return out, err
}

func (c *Client) CancelLeave(ctx context.Context, id string) (LeaveApplication, error) {
	var out LeaveApplication
	err := c.do(ctx, http.MethodPut, "/leave-applications/"+id+"/cancel", nil, nil, &out)
	return out, err
}

func (c *Client) LeavesOnDate(ctx context.Context, selectedDate, department string) ([]LeaveApplication, error) {
	q := url.Values{}
	q.Set("selectedDate", selectedDate)
	if department != "" {
		q.Set("department", department)
	}
	var out []LeaveApplication
	err := c.do(ctx, http.MethodGet, "/leave-applications/date", q, nil, &out)
	return out, err
}

// ExportLeavesCSV streams the HR core's CSV export through untouched.
// Returns the payload and its content type.
func (c *Client) ExportLeavesCSV(ctx context.Context, status string, filter LeaveFilter) ([]byte, string, error) {
	return c.doRaw(ctx, http.MethodGet, "/leave-applications/export/"+status, filter.query(), nil)
}
