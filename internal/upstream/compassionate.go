package upstream

import (
	"context"
	"net/http"
	"net/url"
)

type CreateCompassionateRequest struct {
	WorkDate  string `json:"workDate"`
	Reason    string `json:"reason"`
	IsHoliday bool   `json:"isHoliday"`
	IsWeekend bool   `json:"isWeekend"`
}

// CompassionateAPI covers compassionate-leave requests.
type CompassionateAPI interface {
	CreateCompassionate(ctx context.Context, req CreateCompassionateRequest) (CompassionateLeave, error)
	CompassionateLeaves(ctx context.Context, status string, page PageQuery) (Page[CompassionateLeave], error)
	UpdateCompassionateStatus(ctx context.Context, id, status, comment string) (CompassionateLeave, error)
}

func (c *Client) CreateCompassionate(ctx context.Context, req CreateCompassionateRequest) (CompassionateLeave, error) {
	var out CompassionateLeave
	err := c.do(ctx, http.MethodPost, "/compassionate-leaves", nil, req, &out)
	return out, err
}

func (c *Client) CompassionateLeaves(ctx context.Context, status string, page PageQuery) (Page[CompassionateLeave], error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	page.apply(q)
	var out Page[CompassionateLeave]
	err := c.do(ctx, http.MethodGet, "/compassionate-leaves", q, nil, &out)
	return out, err
}

func (c *Client) UpdateCompassionateStatus(ctx context.Context, id, status, comment string) (CompassionateLeave, error) {
	q := url.Values{}
	q.Set("status", status)
	if comment != "" {
		q.Set("comment", comment)
	}
	var out CompassionateLeave
	err := c.do(ctx, http.MethodPut, "/compassionate-leaves/"+id+"/status", q, nil, &out)
	return out, err
}
