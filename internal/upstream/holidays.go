package upstream

import (
	"context"
	"net/http"
)

type SaveHolidayRequest struct {
	Name             string `json:"name"`
	Date             string `json:"date"`
	Recurring        bool   `json:"recurring"`
	Restricted       bool   `json:"restricted"`
	RestrictedReason string `json:"restrictedReason,omitempty"`
}

// HolidayAPI covers the holiday calendar.
type HolidayAPI interface {
	Holidays(ctx context.Context) ([]Holiday, error)
	CreateHoliday(ctx context.Context, req SaveHolidayRequest) (Holiday, error)
	UpdateHoliday(ctx context.Context, id string, req SaveHolidayRequest) (Holiday, error)
	DeleteHoliday(ctx context.Context, id string) error
}

func (c *Client) Holidays(ctx context.Context) ([]Holiday, error) {
	var out []Holiday
	err := c.do(ctx, http.MethodGet, "/holidays", nil, nil, &out)
	return out, err
}

func (c *Client) CreateHoliday(ctx context.Context, req SaveHolidayRequest) (Holiday, error) {
	var out Holiday
	err := c.do(ctx, http.MethodPost, "/holidays", nil, req, &out)
	return out, err
}

func (c *Client) UpdateHoliday(ctx context.Context, id string, req SaveHolidayRequest) (Holiday, error) {
	var out Holiday
	err := c.do(ctx, http.MethodPut, "/holidays/"+id, nil, req, &out)
	return out, err
}

func (c *Client) DeleteHoliday(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/holidays/"+id, nil, nil, nil)
}
