package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

type balanceValidation struct {
	Valid bool `json:"valid"`
}

// BalanceAPI covers leave balances and the advisory eligibility checks.
// The HR core re-runs both checks on submission; these exist to spare the
// user an avoidable round trip.
type BalanceAPI interface {
	Balances(ctx context.Context) ([]LeaveBalance, error)
	ValidateLeaveType(ctx context.Context, leaveType string) (bool, error)
	ValidateLeaveDays(ctx context.Context, leaveType string, days float64) (bool, error)
}

func (c *Client) Balances(ctx context.Context) ([]LeaveBalance, error) {
	var out []LeaveBalance
	err := c.do(ctx, http.MethodGet, "/leave-balances/", nil, nil, &out)
	return out, err
}

// ValidateLeaveType asks whether the caller may request this leave type.
func (c *Client) ValidateLeaveType(ctx context.Context, leaveType string) (bool, error) {
	q := url.Values{}
	q.Set("leaveType", leaveType)
	var out balanceValidation
	if err := c.do(ctx, http.MethodGet, "/leave-balances/validate", q, nil, &out); err != nil {
		return false, err
	}
	return out.Valid, nil
}

// ValidateLeaveDays asks whether the caller's balance covers days of the
// given type.
func (c *Client) ValidateLeaveDays(ctx context.Context, leaveType string, days float64) (bool, error) {
	q := url.Values{}
	q.Set("leaveType", leaveType)
	q.Set("days", strconv.FormatFloat(days, 'f', -1, 64))
	var out balanceValidation
	if err := c.do(ctx, http.MethodGet, "/leave-balances/validate/days", q, nil, &out); err != nil {
		return false, err
	}
	return out.Valid, nil
}
