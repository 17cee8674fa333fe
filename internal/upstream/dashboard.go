package upstream

import (
	"context"
	"net/http"
)

// DashboardAPI covers the aggregated statistics views.
type DashboardAPI interface {
	EmployeeDashboard(ctx context.Context) (EmployeeDashboard, error)
	ManagerDashboard(ctx context.Context) (ManagerDashboard, error)
}

func (c *Client) EmployeeDashboard(ctx context.Context) (EmployeeDashboard, error) {
	var out EmployeeDashboard
	err := c.do(ctx, http.MethodGet, "/dashboard/employee", nil, nil, &out)
	return out, err
}

func (c *Client) ManagerDashboard(ctx context.Context) (ManagerDashboard, error) {
	var out ManagerDashboard
	err := c.do(ctx, http.MethodGet, "/dashboard/manager", nil, nil, &out)
	return out, err
}
