package upstream

import (
	"context"
	"net/http"
)

type SaveDepartmentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ManagerID   string `json:"managerId,omitempty"`
}

type DepartmentStatusRequest struct {
	Published bool `json:"published"`
}

// DepartmentAPI covers department records and their publish toggle.
type DepartmentAPI interface {
	Departments(ctx context.Context) ([]Department, error)
	CreateDepartment(ctx context.Context, req SaveDepartmentRequest) (Department, error)
	UpdateDepartment(ctx context.Context, id string, req SaveDepartmentRequest) (Department, error)
	SetDepartmentStatus(ctx context.Context, id string, published bool) (Department, error)
}

func (c *Client) Departments(ctx context.Context) ([]Department, error) {
	var out []Department
	err := c.do(ctx, http.MethodGet, "/departments", nil, nil, &out)
	return out, err
}

func (c *Client) CreateDepartment(ctx context.Context, req SaveDepartmentRequest) (Department, error) {
	var out Department
	err := c.do(ctx, http.MethodPost, "/departments", nil, req, &out)
	return out, err
}

func (c *Client) UpdateDepartment(ctx context.Context, id string, req SaveDepartmentRequest) (Department, error) {
	var out Department
	err := c.do(ctx, http.MethodPut, "/departments/"+id, nil, req, &out)
	return out, err
}

func (c *Client) SetDepartmentStatus(ctx context.Context, id string, published bool) (Department, error) {
	var out Department
	err := c.do(ctx, http.MethodPut, "/departments/"+id+"/status", nil, DepartmentStatusRequest{Published: published}, &out)
	return out, err
}
