package upstream

import (
	"context"
	"net/http"
	"net/url"
)

type CreateEmployeeRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
	Role         string `json:"role"`
	DepartmentID string `json:"departmentId"`
}

type UpdateEmployeeRequest struct {
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
	Role         string `json:"role,omitempty"`
	DepartmentID string `json:"departmentId,omitempty"`
	Active       *bool  `json:"active,omitempty"`
}

// EmployeeAPI covers the employee directory.
type EmployeeAPI interface {
	Employees(ctx context.Context, search string, page PageQuery) (Page[Employee], error)
	EmployeeByID(ctx context.Context, id string) (Employee, error)
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	UpdateEmployee(ctx context.Context, id string, req UpdateEmployeeRequest) (Employee, error)
}

func (c *Client) Employees(ctx context.Context, search string, page PageQuery) (Page[Employee], error) {
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	page.apply(q)
	var out Page[Employee]
	err := c.do(ctx, http.MethodGet, "/employees", q, nil, &out)
	return out, err
}

func (c *Client) EmployeeByID(ctx context.Context, id string) (Employee, error) {
	var out Employee
	err := c.do(ctx, http.MethodGet, "/employees/"+id, nil, nil, &out)
	return out, err
}

func (c *Client) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (Employee, error) {
	var out Employee
	err := c.do(ctx, http.MethodPost, "/employees", nil, req, &out)
	return out, err
}

func (c *Client) UpdateEmployee(ctx context.Context, id string, req UpdateEmployeeRequest) (Employee, error) {
	var out Employee
	err := c.do(ctx, http.MethodPut, "/employees/"+id, nil, req, &out)
	return out, err
}
