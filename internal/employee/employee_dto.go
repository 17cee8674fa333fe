package employee

import "leavedesk/internal/upstream"

type CreateEmployeeForm struct {
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	PhoneNumber  string `json:"phoneNumber"`
	Role         string `json:"role" binding:"required,oneof=employee manager admin"`
	DepartmentID string `json:"departmentId" binding:"required"`
}

type UpdateEmployeeForm struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	PhoneNumber  string `json:"phoneNumber"`
	Role         string `json:"role" binding:"omitempty,oneof=employee manager admin"`
	DepartmentID string `json:"departmentId"`
	Active       *bool  `json:"active"`
}

type ListQuery struct {
	Search string `form:"search"`
	Page   int    `form:"page"`
	Size   int    `form:"size"`
	Sort   string `form:"sort"`
}

// EmployeeResponse adds the display name the directory tables render.
type EmployeeResponse struct {
	upstream.Employee
	FullName string `json:"fullName"`
}
