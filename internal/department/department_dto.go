package department

import "leavedesk/internal/upstream"

type SaveDepartmentForm struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ManagerID   string `json:"managerId"`
}

type StatusForm struct {
	Published *bool `json:"published" binding:"required"`
}

type DepartmentResponse struct {
	upstream.Department
}
