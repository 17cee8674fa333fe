package upstream

// Wire shapes for the HR core API. These are the contract boundary: every
// response is decoded into one of these once, instead of being poked at
// loosely throughout the feature modules.

type LoginResult struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type Employee struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
	Role         string `json:"role"`
	DepartmentID string `json:"departmentId,omitempty"`
	Department   string `json:"department,omitempty"`
	Active       bool   `json:"active"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

type Department struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ManagerID   string `json:"managerId,omitempty"`
	Published   bool   `json:"published"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

type FileRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

type LeaveApplication struct {
	ID                  string    `json:"id"`
	EmployeeID          string    `json:"employeeId"`
	EmployeeName        string    `json:"employeeName,omitempty"`
	LeaveType           string    `json:"leaveType"`
	StartDate           string    `json:"startDate"`
	EndDate             string    `json:"endDate"`
	IsHalfDay           bool      `json:"isHalfDay"`
	IsMorning           bool      `json:"isMorning"`
	Reason              string    `json:"reason"`
	Status              string    `json:"status"`
	Comment             string    `json:"comment,omitempty"`
	SupportingDocuments []FileRef `json:"supportingDocuments,omitempty"`
	CreatedAt           string    `json:"createdAt,omitempty"`
	UpdatedAt           string    `json:"updatedAt,omitempty"`
}

type CompassionateLeave struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	WorkDate   string `json:"workDate"`
	Reason     string `json:"reason"`
	Status     string `json:"status"`
	IsHoliday  bool   `json:"isHoliday"`
	IsWeekend  bool   `json:"isWeekend"`
	ApproverID string `json:"approverId,omitempty"`
	ApprovedAt string `json:"approvedAt,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
}

type LeavePolicy struct {
	ID                    string  `json:"id"`
	LeaveType             string  `json:"leaveType"`
	Allowance             float64 `json:"allowance"`
	CarryForwardLimit     float64 `json:"carryForwardLimit"`
	MinDaysBeforeRequest  int     `json:"minDaysBeforeRequest"`
	RequiresDocumentation bool    `json:"requiresDocumentation"`
	RequiresApproval      bool    `json:"requiresApproval"`
	Description           string  `json:"description,omitempty"`
	Active                bool    `json:"active"`
}

type LeaveBalance struct {
	ID        string  `json:"id"`
	LeaveType string  `json:"leaveType"`
	Allowance float64 `json:"allowance"`
	Year      int     `json:"year"`
}

type Holiday struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Date             string `json:"date"`
	Recurring        bool   `json:"recurring"`
	Restricted       bool   `json:"restricted"`
	RestrictedReason string `json:"restrictedReason,omitempty"`
}

type Notification struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type EmployeeDashboard struct {
	PendingRequests  int            `json:"pendingRequests"`
	ApprovedRequests int            `json:"approvedRequests"`
	RejectedRequests int            `json:"rejectedRequests"`
	UpcomingLeaves   int            `json:"upcomingLeaves"`
	BalanceByType    map[string]any `json:"balanceByType,omitempty"`
}

type ManagerDashboard struct {
	PendingApprovals int            `json:"pendingApprovals"`
	OnLeaveToday     int            `json:"onLeaveToday"`
	TeamSize         int            `json:"teamSize"`
	LeavesByType     map[string]int `json:"leavesByType,omitempty"`
	LeavesByMonth    map[string]int `json:"leavesByMonth,omitempty"`
}
