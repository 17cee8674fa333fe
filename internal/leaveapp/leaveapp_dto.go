package leaveapp

import "leavedesk/internal/upstream"

type CreateLeaveForm struct {
	LeaveType           string   `json:"leaveType" binding:"required"`
	StartDate           string   `json:"startDate" binding:"required"`
	EndDate             string   `json:"endDate" binding:"required"`
	IsHalfDay           bool     `json:"isHalfDay"`
	IsMorning           bool     `json:"isMorning"`
	Reason              string   `json:"reason" binding:"required"`
	SupportingDocuments []string `json:"supportingDocuments"`
}

type DecideForm struct {
	Status  string `json:"status" binding:"required,oneof=APPROVED REJECTED"`
	Comment string `json:"comment"`
}

type HistoryQuery struct {
	Status    string `form:"status"`
	LeaveType string `form:"leaveType"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	Search    string `form:"search"`
	Page      int    `form:"page"`
	Size      int    `form:"size"`
	Sort      string `form:"sort"`
}

// LeaveResponse is the view shape: the upstream record plus the derived
// fields the browser renders (chargeable days, display name, whether the
// cancel action applies).
type LeaveResponse struct {
	upstream.LeaveApplication
	Days      float64 `json:"days"`
	TypeName  string  `json:"typeName"`
	CanCancel bool    `json:"canCancel"`
}
