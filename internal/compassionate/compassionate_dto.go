package compassionate

import "leavedesk/internal/upstream"

type CreateCompassionateForm struct {
	WorkDate string `json:"workDate" binding:"required"`
	Reason   string `json:"reason" binding:"required"`
}

type DecideForm struct {
	Status  string `json:"status" binding:"required,oneof=APPROVED REJECTED"`
	Comment string `json:"comment"`
}

type ListQuery struct {
	Status string `form:"status"`
	Page   int    `form:"page"`
	Size   int    `form:"size"`
	Sort   string `form:"sort"`
}

// CheckResponse explains a date's verdict before the form is submitted,
// so the picker can disable ordinary working days outright.
type CheckResponse struct {
	WorkDate  string `json:"workDate"`
	Eligible  bool   `json:"eligible"`
	IsWeekend bool   `json:"isWeekend"`
	IsHoliday bool   `json:"isHoliday"`
}

type CompassionateResponse struct {
	upstream.CompassionateLeave
}
