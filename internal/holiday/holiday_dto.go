package holiday

import "leavedesk/internal/upstream"

type SaveHolidayForm struct {
	Name             string `json:"name" binding:"required"`
	Date             string `json:"date" binding:"required"`
	Recurring        bool   `json:"recurring"`
	Restricted       bool   `json:"restricted"`
	RestrictedReason string `json:"restrictedReason"`
}

// HolidayResponse adds the weekday so calendar views need no date math.
type HolidayResponse struct {
	upstream.Holiday
	Weekday string `json:"weekday,omitempty"`
}
