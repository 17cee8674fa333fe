package balance

import "time"

type BalanceResponse struct {
	LeaveType   string  `json:"leaveType"`
	DisplayName string  `json:"displayName"`
	Allowance   float64 `json:"allowance"`
	Remaining   float64 `json:"remaining"`
	Used        float64 `json:"used"`
	Year        int     `json:"year"`
}

// EligibilityInput is everything the pre-submission gate looks at.
type EligibilityInput struct {
	LeaveType   string
	StartDate   time.Time
	EndDate     time.Time
	HalfDay     bool
	Reason      string
	HasDocument bool
}

// EligibilityResult reports the advisory verdict. Failures lists every
// check that did not pass so the form can explain itself; an empty list
// means submission may proceed. The HR core still has the final word.
type EligibilityResult struct {
	Eligible bool     `json:"eligible"`
	Days     float64  `json:"days"`
	Failures []string `json:"failures,omitempty"`
}
