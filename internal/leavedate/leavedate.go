// Package leavedate holds the pure leave-request arithmetic shared by every
// form and presentation module: chargeable-day counting, half-day handling,
// compassionate-date eligibility and the record shapes they operate on.
// Nothing here does I/O; the HR core API remains the authority on all of it.
package leavedate

import "time"

// APIDateLayout is the wire format the HR core API expects for dates.
const APIDateLayout = "2006-01-02"

const (
	TypeAnnual    = "ANNUAL"
	TypeSick      = "SICK"
	TypePersonal  = "PERSONAL"
	TypeMaternity = "MATERNITY"
	TypePaternity = "PATERNITY"
	TypeUnpaid    = "UNPAID"
	TypeOther     = "OTHER"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
	StatusCanceled = "CANCELLED"
)

// Sick leave longer than this many days needs a supporting document even
// when the policy flag is off.
const sickDocumentThresholdDays = 2.0

var displayNames = map[string]string{
	TypeAnnual:    "Annual Leave",
	TypeSick:      "Sick Leave",
	TypePersonal:  "Personal Leave",
	TypeMaternity: "Maternity Leave",
	TypePaternity: "Paternity Leave",
	TypeUnpaid:    "Unpaid Leave",
	TypeOther:     "Other",
}

// DisplayName maps a leave type code to its user-facing label.
func DisplayName(leaveType string) string {
	if name, ok := displayNames[leaveType]; ok {
		return name
	}
	return leaveType
}

// KnownType reports whether leaveType is one of the supported codes.
func KnownType(leaveType string) bool {
	_, ok := displayNames[leaveType]
	return ok
}

func FormatAPIDate(t time.Time) string {
	return t.Format(APIDateLayout)
}

func ParseAPIDate(s string) (time.Time, error) {
	return time.Parse(APIDateLayout, s)
}

func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// ChargeableDays computes the number of days a request consumes. A half-day
// is always 0.5. Otherwise every Mon-Fri day in [start, end] inclusive
// counts as one; Saturdays and Sundays are free. Holidays are deliberately
// NOT excluded here; the HR core owns holiday-aware balance math.
func ChargeableDays(start, end time.Time, halfDay bool) float64 {
	if halfDay {
		return 0.5
	}
	if end.Before(start) {
		return 0
	}

	days := 0
	for d := dateOnly(start); !d.After(dateOnly(end)); d = d.AddDate(0, 0, 1) {
		if !IsWeekend(d) {
			days++
		}
	}
	return float64(days)
}

// NormalizeHalfDay forces end onto start for half-day requests, preserving
// the invariant that a half-day spans exactly one calendar day.
func NormalizeHalfDay(start, end time.Time, halfDay bool) (time.Time, time.Time) {
	if halfDay {
		return start, start
	}
	return start, end
}

// MeetsNotice reports whether start is at least minDays calendar days after
// now. minDays <= 0 means the policy imposes no notice period.
func MeetsNotice(start, now time.Time, minDays int) bool {
	if minDays <= 0 {
		return true
	}
	earliest := dateOnly(now).AddDate(0, 0, minDays)
	return !dateOnly(start).Before(earliest)
}

// RequiresDocument reports whether a request must carry a supporting
// document before it can be submitted: sick leave beyond the threshold, or
// any type whose policy demands documentation.
func RequiresDocument(leaveType string, days float64, policyRequiresDoc bool) bool {
	if policyRequiresDoc {
		return true
	}
	return leaveType == TypeSick && days > sickDocumentThresholdDays
}

// CanCancel reports whether the cancel action is offered. Only pending
// requests can be withdrawn; approved and rejected are terminal here.
func CanCancel(status string) bool {
	return status == StatusPending
}

// ValidTransition reports whether the status workflow allows moving a
// request from one status to target. The workflow is one-way:
// PENDING -> APPROVED | REJECTED | CANCELLED.
func ValidTransition(from, target string) bool {
	if from != StatusPending {
		return false
	}
	switch target {
	case StatusApproved, StatusRejected, StatusCanceled:
		return true
	default:
		return false
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
