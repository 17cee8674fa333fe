package leavedate

import "time"

// HolidayRef is the slice of a holiday record the date gate needs.
type HolidayRef struct {
	Date      time.Time
	Recurring bool
}

// CompassionateCheck describes why a work date was (or was not) eligible
// for a compassionate-leave request. The two booleans travel with the
// request so the HR core records the grounds for eligibility.
type CompassionateCheck struct {
	Eligible  bool
	IsWeekend bool
	IsHoliday bool
}

// CheckCompassionateDate gates compassionate-leave dates: a date qualifies
// when it falls on a weekend, or when it matches a holiday that is marked
// recurring. A holiday flagged non-recurring does NOT qualify the date.
// That exclusion reads inverted but it is the established product behavior;
// keep it until the policy owners say otherwise.
func CheckCompassionateDate(date time.Time, holidays []HolidayRef) CompassionateCheck {
	check := CompassionateCheck{IsWeekend: IsWeekend(date)}

	day := dateOnly(date)
	for _, h := range holidays {
		hd := dateOnly(h.Date)
		if hd.Equal(day) || (h.Recurring && hd.Month() == day.Month() && hd.Day() == day.Day()) {
			check.IsHoliday = true
			check.Eligible = check.Eligible || h.Recurring
		}
	}

	check.Eligible = check.Eligible || check.IsWeekend
	return check
}
