package records

import (
	"strconv"
	"strings"
)

// Normalize substitutes safe defaults for malformed or missing fields so
// that no raw store row reaches the aggregation or rendering layers.
// Malformed input never produces an error here, only defaults.
func Normalize(r *WorkRecord) {
	r.EmployeeName = strings.TrimSpace(r.EmployeeName)
	if r.SalesShare < 0 {
		r.SalesShare = 0
	}
	if _, ok := ClockMinutes(r.CheckIn); !ok {
		r.CheckIn = DefaultCheckIn
	}
	if _, ok := ClockMinutes(r.CheckOut); !ok {
		r.CheckOut = DefaultCheckOut
	}
	if r.Advance != nil && *r.Advance < 0 {
		zero := 0.0
		r.Advance = &zero
	}
	if r.AdvanceMethod != MethodPix && r.AdvanceMethod != MethodCash {
		r.AdvanceMethod = ""
	}
	if r.PaymentMethod != MethodPix && r.PaymentMethod != MethodCash {
		r.PaymentMethod = MethodPix
	}
}

// ClockMinutes parses an HH:MM time of day into minutes since midnight.
// It reports false for anything malformed instead of failing.
func ClockMinutes(value string) (int, bool) {
	parts := strings.SplitN(strings.TrimSpace(value), ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, false
	}
	return hours*60 + minutes, true
}
