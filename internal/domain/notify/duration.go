package notify

import (
	"fmt"

	"dezporcento/internal/domain/records"
)

const minutesPerDay = 24 * 60

// WorkDuration formats the time between check-in and check-out as
// "HhMM". A shift that crosses midnight wraps instead of going
// negative; malformed times degrade to "-".
func WorkDuration(checkIn, checkOut string) string {
	start, ok := records.ClockMinutes(checkIn)
	if !ok {
		return "-"
	}
	end, ok := records.ClockMinutes(checkOut)
	if !ok {
		return "-"
	}
	minutes := end - start
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return fmt.Sprintf("%dh%02d", minutes/60, minutes%60)
}
