package platform

import (
	"fmt"
	"time"
)

// Placeholder for unknown durations and sizes.
const UnknownValue = "Unknown"

// Size units for FormatFileSize.
var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatDuration formats a duration as hh:mm:ss, or mm:ss when under an
// hour. Non-positive durations render as "Unknown".
func FormatDuration(d time.Duration) string {
	totalSeconds := int(d.Seconds())
	if totalSeconds <= 0 {
		return UnknownValue
	}

	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// FormatFileSize formats a byte count with the largest fitting unit, one
// decimal place above bytes. Non-positive sizes render as "Unknown".
func FormatFileSize(size int64) string {
	if size <= 0 {
		return UnknownValue
	}

	value := float64(size)
	unitIndex := 0
	for value >= 1024 && unitIndex < len(sizeUnits)-1 {
		value /= 1024
		unitIndex++
	}

	if unitIndex == 0 {
		return fmt.Sprintf("%d %s", size, sizeUnits[unitIndex])
	}
	return fmt.Sprintf("%.1f %s", value, sizeUnits[unitIndex])
}
