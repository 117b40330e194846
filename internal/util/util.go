package util

import (
	"fmt"
	"time"
)

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}

// FormatExpiry describes expiresAt relative to now, e.g. "in 5m10s" or "3s ago".
func FormatExpiry(expiresAt, now time.Time) string {
	if remaining := expiresAt.Sub(now); remaining > 0 {
		return "in " + FormatDuration(remaining)
	}

	return FormatDuration(now.Sub(expiresAt)) + " ago"
}
