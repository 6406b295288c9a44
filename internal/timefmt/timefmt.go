// Package timefmt renders and parses elapsed-seconds values for display.
//
// Long and Short produce unit-suffix text ("1h 1m 1s") for read-only labels.
// Colon and ParseColon are an inverse pair for the editable timer field;
// unit-suffix text is not parseable and never round-trips.
package timefmt

import (
	"fmt"
	"strconv"
	"strings"
)

// Long renders seconds as "{h}h {m}m {s}s", omitting leading zero units.
func Long(secs int64) string {
	if secs < 0 {
		secs = 0
	}
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// Short renders seconds as "{h}h {m}m" when there is at least one full hour,
// otherwise "{m}m".
func Short(secs int64) string {
	if secs < 0 {
		secs = 0
	}
	h := secs / 3600
	m := (secs % 3600) / 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// Colon renders seconds as "HH:MM:SS". ParseColon(Colon(x)) == x for any
// non-negative x.
func Colon(secs int64) string {
	if secs < 0 {
		secs = 0
	}
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// ParseColon parses "H:M:S", "M:S" or "S" into seconds. Each part is read as
// an integer; non-numeric parts count as 0. Unparseable input returns 0.
func ParseColon(text string) int64 {
	parts := strings.Split(strings.TrimSpace(text), ":")
	nums := make([]int64, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil || n < 0 {
			n = 0
		}
		nums[i] = n
	}
	switch len(nums) {
	case 3:
		return nums[0]*3600 + nums[1]*60 + nums[2]
	case 2:
		return nums[0]*60 + nums[1]
	case 1:
		return nums[0]
	}
	return 0
}
