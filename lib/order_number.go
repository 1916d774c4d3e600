package lib

import (
	"fmt"
	"time"
)

// GenerateOrderID builds the raw order id from the wall clock: MMSS + "OI" +
// DDMMYY, e.g. 14:05:30 on 23 Nov 2025 -> "0530OI231125". Two orders placed
// in the same minute and second on the same day collide; the scheme is kept
// as-is for display compatibility with existing receipts (see DESIGN.md).
func GenerateOrderID(t time.Time) string {
	return fmt.Sprintf("%02d%02dOI%02d%02d%02d",
		t.Minute(), t.Second(),
		t.Day(), int(t.Month()), t.Year()%100,
	)
}

// FormatOrderID renders the display form, inserting a separator after the
// time-of-day half: "0530OI231125" -> "0530OI-231125".
func FormatOrderID(raw string) string {
	if len(raw) <= 6 {
		return raw
	}
	return raw[:6] + "-" + raw[6:]
}
