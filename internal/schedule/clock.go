package schedule

import "fmt"

// Clock values travel through the system as "HH:MM" strings (the storage
// format). Everything in this package works on minute-of-day integers so the
// interval math never touches time.Time or locations.

const minutesPerDay = 24 * 60

// MalformedTimeError reports a clock string that cannot be parsed. It is
// fatal for the single record carrying it; it must never be coerced to 00:00.
type MalformedTimeError struct {
	Value string
}

func (e *MalformedTimeError) Error() string {
	return fmt.Sprintf("malformed time %q: want 24-hour HH:MM", e.Value)
}

// ParseClock converts a strict 24-hour "HH:MM" string to minutes from
// midnight.
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, &MalformedTimeError{Value: s}
	}

	h, ok1 := twoDigits(s[0], s[1])
	m, ok2 := twoDigits(s[3], s[4])
	if !ok1 || !ok2 || h > 23 || m > 59 {
		return 0, &MalformedTimeError{Value: s}
	}

	return h*60 + m, nil
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

// FormatClock renders minutes from midnight back to "HH:MM".
func FormatClock(mins int) string {
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}
