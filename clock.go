package geoview

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // zone lookups must not depend on the host database
)

const timeLayout = "02.01.2006 15:04"

// FormatTime returns the local time in the capital of loc at the instant now,
// followed by its UTC offset: "DD.MM.YYYY HH:MM (UTC±HH:MM)".
//
// The zone is looked up as "Region/Capital". When no such zone exists the
// first entry of loc.Timezones is used as a fixed offset.
func FormatTime(loc Location, now time.Time) (string, error) {
	s, _, err := formatTime(loc, now)
	return s, err
}

// formatTime reports whether the fixed-offset fallback was taken.
func formatTime(loc Location, now time.Time) (string, bool, error) {
	if tz, err := time.LoadLocation(zoneName(loc)); err == nil {
		local := now.In(tz)
		_, offset := local.Zone()
		return fmt.Sprintf("%s (%s)", local.Format(timeLayout), formatOffset(offset)), false, nil
	}

	if len(loc.Timezones) == 0 {
		return "", true, fmt.Errorf("%w: %q has neither a zone nor an offset", ErrNoTimezone, zoneName(loc))
	}
	utc := loc.Timezones[0]
	offset, err := ParseOffset(utc)
	if err != nil {
		return "", true, err
	}
	local := now.In(time.FixedZone(utc, offset))
	return fmt.Sprintf("%s (%s)", local.Format(timeLayout), utc), true, nil
}

func zoneName(loc Location) string {
	return loc.Region + "/" + strings.ReplaceAll(loc.Capital, " ", "_")
}

// formatOffset renders an offset in seconds east of UTC as "UTC±HH:MM".
func formatOffset(seconds int) string {
	sign := '+'
	if seconds < 0 {
		sign = '-'
		seconds = -seconds
	}
	return fmt.Sprintf("UTC%c%02d:%02d", sign, seconds/3600, seconds/60%60)
}

// ParseOffset parses "UTC±HH:MM" into seconds east of UTC. The sign and
// both two-digit fields are required, so a bare "UTC" is rejected.
func ParseOffset(s string) (int, error) {
	rest, ok := strings.CutPrefix(s, "UTC")
	if !ok || len(rest) != 6 || rest[3] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOffset, s)
	}
	var sign int
	switch rest[0] {
	case '+':
		sign = 1
	case '-':
		sign = -1
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidOffset, s)
	}
	hours, herr := twoDigits(rest[1:3])
	minutes, merr := twoDigits(rest[4:6])
	if herr != nil || merr != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOffset, s)
	}
	if hours > 23 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidOffset, s)
	}
	return sign * (hours*3600 + minutes*60), nil
}

func twoDigits(s string) (int, error) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}
