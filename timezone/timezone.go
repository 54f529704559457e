// Package timezone provides Central-time helpers shared across services.
//
// All database sessions are pinned to the same zone (see the carddb package),
// so every service formats timestamps through these functions instead of
// rolling its own layouts.
package timezone

import (
	"fmt"
	"time"
	_ "time/tzdata" // keep working on hosts without a zoneinfo directory

	"github.com/jonboulle/clockwork"
)

// Central is the IANA identifier of the reference zone.
const Central = "America/Chicago"

var (
	location = mustLoadLocation(Central)

	// clock is swapped for a fake in tests.
	clock clockwork.Clock = clockwork.NewRealClock()
)

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("timezone: load %q: %v", name, err))
	}
	return loc
}

// IsDaylightSaving reports whether t falls within the daylight-saving period
// of the Central zone.
//
// The standard offset is derived from the zone's own rules: of the offsets in
// effect mid-January and mid-July of t's year, the smaller one is standard
// time (this holds in both hemispheres). Instants exactly on a transition
// take whatever offset the tz database assigns them.
func IsDaylightSaving(t time.Time) bool {
	year := t.In(location).Year()

	_, winter := time.Date(year, time.January, 15, 12, 0, 0, 0, location).Zone()
	_, summer := time.Date(year, time.July, 15, 12, 0, 0, 0, location).Zone()

	standard := winter
	if summer < standard {
		standard = summer
	}

	_, offset := t.In(location).Zone()
	return offset != standard
}

// CurrentOffsetLabel returns the current GMT offset of the Central zone as a
// label such as "GMT-6" (standard time) or "GMT-5" (daylight saving). The
// result depends on the wall clock and changes across DST transitions.
func CurrentOffsetLabel() string {
	_, offset := clock.Now().In(location).Zone()
	return fmt.Sprintf("GMT%+d", offset/3600)
}

// FormatHumanReadable renders t in Central time using a medium date / short
// time style, e.g. "Dec 23, 2025, 3:45 PM". No zone abbreviation is included;
// append CurrentOffsetLabel if the zone must be explicit.
func FormatHumanReadable(t time.Time) string {
	return t.In(location).Format("Jan 2, 2006, 3:04 PM")
}

// FormatFullTimestamp renders t in Central time as a fixed-width 24-hour
// "MM/DD/YYYY, HH:MM:SS" string.
func FormatFullTimestamp(t time.Time) string {
	return t.In(location).Format("01/02/2006, 15:04:05")
}
