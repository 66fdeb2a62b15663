// Package biztime renders timestamps in the operators' timezone. Storage and
// transport stay in UTC.
package biztime

import (
	"fmt"
	"sync/atomic"
	"time"
	_ "time/tzdata"
)

// DefaultTimezone has no DST, so a fixed offset is an exact stand-in.
const DefaultTimezone = "Asia/Manila"

var defaultLocation = time.FixedZone("PHT", 8*60*60)

var location atomic.Pointer[time.Location]

// Init sets the business timezone. An empty tz selects DefaultTimezone.
func Init(tz string) error {
	if tz == "" || tz == DefaultTimezone {
		location.Store(defaultLocation)
		return nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("biztime: unknown timezone %q: %w", tz, err)
	}
	location.Store(loc)
	return nil
}

// Location returns the timezone set by Init, or DefaultTimezone.
func Location() *time.Location {
	if loc := location.Load(); loc != nil {
		return loc
	}
	return defaultLocation
}

func NowUTC() time.Time {
	return time.Now().UTC()
}

func ToBizTimezone(t time.Time) time.Time {
	return t.In(Location())
}
