package format

import "time"

// TimeLayout is the canonical balance-log timestamp form, always UTC.
const TimeLayout = "2006-01-02 15:04:05"

// Time renders a UTC instant shifted by a fixed offset in hours. The
// offset is added to the instant and the UTC fields are read back, which
// yields a "local-looking" time without real timezone conversion. That is
// deliberate: locales here carry fixed UTC offsets only.
func Time(t time.Time, offsetHours int) string {
	return t.Add(time.Duration(offsetHours) * time.Hour).UTC().Format(TimeLayout)
}
