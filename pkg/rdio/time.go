package rdio

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Wire layouts of the date kinds.
const (
	DateLayout           = "2006-01-02"
	TimestampLayout      = "2006-01-02T15:04:05-0700"
	MicroTimestampLayout = "2006-01-02T15:04:05.000000"
)

// Date is a calendar date such as an album release date.
type Date struct {
	time.Time
}

// Timestamp is a point in time with a zone offset, such as a playlist's
// last update. The server also sends these as Unix seconds.
type Timestamp struct {
	time.Time
}

// MicroTimestamp is a zone-less timestamp with fractional seconds, used by
// activity updates. It is interpreted as UTC.
type MicroTimestamp struct {
	time.Time
}

// MarshalJSON encodes the date in DateLayout.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

// MarshalJSON encodes the timestamp in TimestampLayout.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(TimestampLayout))
}

// MarshalJSON encodes the timestamp in MicroTimestampLayout.
func (t MicroTimestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(MicroTimestampLayout))
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// parseTimestamp accepts TimestampLayout and RFC 3339.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, s)
	if err == nil {
		return t, nil
	}
	if t, rfcErr := time.Parse(time.RFC3339Nano, s); rfcErr == nil {
		return t, nil
	}
	return time.Time{}, err
}

// parseUnixSeconds accepts an integral or fractional JSON number.
func parseUnixSeconds(raw string) (time.Time, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return time.Time{}, err
	}
	if !inInt64Range(f) {
		return time.Time{}, fmt.Errorf("%s is out of range for Unix seconds", raw)
	}
	sec := int64(f)
	nsec := int64((f - float64(sec)) * float64(time.Second))
	return time.Unix(sec, nsec).UTC(), nil
}

// parseMicroTimestamp accepts any number of fractional digits, including none.
func parseMicroTimestamp(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02T15:04:05", s, time.UTC)
}
