package domain

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"time"
)

// localDateTimeLayout is the canonical rendering: ISO 8601 without a zone.
const localDateTimeLayout = "2006-01-02T15:04:05"

// Accepted input layouts, tried in order. Fractional seconds are accepted
// after the seconds field by time.Parse even though the layouts omit them.
var localDateTimeInputLayouts = []string{
	time.RFC3339Nano,
	localDateTimeLayout,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
}

// LocalDateTime is a calendar date and wall-clock time without a time zone.
// An offset on the input is dropped and its wall-clock fields are kept.
// The zero value represents an unset date-time, so 0001-01-01T00:00:00 is
// not a valid input.
type LocalDateTime struct {
	t time.Time
}

// NewLocalDateTime builds a LocalDateTime from the wall-clock fields of t.
// The location of t is discarded.
func NewLocalDateTime(t time.Time) LocalDateTime {
	return LocalDateTime{t: time.Date(
		t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		time.UTC,
	)}
}

// ParseLocalDateTime parses an ISO 8601 date-time such as
// "2024-11-01T12:00:00", "2024-11-01T12:00" or "2024-11-01T12:00:00-08:00".
// "2024-11-01T12:00:00-08:00" yields 12:00, not the UTC instant.
func ParseLocalDateTime(s string) (LocalDateTime, error) {
	for _, layout := range localDateTimeInputLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		dt := NewLocalDateTime(t)
		if dt.IsZero() {
			return LocalDateTime{}, fmt.Errorf("%w: %q is reserved for an unset date-time", ErrInvalidDateTime, s)
		}
		return dt, nil
	}
	return LocalDateTime{}, fmt.Errorf("%w: %q is not an ISO 8601 date-time", ErrInvalidDateTime, s)
}

// MustParseLocalDateTime is like ParseLocalDateTime but panics on error.
// It is intended for fixtures and tests.
func MustParseLocalDateTime(s string) LocalDateTime {
	dt, err := ParseLocalDateTime(s)
	if err != nil {
		panic(err)
	}
	return dt
}

// Time returns the wall-clock value as a UTC time.Time.
func (d LocalDateTime) Time() time.Time {
	return d.t
}

// IsZero reports whether d is unset.
func (d LocalDateTime) IsZero() bool {
	return d.t.IsZero()
}

// Equal reports whether d and other denote the same wall-clock instant.
func (d LocalDateTime) Equal(other LocalDateTime) bool {
	return d.t.Equal(other.t)
}

// String renders d as "YYYY-MM-DDTHH:MM:SS" with a fractional part only
// when one is present.
func (d LocalDateTime) String() string {
	if d.t.Nanosecond() == 0 {
		return d.t.Format(localDateTimeLayout)
	}
	return d.t.Format(localDateTimeLayout + ".999999999")
}

// MarshalJSON implements json.Marshaler.
func (d LocalDateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(d.String())), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *LocalDateTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = LocalDateTime{}
		return nil
	}
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("%w: date-time must be a JSON string", ErrInvalidDateTime)
	}
	parsed, err := ParseLocalDateTime(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer so the wall-clock value is stored in a
// TIMESTAMP (without time zone) column.
func (d LocalDateTime) Value() (driver.Value, error) {
	return d.t, nil
}

// Scan implements sql.Scanner.
func (d *LocalDateTime) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = LocalDateTime{}
		return nil
	case time.Time:
		*d = NewLocalDateTime(v)
		return nil
	case string:
		parsed, err := ParseLocalDateTime(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	default:
		return fmt.Errorf("%w: cannot scan %T into LocalDateTime", ErrInvalidFormat, src)
	}
}
