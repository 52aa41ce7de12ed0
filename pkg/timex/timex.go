// Package timex provides a time type that serializes to a stable layout
// in JSON and in the database.
package timex

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const timeLayout = "2006-01-02 15:04:05"

// Time wraps time.Time with a fixed serialization layout.
type Time time.Time

// Now returns the current time as a Time.
func Now() Time {
	return Time(time.Now())
}

func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", time.Time(t).Format(timeLayout))), nil
}

func (t *Time) UnmarshalJSON(data []byte) error {
	if string(data) == "null" || string(data) == `""` {
		return nil
	}
	parsed, err := time.ParseInLocation(`"`+timeLayout+`"`, string(data), time.Local)
	if err != nil {
		return err
	}
	*t = Time(parsed)
	return nil
}

// Value implements driver.Valuer for gorm.
func (t Time) Value() (driver.Value, error) {
	return time.Time(t), nil
}

// Scan implements sql.Scanner for gorm.
func (t *Time) Scan(v any) error {
	switch value := v.(type) {
	case time.Time:
		*t = Time(value)
		return nil
	case string:
		parsed, err := time.ParseInLocation(timeLayout, value, time.Local)
		if err != nil {
			return err
		}
		*t = Time(parsed)
		return nil
	case []byte:
		parsed, err := time.ParseInLocation(timeLayout, string(value), time.Local)
		if err != nil {
			return err
		}
		*t = Time(parsed)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into timex.Time", v)
	}
}

func (t Time) String() string {
	return time.Time(t).Format(timeLayout)
}

func (t Time) Unix() int64 {
	return time.Time(t).Unix()
}

func (t Time) UnixMilli() int64 {
	return time.Time(t).UnixMilli()
}

func (t Time) UnixMicro() int64 {
	return time.Time(t).UnixMicro()
}

func (t Time) UnixNano() int64 {
	return time.Time(t).UnixNano()
}
