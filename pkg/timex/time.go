// Package timex provides a database and JSON friendly time type
// Package timex 提供数据库与 JSON 友好的时间类型
package timex

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// TimeLayout unified time serialization format
// TimeLayout 统一的时间序列化格式
const TimeLayout = "2006-01-02 15:04:05"

// Time wraps time.Time with a fixed serialization layout
// Time 包装 time.Time，序列化为固定格式
type Time time.Time

// Now returns the current time as timex.Time
// Now 返回当前时间的 timex.Time
func Now() Time {
	return Time(time.Now())
}

func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", time.Time(t).Format(TimeLayout))), nil
}

func (t *Time) UnmarshalJSON(data []byte) error {
	if string(data) == "null" || string(data) == `""` {
		return nil
	}
	parsed, err := time.ParseInLocation(`"`+TimeLayout+`"`, string(data), time.Local)
	if err != nil {
		return err
	}
	*t = Time(parsed)
	return nil
}

// Value implements driver.Valuer so gorm can persist the value
// Value 实现 driver.Valuer，便于 gorm 持久化
func (t Time) Value() (driver.Value, error) {
	tt := time.Time(t)
	if tt.IsZero() {
		return nil, nil
	}
	return tt, nil
}

// Scan implements sql.Scanner
// Scan 实现 sql.Scanner
func (t *Time) Scan(v interface{}) error {
	switch value := v.(type) {
	case time.Time:
		*t = Time(value)
		return nil
	case []byte:
		parsed, err := time.ParseInLocation(TimeLayout, string(value), time.Local)
		if err != nil {
			return err
		}
		*t = Time(parsed)
		return nil
	case string:
		parsed, err := time.ParseInLocation(TimeLayout, value, time.Local)
		if err != nil {
			return err
		}
		*t = Time(parsed)
		return nil
	case nil:
		*t = Time(time.Time{})
		return nil
	}
	return fmt.Errorf("cannot convert %v to timex.Time", v)
}

func (t Time) String() string {
	return time.Time(t).Format(TimeLayout)
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

func (t Time) IsZero() bool {
	return time.Time(t).IsZero()
}
