package timex

import (
	"testing"
	"time"
)

func TestTime_UnixMethods(t *testing.T) {
	// Create a fixed time
	// 创建一个固定时间
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tt := Time(now)

	if tt.Unix() != now.Unix() {
		t.Errorf("Unix() = %v, want %v", tt.Unix(), now.Unix())
	}
	if tt.UnixMilli() != now.UnixMilli() {
		t.Errorf("UnixMilli() = %v, want %v", tt.UnixMilli(), now.UnixMilli())
	}
	if tt.UnixNano() != now.UnixNano() {
		t.Errorf("UnixNano() = %v, want %v", tt.UnixNano(), now.UnixNano())
	}

	// Verify it's not returning time.Now() by waiting a bit
	// 通过等待一会确认它不是返回 time.Now()
	time.Sleep(10 * time.Millisecond)
	if tt.Unix() != now.Unix() {
		t.Errorf("Unix() changed after sleep, it should be static. got %v, want %v", tt.Unix(), now.Unix())
	}
}

func TestTime_JSONRoundTrip(t *testing.T) {
	now := time.Date(2024, 5, 20, 8, 30, 0, 0, time.Local)
	tt := Time(now)

	data, err := tt.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2024-05-20 08:30:00"` {
		t.Errorf("MarshalJSON() = %s", data)
	}

	var back Time
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatal(err)
	}
	if back.Unix() != tt.Unix() {
		t.Errorf("round trip mismatch: got %v, want %v", back.Unix(), tt.Unix())
	}
}

func TestClockFunc(t *testing.T) {
	fixed := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := ClockFunc(func() time.Time { return fixed })
	if !clock.Now().Equal(fixed) {
		t.Errorf("ClockFunc.Now() = %v, want %v", clock.Now(), fixed)
	}
}
