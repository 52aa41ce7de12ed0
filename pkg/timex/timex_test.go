package timex

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTime_UnixMethods(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tt := Time(now)

	if tt.Unix() != now.Unix() {
		t.Errorf("Unix() = %v, want %v", tt.Unix(), now.Unix())
	}
	if tt.UnixMilli() != now.UnixMilli() {
		t.Errorf("UnixMilli() = %v, want %v", tt.UnixMilli(), now.UnixMilli())
	}
	if tt.UnixMicro() != now.UnixMicro() {
		t.Errorf("UnixMicro() = %v, want %v", tt.UnixMicro(), now.UnixMicro())
	}
	if tt.UnixNano() != now.UnixNano() {
		t.Errorf("UnixNano() = %v, want %v", tt.UnixNano(), now.UnixNano())
	}

	// Verify the value is static, not re-reading the clock
	time.Sleep(10 * time.Millisecond)
	if tt.Unix() != now.Unix() {
		t.Errorf("Unix() changed after sleep, it should be static. got %v, want %v", tt.Unix(), now.Unix())
	}
}

func TestTime_JSONRoundTrip(t *testing.T) {
	orig := Time(time.Date(2024, 6, 15, 8, 30, 0, 0, time.Local))

	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"2024-06-15 08:30:00"` {
		t.Errorf("Marshal = %s, want %q", data, "2024-06-15 08:30:00")
	}

	var parsed Time
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if parsed.Unix() != orig.Unix() {
		t.Errorf("round trip changed value: got %v, want %v", parsed.Unix(), orig.Unix())
	}
}

func TestTime_Scan(t *testing.T) {
	now := time.Date(2024, 3, 3, 10, 0, 0, 0, time.Local)

	var fromTime Time
	if err := fromTime.Scan(now); err != nil {
		t.Fatalf("Scan(time.Time) failed: %v", err)
	}
	if fromTime.Unix() != now.Unix() {
		t.Errorf("Scan(time.Time) = %v, want %v", fromTime.Unix(), now.Unix())
	}

	var fromString Time
	if err := fromString.Scan("2024-03-03 10:00:00"); err != nil {
		t.Fatalf("Scan(string) failed: %v", err)
	}
	if fromString.Unix() != now.Unix() {
		t.Errorf("Scan(string) = %v, want %v", fromString.Unix(), now.Unix())
	}

	var bad Time
	if err := bad.Scan(42); err == nil {
		t.Error("Scan(int) should fail")
	}
}
