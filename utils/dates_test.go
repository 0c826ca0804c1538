package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-06-10")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	want := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	rfc, err := ParseDate("2026-06-10T15:04:05+07:00")
	if err != nil {
		t.Fatalf("ParseDate RFC3339: %v", err)
	}
	if !rfc.Equal(want) {
		t.Errorf("RFC3339 input should normalize to the date, got %v", rfc)
	}

	if _, err := ParseDate("10/06/2026"); err == nil {
		t.Error("unsupported format accepted")
	}
	if _, err := ParseDate("  "); err == nil {
		t.Error("blank input accepted")
	}
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2026, 6, 10, 23, 59, 59, 12345, time.FixedZone("X", 3600))
	got := DateOnly(in)
	if got.Hour() != 0 || got.Minute() != 0 || got.Location() != time.UTC {
		t.Errorf("DateOnly did not truncate to midnight UTC: %v", got)
	}
}

func TestStayDates(t *testing.T) {
	checkIn := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	dates := StayDates(checkIn, 3)
	if len(dates) != 3 {
		t.Fatalf("got %d dates, want 3", len(dates))
	}
	if !dates[0].Equal(checkIn) {
		t.Errorf("first night should be check-in, got %v", dates[0])
	}
	if !dates[2].Equal(checkIn.AddDate(0, 0, 2)) {
		t.Errorf("last night should be the eve of check-out, got %v", dates[2])
	}
}

func TestWindowDates(t *testing.T) {
	checkIn := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	dates := WindowDates(checkIn, 2, 5)
	if len(dates) != 12 {
		t.Fatalf("got %d dates, want 12", len(dates))
	}
	if !dates[0].Equal(checkIn.AddDate(0, 0, -5)) {
		t.Errorf("window should start 5 days before check-in, got %v", dates[0])
	}
	if !dates[len(dates)-1].Equal(checkIn.AddDate(0, 0, 6)) {
		t.Errorf("window should end 5 days past the stay, got %v", dates[len(dates)-1])
	}
}
