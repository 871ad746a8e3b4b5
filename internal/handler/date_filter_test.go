package handler

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestReportRangeIncludesEndOfDay(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/laporan/pesanan?start=2026-01-01&end=2026-01-31", nil)
	from, to, err := reportRange(r)
	if err != nil {
		t.Fatal(err)
	}
	if !from.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("from = %v", from)
	}
	if to.Before(time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)) {
		t.Fatalf("end bound %v excludes orders placed on the end date", to)
	}
	if to.Day() != 31 || to.Month() != time.January {
		t.Fatalf("end bound %v rolled into the next day", to)
	}
}

func TestReportRangeDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/laporan/pesanan", nil)
	from, to, err := reportRange(r)
	if err != nil {
		t.Fatal(err)
	}
	if !from.IsZero() {
		t.Fatalf("missing start should mean the beginning of time, got %v", from)
	}
	if to.Before(time.Now().Add(-24 * time.Hour)) {
		t.Fatalf("missing end should mean today, got %v", to)
	}
}

func TestReportRangeRejectsBadDate(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/laporan/pesanan?start=31-01-2026", nil)
	if _, _, err := reportRange(r); err == nil {
		t.Fatal("expected an error for a malformed date")
	}
}
