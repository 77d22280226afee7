package datetime_test

import (
	"testing"
	"time"

	"github.com/whatwg-go/datetime"
)

func TestParseGlobalDateTimeZ(t *testing.T) {
	got, ok := datetime.ParseGlobalDateTime("2011-11-18T14:54Z")
	if !ok {
		t.Fatalf("expected 2011-11-18T14:54Z to parse")
	}
	want := time.Date(2011, time.November, 18, 14, 54, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseGlobalDateTimeNoOffset(t *testing.T) {
	// A missing offset reads as the zero offset.
	got, ok := datetime.ParseGlobalDateTime("2004-12-31T12:31:59")
	if !ok {
		t.Fatalf("expected offset-less global date-time to parse")
	}
	want := time.Date(2004, time.December, 31, 12, 31, 59, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseGlobalDateTimeSpaceDelimited(t *testing.T) {
	got, ok := datetime.ParseGlobalDateTime("2004-12-31 12:31:59.123Z")
	if !ok {
		t.Fatalf("expected space-delimited global date-time to parse")
	}
	want := time.Date(2004, time.December, 31, 12, 31, 59, 123e6, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseGlobalDateTimeNegativeOffset(t *testing.T) {
	got, ok := datetime.ParseGlobalDateTime("2019-12-31T11:17-07:00")
	if !ok {
		t.Fatalf("expected -07:00 global date-time to parse")
	}
	want := time.Date(2019, time.December, 31, 18, 17, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseGlobalDateTimeRollsDateBackward(t *testing.T) {
	// Subtracting a positive offset can cross midnight into the previous
	// day; the composed value rolls over.
	got, ok := datetime.ParseGlobalDateTime("2011-11-18T00:30+01:00")
	if !ok {
		t.Fatalf("expected +01:00 global date-time to parse")
	}
	want := time.Date(2011, time.November, 17, 23, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseGlobalDateTimeRollsDateForward(t *testing.T) {
	got, ok := datetime.ParseGlobalDateTime("2011-12-31T23:30-01:00")
	if !ok {
		t.Fatalf("expected -01:00 global date-time to parse")
	}
	want := time.Date(2012, time.January, 1, 0, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseGlobalDateTimeFails(t *testing.T) {
	for _, s := range []string{
		"2019-12-31T11:17+24:00", // invalid offset rejects the whole parse
		"2004/13/31T12:31",       // bad date
		"1986-08-14/12-31",       // bad delimiter
		"2006-06-05T24:31",       // bad time
		"2006-06-05T24:31:5999",
		"1456-02-24T11:17C", // not an offset, leftover rejects
		"2011-11-18T14:54Zx",
		"2011-11-18T14:54+01:00x",
	} {
		if _, ok := datetime.ParseGlobalDateTime(s); ok {
			t.Fatalf("expected %q to be rejected", s)
		}
	}
}
