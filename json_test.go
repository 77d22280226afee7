package datetime_test

import (
	"testing"
	"time"

	json "github.com/goccy/go-json"

	"github.com/whatwg-go/datetime"
)

type jsonEvent struct {
	Day      datetime.Date           `json:"day"`
	Starts   datetime.Time           `json:"starts"`
	Offset   datetime.TimeZoneOffset `json:"offset"`
	Deadline datetime.LocalDateTime  `json:"deadline"`
}

func TestJSONMarshal(t *testing.T) {
	d, _ := datetime.NewDate(2011, time.November, 18)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2011-11-18"` {
		t.Fatalf("got %s, want %q", data, `"2011-11-18"`)
	}
}

func TestJSONUnmarshal(t *testing.T) {
	var d datetime.Date
	if err := json.Unmarshal([]byte(`"2012-02-29"`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if d.Year() != 2012 || d.Month() != time.February || d.Day() != 29 {
		t.Fatalf("got %v, want 2012-02-29", d)
	}
}

func TestJSONUnmarshalRejectsInvalid(t *testing.T) {
	var d datetime.Date
	if err := json.Unmarshal([]byte(`"2007-02-29"`), &d); err == nil {
		t.Fatalf("expected error for non-leap February 29")
	}
	if err := json.Unmarshal([]byte(`42`), &d); err == nil {
		t.Fatalf("expected error for non-string JSON value")
	}
}

func TestJSONStructRoundTrip(t *testing.T) {
	in := []byte(`{"day":"2011-11-18","starts":"14:54:39.929","offset":"-07:00","deadline":"2011-11-19T09:00"}`)

	var ev jsonEvent
	if err := json.Unmarshal(in, &ev); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if ev.Offset.Minutes() != -420 {
		t.Fatalf("offset minutes = %d, want -420", ev.Offset.Minutes())
	}

	out, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var again jsonEvent
	if err := json.Unmarshal(out, &again); err != nil {
		t.Fatalf("re-unmarshal: %v", err)
	}
	if again != ev {
		t.Fatalf("round trip changed the value: %+v vs %+v", again, ev)
	}
}
