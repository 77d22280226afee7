package codec_test

import (
	"errors"
	"testing"
	"time"

	"github.com/whatwg-go/datetime/codec"
)

func TestDateCodec(t *testing.T) {
	c := codec.Date()

	got, err := c.Decode("2011-11-18")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := time.Date(2011, time.November, 18, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	s, err := c.Encode(want)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if s != "2011-11-18" {
		t.Fatalf("got %q, want %q", s, "2011-11-18")
	}
}

func TestDateCodecDecodeError(t *testing.T) {
	_, err := codec.Date().Decode("2007-02-29")
	if !errors.Is(err, codec.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
}

func TestLocalDateTimeCodec(t *testing.T) {
	c := codec.LocalDateTime()

	got, err := c.Decode("2011-11-18T14:54:39.929")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := time.Date(2011, time.November, 18, 14, 54, 39, 929e6, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	s, err := c.Encode(want)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if s != "2011-11-18T14:54:39.929" {
		t.Fatalf("got %q, want %q", s, "2011-11-18T14:54:39.929")
	}
}

func TestGlobalDateTimeCodec(t *testing.T) {
	c := codec.GlobalDateTime()

	got, err := c.Decode("2019-12-31T11:17-07:00")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := time.Date(2019, time.December, 31, 18, 17, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	// Encoding always emits the Z designator.
	s, err := c.Encode(want)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if s != "2019-12-31T18:17Z" {
		t.Fatalf("got %q, want %q", s, "2019-12-31T18:17Z")
	}
}

func TestGlobalDateTimeCodecDecodeError(t *testing.T) {
	_, err := codec.GlobalDateTime().Decode("2019-12-31T11:17+24:00")
	if !errors.Is(err, codec.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
}

func TestGlobalDateTimeCodecNonUTCInput(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	in := time.Date(2011, time.November, 18, 9, 0, 0, 0, loc)

	s, err := codec.GlobalDateTime().Encode(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if s != "2011-11-18T00:00Z" {
		t.Fatalf("got %q, want %q", s, "2011-11-18T00:00Z")
	}
}
