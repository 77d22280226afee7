package datetime

// Package datetime parses the date and time microsyntaxes defined by the
// WHATWG HTML Standard (section 2.3.5, Dates and times):
//
// - Months (ParseMonth), dates (ParseDate), yearless dates
//   (ParseYearlessDate), and weeks (ParseWeek)
// - Times (ParseTime) and time-zone offsets (ParseTimeZoneOffset)
// - Local and global date-times (ParseLocalDateTime, ParseGlobalDateTime)
//
// Design policy:
// - Keep only public APIs in the root package; generic WHATWG Infra text
//   utilities live under infra/ and wire codecs under codec/.
// - Every format has a whole-string parser and, where composites need it, a
//   lower-level component parser sharing a cursor position.
// - Parsers report failure through a boolean result, never an error value:
//   the grammars are strict and a failed parse carries no diagnostic.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	d, ok := datetime.ParseDate("2011-11-18")
//	t, ok := datetime.ParseGlobalDateTime("2011-11-18T14:54Z")
