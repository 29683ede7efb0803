// Package stamp defines the canonical filename timestamp and resolves one
// for a file from metadata or filesystem change time.
//
// The canonical stamp is the fixed-width token YYYY.MM.DD.HH.MM.SS used as
// both a filename prefix and a rename key. It is always rendered in local
// time with zero-padded fields, so it is exactly 19 characters and sorts
// chronologically.
package stamp

import (
	"regexp"
	"time"
)

// Layout is the Go reference layout for the canonical stamp.
const Layout = "2006.01.02.15.04.05"

// Length is the fixed width of a canonical stamp.
const Length = 19

var prefixRe = regexp.MustCompile(`^\d{4}\.\d{2}\.\d{2}\.\d{2}\.\d{2}\.\d{2}`)

// Format renders t as a canonical stamp.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Parse is the strict inverse of [Format]; the stamp is interpreted in
// local time, matching how stamps are produced.
func Parse(s string) (time.Time, error) {
	return time.ParseInLocation(Layout, s, time.Local)
}

// HasPrefix reports whether name begins with a stamp-shaped token. The
// token only has to look like a stamp; "9999.99.99.99.99.99" counts, since
// the reconciler must strip malformed legacy stamps too.
func HasPrefix(name string) bool {
	return prefixRe.MatchString(name)
}
