// Package htmlfilter implements the pure pre-filter that runs on an address
// before it reaches the parser: HTML entity expansion plus a small
// control-picture substitution. It raises no diagnoses of its own.
package htmlfilter

import (
	"strings"

	"golang.org/x/net/html"
)

// controlPictures replaces the five Unicode control-picture code points the
// reference taxonomy singles out with their ASCII control-byte equivalents.
var controlPictures = strings.NewReplacer(
	"␀", "\x00",
	"␇", "\x07",
	"␉", "\x09",
	"␊", "\x0a",
	"␍", "\x0d",
)

// Apply expands HTML named and numeric character references (the full
// HTML5 table, via golang.org/x/net/html) and then substitutes the control
// pictures, returning the decoded string the parser should consume.
func Apply(s string) string {
	return controlPictures.Replace(html.UnescapeString(s))
}
