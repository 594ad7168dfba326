package utils

import (
	"fmt"
	"time"
)

// ShortDate is the month/day/year layout of the date column.
const ShortDate = "1/2/2006"

// Column widths of an object listing line.
const (
	KeyWidth  = 35
	DateWidth = 10
	SizeWidth = 10
)

const (
	bucketIndent = "\t     "
	objectIndent = "\t    "
)

// FormatShortDate renders t as month/day/year without zero padding, or ""
// for the zero time.
func FormatShortDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(ShortDate)
}

// BucketLine is one bucket entry of the bucket listing.
func BucketLine(name string) string {
	return bucketIndent + name
}

// ObjectLine lays out key, date and size in fixed columns. The key is
// left-aligned, date and size are right-aligned. Overlong values widen their
// column rather than being cut.
func ObjectLine(key string, modified time.Time, size int64) string {
	return fmt.Sprintf("%s%-*s%*s%*d", objectIndent,
		KeyWidth, key,
		DateWidth, FormatShortDate(modified),
		SizeWidth, size)
}

// StatusLine prefixes a status message: a leading space, the prefix, then
// another space.
func StatusLine(prefix, msg string) string {
	return " " + prefix + " " + msg
}
