package extract

import "regexp"

// reColombianMobile matches a Colombian mobile number: optional +57 country
// code, a leading 3 and nine more digits, tolerant of space/dash/dot
// separators as produced by OCR.
var reColombianMobile = regexp.MustCompile(`(?:\+?57[\s.\-]?)?3\d(?:[\s.\-]?\d){8}`)

var reNonDigit = regexp.MustCompile(`\D`)

// NormalizePhone strips separators and prefixes the 57 country code onto
// bare 10-digit mobiles. Already-prefixed numbers and any other lengths
// pass through unchanged, which makes the function idempotent.
func NormalizePhone(raw string) string {
	digits := reNonDigit.ReplaceAllString(raw, "")
	if len(digits) == 10 && digits[0] == '3' {
		return "57" + digits
	}
	return digits
}
