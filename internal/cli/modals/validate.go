package modals

import "regexp"

// emailRe mirrors the confirmation dialog's check: something@something.tld,
// no whitespace or extra @ in any part.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether addr is syntactically acceptable as a
// shipment-confirmation recipient.
func ValidEmail(addr string) bool {
	return emailRe.MatchString(addr)
}
