// Package phone normalizes buyer phone numbers for WhatsApp deep links.
package phone

import (
	"fmt"
	"net/url"
	"strings"
)

// Normalize strips everything but digits and prefixes the default
// country calling code when the number looks local. The heuristic is
// simple on purpose: numbers of eight digits or more that do not
// already start with the code get it prepended.
func Normalize(raw, countryCode string) string {
	if countryCode == "" {
		countryCode = "1"
	}

	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	if len(digits) > 7 && !strings.HasPrefix(digits, countryCode) {
		digits = countryCode + digits
	}

	return digits
}

// WhatsAppURL builds a wa.me link greeting the buyer about a raffle.
func WhatsAppURL(rawPhone, countryCode, buyerName, raffleName string) string {
	msg := fmt.Sprintf("¡Hola %s! Te contacto sobre tu participación en la rifa %q.", buyerName, raffleName)
	return fmt.Sprintf("https://wa.me/%s?text=%s",
		Normalize(rawPhone, countryCode), url.QueryEscape(msg))
}
