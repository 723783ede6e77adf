package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		country string
		want    string
	}{
		{"strips formatting", "(809) 555-1234", "1", "18095551234"},
		{"keeps existing code", "18095551234", "1", "18095551234"},
		{"short numbers untouched", "5551234", "1", "5551234"},
		{"empty code defaults to 1", "8095551234", "", "18095551234"},
		{"mexican code", "5512345678", "52", "525512345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw, tt.country))
		})
	}
}

func TestWhatsAppURL(t *testing.T) {
	u := WhatsAppURL("809-555-1234", "1", "Ana", "Rifa Navideña")
	assert.Contains(t, u, "https://wa.me/18095551234?text=")
	assert.NotContains(t, u, " ", "message must be URL-encoded")
}
