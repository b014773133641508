package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"plain text untouched", "Monthly Rent", "Monthly Rent"},
		{"strips script", "Lunch <script>alert(1)</script>", "Lunch"},
		{"strips tags keeps text", "<b>Electric</b> bill", "Electric bill"},
		{"trims whitespace", "  Cafe Mocha  ", "Cafe Mocha"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, SanitizeText(tc.input))
		})
	}
}

func TestStripUnprintable(t *testing.T) {
	assert.Equal(t, "Salary Credit", StripUnprintable("Salary\x00 Credit\x07"))
	assert.Equal(t, "a\tb\nc", StripUnprintable("a\tb\nc"))
}
