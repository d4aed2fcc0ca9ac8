package ports_test

import (
	"testing"

	"martdelivery/internal/core/ports"

	"github.com/stretchr/testify/assert"
)

func TestExtractPostalCode(t *testing.T) {
	tests := []struct {
		name      string
		formatted string
		expected  string
	}{
		{"six digits", "12 MG Road, Bengaluru, Karnataka 560001, India", "560001"},
		{"first of many", "Block 110001 near 560001", "110001"},
		{"too short", "Springfield 12345, USA", ""},
		{"too long", "Code 1234567", ""},
		{"glued to letters", "abc560001", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ports.ExtractPostalCode(tt.formatted))
		})
	}
}

func TestGeocodeResult_PostalCode(t *testing.T) {
	structured := ports.GeocodeResult{
		Components:       ports.AddressComponents{PostalCode: "400001"},
		FormattedAddress: "Fort, Mumbai 400002",
	}
	fallback := ports.GeocodeResult{FormattedAddress: "Fort, Mumbai 400002"}

	assert.Equal(t, "400001", structured.PostalCode())
	assert.Equal(t, "400002", fallback.PostalCode())
}
