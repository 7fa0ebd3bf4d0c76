package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMinor(t *testing.T) {
	tests := []struct {
		minor int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{590, "5.90"},
		{1770, "17.70"},
		{-675, "-6.75"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMinor(tt.minor))
	}
}

func TestMinorToMajor(t *testing.T) {
	assert.InDelta(t, 17.70, MinorToMajor(1770), 1e-9)
	assert.InDelta(t, 9.5, MinorToMajor(950), 1e-9)
}
