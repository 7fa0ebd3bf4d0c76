package utils

import "fmt"

// FormatMinor renders an amount in minor units (cents) with two decimals, e.g. 590 -> "5.90".
func FormatMinor(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s%d.%02d", sign, minor/100, minor%100)
}

// MinorToMajor converts minor units to a decimal amount for JSON payloads.
func MinorToMajor(minor int64) float64 {
	return float64(minor) / 100
}
