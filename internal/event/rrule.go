package event

import "github.com/teambition/rrule-go"

// SupportedFrequency reports whether a series may repeat at freq.
// Minutely and secondly series are refused; hourly is the finest step.
func SupportedFrequency(freq rrule.Frequency) bool {
	return freq <= rrule.HOURLY
}
