package util

import (
	"fmt"
	"math"
)

func FormatFrequency(freq float64) string {
	switch {
	case freq >= 1e6:
		return fmt.Sprintf("%7.3f MHz", freq/1e6)
	case freq >= 1e3:
		return fmt.Sprintf("%7.3f kHz", freq/1e3)
	default:
		return fmt.Sprintf("%7.3f Hz ", freq)
	}
}

func FormatMagnitude(value float64) string {
	if value >= 1000 || (value < 0.001 && value != 0) {
		return fmt.Sprintf("%8.2e", value) // "1.00e+03" or "5.43e-05"
	}
	return fmt.Sprintf("%8.3g", value) // "  732.5 "
}

func FormatPhase(value float64) string {
	return fmt.Sprintf("%6.1f", value) // "  90.0"
}

func FormatMagnitudePhase(name string, value, phase float64) string {
	return fmt.Sprintf("%s=%s<%sdeg", name, FormatMagnitude(value), FormatPhase(phase))
}

// FormatComplex renders z in rectangular form, "re + jim" or "re - jim".
func FormatComplex(z complex128) string {
	if imag(z) < 0 {
		return fmt.Sprintf("%.6g - j%.6g", real(z), -imag(z))
	}
	return fmt.Sprintf("%.6g + j%.6g", real(z), imag(z))
}

// MagnitudePhase returns |z| and its phase in degrees.
func MagnitudePhase(z complex128) (float64, float64) {
	return math.Hypot(real(z), imag(z)), math.Atan2(imag(z), real(z)) * 180 / math.Pi
}
