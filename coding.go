package main

import (
	"strings"

	"zultys-gsm7/smpp/coding"
)

// ValidateAndCleanSMS replaces every character outside the GSM 03.38 main
// and extension tables with replacement. NUL is left alone.
func ValidateAndCleanSMS(text string, replacement rune) string {
	var builder strings.Builder
	builder.Grow(len(text))

	for _, r := range text {
		if coding.Representable(r) == coding.TableNone {
			builder.WriteRune(replacement)
			continue
		}
		builder.WriteRune(r)
	}

	return builder.String()
}
