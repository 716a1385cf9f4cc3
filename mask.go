package xform

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Mask symbols.
const (
	StringMaskSymbol = '*' // 4111111111 -> "41********"
	NumberMaskSymbol = '0' // 4111111111 -> 4100000000
)

// MaskedCount returns how many of length characters are masked:
// 80% of length, rounded to the nearest integer.
//
// 4*length/5 is never exactly halfway between two integers, so no
// tie-breaking rule applies.
func MaskedCount(length int) int {
	return (4*length + 2) / 5
}

// MaskText keeps the leading characters of content and replaces the
// trailing MaskedCount characters with symbol. Characters are runes.
func MaskText(content string, symbol rune) string {
	runes := []rune(content)
	masked := MaskedCount(len(runes))
	keep := len(runes) - masked

	var b strings.Builder
	b.Grow(len(content))
	b.WriteString(string(runes[:keep]))
	for i := 0; i < masked; i++ {
		b.WriteRune(symbol)
	}
	return b.String()
}

// maskLiteral returns the JSON text that replaces v when masked.
// Strings are masked with '*' and re-quoted; numbers are masked with '0'
// and left bare.
func maskLiteral(v Value) (string, bool) {
	switch v.Kind {
	case KindString:
		return quote(MaskText(v.Text, StringMaskSymbol)), true
	case KindNumber:
		return MaskText(v.Text, NumberMaskSymbol), true
	default:
		return "", false
	}
}

// quote renders s as a JSON string literal without HTML escaping.
func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}
