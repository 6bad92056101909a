// Package binfmt renders unsigned integers as binary literals: a printf-style
// display pattern plus the matching ordered bit characters, most significant
// bit first. Pattern and values travel together in one Formatted value, so a
// caller can never hand a formatting sink a mismatched pair.
package binfmt

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// PatternPrefix opens every display pattern.
	PatternPrefix = "0b"
	// PatternDelimiter separates the 8-placeholder byte groups.
	PatternDelimiter = "_"

	placeholder  = "%c"
	bitsPerGroup = 8
)

var ErrInvalidWidth = errors.New("width must be one of 8, 16, 32 or 64")

// Width is a supported bit width.
type Width uint8

const (
	W8  Width = 8
	W16 Width = 16
	W32 Width = 32
	W64 Width = 64
)

// ParseWidth validates an integer bit width.
func ParseWidth(n int) (Width, error) {
	switch n {
	default:
		return 0, fmt.Errorf("%w: got %d", ErrInvalidWidth, n)
	case 8, 16, 32, 64:
		return Width(n), nil
	}
}

// Formatted pairs a display pattern with exactly as many bit characters as the
// pattern declares placeholders.
type Formatted struct {
	// Pattern is "0b" followed by one %c per bit, grouped 8 per byte and
	// delimited by "_", most significant byte first.
	Pattern string
	// Values holds one '1' or '0' per bit, from bit width-1 down to bit 0.
	Values []byte
}

// Format renders the low w bits of v. Bits above the width are ignored.
func Format(v uint64, w Width) (Formatted, error) {
	if _, err := ParseWidth(int(w)); err != nil {
		return Formatted{}, err
	}

	var pattern strings.Builder
	pattern.WriteString(PatternPrefix)

	values := make([]byte, 0, w)
	for bit := int(w) - 1; bit >= 0; bit-- {
		if len(values) > 0 && (bit+1)%bitsPerGroup == 0 {
			pattern.WriteString(PatternDelimiter)
		}
		pattern.WriteString(placeholder)

		if Check(v, uint(bit)) {
			values = append(values, '1')
		} else {
			values = append(values, '0')
		}
	}

	return Formatted{Pattern: pattern.String(), Values: values}, nil
}

// Args adapts Values for an fmt-style sink:
//
//	f, _ := binfmt.Format(x, binfmt.W16)
//	fmt.Printf(f.Pattern+"\n", f.Args()...)
func (f Formatted) Args() []any {
	args := make([]any, len(f.Values))
	for i, v := range f.Values {
		args[i] = v
	}

	return args
}

// String renders the literal directly, e.g. "0b10110000" for width 8.
func (f Formatted) String() string {
	var sb strings.Builder
	sb.WriteString(PatternPrefix)

	for i, v := range f.Values {
		if i > 0 && i%bitsPerGroup == 0 {
			sb.WriteString(PatternDelimiter)
		}
		sb.WriteByte(v)
	}

	return sb.String()
}

// Uint reassembles the integer the values spell, MSB first. The result equals
// the formatted value truncated to the formatted width.
func (f Formatted) Uint() uint64 {
	var v uint64
	for _, c := range f.Values {
		v <<= 1
		if c == '1' {
			v |= 1
		}
	}

	return v
}
