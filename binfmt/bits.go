package binfmt

// Unsigned covers the integer widths the formatter supports.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Set returns x with the given bit set.
func Set[T Unsigned](x T, bit uint) T { return x | (1 << bit) }

// Clear returns x with the given bit cleared.
func Clear[T Unsigned](x T, bit uint) T { return x &^ (1 << bit) }

// Flip returns x with the given bit inverted.
func Flip[T Unsigned](x T, bit uint) T { return x ^ (1 << bit) }

// Check reports whether the given bit of x is set.
func Check[T Unsigned](x T, bit uint) bool { return x&(1<<bit) != 0 }

// MaskSet returns x with every bit of mask set.
func MaskSet[T Unsigned](x, mask T) T { return x | mask }

// MaskClear returns x with every bit of mask cleared.
func MaskClear[T Unsigned](x, mask T) T { return x &^ mask }

// MaskFlip returns x with every bit of mask inverted.
func MaskFlip[T Unsigned](x, mask T) T { return x ^ mask }

// MaskAll reports whether every bit of mask is set in x.
func MaskAll[T Unsigned](x, mask T) bool { return x&mask == mask }

// MaskAny reports whether any bit of mask is set in x.
func MaskAny[T Unsigned](x, mask T) bool { return x&mask != 0 }
