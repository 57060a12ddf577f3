package sat

import "math/bits"

func trailingZeros(word uint64) int {
	return bits.TrailingZeros64(word)
}
