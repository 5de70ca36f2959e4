package scriptmeta

import (
	"strconv"
	"unicode/utf16"
)

// ContentHash computes the drift-detection digest of a script's text: a
// 32-bit signed rolling hash over the UTF-16 code units of the string, seed
// 0, h = h*31 + c per unit with wraparound. The result is formatted as hex
// of the signed value, so it may carry a leading '-'.
//
// The int32 truncation on every step is load-bearing: previously persisted
// hashes were produced with exactly this overflow behavior, and a 64-bit
// accumulator would diverge from them. Not a cryptographic digest; fit only
// for spotting accidental drift between cooperative replicas.
func ContentHash(text string) string {
	var h int32
	for _, c := range utf16.Encode([]rune(text)) {
		h = (h << 5) - h + int32(c)
	}
	return strconv.FormatInt(int64(h), 16)
}
