// bracket.go
package brainfuck

// matchBracket scans from start, which must sit on a `[` or `]`, toward
// the matching partner and returns its offset. It tracks nesting depth:
// the starting bracket seeds the counter, every bracket visited adjusts
// it, and the scan ends when the counter returns to zero. Stepping before
// the first byte or past the last one means there is no partner; the
// caller's instruction cursor is left untouched in that case.
//
// Linear in the code length, no allocation.
func matchBracket(code []byte, start int, forward bool) (int, bool) {
	step := 1
	if !forward {
		step = -1
	}
	depth := 0
	for i := start; ; i += step {
		if i < 0 || i >= len(code) {
			return start, false
		}
		switch code[i] {
		case opOpen:
			depth++
		case opClose:
			depth--
		}
		if depth == 0 {
			return i, true
		}
	}
}
