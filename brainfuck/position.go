// position.go
package brainfuck

// FindPosition maps a code offset to 1-based row/column coordinates by
// counting line breaks in [0, offset). Pure; offset is expected to lie
// within the code (it always comes from a cursor that has already been
// dereferenced).
func FindPosition(code []byte, offset int) (row, col int) {
	row, col = 1, 1
	for i := 0; i < offset && i < len(code); i++ {
		col++
		if code[i] == '\n' {
			col = 1
			row++
		}
	}
	return row, col
}
