// errors.go — the closed runtime error taxonomy and its rendering.
//
// Every way a run can fail maps to one ErrKind; a *RunError pairs the kind
// with the offending instruction offset and byte and the cell value at the
// moment of failure. All of them are terminal: the machine halts on the
// first one and nothing is retried.
//
// Two renderings are provided:
//   - (*RunError).Diagnostic: the classic one-line form,
//     "Error: <message> at <row>:<col> (code: '<byte>' data: '<cell>')".
//   - PrettyRunError: a multi-line snippet with numbered context lines and
//     a caret under the failing column.
package brainfuck

import (
	"fmt"
	"strings"
)

// ErrKind enumerates the runtime failure kinds.
type ErrKind int

const (
	// ErrIndexAbove: `>` would move the data cursor to or past the end of
	// the tape (bounds checking on).
	ErrIndexAbove ErrKind = iota
	// ErrIndexBelow: `<` would move the data cursor below the first cell
	// (bounds checking on).
	ErrIndexBelow
	// ErrWrapOver: `+` on a cell already at the maximum value (wrap
	// checking on).
	ErrWrapOver
	// ErrWrapUnder: `-` on a cell already at the minimum value (wrap
	// checking on).
	ErrWrapUnder
	// ErrNoMatchOpen: a taken `[` has no matching `]`.
	ErrNoMatchOpen
	// ErrNoMatchClose: a taken `]` has no matching `[`.
	ErrNoMatchClose
	// ErrUnknownInstruction: a non-instruction, non-line-break byte with
	// strict syntax checking on.
	ErrUnknownInstruction
)

var errMessages = [...]string{
	ErrIndexAbove:         "Indexing above the data segment",
	ErrIndexBelow:         "Indexing below the data segment",
	ErrWrapOver:           "Data cell value wraps over",
	ErrWrapUnder:          "Data cell value wraps under",
	ErrNoMatchOpen:        "No match for opening bracket",
	ErrNoMatchClose:       "No match for closing bracket",
	ErrUnknownInstruction: "Unknown command",
}

func (k ErrKind) String() string {
	if int(k) < len(errMessages) {
		return errMessages[k]
	}
	return fmt.Sprintf("ErrKind(%d)", int(k))
}

// RunError is the outcome of a failed run.
type RunError struct {
	Kind   ErrKind
	Offset int  // offset of the offending instruction in the code
	Code   byte // the offending instruction byte
	Cell   int8 // value under the data cursor when the run halted
}

func (e *RunError) Error() string { return e.Kind.String() }

// Diagnostic renders the one-line diagnostic against the code the error
// came from, with 1-based row/column coordinates.
func (e *RunError) Diagnostic(code []byte) string {
	row, col := FindPosition(code, e.Offset)
	return fmt.Sprintf("Error: %s at %d:%d (code: '%c' data: '%d')",
		e.Kind, row, col, e.Code, e.Cell)
}

// PrettyRunError renders a caret-annotated snippet of the code around the
// failing instruction. It shows at most one previous and one next line of
// context; coordinates are clamped so rendering never panics.
func PrettyRunError(code []byte, e *RunError) string {
	row, col := FindPosition(code, e.Offset)
	lines := strings.Split(string(code), "\n")
	if len(lines) == 0 {
		lines = []string{""}
	}
	if row > len(lines) {
		row = len(lines)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "RUNTIME ERROR at %d:%d: %s\n\n", row, col, e.Kind)
	if row > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", row-1, lines[row-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", row, lines[row-1])
	caretPad := col - 1
	if caretPad < 0 {
		caretPad = 0
	}
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", caretPad))
	if row < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", row+1, lines[row])
	}
	return b.String()
}
