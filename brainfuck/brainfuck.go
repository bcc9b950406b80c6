// brainfuck.go — public surface of the brainfuck package.
//
// The package is a direct (non-compiling) interpreter for the eight classic
// instructions, run against a fixed-size tape of signed 8-bit cells:
//
//   - `Config` describes one run: tape size plus the optional bounds, wrap
//     and strict-syntax checks. An optional YAML settings file maps onto it
//     via `FileConfig` (config.go).
//   - `Machine` holds the code, the tape and both cursors; `New` allocates,
//     `Run` executes to completion and returns nil or a `*RunError`.
//   - `*RunError` is a tagged error carrying the error kind, the offending
//     instruction offset and byte, and the cell value at the moment of
//     failure (errors.go). `FindPosition` turns an offset into 1-based
//     row/column coordinates for diagnostics (position.go).
//   - `CompileJumps` is an explicitly separate optimization: a precomputed
//     bracket-match table (jumps.go). The default engine resolves every
//     bracket with a linear rescan, on purpose.
//
// Loops are resolved by rescanning the code for the matching bracket each
// time one is taken. That is O(n) per bracket dispatch and O(n²) in the
// worst case across a run; a faithful property of the interpreter, not an
// oversight. Callers who want the O(1) dispatch opt in through
// Config.PrecomputedJumps.
package brainfuck

// Version of the interpreter, reported by the CLI help text.
const Version = "0.1.0"

// DefaultDataSize is the tape length in cells when none is configured.
const DefaultDataSize = 30000

// The eight instruction bytes. Anything else is a comment byte unless
// strict syntax checking is on.
const (
	opRight = '>'
	opLeft  = '<'
	opInc   = '+'
	opDec   = '-'
	opOpen  = '['
	opClose = ']'
	opOut   = '.'
	opIn    = ','
)
