// machine.go — the dispatch loop.
//
// A Machine is a strictly sequential single-tape virtual machine. It owns
// two cursors: ip over the code and dp over the tape. Run dispatches one
// instruction at a time, consults the configured checks, and halts on the
// first failure with the instruction cursor still on the offending byte.
package brainfuck

import (
	"io"
	"math"
)

// eofCell is stored by `,` when input is exhausted. Fixed at -1 (0xFF as
// an unsigned byte), matching the common two's-complement behavior of
// casting EOF to a signed 8-bit cell.
const eofCell int8 = -1

// Machine executes one code buffer against one freshly allocated tape.
// Not safe for concurrent use; there is exactly one logical thread of
// control per run.
type Machine struct {
	code []byte
	data []int8
	ip   int // instruction cursor
	dp   int // data cursor
	cfg  Config

	jumps []int32 // bracket match table, nil unless cfg.PrecomputedJumps

	in  io.Reader
	out io.Writer
}

// New validates cfg, allocates the zero-initialized tape and returns a
// machine ready to run. The code buffer is never mutated. When
// cfg.PrecomputedJumps is set the bracket table is built here, so
// unbalanced brackets surface as a *RunError before the run starts.
func New(code []byte, cfg Config, in io.Reader, out io.Writer) (*Machine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	m := &Machine{
		code: code,
		data: make([]int8, cfg.DataSize),
		cfg:  cfg,
		in:   in,
		out:  out,
	}
	if cfg.PrecomputedJumps {
		jumps, err := CompileJumps(code)
		if err != nil {
			return nil, err
		}
		m.jumps = jumps
	}
	return m, nil
}

// Run executes the code to completion. It returns nil on success and a
// *RunError on the first failure, leaving the instruction cursor on the
// offending instruction.
//
// With bounds checking off, the data cursor may leave [0, DataSize); the
// motion itself is unchecked, and dereferencing an out-of-range cell
// panics. The caller accepted that by disabling the check.
//
// `.` writes one byte immediately per dispatch, `,` blocks for one byte
// and stores eofCell once input is exhausted.
func (m *Machine) Run() error {
	for m.ip < len(m.code) {
		switch c := m.code[m.ip]; c {
		case opRight:
			if m.cfg.BoundsCheck && m.dp+1 >= int(m.cfg.DataSize) {
				return m.fail(ErrIndexAbove)
			}
			m.dp++

		case opLeft:
			if m.cfg.BoundsCheck && m.dp == 0 {
				return m.fail(ErrIndexBelow)
			}
			m.dp--

		case opInc:
			if m.cfg.WrapCheck && m.data[m.dp] == math.MaxInt8 {
				return m.fail(ErrWrapOver)
			}
			m.data[m.dp]++

		case opDec:
			if m.cfg.WrapCheck && m.data[m.dp] == math.MinInt8 {
				return m.fail(ErrWrapUnder)
			}
			m.data[m.dp]--

		case opOpen:
			if m.data[m.dp] == 0 {
				if pos, ok := m.match(true); ok {
					m.ip = pos
				} else {
					return m.fail(ErrNoMatchOpen)
				}
			}

		case opClose:
			if m.data[m.dp] != 0 {
				if pos, ok := m.match(false); ok {
					m.ip = pos
				} else {
					return m.fail(ErrNoMatchClose)
				}
			}

		case opOut:
			_, _ = m.out.Write([]byte{byte(m.data[m.dp])})

		case opIn:
			var buf [1]byte
			if _, err := io.ReadFull(m.in, buf[:]); err != nil {
				m.data[m.dp] = eofCell
			} else {
				m.data[m.dp] = int8(buf[0])
			}

		default:
			if m.cfg.SyntaxCheck && c != '\n' {
				return m.fail(ErrUnknownInstruction)
			}
		}

		// A successful bracket match left ip on the partner; this moves
		// past it, like every other dispatch.
		m.ip++
	}
	return nil
}

// match resolves the bracket under ip, through the precomputed table when
// one was built and by rescanning otherwise.
func (m *Machine) match(forward bool) (int, bool) {
	if m.jumps != nil {
		return int(m.jumps[m.ip]), true
	}
	return matchBracket(m.code, m.ip, forward)
}

func (m *Machine) fail(kind ErrKind) *RunError {
	return &RunError{
		Kind:   kind,
		Offset: m.ip,
		Code:   m.code[m.ip],
		Cell:   m.data[m.dp],
	}
}

// Data exposes the live tape, for inspection after (or between) runs.
func (m *Machine) Data() []int8 { return m.data }

// Cursor returns the current data cursor.
func (m *Machine) Cursor() int { return m.dp }
