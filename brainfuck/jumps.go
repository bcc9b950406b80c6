// jumps.go — precomputed bracket matching, an explicitly separate
// optimization.
//
// The baseline engine rescans the code for a partner every time a bracket
// is taken. CompileJumps trades that for a one-pass prepass and O(1)
// dispatch. The two are not interchangeable in every respect: the prepass
// sees the whole buffer, so an unbalanced bracket inside a loop body that
// would never execute is still reported, before the run starts. That is
// why the table is opt-in (Config.PrecomputedJumps) and never the
// default.
package brainfuck

// CompileJumps scans the code once and returns a table mapping each
// bracket's offset to its partner's. Non-bracket offsets hold zero and
// must not be consulted. An unbalanced bracket yields a *RunError
// (ErrNoMatchOpen or ErrNoMatchClose) whose Offset points at it; the Cell
// field is zero, since no tape exists yet.
func CompileJumps(code []byte) ([]int32, *RunError) {
	jumps := make([]int32, len(code))
	var stack []int32
	for i, c := range code {
		switch c {
		case opOpen:
			stack = append(stack, int32(i))
		case opClose:
			if len(stack) == 0 {
				return nil, &RunError{Kind: ErrNoMatchClose, Offset: i, Code: c}
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			jumps[open] = int32(i)
			jumps[i] = open
		}
	}
	if len(stack) > 0 {
		// Report the outermost unmatched open: it is the first one the
		// rescanning engine would have tripped on.
		open := int(stack[0])
		return nil, &RunError{Kind: ErrNoMatchOpen, Offset: open, Code: opOpen}
	}
	return jumps, nil
}
