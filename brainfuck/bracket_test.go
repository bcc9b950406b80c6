package brainfuck

import "testing"

func TestMatchForward(t *testing.T) {
	tests := []struct {
		src  string
		from int
		want int
	}{
		{"[]", 0, 1},
		{"[+]", 0, 2},
		{"[+[-]>]", 0, 6},
		{"[+[-]>]", 2, 4},
		{"+[comment]", 1, 9},
	}
	for _, tt := range tests {
		got, ok := matchBracket([]byte(tt.src), tt.from, true)
		if !ok {
			t.Errorf("matchBracket(%q, %d, fwd): no match", tt.src, tt.from)
			continue
		}
		if got != tt.want {
			t.Errorf("matchBracket(%q, %d, fwd) = %d, want %d", tt.src, tt.from, got, tt.want)
		}
	}
}

func TestMatchIsStructuralInverse(t *testing.T) {
	// For every bracket pair, forward from the open lands on the close
	// and backward from that close lands on the same open. CompileJumps
	// is the independent oracle for the pairing.
	src := []byte("++[>+[-[>]<-]+]<[]")
	jumps, cerr := CompileJumps(src)
	if cerr != nil {
		t.Fatalf("CompileJumps: %v", cerr)
	}
	for i, c := range src {
		if c != opOpen {
			continue
		}
		closeAt, ok := matchBracket(src, i, true)
		if !ok {
			t.Fatalf("no forward match for open at %d", i)
		}
		if closeAt != int(jumps[i]) {
			t.Fatalf("forward match for %d = %d, table says %d", i, closeAt, jumps[i])
		}
		back, ok := matchBracket(src, closeAt, false)
		if !ok {
			t.Fatalf("no backward match for close at %d", closeAt)
		}
		if back != i {
			t.Fatalf("backward match for %d = %d, want %d", closeAt, back, i)
		}
	}
}

func TestMatchNotFound(t *testing.T) {
	tests := []struct {
		src     string
		from    int
		forward bool
	}{
		{"[++", 0, true},
		{"[[]", 0, true},
		{"++]", 2, false},
		{"[]]", 2, false},
	}
	for _, tt := range tests {
		got, ok := matchBracket([]byte(tt.src), tt.from, tt.forward)
		if ok {
			t.Errorf("matchBracket(%q, %d, fwd=%v) = %d, want no match",
				tt.src, tt.from, tt.forward, got)
			continue
		}
		if got != tt.from {
			t.Errorf("failed match must leave the offset at %d, got %d", tt.from, got)
		}
	}
}

func TestCompileJumpsUnbalanced(t *testing.T) {
	tests := []struct {
		src    string
		kind   ErrKind
		offset int
	}{
		{"[", ErrNoMatchOpen, 0},
		{"[[]", ErrNoMatchOpen, 0},
		{"[][", ErrNoMatchOpen, 2},
		{"]", ErrNoMatchClose, 0},
		{"[]]", ErrNoMatchClose, 2},
	}
	for _, tt := range tests {
		_, err := CompileJumps([]byte(tt.src))
		if err == nil {
			t.Errorf("CompileJumps(%q): want error, got table", tt.src)
			continue
		}
		if err.Kind != tt.kind || err.Offset != tt.offset {
			t.Errorf("CompileJumps(%q) = %q at %d, want %q at %d",
				tt.src, err.Kind, err.Offset, tt.kind, tt.offset)
		}
	}
}
