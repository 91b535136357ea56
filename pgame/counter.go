package pgame

import "github.com/katalvlaran/lcsfe/ast"

// Counter is the per-priority progress vector threaded through a play,
// one slot per equation index (0-based slice, slot j holds the count
// for priority j+1). A fresh counter is the all-zero vector.
type Counter []int

// ZeroCounter returns the all-zero counter for a system of m equations.
func ZeroCounter(m int) Counter {
	return make(Counter, m)
}

// Clone returns an independent copy, since Counter is a slice and
// callers must not let two plays alias the same backing array.
func (k Counter) Clone() Counter {
	out := make(Counter, len(k))
	copy(out, k)
	return out
}

// Equal reports whether k and k2 hold the same counts.
func (k Counter) Equal(k2 Counter) bool {
	if len(k) != len(k2) {
		return false
	}
	for i := range k {
		if k[i] != k2[i] {
			return false
		}
	}
	return true
}

// Next advances k upon taking a step into a position of the given
// priority (1-based equation index, or 0 for an Adam position, which
// leaves k unchanged per spec.md §4.4): every slot below priority is
// reset to zero, the slot at priority is incremented, and slots above
// priority are carried over unchanged.
func Next(k Counter, priority int) Counter {
	if priority <= 0 {
		return k.Clone()
	}
	out := make(Counter, len(k))
	copy(out[priority:], k[priority:])
	out[priority-1] = k[priority-1] + 1
	return out
}

// diffIndex returns the largest 1-based equation index at which k and
// k2 differ, or 0 if they are equal.
func diffIndex(k, k2 Counter) int {
	n := len(k)
	if len(k2) < n {
		n = len(k2)
	}
	for i := n; i >= 1; i-- {
		if k[i-1] != k2[i-1] {
			return i
		}
	}
	return 0
}

// LessEve reports whether k <_E k2: at the largest index where they
// differ, a max-equation wants k smaller and a min-equation wants k
// larger, per spec.md §4.4.
func LessEve(sys ast.System, k, k2 Counter) bool {
	i := diffIndex(k, k2)
	if i == 0 {
		return false
	}
	if sys.At(i).Kind == ast.Max {
		return k[i-1] < k2[i-1]
	}
	return k[i-1] > k2[i-1]
}

// LessAdam reports whether k <_A k2, the dual order used to compare
// progress along Adam's universal branches.
func LessAdam(sys ast.System, k, k2 Counter) bool {
	return LessEve(sys, k2, k)
}

// LessEqEve reports k <=_E k2.
func LessEqEve(sys ast.System, k, k2 Counter) bool {
	return k.Equal(k2) || LessEve(sys, k, k2)
}

// LessEqAdam reports k <=_A k2.
func LessEqAdam(sys ast.System, k, k2 Counter) bool {
	return k.Equal(k2) || LessAdam(sys, k, k2)
}
