package push

import "github.com/bits-and-blooms/bitset"

// frontier is a LIFO worklist with O(1) duplicate rejection. Membership bits
// are cleared as nodes are popped, so a fully drained frontier leaves the
// bitset clean and ready for the next row without a full clear.
type frontier struct {
	stack []int32
	in    *bitset.BitSet
}

func newFrontier(capacity int) *frontier {
	return &frontier{
		stack: make([]int32, 0, 128),
		in:    bitset.New(uint(capacity)),
	}
}

// push enqueues v unless it is already queued. Returns true if v was added.
func (f *frontier) push(v int32) bool {
	if f.in.Test(uint(v)) {
		return false
	}

	f.in.Set(uint(v))
	f.stack = append(f.stack, v)

	return true
}

// pop removes and returns the most recently queued node.
func (f *frontier) pop() (int32, bool) {
	n := len(f.stack)
	if n == 0 {
		return 0, false
	}

	v := f.stack[n-1]
	f.stack = f.stack[:n-1]
	f.in.Clear(uint(v))

	return v, true
}

func (f *frontier) empty() bool {
	return len(f.stack) == 0
}

// reset drains any leftover entries (no-op after a completed run).
func (f *frontier) reset() {
	for _, v := range f.stack {
		f.in.Clear(uint(v))
	}
	f.stack = f.stack[:0]
}
