// Package scratch implements a fixed-capacity, frame-scoped bump allocator.
// One arena serves the temporary allocations of a single bounded computation;
// frames are opened and closed in strict LIFO order and allocations live
// exactly as long as their enclosing frame.
package scratch

import "math"

// Alignment is the boundary every allocation size is rounded up to.
const Alignment = 16

// MaxFrames bounds the depth of the open-frame stack.
const MaxFrames = 16

// ErrorCallback reports an underlying allocation failure. It is expected to
// log or abort; the arena has no fallback path.
type ErrorCallback func(msg string)

// Allocator is the single capability the arena consumes from the hosting
// environment: produce a block of n bytes, or return nil.
type Allocator func(n int) []byte

type frame struct {
	data []byte
	size int
	off  int
}

// Arena owns the frame stack and enforces the capacity ceiling across all
// simultaneously open frames. Not goroutine-safe; one arena per computation.
type Arena struct {
	maxSize int
	onError ErrorCallback
	malloc  Allocator
	frames  [MaxFrames]frame
	depth   int
}

type Option func(*Arena)

// WithErrorCallback replaces the default abort-on-failure callback.
func WithErrorCallback(cb ErrorCallback) Option {
	return func(a *Arena) {
		a.onError = cb
	}
}

// WithAllocator replaces the underlying block allocator.
func WithAllocator(malloc Allocator) Option {
	return func(a *Arena) {
		a.malloc = malloc
	}
}

// New creates an arena with the given capacity. No frame storage is reserved
// until OpenFrame.
func New(maxSize int, opts ...Option) *Arena {
	a := &Arena{
		maxSize: maxSize,
		onError: func(msg string) {
			panic("scratch: " + msg)
		},
		malloc: func(n int) []byte {
			return make([]byte, n)
		},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Free tears the arena down. Freeing with frames still open is a caller bug.
func (a *Arena) Free() {
	if a.depth != 0 {
		panic("scratch: free with open frames")
	}
	a.malloc = nil
	a.onError = nil
}

// Depth reports the number of currently open frames.
func (a *Arena) Depth() int {
	return a.depth
}

// MaxAllocation reports how many bytes remain available for a new frame,
// reserving objects*Alignment bytes of slack for the alignment padding of
// that many individually allocated objects. Floored at zero.
func (a *Arena) MaxAllocation(objects int) int {
	// slack must not overflow; an unsatisfiable reservation has no budget
	if objects < 0 || objects > math.MaxInt/Alignment {
		return 0
	}
	allocated := 0
	for i := 0; i < a.depth; i++ {
		allocated += a.frames[i].size
	}
	slack := objects * Alignment
	if a.maxSize-allocated <= slack {
		return 0
	}
	return a.maxSize - allocated - slack
}

// OpenFrame pushes a frame backed by a block of n+objects*Alignment bytes.
// It fails, with no state change, if the frame stack is full or n exceeds
// MaxAllocation(objects). A failure of the underlying allocator invokes the
// error callback before reporting failure.
func (a *Arena) OpenFrame(n, objects int) bool {
	if n < 0 || objects < 0 || objects > math.MaxInt/Alignment {
		return false
	}
	if a.depth == MaxFrames {
		return false
	}
	if n > a.MaxAllocation(objects) {
		return false
	}
	n += objects * Alignment
	data := a.malloc(n)
	if data == nil {
		a.onError("out of memory")
		return false
	}
	a.frames[a.depth] = frame{data: data, size: n}
	a.depth++
	return true
}

// CloseFrame pops the topmost frame and releases its block. Closing with no
// open frame is a caller bug.
func (a *Arena) CloseFrame() {
	if a.depth == 0 {
		panic("scratch: close with no open frame")
	}
	a.depth--
	a.frames[a.depth] = frame{}
}

// Alloc carves size bytes (rounded up to Alignment) out of the topmost frame
// and returns the zeroed range. Returns nil, with no state change, if no
// frame is open or the frame lacks room. The returned slice is valid until
// the enclosing frame closes.
func (a *Arena) Alloc(size int) []byte {
	if size < 0 || a.depth == 0 {
		return nil
	}
	f := &a.frames[a.depth-1]
	// checked unrounded; rounding a size near MaxInt overflows
	if size > f.size-f.off {
		return nil
	}
	size = (size + Alignment - 1) / Alignment * Alignment
	if size+f.off > f.size {
		return nil
	}
	out := f.data[f.off : f.off+size : f.off+size]
	for i := range out {
		out[i] = 0
	}
	f.off += size
	return out
}
