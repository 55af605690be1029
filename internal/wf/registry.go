package wf

import (
	"sync"
)

// Handle is an opaque reference to a registered Search: a slot index
// in the low 32 bits and a generation counter in the high 32. The
// generation is bumped when a slot is released, so a stale Handle
// fails validation instead of reaching a recycled Search. The zero
// Handle is never valid.
type Handle uint64

// InvalidHandle is the sentinel returned when a search cannot be
// opened.
const InvalidHandle Handle = 0

func makeHandle(index, gen uint32) Handle {
	return Handle(uint64(gen)<<32 | uint64(index))
}

func (h Handle) index() uint32 { return uint32(h & 0xFFFFFFFF) }
func (h Handle) gen() uint32   { return uint32(h >> 32) }

type slot struct {
	gen    uint32
	search *Search
}

// Registry is a generation-counted arena of search slots. It replaces
// the pointer-plus-magic-byte handle of the emulated API with integer
// handles that can be validated without dereferencing anything.
//
// The registry table is safe for concurrent use; the Search behind a
// single handle is not, matching the enumerator's own contract.
type Registry struct {
	mu    sync.Mutex
	slots []slot
	free  []uint32
}

// NewRegistry returns an empty registry. Most callers can use the
// package-level functions and the default registry instead.
func NewRegistry() *Registry {
	return &Registry{}
}

// Open begins a search for the pattern path and registers it,
// returning its handle. On failure it returns InvalidHandle and the
// status from NewSearch.
func (r *Registry) Open(patternPath string) (Handle, error) {
	s, err := NewSearch(patternPath)
	if err != nil {
		return InvalidHandle, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var index uint32
	if n := len(r.free); n > 0 {
		index = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		r.slots = append(r.slots, slot{})
		index = uint32(len(r.slots) - 1)
	}

	// Generation 0 is reserved so the zero Handle stays invalid.
	if r.slots[index].gen == 0 {
		r.slots[index].gen = 1
	}
	r.slots[index].search = s

	return makeHandle(index, r.slots[index].gen), nil
}

// lookup resolves a handle to its live Search, validating index and
// generation under the table lock.
func (r *Registry) lookup(h Handle) (*Search, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	index := h.index()
	if uint64(index) >= uint64(len(r.slots)) {
		return nil, StatusInvalidHandle
	}
	sl := &r.slots[index]
	if sl.search == nil || sl.gen != h.gen() {
		return nil, StatusInvalidHandle
	}
	return sl.search, nil
}

// Next advances the search behind the handle. The table lock is not
// held during the advance, so independent handles never contend.
func (r *Registry) Next(h Handle) (*FindResult, error) {
	s, err := r.lookup(h)
	if err != nil {
		return nil, err
	}
	return s.Next()
}

// LastStatus returns the recorded status of the search behind the
// handle, distinguishing end-of-sequence from real errors.
func (r *Registry) LastStatus(h Handle) error {
	s, err := r.lookup(h)
	if err != nil {
		return err
	}
	return s.LastStatus()
}

// Close releases the search behind the handle and retires the slot.
// The handle, and any copy of it, is invalid afterwards; a second
// Close fails with StatusInvalidHandle.
func (r *Registry) Close(h Handle) error {
	r.mu.Lock()
	index := h.index()
	if uint64(index) >= uint64(len(r.slots)) {
		r.mu.Unlock()
		return StatusInvalidHandle
	}
	sl := &r.slots[index]
	if sl.search == nil || sl.gen != h.gen() {
		r.mu.Unlock()
		return StatusInvalidHandle
	}
	s := sl.search
	sl.search = nil
	sl.gen++
	r.free = append(r.free, index)
	r.mu.Unlock()

	return s.Close()
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the lazily-initialized process-wide
// registry backing the package-level functions.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// FindFirstFile opens a search and advances it once, returning the
// handle and the first match. If the open succeeds but no entry
// matches, the search is closed and StatusNoMoreFiles is returned
// with InvalidHandle, preserving the open-plus-first-match contract
// of the emulated call.
func FindFirstFile(patternPath string) (Handle, *FindResult, error) {
	r := DefaultRegistry()
	h, err := r.Open(patternPath)
	if err != nil {
		return InvalidHandle, nil, err
	}
	res, err := r.Next(h)
	if err != nil {
		r.Close(h)
		return InvalidHandle, nil, err
	}
	return h, res, nil
}

// FindNextFile advances the search behind a handle issued by
// FindFirstFile.
func FindNextFile(h Handle) (*FindResult, error) {
	return DefaultRegistry().Next(h)
}

// FindClose releases a handle issued by FindFirstFile.
func FindClose(h Handle) error {
	return DefaultRegistry().Close(h)
}
