package ustring

import (
	"sync"
	"sync/atomic"
)

// buffer is the shared internal representation of a String: a UTF-16
// code-unit sequence plus the share count that drives the copy-on-write
// protocol. Zero or more handles reference one buffer; a handle must
// hold the only reference before it may write to the units.
//
// The share count is atomic so that handles referring to the same
// buffer may be copied and dropped from different goroutines. That is
// the full extent of the thread-safety guarantee: concurrent mutation
// through handles sharing one buffer needs external synchronization.
type buffer struct {
	units []uint16
	refs  atomic.Int32

	// owner identifies the handle that claimed the buffer by writing
	// through it: the address of the *String, stored as an integer and
	// never dereferenced. detach writes in place only for that handle;
	// any other handle finding a share count of one, such as a plain
	// struct copy that bypassed Clone, deep-copies first. Zero means
	// unclaimed. Written only under exclusive ownership.
	owner uintptr

	// null marks the distinguished "no string" sentinel; it reports
	// empty like an ordinary zero-length buffer but IsNull as well.
	null bool
	// pinned marks the immortal sentinel buffers, which are never
	// exclusively owned and never released.
	pinned bool

	// Cached 8-bit export form, at most one encoding at a time.
	expMu  sync.Mutex
	expSet bool
	expEnc Encoding
	exp    []byte
}

var (
	nullBuffer  = &buffer{null: true, pinned: true}
	emptyBuffer = &buffer{pinned: true}
)

func newBuffer(units []uint16) *buffer {
	b := &buffer{units: units}
	b.refs.Store(1)
	return b
}

// acquire registers one more handle and returns b.
func (b *buffer) acquire() *buffer {
	if !b.pinned {
		b.refs.Add(1)
	}
	return b
}

// release drops one handle. The code units themselves are reclaimed by
// the garbage collector once nothing references them; the count exists
// to drive the detach decision and the sharing diagnostics.
func (b *buffer) release() {
	if b.pinned {
		return
	}
	if b.refs.Add(-1) == 0 {
		b.dropExport()
	}
}

// shared reports whether b may be referenced by more than one handle
// and therefore must not be written in place.
func (b *buffer) shared() bool {
	return b.pinned || b.refs.Load() != 1
}

func (b *buffer) dropExport() {
	b.expMu.Lock()
	b.expSet = false
	b.exp = nil
	b.expMu.Unlock()
}

// export8 returns the 8-bit form of the code units in enc, which must
// be Latin1 or UTF8. The result is cached on the buffer; requesting
// the other encoding recomputes and replaces the cache.
func (b *buffer) export8(e Encoding) []byte {
	b.expMu.Lock()
	defer b.expMu.Unlock()
	if !b.expSet || b.expEnc != e {
		if e == Latin1 {
			b.exp = encodeLatin1(b.units)
		} else {
			b.exp = encodeUTF8(b.units)
		}
		b.expEnc = e
		b.expSet = true
	}
	return b.exp
}
