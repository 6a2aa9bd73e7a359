package events

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Envelope wraps a domain Event with the bookkeeping off-chain consumers need
// to deduplicate and order the log stream: a monotonic sequence number local
// to this process and a stable event ID. Neither field is consulted by the
// core itself.
type Envelope struct {
	Seq     uint64
	EventID string
	Emitted time.Time
	Event   Event
}

// EnvelopeRecorder decorates an Emitter, wrapping every event it forwards in
// an Envelope before handing it to the underlying emitter.
type EnvelopeRecorder struct {
	next Emitter
	seq  uint64
	now  func() time.Time
}

// NewEnvelopeRecorder constructs a recorder that forwards enveloped events to
// next. A nil next discards everything, matching NoopEmitter's behavior.
func NewEnvelopeRecorder(next Emitter) *EnvelopeRecorder {
	if next == nil {
		next = NoopEmitter{}
	}
	return &EnvelopeRecorder{next: next, now: time.Now}
}

// SetClock overrides the wall clock used to stamp envelopes, for tests.
func (r *EnvelopeRecorder) SetClock(now func() time.Time) {
	if r == nil || now == nil {
		return
	}
	r.now = now
}

// Emit implements Emitter by wrapping evt and forwarding the envelope to the
// wrapped emitter's Emit call with the envelope's Event field set; downstream
// consumers that only care about Envelope metadata can type-assert.
func (r *EnvelopeRecorder) Emit(evt Event) {
	if r == nil {
		return
	}
	seq := atomic.AddUint64(&r.seq, 1)
	now := time.Now
	if r.now != nil {
		now = r.now
	}
	envelope := Envelope{
		Seq:     seq,
		EventID: uuid.NewString(),
		Emitted: now().UTC(),
		Event:   evt,
	}
	r.next.Emit(envelopedEvent{Envelope: envelope, inner: evt})
}

// envelopedEvent lets the wrapped emitter recover both the original event
// type tag (for routing) and the full envelope (for audit/dedupe) from a
// single Emit call.
type envelopedEvent struct {
	Envelope
	inner Event
}

func (e envelopedEvent) EventType() string { return e.inner.EventType() }
