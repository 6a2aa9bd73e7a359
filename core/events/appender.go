package events

import (
	"encoding/json"

	"vaultmint/core/types"
)

// kvAppender is the append-only storage slice StateAppender depends on.
type kvAppender interface {
	KVAppend(key []byte, value []byte) error
}

// kvLister is the read side of the same log, used by EventLog.
type kvLister interface {
	KVGetList(key []byte, out interface{}) error
}

// LoggedEvent is the durable record StateAppender writes for each event it
// receives. Seq and EventID are populated only when the event arrived
// wrapped in an Envelope; a bare Emit without an EnvelopeRecorder in front of
// the appender still logs the event, just without those fields.
type LoggedEvent struct {
	Seq        uint64            `json:"seq,omitempty"`
	EventID    string            `json:"eventId,omitempty"`
	EmittedAt  int64             `json:"emittedAt,omitempty"`
	Type       string            `json:"type"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// DefaultLogKey is the key an embedding host stores the durable event log
// under when it has no reason to pick its own.
var DefaultLogKey = []byte("core/events/log")

// StateAppender persists every event it receives to an append-only log kept
// in the core's key/value state, giving off-chain consumers durable,
// order-preserving access to the event stream without standing up a
// separate message broker. It is meant to sit behind an EnvelopeRecorder:
//
//	engine.SetEmitter(events.NewEnvelopeRecorder(events.NewStateAppender(state, key)))
//
// so each stored entry also carries the sequence number and event ID an
// embedding host uses to dedupe and order delivery.
type StateAppender struct {
	state kvAppender
	key   []byte
}

// NewStateAppender constructs an appender that writes entries under key.
func NewStateAppender(state kvAppender, key []byte) *StateAppender {
	return &StateAppender{state: state, key: key}
}

// Emit implements Emitter.
func (a *StateAppender) Emit(evt Event) {
	if a == nil || a.state == nil || evt == nil {
		return
	}
	entry := LoggedEvent{Type: evt.EventType()}
	if enveloped, ok := evt.(envelopedEvent); ok {
		entry.Seq = enveloped.Seq
		entry.EventID = enveloped.EventID
		entry.EmittedAt = enveloped.Emitted.Unix()
		evt = enveloped.inner
	}
	if payload, ok := evt.(interface{ Event() *types.Event }); ok {
		if e := payload.Event(); e != nil {
			entry.Attributes = e.Attributes
		}
	}
	encoded, err := json.Marshal(entry)
	if err != nil {
		return
	}
	_ = a.state.KVAppend(a.key, encoded)
}

// EventLog decodes every entry written under key, oldest first.
func EventLog(state kvLister, key []byte) ([]LoggedEvent, error) {
	var raw [][]byte
	if err := state.KVGetList(key, &raw); err != nil {
		return nil, err
	}
	entries := make([]LoggedEvent, 0, len(raw))
	for _, b := range raw {
		var entry LoggedEvent
		if err := json.Unmarshal(b, &entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
