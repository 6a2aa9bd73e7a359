package vault

import "github.com/ethereum/go-ethereum/rlp"

var configAuditKey = hashLabels([]byte("config_audit"))

// ConfigAudit records a single Config mutation for administrative review,
// distinct from the coarser ConfigUpdated event emitted to off-chain
// consumers.
type ConfigAudit struct {
	Mutator         [32]byte
	PreviousVersion uint64
	NewVersion      uint64
	Field           string
	At              int64
}

func (e *Engine) appendConfigAudit(entry ConfigAudit) error {
	encoded, err := rlp.EncodeToBytes(entry)
	if err != nil {
		return err
	}
	return e.state.KVAppend(configAuditKey[:], encoded)
}

// ConfigAuditLog returns every recorded Config mutation, oldest first.
func (e *Engine) ConfigAuditLog() ([]ConfigAudit, error) {
	var raw [][]byte
	if err := e.state.KVGetList(configAuditKey[:], &raw); err != nil {
		return nil, err
	}
	entries := make([]ConfigAudit, 0, len(raw))
	for _, b := range raw {
		var entry ConfigAudit
		if err := rlp.DecodeBytes(b, &entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
