package events

import (
	"encoding/hex"
	"strconv"
	"strings"
)

func hex32(v [32]byte) string {
	return "0x" + hex.EncodeToString(v[:])
}

func hexList(vs [][32]byte) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = hex32(v)
	}
	return strings.Join(parts, ",")
}

func u64String(v uint64) string {
	return strconv.FormatUint(v, 10)
}
