// Package api exposes a read-only HTTP surface over the vault-and-mint
// core for administrative tooling and dashboards. Every state-changing
// operation remains a Go method call on native/vault.Engine and
// native/rewards.Engine; nothing here mutates state.
package api

import (
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"vaultmint/core/events"
	"vaultmint/native/vault"
)

// ConfigStore is the read surface the router needs from the core's state.
type ConfigStore interface {
	KVGet(key []byte, out interface{}) (bool, error)
	KVGetList(key []byte, out interface{}) error
}

// New builds the read-only admin router.
func New(store ConfigStore) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/config", func(w http.ResponseWriter, r *http.Request) {
		var cfg vault.Config
		addr := vault.ConfigAddress()
		found, err := store.KVGet(addr[:], &cfg)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if !found {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, configView{
			ReserveTokenID:           hex.EncodeToString(cfg.ReserveTokenID[:]),
			ReceiptTokenID:           hex.EncodeToString(cfg.ReceiptTokenID[:]),
			ReserveCustody:           hex.EncodeToString(cfg.ReserveCustody[:]),
			RedeemCustody:            hex.EncodeToString(cfg.RedeemCustody[:]),
			Paused:                   cfg.Paused,
			ReceiptSupplyCap:         cfg.ReceiptSupplyCap,
			Version:                  cfg.Version,
			AllowedMintProgramCaller: hex.EncodeToString(cfg.AllowedMintProgramCaller[:]),
		})
	})

	r.Get("/epochs/{index}", func(w http.ResponseWriter, r *http.Request) {
		index, err := strconv.ParseUint(chi.URLParam(r, "index"), 10, 64)
		if err != nil {
			http.Error(w, "invalid epoch index", http.StatusBadRequest)
			return
		}
		var epoch epochRecord
		addr := vault.EpochAddress(index)
		found, err := store.KVGet(addr[:], &epoch)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if !found {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, epochView{
			Index:      epoch.Index,
			MerkleRoot: hex.EncodeToString(epoch.MerkleRoot[:]),
			Total:      epoch.Total,
			Claimed:    epoch.Claimed,
		})
	})

	r.Get("/redemptions/{user}", func(w http.ResponseWriter, r *http.Request) {
		userBytes, err := hex.DecodeString(chi.URLParam(r, "user"))
		if err != nil || len(userBytes) != 32 {
			http.Error(w, "invalid user key", http.StatusBadRequest)
			return
		}
		var user [32]byte
		copy(user[:], userBytes)

		var ticket vault.RedemptionRequest
		addr := vault.RedemptionRequestAddress(user)
		found, err := store.KVGet(addr[:], &ticket)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if !found {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, redemptionView{
			User:      hex.EncodeToString(ticket.User[:]),
			Amount:    ticket.Amount,
			CreatedAt: ticket.CreatedAt,
		})
	})

	r.Get("/events", func(w http.ResponseWriter, r *http.Request) {
		entries, err := events.EventLog(store, events.DefaultLogKey)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, entries)
	})

	return r
}

// epochRecord mirrors native/rewards.Epoch's on-the-wire shape without
// importing that package, avoiding a cmd -> native/rewards dependency for
// a single read path.
type epochRecord struct {
	Index      uint64
	MerkleRoot [32]byte
	Total      uint64
	CreatedAt  int64
	Claimed    uint64
}

type configView struct {
	ReserveTokenID           string `json:"reserveTokenId"`
	ReceiptTokenID           string `json:"receiptTokenId"`
	ReserveCustody           string `json:"reserveCustody"`
	RedeemCustody            string `json:"redeemCustody"`
	Paused                   bool   `json:"paused"`
	ReceiptSupplyCap         uint64 `json:"receiptSupplyCap"`
	Version                  uint64 `json:"version"`
	AllowedMintProgramCaller string `json:"allowedMintProgramCaller"`
}

type epochView struct {
	Index      uint64 `json:"index"`
	MerkleRoot string `json:"merkleRoot"`
	Total      uint64 `json:"total"`
	Claimed    uint64 `json:"claimed"`
}

type redemptionView struct {
	User      string `json:"user"`
	Amount    uint64 `json:"amount"`
	CreatedAt int64  `json:"createdAt"`
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
