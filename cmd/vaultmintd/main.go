package main

import (
	"context"
	"encoding/hex"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"os/signal"

	"vaultmint/cmd/vaultmintd/api"
	"vaultmint/config"
	"vaultmint/core/state"
	"vaultmint/native/vault"
	"vaultmint/observability/logging"
	"vaultmint/storage"
)

func main() {
	var cfgPath string
	flag.StringVar(&cfgPath, "config", "vaultmintd.toml", "path to daemon configuration")
	flag.Parse()

	env := strings.TrimSpace(os.Getenv("VAULTMINT_ENV"))
	slogger := logging.Setup("vaultmintd", env)
	logger := log.New(os.Stdout, "vaultmintd ", log.LstdFlags|log.Lmsgprefix)

	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		logger.Fatalf("create data dir: %v", err)
	}
	db, err := storage.NewLevelDB(filepath.Join(cfg.DataDir, "core"))
	if err != nil {
		logger.Fatalf("open storage: %v", err)
	}
	defer db.Close()

	manager := state.NewManager(db)
	slogger.Info("state store opened", "dataDir", cfg.DataDir)

	var vaultCfg vault.Config
	vaultAddr := vault.ConfigAddress()
	if found, vErr := manager.KVGet(vaultAddr[:], &vaultCfg); vErr != nil {
		logger.Printf("read vault config: %v", vErr)
	} else if found {
		slogger.Info("vault config loaded",
			"version", vaultCfg.Version,
			"paused", vaultCfg.Paused,
			"receiptSupplyCap", vaultCfg.ReceiptSupplyCap,
			logging.MaskField("reserveCustody", hex.EncodeToString(vaultCfg.ReserveCustody[:])),
			logging.MaskField("redeemCustody", hex.EncodeToString(vaultCfg.RedeemCustody[:])),
			logging.MaskField("allowedMintProgramCaller", hex.EncodeToString(vaultCfg.AllowedMintProgramCaller[:])),
		)
	}

	// vaultmintd only serves the read-only admin surface below; the mutating
	// vault.Engine/rewards.Engine operations are Go method calls dispatched
	// by whatever transaction runtime embeds this module as a library, the
	// same way the host ledger drives on-chain programs elsewhere. That
	// runtime is expected to wire each engine's emitter to an
	// events.EnvelopeRecorder over an events.NewStateAppender(manager,
	// events.DefaultLogKey), which is what the /events route below reads
	// back.
	handler := api.New(manager)
	server := &http.Server{
		Addr:         cfg.ListenAddress,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	listener, err := net.Listen("tcp", cfg.ListenAddress)
	if err != nil {
		logger.Fatalf("listen: %v", err)
	}
	go func() {
		logger.Printf("listening on http://%s", listener.Addr())
		if serveErr := server.Serve(listener); serveErr != nil && serveErr != http.ErrServerClosed {
			logger.Fatalf("serve: %v", serveErr)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	}
}
