package cmd

import (
	"context"
	"crowdsync/internal/config"
	"crowdsync/internal/core"
	"crowdsync/internal/ethereum"
	"crowdsync/internal/http/handler"
	"crowdsync/internal/http/handler/middleware"
	"crowdsync/internal/http/payload"
	"crowdsync/internal/http/server"
	"crowdsync/internal/ledger"
	"crowdsync/internal/metrics"
	"crowdsync/internal/transaction"
	"crowdsync/internal/wallet"
	"crowdsync/pkg/jwt"
	"crowdsync/pkg/log"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/ratelimit"
)

func Start() error {
	cfg, err := config.NewApp(os.Args[1:])
	if errors.Is(err, config.ErrHelp) {
		fmt.Println(err)
		return nil
	}
	if err != nil {
		return err
	}

	logger := log.NewZapLogger("crowdsync", cfg.Level())
	defer func() {
		_ = logger.Sync()
	}()

	client, err := ethclient.Dial(cfg.NodeURL)
	if err != nil {
		logger.Errorw("node connection failed", "error", err)
		return err
	}
	defer client.Close()

	contract := ethereum.NewCrowdfundingContract(cfg.Contract(), client)
	nodeService := ethereum.NewNodeService(client, cfg.ReceiptPollInterval)

	// wallet
	var capability wallet.Capability
	var signer transaction.Wallet
	keystoreWallet, err := wallet.OpenKeystoreWallet(cfg.KeystoreDir, client, cfg.KeystorePassphrase)
	switch {
	case errors.Is(err, wallet.ErrNoWalletInstalled):
		logger.Warnw("no wallet found, running read-only", "keystore_dir", cfg.KeystoreDir)
	case err != nil:
		logger.Errorw("failed to open keystore", "error", err)
		return err
	default:
		capability = keystoreWallet
		signer = keystoreWallet
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	walletManager := wallet.NewManager(logger, capability)
	walletManager.Start(ctx)
	defer walletManager.Close()

	// ledger mirror
	mirror := ledger.NewMirror(
		logger,
		contract,
		metrics.NewLedgerMirror(),
		ledger.WithLimiter(ratelimit.New(cfg.LedgerReadsPerSecond)),
		ledger.WithConcurrency(cfg.LedgerReadConcurrency),
		ledger.WithMaxProposals(cfg.LedgerMaxProposals))

	// submitter
	submitter := transaction.NewSubmitter(
		logger,
		walletManager.Session(),
		signer,
		contract,
		nodeService,
		metrics.NewSubmitter(),
		cfg.ConfirmationTimeout)

	// jwt service
	jwtService := jwt.NewJWTService([]byte(cfg.JWTSecret))

	// crowdsync
	crowdsync := core.NewCrowdsync(
		logger,
		walletManager,
		mirror,
		submitter,
		jwtService,
		cfg.LateConfirmationWindow)
	defer crowdsync.Close()

	// handler
	crowdfundHlr := handler.NewCrowdfundHandler(
		logger,
		payload.Decoder{},
		crowdsync)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.GetSession, crowdfundHlr.HandleGetSession)
	mux.HandleFunc(handler.ConnectSession, crowdfundHlr.HandleConnect)
	mux.HandleFunc(handler.DisconnectSession, crowdfundHlr.HandleDisconnect)
	mux.HandleFunc(handler.RefreshBalance, crowdfundHlr.HandleRefreshBalance)
	mux.HandleFunc(handler.GetProposals, crowdfundHlr.HandleGetProposals)
	mux.HandleFunc(handler.CreateProposal, crowdfundHlr.HandleCreateProposal)
	mux.HandleFunc(handler.Contribute, crowdfundHlr.HandleContribute)
	mux.HandleFunc(handler.Withdraw, crowdfundHlr.HandleWithdraw)
	mux.HandleFunc(handler.GetTransactions, crowdfundHlr.HandleGetTransactions)
	mux.HandleFunc(handler.GetNotifications, crowdfundHlr.HandleGetNotifications)
	mux.HandleFunc(handler.GetEvents, crowdfundHlr.HandleEvents)
	mux.Handle("GET /metrics", promhttp.Handler())

	srv := server.NewHTTP(logger, hdlr, cfg.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return sdErr
	}

	return err
}
