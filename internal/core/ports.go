package core

import (
	"context"
	"crowdsync/internal/ledger"
	"crowdsync/internal/transaction"
	"crowdsync/internal/wallet"
	tokenIssuer "crowdsync/pkg/jwt"

	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name SessionManager . SessionManager
type SessionManager interface {
	Installed() bool
	View() wallet.View
	Connect(ctx context.Context) (wallet.View, error)
	Disconnect()
	RefreshBalance(ctx context.Context) (wallet.View, error)
	OnAccountsChanged(handler func(wallet.View))
}

//counterfeiter:generate -o fake -fake-name LedgerMirror . LedgerMirror
type LedgerMirror interface {
	Refresh(ctx context.Context) (ledger.Snapshot, error)
	Snapshot() ledger.Snapshot
	Reset()
}

//counterfeiter:generate -o fake -fake-name TransactionSubmitter . TransactionSubmitter
type TransactionSubmitter interface {
	Submit(ctx context.Context, req transaction.Request) (*transaction.Handle, error)
	WaitForConfirmation(ctx context.Context, h *transaction.Handle) (*types.Receipt, error)
	AwaitLate(ctx context.Context, h *transaction.Handle) (*types.Receipt, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Issue(info tokenIssuer.TokenInfo) (string, error)
	Parse(token string) (*tokenIssuer.SessionClaims, error)
}
