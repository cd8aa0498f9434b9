package handler

import (
	"context"
	"crowdsync/internal/core"
	"crowdsync/internal/ledger"
	"crowdsync/internal/transaction"
	"crowdsync/internal/wallet"
	"net/http"

	"github.com/ethereum/go-ethereum/event"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name CrowdfundService . CrowdfundService
type CrowdfundService interface {
	Installed() bool
	Session() wallet.View
	Connect(ctx context.Context) (core.Connection, error)
	Disconnect()
	RefreshBalance(ctx context.Context) (wallet.View, error)
	Proposals(ctx context.Context, refresh bool) (ledger.Snapshot, error)
	Dispatch(ctx context.Context, token string, req transaction.Request) (core.PendingTransaction, error)
	PendingTransactions() []core.PendingTransaction
	Notifications() []core.Notification
	SubscribeChanges(ch chan<- core.ChangeEvent) event.Subscription
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
