package wallet

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Capability is what a wallet has to offer the session manager.
//
//counterfeiter:generate -o fake -fake-name Capability . Capability
type Capability interface {
	// RequestAccounts asks the wallet for account access. The first
	// account is the primary one.
	RequestAccounts(ctx context.Context) ([]common.Address, error)
	Balance(ctx context.Context, account common.Address) (*big.Int, error)
	// SubscribeAccounts delivers the full account list every time it changes.
	SubscribeAccounts(sink chan<- []common.Address) event.Subscription
	SendSignedCall(ctx context.Context, from, to common.Address, data []byte, value *big.Int) (*types.Transaction, error)
}
