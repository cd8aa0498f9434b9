package transaction

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Session . Session
type Session interface {
	ActiveAccount() (common.Address, uint64, bool)
}

//counterfeiter:generate -o fake -fake-name Wallet . Wallet
type Wallet interface {
	SendSignedCall(ctx context.Context, from, to common.Address, data []byte, value *big.Int) (*types.Transaction, error)
}

type CallEncoder interface {
	Address() common.Address
	PackContribute(proposalID uint64) ([]byte, error)
	PackCreateProposal(name, description string, fundRequest, executionTime *big.Int) ([]byte, error)
	PackWithdrawFunds() ([]byte, error)
}

//counterfeiter:generate -o fake -fake-name Confirmer . Confirmer
type Confirmer interface {
	WaitMined(ctx context.Context, hash common.Hash) (*types.Receipt, error)
	ReplayRevert(ctx context.Context, from common.Address, tx *types.Transaction, blockNumber *big.Int) (string, error)
}

type Metrics interface {
	ObserveSubmission(kind string, err error, started time.Time)
	ObserveConfirmation(kind, status string, started time.Time)
}
