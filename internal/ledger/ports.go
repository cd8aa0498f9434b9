package ledger

import (
	"context"
	"crowdsync/internal/ethereum"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Reader . Reader
type Reader interface {
	ProposalsCount(ctx context.Context) (uint64, error)
	Proposal(ctx context.Context, id uint64) (*ethereum.ProposalRecord, error)
	ProjectBalance(ctx context.Context, project common.Address) (*big.Int, error)
	ProjectFinalAmount(ctx context.Context, project common.Address) (*big.Int, error)
}

type Metrics interface {
	ObserveRefresh(status string, proposals int, started time.Time)
	ObserveRead(op string, err error, started time.Time)
}
