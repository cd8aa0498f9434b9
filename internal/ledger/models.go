package ledger

import (
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrLedgerUnreachable error = errors.New("ledger unreachable")
	ErrStale             error = errors.New("refresh result superseded")
	ErrTooManyProposals  error = errors.New("proposal count over limit")
)

// Proposal is the mirrored view of one proposal record.
type Proposal struct {
	ID          uint64
	Name        string
	Description string
	FundRequest *big.Int
	Raised      *big.Int
	Executed    bool
	Project     common.Address
}

// Funded compares base units, never formatted amounts.
func (p Proposal) Funded() bool {
	return p.Raised.Cmp(p.FundRequest) >= 0
}

func (p Proposal) ProjectLinked() bool {
	return p.Project != (common.Address{})
}

// Snapshot is one consistent read of every proposal. Seq is the refresh
// token it was produced by.
type Snapshot struct {
	Seq         uint64
	Proposals   []Proposal
	RefreshedAt time.Time
}

func (s Snapshot) Proposal(id uint64) (Proposal, bool) {
	if id >= uint64(len(s.Proposals)) {
		return Proposal{}, false
	}
	return s.Proposals[id], true
}
