package ethereum

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ProposalRecord is the raw tuple returned by the proposals(uint256) getter.
type ProposalRecord struct {
	Name             string
	Description      string
	FundRequest      *big.Int
	TotalFundsRaised *big.Int
	Executed         bool
	ProjectContract  common.Address
}
