package ethereum

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// CrowdfundingContract reads the Crowdfunding and Project contracts and
// encodes calls to their mutating functions.
type CrowdfundingContract struct {
	address common.Address
	client  EthClient
	bound   *bind.BoundContract
}

func NewCrowdfundingContract(address common.Address, client EthClient) *CrowdfundingContract {
	return &CrowdfundingContract{
		address: address,
		client:  client,
		bound:   bind.NewBoundContract(address, crowdfundingABI, client, nil, nil),
	}
}

func (c *CrowdfundingContract) Address() common.Address {
	return c.address
}

func (c *CrowdfundingContract) ProposalsCount(ctx context.Context) (uint64, error) {
	var out []interface{}
	if err := c.bound.Call(&bind.CallOpts{Context: ctx}, &out, "getProposalsCount"); err != nil {
		return 0, fmt.Errorf("call getProposalsCount: %w", err)
	}
	count := *abi.ConvertType(out[0], new(big.Int)).(*big.Int)
	if !count.IsUint64() {
		return 0, fmt.Errorf("proposal count %s out of range", count.String())
	}
	return count.Uint64(), nil
}

func (c *CrowdfundingContract) Proposal(ctx context.Context, id uint64) (*ProposalRecord, error) {
	var out []interface{}
	err := c.bound.Call(&bind.CallOpts{Context: ctx}, &out, "proposals", new(big.Int).SetUint64(id))
	if err != nil {
		return nil, fmt.Errorf("call proposals(%d): %w", id, err)
	}
	if len(out) != 6 {
		return nil, fmt.Errorf("proposals(%d): unexpected output length %d", id, len(out))
	}

	return &ProposalRecord{
		Name:             *abi.ConvertType(out[0], new(string)).(*string),
		Description:      *abi.ConvertType(out[1], new(string)).(*string),
		FundRequest:      abi.ConvertType(out[2], new(big.Int)).(*big.Int),
		TotalFundsRaised: abi.ConvertType(out[3], new(big.Int)).(*big.Int),
		Executed:         *abi.ConvertType(out[4], new(bool)).(*bool),
		ProjectContract:  *abi.ConvertType(out[5], new(common.Address)).(*common.Address),
	}, nil
}

// ProjectBalance returns getBalance() of a linked Project contract.
func (c *CrowdfundingContract) ProjectBalance(ctx context.Context, project common.Address) (*big.Int, error) {
	return c.projectUint(ctx, project, "getBalance")
}

// ProjectFinalAmount returns getFinalAmount() of a linked Project contract.
func (c *CrowdfundingContract) ProjectFinalAmount(ctx context.Context, project common.Address) (*big.Int, error) {
	return c.projectUint(ctx, project, "getFinalAmount")
}

func (c *CrowdfundingContract) projectUint(ctx context.Context, project common.Address, method string) (*big.Int, error) {
	bound := bind.NewBoundContract(project, projectABI, c.client, nil, nil)

	var out []interface{}
	if err := bound.Call(&bind.CallOpts{Context: ctx}, &out, method); err != nil {
		return nil, fmt.Errorf("call %s on %s: %w", method, project.Hex(), err)
	}
	return abi.ConvertType(out[0], new(big.Int)).(*big.Int), nil
}

func (c *CrowdfundingContract) PackContribute(proposalID uint64) ([]byte, error) {
	data, err := crowdfundingABI.Pack("contribute", new(big.Int).SetUint64(proposalID))
	if err != nil {
		return nil, fmt.Errorf("pack contribute: %w", err)
	}
	return data, nil
}

func (c *CrowdfundingContract) PackCreateProposal(name, description string, fundRequest, executionTime *big.Int) ([]byte, error) {
	data, err := crowdfundingABI.Pack("createProposal", name, description, fundRequest, executionTime)
	if err != nil {
		return nil, fmt.Errorf("pack createProposal: %w", err)
	}
	return data, nil
}

func (c *CrowdfundingContract) PackWithdrawFunds() ([]byte, error) {
	data, err := projectABI.Pack("withdrawFunds")
	if err != nil {
		return nil, fmt.Errorf("pack withdrawFunds: %w", err)
	}
	return data, nil
}
