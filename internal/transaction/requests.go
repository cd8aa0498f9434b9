package transaction

import (
	"crowdsync/pkg/ether"
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/validation"
)

// Request is a mutating action on the ledger.
type Request interface {
	Kind() Kind
	// LockKey names the target the action must hold exclusively.
	LockKey() string
	Validate() error
	call(encoder CallEncoder) (*call, error)
}

type call struct {
	to         common.Address
	data       []byte
	value      *big.Int
	proposalID *uint64
}

// Contribute sends Amount ether to proposal ProposalID.
type Contribute struct {
	ProposalID uint64
	Amount     string
}

func (c Contribute) Kind() Kind {
	return KindContribute
}

func (c Contribute) LockKey() string {
	return fmt.Sprintf("proposal:%d", c.ProposalID)
}

func (c Contribute) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Amount, validation.Required, validation.By(positiveEther)),
	)
}

func (c Contribute) call(encoder CallEncoder) (*call, error) {
	value, err := ether.ParsePositiveEther(c.Amount)
	if err != nil {
		return nil, err
	}
	data, err := encoder.PackContribute(c.ProposalID)
	if err != nil {
		return nil, err
	}
	id := c.ProposalID
	return &call{to: encoder.Address(), data: data, value: value, proposalID: &id}, nil
}

// CreateProposal asks for FundRequest ether. ExecutionTime is a unix
// timestamp in seconds.
type CreateProposal struct {
	Name          string
	Description   string
	FundRequest   string
	ExecutionTime string
}

func (p CreateProposal) Kind() Kind {
	return KindCreateProposal
}

func (p CreateProposal) LockKey() string {
	return "create-proposal"
}

func (p CreateProposal) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Description, validation.Required),
		validation.Field(&p.FundRequest, validation.Required, validation.By(positiveEther)),
		validation.Field(&p.ExecutionTime, validation.Required, validation.By(unixTime)),
	)
}

func (p CreateProposal) call(encoder CallEncoder) (*call, error) {
	fundRequest, err := ether.ParsePositiveEther(p.FundRequest)
	if err != nil {
		return nil, err
	}
	seconds, err := strconv.ParseUint(p.ExecutionTime, 10, 64)
	if err != nil {
		return nil, err
	}
	data, err := encoder.PackCreateProposal(p.Name, p.Description, fundRequest, new(big.Int).SetUint64(seconds))
	if err != nil {
		return nil, err
	}
	return &call{to: encoder.Address(), data: data, value: new(big.Int)}, nil
}

// Withdraw releases the funds held by the Project contract at Project.
type Withdraw struct {
	Project string
}

func (w Withdraw) Kind() Kind {
	return KindWithdraw
}

func (w Withdraw) LockKey() string {
	return "withdraw:" + common.HexToAddress(w.Project).Hex()
}

func (w Withdraw) Validate() error {
	return validation.ValidateStruct(&w,
		validation.Field(&w.Project, validation.Required, validation.By(projectAddress)),
	)
}

func (w Withdraw) call(encoder CallEncoder) (*call, error) {
	data, err := encoder.PackWithdrawFunds()
	if err != nil {
		return nil, err
	}
	return &call{to: common.HexToAddress(w.Project), data: data, value: new(big.Int)}, nil
}

func positiveEther(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := ether.ParsePositiveEther(s); err != nil {
		switch {
		case errors.Is(err, ether.ErrTooPrecise):
			return validation.NewError("validation_ether_precision", "must have at most 18 decimals")
		case errors.Is(err, ether.ErrNotPositive):
			return validation.NewError("validation_ether_positive", "must be greater than zero")
		default:
			return validation.NewError("validation_ether_amount", "must be a decimal ether amount")
		}
	}
	return nil
}

func unixTime(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseUint(s, 10, 64); err != nil {
		return validation.NewError("validation_unix_time", "must be a unix timestamp in seconds")
	}
	return nil
}

func projectAddress(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !common.IsHexAddress(s) {
		return validation.NewError("validation_address", "must be a hex address")
	}
	if common.HexToAddress(s) == (common.Address{}) {
		return validation.NewError("validation_address_zero", "must not be the zero address")
	}
	return nil
}
